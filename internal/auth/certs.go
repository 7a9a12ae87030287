package auth

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// GoogleCertsURL serves the x509 certificates that sign Firebase ID tokens, keyed by kid.
const GoogleCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

const (
	certsKey          = "certs"
	certsFetchTimeout = 10 * time.Second
)

// CertCache holds the current signing keys for at most ttl. Concurrent
// refreshes collapse into a single fetch.
type CertCache struct {
	client *http.Client
	url    string
	keys   *expirable.LRU[string, map[string]*rsa.PublicKey]
	group  singleflight.Group
}

func NewCertCache(client *http.Client, url string, ttl time.Duration) (*CertCache, error) {
	if client == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if url == "" {
		return nil, fmt.Errorf("url is empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("ttl must be positive")
	}

	return &CertCache{
		client: client,
		url:    url,
		keys:   expirable.NewLRU[string, map[string]*rsa.PublicKey](1, nil, ttl),
	}, nil
}

// Key returns the public key for kid, fetching the certificate set when the cached one expired.
func (c *CertCache) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	keys, ok := c.keys.Get(certsKey)
	if !ok {
		v, err, _ := c.group.Do(certsKey, func() (any, error) {
			// shared by every waiter, so it must outlive the caller that started it
			fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), certsFetchTimeout)
			defer cancel()

			fetched, err := c.fetch(fetchCtx)
			if err != nil {
				return nil, err
			}
			c.keys.Add(certsKey, fetched)
			return fetched, nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCertsUnavailable, err)
		}
		keys = v.(map[string]*rsa.PublicKey)
	}

	key, ok := keys[kid]
	if !ok {
		return nil, ErrUnknownKID
	}

	return key, nil
}

func (c *CertCache) fetch(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var certs map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&certs); err != nil {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, pem := range certs {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
		if err != nil {
			return nil, fmt.Errorf("jwt.ParseRSAPublicKeyFromPEM[%s]: %w", kid, err)
		}
		keys[kid] = key
	}

	return keys, nil
}

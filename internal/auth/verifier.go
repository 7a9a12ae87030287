// Package auth verifies Firebase ID tokens and carries the user id in the context.
package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken     = errors.New("auth.invalid_token")
	ErrMissingKID       = errors.New("auth.missing_kid")
	ErrUnknownKID       = errors.New("auth.unknown_kid")
	ErrCertsUnavailable = errors.New("auth.certs_unavailable")
)

// Verifier resolves a bearer token to a user id.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// KeySource resolves the signing key named by a token's kid header.
type KeySource interface {
	Key(ctx context.Context, kid string) (*rsa.PublicKey, error)
}

type FirebaseVerifier struct {
	keys   KeySource
	parser *jwt.Parser
}

func NewFirebaseVerifier(projectID string, keys KeySource) (*FirebaseVerifier, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is empty")
	}
	if keys == nil {
		return nil, fmt.Errorf("keys is nil")
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer("https://securetoken.google.com/"+projectID),
		jwt.WithAudience(projectID),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(30*time.Second),
	)

	return &FirebaseVerifier{
		keys:   keys,
		parser: parser,
	}, nil
}

// Verify checks signature, issuer, audience and expiry and returns the sub claim.
func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidToken
	}

	var claims jwt.RegisteredClaims

	_, err := v.parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, ErrMissingKID
		}
		return v.keys.Key(ctx, kid)
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: sub is empty", ErrInvalidToken)
	}

	return claims.Subject, nil
}

// StaticVerifier accepts any token as userID, for local development only.
type StaticVerifier struct {
	userID string
}

func NewStaticVerifier(userID string) (StaticVerifier, error) {
	if userID == "" {
		return StaticVerifier{}, fmt.Errorf("userID is empty")
	}
	return StaticVerifier{userID: userID}, nil
}

func (v StaticVerifier) Verify(context.Context, string) (string, error) {
	return v.userID, nil
}

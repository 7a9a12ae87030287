package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/nikolayk812/foodie/internal/auth"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config keys match the environment variable names, in YAML too.
type Config struct {
	ServiceIP   string `yaml:"SERVICE_IP"`
	ServicePort string `yaml:"SERVICE_PORT"`

	Storage     string `yaml:"STORAGE"`
	DatabaseURL string `yaml:"DATABASE_URL"`

	OpenAIAPIKey          string `yaml:"OPENAI_API_KEY"`
	OpenAIModel           string `yaml:"OPENAI_MODEL"`
	OpenAISuggestionModel string `yaml:"OPENAI_SUGGESTION_MODEL"`
	OpenFoodFactsURL      string `yaml:"OPENFOODFACTS_URL"`

	EstimationCacheSize int           `yaml:"ESTIMATION_CACHE_SIZE"`
	EstimationCacheTTL  time.Duration `yaml:"ESTIMATION_CACHE_TTL"`

	FirebaseProjectID string `yaml:"FIREBASE_PROJECT_ID"`
	FirebaseCertsURL  string `yaml:"FIREBASE_CERTS_URL"`
	AuthDisabled      bool   `yaml:"AUTH_DISABLED"`
	AuthDevUser       string `yaml:"AUTH_DEV_USER"`

	CORSAllowedOrigins []string `yaml:"CORS_ALLOWED_ORIGINS"`

	LogLevel        string        `yaml:"LOG_LEVEL"`
	LogFormat       string        `yaml:"LOG_FORMAT"`
	ShutdownTimeout time.Duration `yaml:"SHUTDOWN_TIMEOUT"`
}

func Default() Config {
	return Config{
		ServiceIP:             "127.0.0.1",
		ServicePort:           "8080",
		Storage:               StoragePostgres,
		OpenAIModel:           "gpt-4o",
		OpenAISuggestionModel: "gpt-4o-mini",
		OpenFoodFactsURL:      "https://world.openfoodfacts.org",
		EstimationCacheSize:   1024,
		EstimationCacheTTL:    24 * time.Hour,
		FirebaseCertsURL:      auth.GoogleCertsURL,
		AuthDevUser:           "dev-user",
		CORSAllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:1420",
			"http://localhost:8080",
		},
		LogLevel:        "info",
		LogFormat:       "text",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load reads .env when present, then the YAML file named by FOODIE_CONFIG,
// then the process environment. Later sources win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("godotenv.Load: %w", err)
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv builds a validated config from defaults, the optional YAML file and lookup.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path, ok := lookup("FOODIE_CONFIG"); ok && path != "" {
		if err := cfg.readYAML(path); err != nil {
			return Config{}, fmt.Errorf("cfg.readYAML: %w", err)
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, fmt.Errorf("cfg.applyEnv: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) readYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("os.ReadFile: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"SERVICE_IP":              &c.ServiceIP,
		"SERVICE_PORT":            &c.ServicePort,
		"STORAGE":                 &c.Storage,
		"DATABASE_URL":            &c.DatabaseURL,
		"OPENAI_API_KEY":          &c.OpenAIAPIKey,
		"OPENAI_MODEL":            &c.OpenAIModel,
		"OPENAI_SUGGESTION_MODEL": &c.OpenAISuggestionModel,
		"OPENFOODFACTS_URL":       &c.OpenFoodFactsURL,
		"FIREBASE_PROJECT_ID":     &c.FirebaseProjectID,
		"FIREBASE_CERTS_URL":      &c.FirebaseCertsURL,
		"AUTH_DEV_USER":           &c.AuthDevUser,
		"LOG_LEVEL":               &c.LogLevel,
		"LOG_FORMAT":              &c.LogFormat,
	}
	for key, target := range strs {
		if v, ok := lookup(key); ok {
			*target = strings.TrimSpace(v)
		}
	}

	durations := map[string]*time.Duration{
		"ESTIMATION_CACHE_TTL": &c.EstimationCacheTTL,
		"SHUTDOWN_TIMEOUT":     &c.ShutdownTimeout,
	}
	for key, target := range durations {
		if v, ok := lookup(key); ok {
			d, err := time.ParseDuration(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*target = d
		}
	}

	if v, ok := lookup("ESTIMATION_CACHE_SIZE"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("ESTIMATION_CACHE_SIZE: %w", err)
		}
		c.EstimationCacheSize = n
	}

	if v, ok := lookup("AUTH_DISABLED"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("AUTH_DISABLED: %w", err)
		}
		c.AuthDisabled = b
	}

	if v, ok := lookup("CORS_ALLOWED_ORIGINS"); ok {
		c.CORSAllowedOrigins = splitList(v)
	}

	return nil
}

func (c Config) Validate() error {
	switch c.Storage {
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for postgres storage")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("STORAGE %q is not one of postgres, memory", c.Storage)
	}

	if c.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is required")
	}

	if c.AuthDisabled {
		if c.AuthDevUser == "" {
			return errors.New("AUTH_DEV_USER is required when auth is disabled")
		}
	} else if c.FirebaseProjectID == "" {
		return errors.New("FIREBASE_PROJECT_ID is required")
	}

	if c.ServicePort == "" {
		return errors.New("SERVICE_PORT is empty")
	}
	if _, err := strconv.ParseUint(c.ServicePort, 10, 16); err != nil {
		return fmt.Errorf("SERVICE_PORT %q is not a port", c.ServicePort)
	}

	if c.EstimationCacheSize <= 0 {
		return errors.New("ESTIMATION_CACHE_SIZE must be positive")
	}
	if c.EstimationCacheTTL <= 0 {
		return errors.New("ESTIMATION_CACHE_TTL must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}

	return nil
}

func (c Config) BindAddress() string {
	return net.JoinHostPort(c.ServiceIP, c.ServicePort)
}

func splitList(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}

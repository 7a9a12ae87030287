package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikolayk812/foodie/internal/assistant"
	"github.com/nikolayk812/foodie/internal/auth"
	"github.com/nikolayk812/foodie/internal/config"
	"github.com/nikolayk812/foodie/internal/database"
	httpapi "github.com/nikolayk812/foodie/internal/http"
	"github.com/nikolayk812/foodie/internal/logging"
	"github.com/nikolayk812/foodie/internal/port"
	"github.com/nikolayk812/foodie/internal/repository"
	"github.com/nikolayk812/foodie/internal/service"
	"github.com/nikolayk812/foodie/internal/template"
	"github.com/tmc/langchaingo/llms/openai"
	"golang.org/x/sync/errgroup"
)

var version = "dev"

const (
	outboundTimeout = 10 * time.Second
	certsTTL        = time.Hour
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	products, items, closeStore, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("openStorage: %w", err)
	}
	defer closeStore()

	engine, err := template.NewEngine()
	if err != nil {
		return fmt.Errorf("template.NewEngine: %w", err)
	}

	llm, err := openai.New(
		openai.WithModel(cfg.OpenAIModel),
		openai.WithToken(cfg.OpenAIAPIKey),
	)
	if err != nil {
		return fmt.Errorf("openai.New: %w", err)
	}

	suggestionLLM, err := openai.New(
		openai.WithModel(cfg.OpenAISuggestionModel),
		openai.WithToken(cfg.OpenAIAPIKey),
	)
	if err != nil {
		return fmt.Errorf("openai.New suggestions: %w", err)
	}

	client := &http.Client{Timeout: outboundTimeout}

	generator, err := assistant.NewSuggestionGenerator(suggestionLLM, engine)
	if err != nil {
		return fmt.Errorf("assistant.NewSuggestionGenerator: %w", err)
	}

	estimator, err := assistant.NewExpiryEstimator(llm, engine, logger,
		assistant.WithCache(cfg.EstimationCacheSize, cfg.EstimationCacheTTL))
	if err != nil {
		return fmt.Errorf("assistant.NewExpiryEstimator: %w", err)
	}

	barcodes, err := assistant.NewOpenFoodFacts(client, cfg.OpenFoodFactsURL)
	if err != nil {
		return fmt.Errorf("assistant.NewOpenFoodFacts: %w", err)
	}

	identifier, err := assistant.NewProductIdentifier(llm, engine, barcodes)
	if err != nil {
		return fmt.Errorf("assistant.NewProductIdentifier: %w", err)
	}

	scanner, err := assistant.NewReceiptScanner(llm, engine)
	if err != nil {
		return fmt.Errorf("assistant.NewReceiptScanner: %w", err)
	}

	productService, err := service.NewProductService(products, items, estimator, identifier, scanner, logger)
	if err != nil {
		return fmt.Errorf("service.NewProductService: %w", err)
	}

	itemService, err := service.NewShoppingItemService(items, logger)
	if err != nil {
		return fmt.Errorf("service.NewShoppingItemService: %w", err)
	}

	suggestionService, err := service.NewSuggestionService(products, generator, logger)
	if err != nil {
		return fmt.Errorf("service.NewSuggestionService: %w", err)
	}

	verifier, err := newVerifier(cfg, client, logger)
	if err != nil {
		return fmt.Errorf("newVerifier: %w", err)
	}

	server, err := httpapi.NewServer(productService, itemService, suggestionService, verifier, logger, httpapi.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Version:        version,
	})
	if err != nil {
		return fmt.Errorf("httpapi.NewServer: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.BindAddress(),
		Handler:           server.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server started", "address", srv.Addr, "storage", cfg.Storage, "version", version)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("srv.Shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func openStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.ProductRepository, port.ShoppingItemRepository, func(), error) {
	if cfg.Storage == config.StorageMemory {
		logger.Warn("using in-memory storage, data is lost on restart")

		store := repository.NewMemoryStore()
		return store.Products(), store.ShoppingItems(), func() {}, nil
	}

	pool, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("database.Open: %w", err)
	}

	return repository.NewProduct(pool), repository.NewShoppingItem(pool), pool.Close, nil
}

func newVerifier(cfg config.Config, client *http.Client, logger *slog.Logger) (auth.Verifier, error) {
	if cfg.AuthDisabled {
		logger.Warn("authentication disabled, every request runs as the dev user", "user", cfg.AuthDevUser)
		return auth.NewStaticVerifier(cfg.AuthDevUser)
	}

	certs, err := auth.NewCertCache(client, cfg.FirebaseCertsURL, certsTTL)
	if err != nil {
		return nil, fmt.Errorf("auth.NewCertCache: %w", err)
	}

	return auth.NewFirebaseVerifier(cfg.FirebaseProjectID, certs)
}

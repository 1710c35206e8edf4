// cmd/crypto-toolbox-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/crypto-toolbox/internal/api/rest/v1"
	"github.com/MGTheTrain/crypto-toolbox/internal/app"
	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-toolbox/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/sethvargo/go-limiter"
	"github.com/sethvargo/go-limiter/memorystore"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Empty path runs on defaults and environment overrides only
	cfg, err := config.LoadConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := v1.ValidateDefaults(&cfg.Crypto); err != nil {
		return fmt.Errorf("invalid crypto defaults: %w", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	services, err := initializeApplicationServices(&cfg.Crypto, log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	store, err := memorystore.New(&memorystore.Config{
		Tokens:   cfg.Server.RateLimitTokens,
		Interval: cfg.Server.RateLimitInterval,
	})
	if err != nil {
		return fmt.Errorf("failed to create rate limiter: %w", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Error("Failed to close rate limiter: ", err)
		}
	}()

	return startServerWithGracefulShutdown(cfg, services, store, log)
}

type appServices struct {
	symmetric  cryptoalg.SymmetricService
	asymmetric cryptoalg.AsymmetricService
}

// initializeApplicationServices wires processors into the application services
func initializeApplicationServices(defaults *config.CryptoDefaults, log logger.Logger) (*appServices, error) {
	aesProcessor, err := cryptography.NewAESProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	keyCodec, err := cryptography.NewRSAKeyCodec(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA key codec: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	symmetricService, err := app.NewSymmetricService(aesProcessor, defaults, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create symmetric service: %w", err)
	}

	asymmetricService, err := app.NewAsymmetricService(keyCodec, rsaProcessor, defaults, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create asymmetric service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{symmetric: symmetricService, asymmetric: asymmetricService}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.AppConfig, services *appServices, store limiter.Store, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowMethods:  []string{"POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", v1.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", v1.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(v1.BodyLimit(cfg.Server.MaxRequestBodySize))

	v1.SetupRoutes(r, services.symmetric, services.asymmetric, store, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

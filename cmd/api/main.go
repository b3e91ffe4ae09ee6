package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joaoafonso2004/TWfrontbackend/internal/config"
	"github.com/joaoafonso2004/TWfrontbackend/internal/database"
	"github.com/joaoafonso2004/TWfrontbackend/internal/logger"
	"github.com/joaoafonso2004/TWfrontbackend/internal/routes"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Configure(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore := openStore(ctx, cfg)
	defer closeStore()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRouter(store, cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Str("store", cfg.StoreBackend).Msg("Server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Shutdown error")
	}
}

// openStore exits the process when MongoDB cannot be reached; requests are
// never accepted without a store.
func openStore(ctx context.Context, cfg config.Config) (routes.Store, func()) {
	if cfg.StoreBackend == "memory" {
		logger.Warn().Msg("Using in-memory store, data is lost on exit")
		return database.NewMemoryStore(), func() {}
	}

	client, err := database.ConnectMongoDB(ctx, cfg.MongoURI, cfg.Timeout)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	logger.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	return database.NewStore(client.Database(cfg.DatabaseName)), func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}
}

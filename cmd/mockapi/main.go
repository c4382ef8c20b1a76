package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexivanou/citynews/internal/apistub"
	"github.com/alexivanou/citynews/internal/config"
	"github.com/alexivanou/citynews/internal/fixtures"
	"github.com/alexivanou/citynews/internal/model"
	"github.com/alexivanou/citynews/internal/stats"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	store, err := buildStore(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load fixtures", zap.Error(err))
	}

	collector := stats.NewCollector()
	router := apistub.NewRouter(store, collector, cfg.Stub.RequireAuth, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Stub.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting mock API server",
			zap.String("port", cfg.Stub.Port),
			zap.Bool("require_auth", cfg.Stub.RequireAuth),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// buildStore loads fixture files when configured and falls back to the
// built-in samples otherwise.
func buildStore(cfg *config.Config, logger *zap.Logger) (*apistub.Store, error) {
	var cities []model.CityInfo
	var set *fixtures.ArticleSet
	var err error

	if cfg.Stub.CitiesFile != "" {
		cities, err = fixtures.ParseCities(cfg.Stub.CitiesFile)
		if err != nil {
			return nil, err
		}
		logger.Info("Loaded cities fixture", zap.Int("count", len(cities)))
	} else {
		cities = fixtures.SampleCities()
	}

	if cfg.Stub.ArticlesFile != "" {
		set, err = fixtures.ParseArticles(cfg.Stub.ArticlesFile)
		if err != nil {
			return nil, err
		}
		logger.Info("Loaded articles fixture", zap.Int("locations", len(set.Cities)))
	} else {
		set = fixtures.SampleArticles()
	}

	return apistub.NewStore(cities, set.Cities, set.Global), nil
}

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

	"golang.org/x/sync/errgroup"

	"github.com/Idkwii/Cycle-youtube-analytics/domain/repository"
	"github.com/Idkwii/Cycle-youtube-analytics/infrastructure/cache"
	youtubeclient "github.com/Idkwii/Cycle-youtube-analytics/infrastructure/clients/youtube"
	"github.com/Idkwii/Cycle-youtube-analytics/infrastructure/configuration"
	"github.com/Idkwii/Cycle-youtube-analytics/infrastructure/logger"
	"github.com/Idkwii/Cycle-youtube-analytics/infrastructure/persistence"
	httpHandler "github.com/Idkwii/Cycle-youtube-analytics/interfaces/http"
	"github.com/Idkwii/Cycle-youtube-analytics/server"
	"github.com/Idkwii/Cycle-youtube-analytics/usecase"
)

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	configuration.LoadEnvFromFile("config.env", ".env")
	configuration.Reload()
	cfg := configuration.C

	// Snapshot cache: Redis when configured, in-memory otherwise.
	var snapshotCache repository.ISnapshotCache
	if cfg.RedisClient.Host != "" {
		redisClient, err := cache.NewCache(
			ctx,
			fmt.Sprintf("%s:%s", cfg.RedisClient.Host, cfg.RedisClient.Port),
			cfg.RedisClient.Username,
			cfg.RedisClient.Password,
		)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Redis not available - using in-memory snapshot cache")
			snapshotCache = cache.NewMemorySnapshotCache()
		} else {
			logger.GetLogger().Info("Redis snapshot cache initialized")
			snapshotCache = cache.NewRedisSnapshotCache(redisClient)
		}
	} else {
		snapshotCache = cache.NewMemorySnapshotCache()
	}

	// Watchlist persistence is optional; the dashboard runs fully in memory
	// without it.
	var watchlistStore repository.IWatchlistStore
	if cfg.Database.Psql.Host != "" {
		db, err := persistence.NewPostgresDb(
			cfg.Database.Psql.Host,
			cfg.Database.Psql.Port,
			cfg.Database.Psql.User,
			cfg.Database.Psql.Password,
			cfg.Database.Psql.Name,
		)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("PostgreSQL not available - watchlist will not persist")
		} else if err := persistence.EnsureWatchlistSchema(db); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Watchlist schema setup failed - watchlist will not persist")
		} else {
			watchlistStore = persistence.NewWatchlistRepository(db)
		}
	}

	credentialSet := cfg.YouTube.APIKey != "" ||
		(cfg.YouTube.AccessToken != "" && cfg.YouTube.RefreshToken != "")
	var youtubeRepo repository.IYouTube
	if credentialSet {
		client, err := youtubeclient.NewClient(ctx, &youtubeclient.Config{
			APIKey:       cfg.YouTube.APIKey,
			ClientID:     cfg.YouTube.ClientID,
			ClientSecret: cfg.YouTube.ClientSecret,
			RedirectURL:  cfg.YouTube.RedirectURI,
			AccessToken:  cfg.YouTube.AccessToken,
			RefreshToken: cfg.YouTube.RefreshToken,
		})
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("YouTube client initialization failed")
			credentialSet = false
		} else {
			youtubeRepo = client
		}
	} else {
		logger.GetLogger().Warn("No YouTube credential configured - dashboard will render the setup state")
	}

	watchlistUseCase := usecase.NewWatchlistUseCase(youtubeRepo).
		WithStore(watchlistStore).
		WithSnapshotCache(snapshotCache)
	if watchlistStore != nil {
		folders, channels, err := watchlistStore.Load(ctx)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to load persisted watchlist")
		} else {
			watchlistUseCase.Seed(folders, channels)
			logger.GetLogger().
				WithField("folders", len(folders)).
				WithField("channels", len(channels)).
				Info("Watchlist loaded from store")
		}
	}

	// The snapshot cache is scoped per credential; OAuth-only deployments key
	// on the refresh token.
	credential := cfg.YouTube.APIKey
	if credential == "" {
		credential = cfg.YouTube.RefreshToken
	}
	aggregatorUseCase := usecase.NewAggregatorUseCase(youtubeRepo, snapshotCache, credential, usecase.Options{
		Window:      time.Duration(cfg.Dashboard.WindowDays) * 24 * time.Hour,
		MaxUploads:  int64(cfg.Dashboard.MaxUploads),
		CacheTTL:    time.Duration(cfg.Dashboard.CacheTTLSeconds) * time.Second,
		Concurrency: cfg.Dashboard.FetchConcurrency,
	})
	dashboardUseCase := usecase.NewDashboardUseCase(watchlistUseCase, aggregatorUseCase, credentialSet, cfg.Dashboard.TopChannels)

	watchlistHandler := httpHandler.NewWatchlistHandler(watchlistUseCase)
	dashboardHandler := httpHandler.NewDashboardHandler(dashboardUseCase)

	router := server.InitiateRouter(watchlistHandler, dashboardHandler, cfg.App.CORSOrigins)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.GetLogger().WithField("port", cfg.App.Port).Info("Cycle YouTube Analytics listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		select {
		case <-interrupt:
			logger.GetLogger().Info("Shutdown signal received")
		case <-ctx.Done():
		}
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server terminated with error")
	}
}

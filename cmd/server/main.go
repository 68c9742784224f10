package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/jackc/pgx/v5/stdlib"

	"ev-charge-planner/internal/adapters/cache"
	"ev-charge-planner/internal/adapters/chargers"
	"ev-charge-planner/internal/adapters/directions"
	"ev-charge-planner/internal/adapters/repositories"
	"ev-charge-planner/internal/api"
	"ev-charge-planner/internal/config"
	"ev-charge-planner/internal/platform/db"
	"ev-charge-planner/internal/ports"
)

// main is the application composition root. It wires concrete adapters
// (Postgres, Redis, Google Directions, Open Charge Map) behind ports and
// starts the HTTP server.
func main() {
	cfg := config.Load()

	logger := initLogger(cfg.Debug)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if strings.TrimSpace(cfg.DirectionsAPIKey) == "" {
		logger.Fatal("DIRECTIONS_API_KEY is required")
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()

	pool, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := repositories.InitSchema(pool); err != nil {
		logger.Fatal("init schema", zap.Error(err))
	}

	routeProvider, err := directions.NewGoogleRouteProvider(cfg.DirectionsAPIKey)
	if err != nil {
		logger.Fatal("build route provider", zap.Error(err))
	}

	directory := chargers.NewOCMDirectory(cfg.OCMAPIKey)

	// The station cache is optional: without Redis every corridor query
	// goes straight to the directory.
	var stationCache ports.StationCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		stationCache = cache.NewRedisStationCache(client, cfg.StationCacheTTL)
		logger.Info("station cache enabled", zap.String("addr", cfg.RedisAddr))
	}

	planRepo := repositories.NewPostgresPlanRepository(pool)

	router := api.NewRouter(routeProvider, directory, stationCache, planRepo, cfg.PlanListLimit)

	// Write timeout covers cold-cache planning: route lookup plus up to a
	// dozen sequential directory queries.
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}

func initLogger(debug bool) *zap.Logger {
	var zcfg zap.Config
	if debug {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zcfg = zap.NewProductionConfig()
	}

	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mitsuha/legacy-api/internal/config"
	"github.com/mitsuha/legacy-api/internal/handlers"
	"github.com/mitsuha/legacy-api/internal/logic"
	"github.com/mitsuha/legacy-api/internal/store"
	"github.com/mitsuha/legacy-api/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// The store scans DATETIME columns into time.Time.
	dsn := cfg.MySQLDSN
	if !strings.Contains(dsn, "parseTime") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "parseTime=true"
	}

	db, err := store.New(dsn, cfg.QueryTimeout, logger)
	if err != nil {
		logger.Fatal("opening mysql", zap.Error(err))
	}
	defer db.Close()

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Fatal("parsing redis url", zap.Error(err))
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	// One limiter shared across all upstream calls, injected rather than
	// global so tests can substitute their own.
	limiter := rate.NewLimiter(rate.Limit(cfg.UpstreamRPS), cfg.UpstreamBurst)
	upstreamClient, err := upstream.New(upstream.Config{
		BaseURL:     cfg.UpstreamBaseURL,
		Timeout:     cfg.UpstreamTimeout,
		InsecureTLS: cfg.UpstreamInsecureTLS,
	}, limiter, logger)
	if err != nil {
		logger.Fatal("building upstream client", zap.Error(err))
	}

	h := handlers.New(handlers.Config{
		Store:          db,
		Identity:       logic.NewIdentityService(db, logger),
		Ranks:          logic.NewRankService(rdb, logger),
		Scores:         logic.NewScoreService(db, logger),
		Upstream:       upstreamClient,
		Logger:         logger,
		AvatarBaseURL:  cfg.AvatarBaseURL,
		RequireAPIKey:  cfg.RequireAPIKey,
		AllowedOrigins: cfg.AllowedOrigins,
		StoreHealth:    db.Ping,
		RedisHealth: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		},
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.Int("port", cfg.Port), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

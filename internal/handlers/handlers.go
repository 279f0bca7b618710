package handlers

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mitsuha/legacy-api/internal/logic"
)

type Config struct {
	Store    logic.Store
	Identity logic.IdentityService
	Ranks    logic.RankService
	Scores   logic.ScoreService
	Upstream logic.UpstreamAPI
	Logger   *zap.Logger

	AvatarBaseURL  string
	RequireAPIKey  bool
	AllowedOrigins []string

	// Readiness probes; nil checks are skipped.
	StoreHealth func(context.Context) error
	RedisHealth func(context.Context) error
}

type Handler struct {
	store    logic.Store
	identity logic.IdentityService
	ranks    logic.RankService
	scores   logic.ScoreService
	upstream logic.UpstreamAPI
	logger   *zap.SugaredLogger
	validate *validator.Validate

	avatarBaseURL  string
	requireAPIKey  bool
	allowedOrigins []string

	storeHealth func(context.Context) error
	redisHealth func(context.Context) error
}

func New(cfg Config) *Handler {
	return &Handler{
		store:          cfg.Store,
		identity:       cfg.Identity,
		ranks:          cfg.Ranks,
		scores:         cfg.Scores,
		upstream:       cfg.Upstream,
		logger:         cfg.Logger.Sugar(),
		validate:       validator.New(),
		avatarBaseURL:  cfg.AvatarBaseURL,
		requireAPIKey:  cfg.RequireAPIKey,
		allowedOrigins: cfg.AllowedOrigins,
		storeHealth:    cfg.StoreHealth,
		redisHealth:    cfg.RedisHealth,
	}
}

// Router assembles the full HTTP surface: the v1 query-parameter API, the
// v2 path-parameter API, and the infra endpoints.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(h.RequestIDMiddleware)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.APIKeyMiddleware)
		r.Get("/get_user", h.V1GetUser)
		r.Get("/get_scores", h.V1GetScores)
		r.Get("/get_user_best", h.V1GetUserBest)
		r.Get("/get_user_recent", h.V1GetUserRecent)
		r.Get("/get_replay", h.V1GetReplay)
	})

	r.Route("/api/v2", func(r chi.Router) {
		r.Get("/users/{user}", h.V2GetUser)
		r.Get("/users/{user}/{mode}", h.V2GetUser)
	})

	return r
}

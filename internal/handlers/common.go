package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "legacy_api_http_requests_total",
	Help: "Total number of HTTP requests by route",
}, []string{"route"})

// errAPIKey is the fixed rejection body of the api-key gate.
const errAPIKey = "Please provide a valid API key."

type contextKey string

const requestIDKey contextKey = "request_id"

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	checks := map[string]bool{}
	if h.storeHealth != nil {
		checks["mysql"] = h.storeHealth(ctx) == nil
	}
	if h.redisHealth != nil {
		checks["redis"] = h.redisHealth(ctx) == nil
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	status := http.StatusOK
	if !allHealthy {
		status = http.StatusServiceUnavailable
	}
	h.jsonResponse(w, status, map[string]interface{}{
		"ready":  allHealthy,
		"checks": checks,
	})
}

// RequestIDMiddleware tags every request with an id for log correlation.
func (h *Handler) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		httpRequests.WithLabelValues(r.URL.Path).Inc()
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// APIKeyMiddleware rejects v1 requests whose `k` parameter does not match
// any stored key. The check is pure existence; there are no scopes or
// sessions. Deployments may disable the requirement entirely.
func (h *Handler) APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.requireAPIKey {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.Query().Get("k")
		valid := false
		if key != "" {
			ok, err := h.store.APIKeyExists(r.Context(), key)
			if err != nil {
				h.logger.Errorw("api key lookup failed", "error", err)
			}
			valid = err == nil && ok
		}

		if !valid {
			h.errorResponse(w, http.StatusUnauthorized, errAPIKey)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// emptyList renders the v1 miss body: a bare empty array.
func (h *Handler) emptyList(w http.ResponseWriter) {
	h.jsonResponse(w, http.StatusOK, []struct{}{})
}

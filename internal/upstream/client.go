// Package upstream implements the client for the remote bancho.py-style
// statistics API. All calls share one injected token-bucket limiter: excess
// calls queue behind Wait rather than being rejected, so concurrent
// requests can observe delay caused by each other's upstream traffic.
// Failed calls are never retried; the failure surfaces to the handler.
package upstream

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mitsuha/legacy-api/internal/models"
)

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legacy_api_upstream_requests_total",
		Help: "Total number of upstream stats API requests",
	}, []string{"endpoint"})

	upstreamFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legacy_api_upstream_failures_total",
		Help: "Total number of failed upstream stats API requests",
	}, []string{"endpoint"})

	upstreamLimiterWait = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "legacy_api_upstream_limiter_wait_seconds",
		Help:    "Time spent queued behind the upstream rate limiter",
		Buckets: prometheus.DefBuckets,
	})
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	// InsecureTLS disables certificate verification toward the upstream.
	// Verification is on by default; this exists only for deployments
	// where the upstream serves a self-signed certificate.
	InsecureTLS bool
}

type Client struct {
	base    *url.URL
	http    *http.Client
	limiter *rate.Limiter
	logger  *zap.SugaredLogger
}

// New builds a client around an injected limiter so tests can substitute a
// deterministic or unlimited one.
func New(cfg Config, limiter *rate.Limiter, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse upstream base url: %w", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		logger.Warn("upstream TLS certificate verification is disabled")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		base: base,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		limiter: limiter,
		logger:  logger.Sugar(),
	}, nil
}

// PlayerStats fetches a player's per-mode statistics, including the
// upstream's own rank fields.
func (c *Client) PlayerStats(ctx context.Context, id int) (*models.UpstreamPlayerInfo, error) {
	var out models.UpstreamPlayerInfo
	q := url.Values{"id": {strconv.Itoa(id)}, "scope": {"stats"}}
	if err := c.getJSON(ctx, "/get_player_info", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlayerScores fetches a player's scores for the given scope
// ("recent"/"best"), mode and limit.
func (c *Client) PlayerScores(ctx context.Context, id int, scope string, mode, limit int) (*models.UpstreamPlayerScores, error) {
	var out models.UpstreamPlayerScores
	q := url.Values{
		"id":    {strconv.Itoa(id)},
		"scope": {scope},
		"mode":  {strconv.Itoa(mode)},
		"limit": {strconv.Itoa(limit)},
	}
	if err := c.getJSON(ctx, "/get_player_scores", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReplayBytes fetches the raw replay container for a score.
func (c *Client) ReplayBytes(ctx context.Context, scoreID int64) ([]byte, error) {
	body, err := c.get(ctx, "/get_replay",
		url.Values{"id": {strconv.FormatInt(scoreID, 10)}}, "application/octet-stream")
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}

func (c *Client) getJSON(ctx context.Context, endpoint string, q url.Values, out any) error {
	body, err := c.get(ctx, endpoint, q, "application/json")
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(out); err != nil {
		upstreamFailures.WithLabelValues(endpoint).Inc()
		return fmt.Errorf("decode upstream response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values, accept string) (io.ReadCloser, error) {
	start := time.Now()
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	upstreamLimiterWait.Observe(time.Since(start).Seconds())

	u := c.base.JoinPath(endpoint)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)

	upstreamRequests.WithLabelValues(endpoint).Inc()
	resp, err := c.http.Do(req)
	if err != nil {
		upstreamFailures.WithLabelValues(endpoint).Inc()
		c.logger.Errorw("upstream request failed", "endpoint", endpoint, "error", err)
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		upstreamFailures.WithLabelValues(endpoint).Inc()
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

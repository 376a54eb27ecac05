// Package web provides the read-only JSON API over the reporting tables.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/JonMunkholm/wfm/internal/config"
	"github.com/JonMunkholm/wfm/internal/core"
	"github.com/JonMunkholm/wfm/internal/metrics"
	mw "github.com/JonMunkholm/wfm/internal/web/middleware"
)

// Server is the HTTP server for the reporting API.
type Server struct {
	service *core.Service
	cfg     *config.Config
	router  *chi.Mux
	server  *http.Server
	limiter *rateLimiter
}

// NewServer creates a new Server instance.
func NewServer(service *core.Service, cfg *config.Config) *Server {
	s := &Server{
		service: service,
		cfg:     cfg,
		router:  chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(mw.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(mw.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(chimw.Timeout(s.cfg.Server.RequestTimeout))
	s.router.Use(securityHeaders(s.cfg.Security.EnableCSP))

	if s.cfg.Rate.Enabled {
		s.limiter = newRateLimiter(s.cfg.Rate.RequestsPerMinute, time.Minute)
		s.router.Use(s.limiter.middleware)
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	if s.cfg.Metrics.Enabled {
		s.router.Handle("/metrics", metrics.Handler())
	}

	s.router.Route("/api", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(s.cfg.Security))

		r.Get("/tables", s.handleListTables)
		r.Get("/import_runs", s.handleImportRuns)

		// Views over productivity_emp and soho_monitoring.
		r.Get("/productivity_grouped", s.handleProductivityGrouped)
		r.Get("/productivity_teams", s.handleDistinct(core.EmployeesTable, "team_name"))
		r.Get("/productivity_managers", s.handleDistinct(core.EmployeesTable, "team_lead_by"))
		r.Get("/soho_monitors", s.handleDistinct("soho_monitoring", "monitor"))

		r.Get("/{table}", s.handleTable)
	})
}

// Start begins listening for HTTP requests on the configured address.
func (s *Server) Start() error {
	sc := s.cfg.Server
	s.server = &http.Server{
		Addr:         sc.Addr(),
		Handler:      s.router,
		ReadTimeout:  sc.ReadTimeout,
		WriteTimeout: sc.WriteTimeout,
		IdleTimeout:  sc.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server and the limiter's sweeper.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.limiter != nil {
		s.limiter.stop()
	}
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(csp bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Cache-Control", "no-store")
			if csp {
				// JSON only; nothing here should ever be rendered as a page.
				h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
			}
			next.ServeHTTP(w, r)
		})
	}
}

// rateLimiter is a fixed-window token bucket per client IP.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     int
	window   time.Duration
	done     chan struct{}
	once     sync.Once
}

type visitor struct {
	tokens    int
	lastReset time.Time
}

func newRateLimiter(rate int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		window:   window,
		done:     make(chan struct{}),
	}
	go rl.sweep()
	return rl
}

// sweep drops visitors idle for two windows until stop is called.
func (rl *rateLimiter) sweep() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for {
		select {
		case <-rl.done:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for ip, v := range rl.visitors {
				if now.Sub(v.lastReset) > 2*rl.window {
					delete(rl.visitors, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func (rl *rateLimiter) stop() {
	rl.once.Do(func() { close(rl.done) })
}

// allow consumes a token for ip, refilling the bucket once its window has passed.
func (rl *rateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok || now.Sub(v.lastReset) > rl.window {
		rl.visitors[ip] = &visitor{tokens: rl.rate - 1, lastReset: now}
		return true
	}
	if v.tokens <= 0 {
		return false
	}
	v.tokens--
	return true
}

func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r), time.Now()) {
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded", "RATE001")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from RemoteAddr, which TrustedRealIP has
// already rewritten for trusted proxies.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}

/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. RealIP:     Client address behind proxies (used by the rate limiter)
  3. Logger:     One logrus entry per request
  4. Recoverer:  Panic recovery (500 instead of crash)
  5. Timeout:    Request deadline
  6. Secure:     Security headers (unrolled/secure)
  7. RateLimit:  Per-IP request budget (httprate)
  8. CORS:       Cross-origin requests for a browser frontend

ROUTE GROUPS:
  /api/calculations   Leave calculations
  /api/agreement      Agreement constants
  /healthz            Liveness

SEE ALSO:
  - handlers.go: Handler implementations
  - middleware.go: Logging and security middleware
  - cmd/server/main.go: Server startup
*/
package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// RouterOptions tunes the middleware stack.
type RouterOptions struct {
	AllowedOrigins     []string
	RateLimitPerMinute int
	RequestTimeout     time.Duration
	Production         bool
}

func (o RouterOptions) withDefaults() RouterOptions {
	if len(o.AllowedOrigins) == 0 {
		o.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}
	}
	if o.RateLimitPerMinute <= 0 {
		o.RateLimitPerMinute = 60
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = 30 * time.Second
	}
	return o
}

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, opts RouterOptions) *chi.Mux {
	opts = opts.withDefaults()
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(opts.RequestTimeout))
	r.Use(secureHeaders(h.Logger, opts.Production))
	r.Use(httprate.Limit(opts.RateLimitPerMinute, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Get("/healthz", h.Health)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/calculations", func(r chi.Router) {
			r.Get("/", h.GetCalculation)
			r.Post("/", h.CreateCalculation)
		})
		r.Get("/agreement", h.GetAgreement)
	})

	return r
}

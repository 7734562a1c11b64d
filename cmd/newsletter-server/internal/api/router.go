package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/SergoGansta777/email-newsletter/cmd/newsletter-server/internal/metrics"
)

// RequestLogger receives one structured entry per HTTP request.
type RequestLogger interface {
	Infow(msg string, keysAndValues ...interface{})
}

// RouterConfig collects what NewRouter wires together.
type RouterConfig struct {
	Handler        *Handler
	Metrics        *metrics.Metrics // optional; enables GET /metrics
	Logger         RequestLogger    // optional
	AllowedOrigins []string         // optional; enables CORS for browser forms
}

// NewRouter builds the chi router:
//
//	POST /subscriptions
//	GET  /health_check
//	GET  /metrics
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(requestLogging(cfg.Logger, cfg.Metrics))

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Post("/subscriptions", cfg.Handler.HandleSubscribe)
	r.Get("/health_check", cfg.Handler.HandleHealth)

	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	return r
}

func requestLogging(logger RequestLogger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			if m != nil {
				m.ObserveHTTP(route, strconv.Itoa(status))
			}
			if logger != nil {
				logger.Infow("http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", status,
					"duration", time.Since(start),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}
		})
	}
}

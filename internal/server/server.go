package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"senacheck/internal/handler"
	"senacheck/internal/logger"
	"senacheck/internal/metrics"
	"senacheck/internal/session"
	"senacheck/internal/sse"
	"senacheck/web"
)

// MaxRequestBodyBytes caps request bodies. Selection and filter payloads
// are tiny; anything near the cap is junk.
const MaxRequestBodyBytes = 1 << 20

type Server struct {
	httpServer     *http.Server
	sessionService session.Service
}

// NewServer creates a new Server instance with all routes and middleware wired.
func NewServer(port int, apiKey string, trustedProxies []string, sessionService session.Service, hub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(sessionService))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		sessionHandler := handler.NewSessionHandler(sessionService)

		r.Get("/session", sessionHandler.GetSession)
		r.Get("/games", sessionHandler.GetGames)

		r.Route("/selection", func(r chi.Router) {
			r.Post("/toggle", sessionHandler.ToggleNumber)
			r.Post("/clear", sessionHandler.ClearSelection)
		})

		r.Post("/filter", sessionHandler.SetFilter)

		// Live session stream
		r.Get("/events", sse.Handler(hub))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Embedded web UI (catch-all, most specific routes win)
	r.Handle("/*", web.Handler())

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		sessionService: sessionService,
	}
}

// unloggedPathPrefixes lists probe endpoints whose requests would drown
// the log without telling anyone anything.
var unloggedPathPrefixes = []string{"/healthz", "/readyz", "/metrics"}

func isUnloggedPath(path string) bool {
	for _, prefix := range unloggedPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// statusRecorder captures the response status for the completion log.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (rec *statusRecorder) WriteHeader(status int) {
	if rec.wroteHeader {
		return
	}
	rec.status = status
	rec.wroteHeader = true
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if !rec.wroteHeader {
		rec.WriteHeader(http.StatusOK)
	}
	return rec.ResponseWriter.Write(b)
}

// Flush passes through so the event stream keeps flushing when wrapped.
func (rec *statusRecorder) Flush() {
	if f, ok := rec.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// redactHeaders copies request headers with credential values masked.
func redactHeaders(headers http.Header) http.Header {
	sanitized := make(http.Header, len(headers))
	for name, values := range headers {
		if strings.EqualFold(name, HeaderAPIKey) || strings.EqualFold(name, HeaderAuthorization) {
			sanitized[name] = []string{RedactedValue}
			continue
		}
		sanitized[name] = values
	}
	return sanitized
}

// loggingMiddleware gives every request a scoped logger with a request
// ID and writes start and completion lines around the handler.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isUnloggedPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

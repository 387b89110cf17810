// Package httpserver provides the HTTP server for gitops-demo.
package httpserver

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/gitops-demo/internal/server/httpserver/handler"
	"github.com/yndnr/gitops-demo/internal/telemetry/logger"
	"github.com/yndnr/gitops-demo/internal/telemetry/metric"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// Middleware wraps an http.Handler with additional functionality.
type Middleware func(http.Handler) http.Handler

// Chain chains multiple middlewares together. The first middleware is the
// outermost.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// RequestID adds a unique request ID to each request and installs log,
// tagged through logger.L, as the request-scoped logger.
func RequestID(log logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = "req-" + ulid.Make().String()
			}

			w.Header().Set(HeaderRequestID, requestID)

			ctx := logger.WithRequestID(r.Context(), requestID)
			if log != nil {
				ctx = logger.WithLogger(ctx, log)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RateLimitConfig configures the per-client rate limiter.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per client IP; it is also the burst.
	RequestsPerSecond int

	// SkipPaths are never limited (probes, metrics).
	SkipPaths []string

	// Metrics, if set, counts rejected requests.
	Metrics *metric.Registry

	// IdleTTL is how long an unused client limiter is kept. Zero means 3m.
	IdleTTL time.Duration

	// TrustProxy keys clients by X-Forwarded-For / X-Real-IP instead of the
	// connection address. Only enable behind a proxy that overwrites them.
	TrustProxy bool
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterRegistry hands out one token bucket per client IP.
type limiterRegistry struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
}

func newLimiterRegistry(rps int, idleTTL time.Duration) *limiterRegistry {
	if idleTTL <= 0 {
		idleTTL = 3 * time.Minute
	}
	return &limiterRegistry{
		clients:   make(map[string]*clientLimiter),
		limit:     rate.Limit(rps),
		burst:     rps,
		idleTTL:   idleTTL,
		lastSweep: time.Now(),
	}
}

func (l *limiterRegistry) get(ip string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > l.idleTTL {
		for k, c := range l.clients {
			if now.Sub(c.lastSeen) > l.idleTTL {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	c, ok := l.clients[ip]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter
}

func (l *limiterRegistry) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// RateLimit applies per-IP token bucket limiting. A non-positive rate
// disables the middleware.
func RateLimit(cfg RateLimitConfig) Middleware {
	if cfg.RequestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiters := newLimiterRegistry(cfg.RequestsPerSecond, cfg.IdleTTL)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range cfg.SkipPaths {
				if r.URL.Path == p {
					next.ServeHTTP(w, r)
					return
				}
			}

			if !limiters.get(getClientIP(r, cfg.TrustProxy), time.Now()).Allow() {
				if cfg.Metrics != nil {
					cfg.Metrics.IncRateLimited()
				}
				w.Header().Set("Retry-After", "1")
				handler.WriteError(w, http.StatusTooManyRequests, handler.CodeRateLimited, "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Audit logs one line per completed request through the request-scoped
// logger.
func Audit(trustProxy bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := newResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.statusCode,
				"duration_ms", time.Since(start).Milliseconds(),
				"client_ip", getClientIP(r, trustProxy),
			}

			l := logger.L(r.Context())

			switch {
			case wrapped.statusCode >= 500:
				l.Error("request completed with error", attrs...)
			case wrapped.statusCode >= 400:
				l.Warn("request completed with client error", attrs...)
			default:
				l.Info("request completed", attrs...)
			}
		})
	}
}

// Metrics records request count and latency by matched route pattern.
func Metrics(reg *metric.Registry) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := newResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			// ServeMux fills r.Pattern on the request it was handed.
			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			reg.RecordRequest(r.Method, route, strconv.Itoa(wrapped.statusCode), time.Since(start).Seconds())
		})
	}
}

// Recover recovers from panics and returns 500 error. It sits outside
// RequestID, so the request ID is read back from the response header.
func Recover(log logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					log.Error("panic recovered",
						"request_id", w.Header().Get(HeaderRequestID),
						"error", err,
						"path", r.URL.Path,
					)
					handler.WriteError(w, http.StatusInternalServerError, handler.CodeInternal, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// CORS adds Cross-Origin Resource Sharing headers for allowed origins.
func CORS(allowedOrigins []string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			allowed := false
			for _, o := range allowedOrigins {
				if o == "*" || o == origin {
					allowed = true
					break
				}
			}

			if allowed && origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
				w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")
				w.Header().Set("Access-Control-Max-Age", "86400")
				w.Header().Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (w *responseWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.statusCode = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// getClientIP extracts the client IP from the request. Forwarding headers
// are client controlled and only honoured when trustProxy is set.
func getClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			parts := strings.Split(xff, ",")
			return strings.TrimSpace(parts[0])
		}

		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return xri
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"senacheck/internal/logger"
)

// Rate limiting and alerting thresholds, applied per client IP.
const (
	// RateLimitWindow is the sliding reset window for per-IP counters.
	RateLimitWindow = 5 * time.Minute

	// RateLimitMaxRequests is the per-IP request budget within one window.
	RateLimitMaxRequests = 1000

	// FailedAuthAlertThreshold is how many failed auth attempts from one
	// IP trigger a security alert.
	FailedAuthAlertThreshold = 5

	// rateLimitLogEvery throttles the blocked-request alert so a flood
	// does not also flood the logs.
	rateLimitLogEvery = 100
)

// AuthMiddleware validates the API key on mutating endpoints. An empty key
// disables authentication entirely; the checker then runs as an open local
// tool.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// The UI, documentation, health checks and read-only session
			// endpoints stay open; only mutations need the key.
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if !keyMatches(provided, apiKey) {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", provided != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// keyMatches compares keys in constant time to avoid a timing oracle.
func keyMatches(provided, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) == 1
}

// isPublicPath reports whether a path bypasses authentication.
// The UI root matches exactly; everything else matches by prefix.
func isPublicPath(path string) bool {
	for _, exact := range PublicPathsExact {
		if path == exact {
			return true
		}
	}
	for _, prefix := range PublicPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware caps request body size. Selection and filter
// payloads are a few dozen bytes, so the cap mostly guards against junk.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector keeps per-IP request and failed-auth counts
// over a sliding window, for rate limiting and alerting.
type SuspiciousActivityDetector struct {
	mu           sync.Mutex
	requests     map[string]int
	authFailures map[string]int
	windowStart  time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		requests:     make(map[string]int),
		authFailures: make(map[string]int),
		windowStart:  time.Now(),
	}
}

// RecordRequest counts a request against the IP's budget and reports
// whether it is still within the limit.
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	s.requests[ip]++

	count := s.requests[ip]
	if count <= RateLimitMaxRequests {
		return true
	}

	if count%rateLimitLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
	}
	return false
}

// RecordFailedAuth counts a failed authentication attempt and alerts
// once the IP crosses the threshold.
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollWindow()
	s.authFailures[ip]++

	if s.authFailures[ip] >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", s.authFailures[ip])
	}
}

// rollWindow discards all counters once the window has elapsed.
// Caller must hold the mutex.
func (s *SuspiciousActivityDetector) rollWindow() {
	if time.Since(s.windowStart) <= RateLimitWindow {
		return
	}
	s.requests = make(map[string]int)
	s.authFailures = make(map[string]int)
	s.windowStart = time.Now()
}

// SecurityLoggingMiddleware enforces the per-IP rate limit before the
// request reaches any handler.
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)

			if !detector.RecordRequest(ip) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client IP. X-Forwarded-For is honored only when
// the direct peer is a trusted proxy; otherwise any client could spoof
// its way around the per-IP limits.
func extractIP(r *http.Request, trustedProxies []string) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}

	if !isTrustedProxy(peer, trustedProxies) {
		return peer
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return peer
	}

	// X-Forwarded-For lists client, proxy1, proxy2. The rightmost entry
	// is the hop our trusted proxy saw, which is the only one it can
	// vouch for.
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

func isTrustedProxy(peer string, trustedProxies []string) bool {
	for _, proxy := range trustedProxies {
		if proxy == peer {
			return true
		}
	}
	return false
}

// securityHeaders are applied to every response, UI and API alike.
var securityHeaders = [][2]string{
	{HeaderContentType, HeaderValueNoSniff},
	{HeaderFrameOptions, HeaderValueSameOrigin},
	{HeaderXSSProtection, HeaderValueXSSBlock},
	{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
}

// SecurityHeadersMiddleware adds the standard security headers.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, header := range securityHeaders {
				w.Header().Set(header[0], header[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}

package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/DiceBot_Go/internal/logger"
)

func isPublic(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// AuthMiddleware requires the X-API-Key header on every non-public path
func AuthMiddleware(apiKey string, trustedProxies []string, monitor *ActivityMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				ip := clientIP(r, trustedProxies)
				monitor.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
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

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ActivityMonitor counts requests and failed logins per client IP over a
// fixed window. Histogram requests are CPU heavy, so the request limit is
// enforced rather than just logged.
type ActivityMonitor struct {
	Window          time.Duration
	FailedAuthAlert int
	RequestLimit    int

	mu          sync.Mutex
	now         func() time.Time
	windowStart time.Time
	failedAuth  map[string]int
	requests    map[string]int
}

// NewActivityMonitor returns a monitor with the default window and limits
func NewActivityMonitor() *ActivityMonitor {
	return &ActivityMonitor{
		Window:          DefaultMonitorWindow,
		FailedAuthAlert: DefaultFailedAuthAlert,
		RequestLimit:    DefaultRequestLimit,
		now:             time.Now,
		windowStart:     time.Now(),
		failedAuth:      make(map[string]int),
		requests:        make(map[string]int),
	}
}

// RecordFailedAuth counts a failed authentication and alerts past the threshold
func (m *ActivityMonitor) RecordFailedAuth(ip string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollWindow()
	m.failedAuth[ip]++
	if n := m.failedAuth[ip]; n >= m.FailedAuthAlert {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
}

// Allow counts a request and reports whether ip is still under the limit
func (m *ActivityMonitor) Allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollWindow()
	m.requests[ip]++
	n := m.requests[ip]
	if n <= m.RequestLimit {
		return true
	}
	// one alert per hundred rejected requests
	if (n-m.RequestLimit)%100 == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
	}
	return false
}

// Requests returns the count for ip in the current window
func (m *ActivityMonitor) Requests(ip string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[ip]
}

// rollWindow must be called with mu held
func (m *ActivityMonitor) rollWindow() {
	if now := m.now(); now.Sub(m.windowStart) > m.Window {
		clear(m.requests)
		clear(m.failedAuth)
		m.windowStart = now
	}
}

// RateLimitMiddleware rejects clients that exceed the monitor's request limit
func RateLimitMiddleware(trustedProxies []string, monitor *ActivityMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !monitor.Allow(clientIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the peer address, or the last X-Forwarded-For hop when the
// peer is a trusted proxy
func clientIP(r *http.Request, trustedProxies []string) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}

	if slices.Contains(trustedProxies, remote) {
		if fwd := r.Header.Get(HeaderForwardedFor); fwd != "" {
			hops := strings.Split(fwd, ",")
			return strings.TrimSpace(hops[len(hops)-1])
		}
	}
	return remote
}

// SecurityHeadersMiddleware adds security headers to responses. The API only
// serves JSON and CSV, so nothing may be framed or load subresources. The
// swagger UI may load its own scripts and styles.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			if strings.HasPrefix(r.URL.Path, SwaggerPathPrefix) {
				h.Set(HeaderCSP, HeaderValueCSPSwagger)
			} else {
				h.Set(HeaderCSP, HeaderValueCSPNone)
			}
			next.ServeHTTP(w, r)
		})
	}
}

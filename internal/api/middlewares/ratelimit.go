package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/trends/trends_api/internal/errlocal"
	"golang.org/x/time/rate"
)

const (
	defaultMaxEntries = 10000
	idleTTL           = 10 * time.Minute
)

// IPRateLimiter keeps one token bucket per client IP.
type IPRateLimiter struct {
	mu         sync.Mutex
	limiters   map[string]*limiterEntry
	rate       rate.Limit
	burst      int
	maxEntries int
	now        func() time.Time
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &IPRateLimiter{
		limiters:   make(map[string]*limiterEntry),
		rate:       rate.Limit(rps),
		burst:      burst,
		maxEntries: defaultMaxEntries,
		now:        time.Now,
	}
}

func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.limiters[ip]
	if !ok {
		if len(l.limiters) >= l.maxEntries {
			l.evictIdle(now)
		}
		entry = &limiterEntry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastAccess = now

	return entry.limiter.AllowN(now, 1)
}

// evictIdle drops idle entries, or the oldest one if none are idle.
// Caller holds l.mu.
func (l *IPRateLimiter) evictIdle(now time.Time) {
	var oldestIP string
	var oldest time.Time
	for ip, entry := range l.limiters {
		if now.Sub(entry.lastAccess) > idleTTL {
			delete(l.limiters, ip)
			continue
		}
		if oldestIP == "" || entry.lastAccess.Before(oldest) {
			oldestIP, oldest = ip, entry.lastAccess
		}
	}
	if len(l.limiters) >= l.maxEntries && oldestIP != "" {
		delete(l.limiters, oldestIP)
	}
}

func (l *IPRateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// RateLimit rejects requests over the per-IP budget with ErrTooManyRequests.
func RateLimit(l *IPRateLimiter, writeError func(http.ResponseWriter, *http.Request, error)) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(clientIP(r)) {
				writeError(w, r, errlocal.NewErrTooManyRequests("rate limit exceeded"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

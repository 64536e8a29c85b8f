package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/winthrop-intelligence/phone-wrangler/pkg/logger"
)

// KeyFunc picks the bucket a request is counted against.
type KeyFunc func(r *http.Request) string

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// ClientRateLimiter keeps one token bucket per client key. Buckets idle for
// longer than the cleanup interval are dropped.
type ClientRateLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
	keyFunc  KeyFunc
	rejected prometheus.Counter
	log      *logger.Logger
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewClientRateLimiter allows rps requests per second per client with the
// given burst. rejected may be nil.
func NewClientRateLimiter(rps float64, burst int, keyFunc KeyFunc, rejected prometheus.Counter, log *logger.Logger) *ClientRateLimiter {
	if keyFunc == nil {
		keyFunc = ClientIP
	}
	rl := &ClientRateLimiter{
		rate:     rate.Limit(rps),
		burst:    burst,
		keyFunc:  keyFunc,
		rejected: rejected,
		log:      log,
		stopCh:   make(chan struct{}),
	}

	go rl.cleanup(10 * time.Minute)

	return rl
}

func (rl *ClientRateLimiter) getLimiter(key string) *rate.Limiter {
	v, _ := rl.limiters.LoadOrStore(key, &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)})
	cl := v.(*clientLimiter)
	cl.lastSeen.Store(time.Now().UnixNano())
	return cl.limiter
}

func (rl *ClientRateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

func (rl *ClientRateLimiter) cleanup(idle time.Duration) {
	ticker := time.NewTicker(idle)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-idle).UnixNano()
			rl.limiters.Range(func(key, v any) bool {
				if v.(*clientLimiter).lastSeen.Load() < cutoff {
					rl.limiters.Delete(key)
				}
				return true
			})
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *ClientRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

func RateLimit(rl *ClientRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := rl.keyFunc(r)

			if !rl.Allow(key) {
				if rl.rejected != nil {
					rl.rejected.Inc()
				}
				rl.log.Warn("Rate limit exceeded",
					"request_id", RequestIDFromContext(r.Context()),
					"client", key,
					"path", r.URL.Path,
				)
				writeError(w, http.StatusTooManyRequests, codeRateLimited, "Rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP keys requests by the first X-Forwarded-For hop, falling back to
// the connection's remote host.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

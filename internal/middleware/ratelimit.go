package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Ibrakam/PartyLand/internal/domain"
)

// RateLimiterConfig configures a token bucket rate limiter.
type RateLimiterConfig struct {
	// RequestsPerSecond is the token refill rate.
	RequestsPerSecond float64

	// BurstSize is the bucket capacity.
	BurstSize int

	// CleanupInterval is how often idle buckets are dropped.
	CleanupInterval time.Duration

	// KeyFunc extracts the rate limit key. Default: client IP.
	KeyFunc func(r *http.Request) string
}

// DefaultRateLimiterConfig suits the general API surface.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
		CleanupInterval:   time.Minute,
		KeyFunc:           GetClientIP,
	}
}

// StrictRateLimiterConfig suits checkout submission and admin login.
func StrictRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		RequestsPerSecond: 1,
		BurstSize:         5,
		CleanupInterval:   time.Minute,
		KeyFunc:           GetClientIP,
	}
}

type tokenBucket struct {
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

// RateLimiter is an in-memory per-key token bucket limiter.
type RateLimiter struct {
	config  RateLimiterConfig
	buckets map[string]*tokenBucket
	mu      sync.RWMutex
	stop    chan struct{}
}

func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = GetClientIP
	}

	rl := &RateLimiter{
		config:  config,
		buckets: make(map[string]*tokenBucket),
		stop:    make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// Allow reports whether a request under key may proceed, consuming a token
// if so.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	bucket, exists := rl.buckets[key]
	if !exists {
		bucket = &tokenBucket{
			tokens:     float64(rl.config.BurstSize),
			lastRefill: time.Now(),
		}
		rl.buckets[key] = bucket
	}
	rl.mu.Unlock()

	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	now := time.Now()
	bucket.tokens += now.Sub(bucket.lastRefill).Seconds() * rl.config.RequestsPerSecond
	if bucket.tokens > float64(rl.config.BurstSize) {
		bucket.tokens = float64(rl.config.BurstSize)
	}
	bucket.lastRefill = now

	if bucket.tokens >= 1 {
		bucket.tokens--
		return true
	}
	return false
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			now := time.Now()
			for key, bucket := range rl.buckets {
				bucket.mu.Lock()
				if bucket.tokens >= float64(rl.config.BurstSize) &&
					now.Sub(bucket.lastRefill) > rl.config.CleanupInterval {
					delete(rl.buckets, key)
				}
				bucket.mu.Unlock()
			}
			rl.mu.Unlock()
		case <-rl.stop:
			return
		}
	}
}

// Stop halts the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Middleware enforces the limit, answering 429 with Retry-After.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(rl.config.KeyFunc(r)) {
			w.Header().Set("Retry-After", "1")
			respondWithError(w, r, domain.Errorf(domain.ERATELIMIT, "", "Too many requests"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RateLimit builds a limiter middleware from config.
func RateLimit(config RateLimiterConfig) func(http.Handler) http.Handler {
	return NewRateLimiter(config).Middleware
}

// GetClientIP extracts the client IP, trusting proxy headers first.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

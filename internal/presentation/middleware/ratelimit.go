package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// RateLimiter implements a simple token bucket rate limiter.
type RateLimiter struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter that allows rps requests per second.
func NewRateLimiter(rps int) *RateLimiter {
	return &RateLimiter{
		tokens:     float64(rps),
		maxTokens:  float64(rps),
		refillRate: float64(rps),
		lastRefill: time.Now(),
	}
}

// Allow reports whether a single request is permitted.
// It consumes one token if available.
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.allowAt(time.Now())
}

func (rl *RateLimiter) allowAt(now time.Time) bool {
	elapsed := now.Sub(rl.lastRefill).Seconds()
	if elapsed > 0 {
		rl.tokens = min(rl.maxTokens, rl.tokens+elapsed*rl.refillRate)
		rl.lastRefill = now
	}

	if rl.tokens >= 1 {
		rl.tokens--
		return true
	}
	return false
}

// PerClientRateLimiter keeps one token bucket per client key. Buckets idle for
// longer than idleTTL are dropped on the next sweep.
type PerClientRateLimiter struct {
	mu        sync.Mutex
	rps       int
	buckets   map[string]*clientBucket
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type clientBucket struct {
	limiter  *RateLimiter
	lastSeen time.Time
}

// NewPerClientRateLimiter creates a limiter allowing rps requests per second per client.
func NewPerClientRateLimiter(rps int) *PerClientRateLimiter {
	return &PerClientRateLimiter{
		rps:       rps,
		buckets:   make(map[string]*clientBucket),
		idleTTL:   10 * time.Minute,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow reports whether the client identified by key may make one more request.
func (p *PerClientRateLimiter) Allow(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if now.Sub(p.lastSweep) > p.idleTTL {
		p.sweep(now)
	}

	b, ok := p.buckets[key]
	if !ok {
		b = &clientBucket{limiter: NewRateLimiter(p.rps)}
		b.limiter.lastRefill = now
		p.buckets[key] = b
	}
	b.lastSeen = now

	b.limiter.mu.Lock()
	defer b.limiter.mu.Unlock()
	return b.limiter.allowAt(now)
}

func (p *PerClientRateLimiter) sweep(now time.Time) {
	for key, b := range p.buckets {
		if now.Sub(b.lastSeen) > p.idleTTL {
			delete(p.buckets, key)
		}
	}
	p.lastSweep = now
}

// PerClientRateLimitMiddleware applies per-client rate limiting keyed by remote IP.
// onLimited writes the rejection; nil writes a plain 429.
func PerClientRateLimitMiddleware(limiter *PerClientRateLimiter, onLimited http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r)) {
				w.Header().Set("Retry-After", "1")
				if onLimited != nil {
					onLimited(w, r)
					return
				}
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
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

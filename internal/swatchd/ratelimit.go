package swatchd

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RateLimit is a token bucket configuration.
type RateLimit struct {
	// PerSecond is the refill rate.
	PerSecond float64
	// Burst is the bucket capacity.
	Burst int
}

// DefaultRateLimits are applied per method unless overridden.
var DefaultRateLimits = map[string]RateLimit{
	MethodConvert:    {PerSecond: 500, Burst: 1000},
	MethodLookup:     {PerSecond: 500, Burst: 1000},
	MethodListTokens: {PerSecond: 100, Burst: 200},
	MethodPing:       {PerSecond: 1000, Burst: 1000},
}

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	rate     float64
	last     time.Time

	requests int64
	denied   int64
}

func newBucket(limit RateLimit) *bucket {
	return &bucket{
		tokens:   float64(limit.Burst),
		capacity: float64(limit.Burst),
		rate:     limit.PerSecond,
		last:     time.Now(),
	}
}

func (b *bucket) refill(now time.Time) {
	b.tokens += now.Sub(b.last).Seconds() * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.last = now
}

func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.requests++
	b.refill(time.Now())
	if b.tokens < 1 {
		b.denied++
		return false
	}
	b.tokens--
	return true
}

// LimitStats reports usage for one rate-limited method.
type LimitStats struct {
	Method    string
	Limit     RateLimit
	Available float64
	Requests  int64
	Denied    int64
}

// RateLimiter applies per-method token buckets to RPCs.
type RateLimiter struct {
	mu      sync.RWMutex
	limits  map[string]RateLimit
	buckets map[string]*bucket
	enabled bool
}

// RateLimiterOption configures a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithMethodLimits overrides the limits for specific methods.
func WithMethodLimits(limits map[string]RateLimit) RateLimiterOption {
	return func(rl *RateLimiter) {
		for method, limit := range limits {
			rl.limits[method] = limit
		}
	}
}

// WithEnabled toggles rate limiting.
func WithEnabled(enabled bool) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.enabled = enabled
	}
}

// NewRateLimiter creates a limiter seeded with DefaultRateLimits.
func NewRateLimiter(opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		limits:  make(map[string]RateLimit, len(DefaultRateLimits)),
		buckets: make(map[string]*bucket),
		enabled: true,
	}
	for method, limit := range DefaultRateLimits {
		rl.limits[method] = limit
	}
	for _, opt := range opts {
		opt(rl)
	}
	return rl
}

// Allow reports whether a call to method may proceed. Methods without a
// configured limit are always allowed.
func (rl *RateLimiter) Allow(method string) bool {
	rl.mu.RLock()
	enabled := rl.enabled
	b := rl.buckets[method]
	rl.mu.RUnlock()

	if !enabled {
		return true
	}
	if b == nil {
		b = rl.bucketFor(method)
		if b == nil {
			return true
		}
	}
	return b.take()
}

func (rl *RateLimiter) bucketFor(method string) *bucket {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if b, ok := rl.buckets[method]; ok {
		return b
	}
	limit, ok := rl.limits[method]
	if !ok {
		return nil
	}
	b := newBucket(limit)
	rl.buckets[method] = b
	return b
}

// SetEnabled toggles rate limiting at runtime.
func (rl *RateLimiter) SetEnabled(enabled bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.enabled = enabled
}

// Stats returns usage for every configured method.
func (rl *RateLimiter) Stats() []LimitStats {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	stats := make([]LimitStats, 0, len(rl.limits))
	for method, limit := range rl.limits {
		s := LimitStats{Method: method, Limit: limit, Available: float64(limit.Burst)}
		if b, ok := rl.buckets[method]; ok {
			b.mu.Lock()
			b.refill(time.Now())
			s.Available, s.Requests, s.Denied = b.tokens, b.requests, b.denied
			b.mu.Unlock()
		}
		stats = append(stats, s)
	}
	return stats
}

// UnaryServerInterceptor rejects calls over their limit with ResourceExhausted.
func (rl *RateLimiter) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !rl.Allow(info.FullMethod) {
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded for %s", info.FullMethod)
		}
		return handler(ctx, req)
	}
}

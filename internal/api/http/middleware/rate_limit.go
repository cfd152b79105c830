package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RateLimitConfig struct {
	Burst           int           // bucket capacity
	RefillPerWindow int           // tokens restored per window
	Window          time.Duration // refill window
	MaxEntries      int
	SweepInterval   time.Duration
	IdleTTL         time.Duration
}

type client struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

type limiter struct {
	cfg       RateLimitConfig
	rate      rate.Limit
	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
}

func newLimiter(cfg RateLimitConfig) *limiter {
	if cfg.Window <= 0 {
		cfg.Window = time.Hour
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 2 * cfg.Window
	}
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	if cfg.RefillPerWindow < 1 {
		cfg.RefillPerWindow = 1
	}
	return &limiter{
		cfg:       cfg,
		rate:      rate.Limit(float64(cfg.RefillPerWindow) / cfg.Window.Seconds()),
		clients:   make(map[string]*client, 1024),
		lastSweep: time.Now(),
	}
}

func (l *limiter) get(key string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cfg.MaxEntries > 0 && len(l.clients) >= l.cfg.MaxEntries {
		l.sweepLocked(now)
	}
	cl := l.clients[key]
	if cl == nil {
		cl = &client{lim: rate.NewLimiter(l.rate, l.cfg.Burst)}
		l.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.lim
}

func (l *limiter) allow(key string, now time.Time) (ok bool, remaining int, retryAfterSec int) {
	lim := l.get(key, now)

	res := lim.ReserveN(now, 1)
	if !res.OK() {
		return false, 0, int(l.cfg.Window / time.Second)
	}
	if delay := res.DelayFrom(now); delay > 0 {
		// Over the limit; hand the reserved token back and report the wait.
		res.CancelAt(now)
		sec := int((delay + time.Second - 1) / time.Second)
		if sec < 1 {
			sec = 1
		}
		return false, 0, sec
	}
	return true, int(lim.TokensAt(now)), 0
}

func (l *limiter) sweepLocked(now time.Time) {
	ttl := l.cfg.IdleTTL
	for ip, cl := range l.clients {
		if now.Sub(cl.lastSeen) > ttl {
			delete(l.clients, ip)
		}
	}
	l.lastSweep = now
}

func (l *limiter) sweepMaybe(now time.Time) {
	l.mu.Lock()
	if now.Sub(l.lastSweep) >= l.cfg.SweepInterval {
		l.sweepLocked(now)
	}
	l.mu.Unlock()
}

// RateLimit applies a per-client-IP token bucket.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	l := newLimiter(cfg)
	limitStr := strconv.Itoa(l.cfg.Burst)

	return func(c *gin.Context) {
		now := time.Now()
		l.sweepMaybe(now)

		ok, remaining, retry := l.allow(c.ClientIP(), now)
		if !ok {
			c.Header("Retry-After", strconv.Itoa(retry))
			c.Header("X-RateLimit-Limit", limitStr)
			c.Header("X-RateLimit-Remaining", "0")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many contact form submissions. Please try again later.",
			})
			c.Abort()
			return
		}

		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", limitStr)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		c.Next()
	}
}

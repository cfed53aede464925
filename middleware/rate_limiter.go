package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"apna/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore keys one token bucket per client IP. Buckets idle for
// longer than limiterIdleTTL are evicted lazily.
type rateLimiterStore struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	perMin    int
	lastSweep time.Time
	now       func() time.Time
}

func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) > time.Minute {
		for key, v := range s.visitors {
			if now.Sub(v.lastSeen) > limiterIdleTTL {
				delete(s.visitors, key)
			}
		}
		s.lastSweep = now
	}

	v, ok := s.visitors[ip]
	if !ok {
		// the whole minute's quota is available as burst
		v = &visitor{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMin)), s.perMin)}
		s.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// RateLimitMiddleware limits requests per client IP to perMin per minute.
// A non-positive perMin falls back to 200.
func RateLimitMiddleware(perMin int) gin.HandlerFunc {
	if perMin <= 0 {
		perMin = 200
	}
	store := &rateLimiterStore{
		visitors: make(map[string]*visitor),
		perMin:   perMin,
		now:      time.Now,
	}
	retryAfter := strconv.Itoa(int((time.Minute / time.Duration(perMin)).Seconds()) + 1)

	return func(c *gin.Context) {
		ip := getClientIP(c)
		if !store.getLimiter(ip).Allow() {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip), zap.String("path", c.Request.URL.Path))
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, utils.ErrorResponse{
				Message: "Rate limit exceeded",
				Details: "Try again later.",
			})
			return
		}
		c.Next()
	}
}

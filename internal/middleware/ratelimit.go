package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// userLimiter tracks one user's token bucket and last activity for pruning
type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// AssistantRateLimiter limits the model-backed endpoints per user. Every
// command and query costs at least one completion call, so these endpoints
// get a tighter budget than plain CRUD.
type AssistantRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*userLimiter
	rate     rate.Limit
	burst    int
	done     chan struct{}
}

// NewAssistantRateLimiter allows requestsPerMinute sustained with the given
// burst per user
func NewAssistantRateLimiter(requestsPerMinute, burst int) *AssistantRateLimiter {
	l := &AssistantRateLimiter{
		limiters: make(map[string]*userLimiter),
		rate:     rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:    burst,
		done:     make(chan struct{}),
	}
	go l.prune()
	return l
}

// Close stops the background prune goroutine
func (l *AssistantRateLimiter) Close() {
	close(l.done)
}

// Handler returns the Fiber middleware
func (l *AssistantRateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		if userID == "" {
			userID = c.IP()
		}

		if !l.allow(userID) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, slow down",
			})
		}
		return c.Next()
	}
}

func (l *AssistantRateLimiter) allow(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	ul, ok := l.limiters[userID]
	if !ok {
		ul = &userLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[userID] = ul
	}
	ul.lastSeen = time.Now()
	return ul.limiter.Allow()
}

// prune drops limiters idle for more than an hour
func (l *AssistantRateLimiter) prune() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-1 * time.Hour)
			l.mu.Lock()
			for id, ul := range l.limiters {
				if ul.lastSeen.Before(cutoff) {
					delete(l.limiters, id)
				}
			}
			l.mu.Unlock()
		}
	}
}

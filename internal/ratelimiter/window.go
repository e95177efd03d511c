package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type Limiter interface {
	Allow(ip string) (bool, time.Duration)
}

// maxClients bounds the client table before idle entries are swept.
const maxClients = 10_000

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// WindowLimiter allows limit requests per window for each client, refilled
// smoothly. Idle clients are swept lazily from Allow; there is no background
// goroutine.
type WindowLimiter struct {
	mu      sync.Mutex
	clients map[string]*client //string:UserIP
	limit   int
	window  time.Duration
	now     func() time.Time
}

func NewWindowLimiter(limit int, window time.Duration) *WindowLimiter {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &WindowLimiter{
		clients: make(map[string]*client),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

func (rl *WindowLimiter) Allow(ip string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if len(rl.clients) >= maxClients {
		rl.sweep(now)
	}

	c, exists := rl.clients[ip]
	if !exists {
		every := rl.window / time.Duration(rl.limit)
		c = &client{limiter: rate.NewLimiter(rate.Every(every), rl.limit)}
		rl.clients[ip] = c
	}
	c.lastSeen = now

	r := c.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// sweep drops clients idle for a full window; their buckets are full again
// anyway. Callers hold rl.mu.
func (rl *WindowLimiter) sweep(now time.Time) {
	for ip, c := range rl.clients {
		if now.Sub(c.lastSeen) >= rl.window {
			delete(rl.clients, ip)
		}
	}
}

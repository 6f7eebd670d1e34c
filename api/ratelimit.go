package api

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter is a per-client fixed-window counter. Windows reset lazily
// on the first request after expiry; stale clients are swept by Allow.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*clientWindow
	limit   int
	span    time.Duration

	lastSweep time.Time
}

type clientWindow struct {
	remaining int
	openedAt  time.Time
}

// NewRateLimiter allows limit requests per span for each client key.
func NewRateLimiter(limit int, span time.Duration) *RateLimiter {
	return &RateLimiter{
		windows:   make(map[string]*clientWindow),
		limit:     limit,
		span:      span,
		lastSweep: time.Now(),
	}
}

// Allow consumes one request slot for key, reporting whether the request
// may proceed and, when it may not, how many seconds until the window
// reopens.
func (rl *RateLimiter) Allow(key string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.sweepLocked(now)

	win, ok := rl.windows[key]
	if !ok || now.Sub(win.openedAt) >= rl.span {
		rl.windows[key] = &clientWindow{remaining: rl.limit - 1, openedAt: now}
		return true, 0
	}

	if win.remaining > 0 {
		win.remaining--
		return true, 0
	}

	retry := int((rl.span - now.Sub(win.openedAt)).Seconds()) + 1
	return false, retry
}

func (rl *RateLimiter) sweepLocked(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.span {
		return
	}
	rl.lastSweep = now
	for key, win := range rl.windows {
		if now.Sub(win.openedAt) >= 2*rl.span {
			delete(rl.windows, key)
		}
	}
}

// limited wraps a handler with per-IP rate limiting, answering 429 with a
// Retry-After header when the window is exhausted. A nil limiter passes
// everything through.
func limited(rl *RateLimiter, next http.HandlerFunc) http.HandlerFunc {
	if rl == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ok, retry := rl.Allow(clientKey(r))
		if !ok {
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next(w, r)
	}
}

// clientKey identifies the caller: the first X-Forwarded-For hop when the
// request came through a proxy, otherwise the remote address without port.
func clientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// slidingWindow 按 key 记录窗口内的请求时间
type slidingWindow struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	hits   map[string][]time.Time
}

func newSlidingWindow(max int, window time.Duration) *slidingWindow {
	return &slidingWindow{max: max, window: window, hits: make(map[string][]time.Time)}
}

func (w *slidingWindow) prune(ts []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-w.window)
	kept := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// allow 窗口内未超限则记录本次请求并返回 true
func (w *slidingWindow) allow(key string, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	ts := w.prune(w.hits[key], now)
	if len(ts) >= w.max {
		w.hits[key] = ts
		return false
	}
	w.hits[key] = append(ts, now)
	return true
}

// cleanup 删除窗口已空的 key
func (w *slidingWindow) cleanup(now time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for key, ts := range w.hits {
		ts = w.prune(ts, now)
		if len(ts) == 0 {
			delete(w.hits, key)
		} else {
			w.hits[key] = ts
		}
	}
}

// RateLimit 每 IP 在 window 内最多 max 次请求，超过返回 429
func RateLimit(max int, window time.Duration) gin.HandlerFunc {
	limiter := newSlidingWindow(max, window)
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for now := range ticker.C {
			limiter.cleanup(now)
		}
	}()

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP(), time.Now()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "请求过于频繁，请稍后再试",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// loginLimiter 按 IP 记录窗口内的尝试时间。
// 过期记录在请求时顺带清理，不需要后台 goroutine。
type loginLimiter struct {
	mu          sync.Mutex
	maxAttempts int
	window      time.Duration
	attempts    map[string][]time.Time
	lastSweep   time.Time
	now         func() time.Time
}

func newLoginLimiter(maxAttempts int, window time.Duration) *loginLimiter {
	return &loginLimiter{
		maxAttempts: maxAttempts,
		window:      window,
		attempts:    make(map[string][]time.Time),
		now:         time.Now,
	}
}

func recent(ts []time.Time, cutoff time.Time) []time.Time {
	kept := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

func (l *loginLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)
	if now.Sub(l.lastSweep) >= l.window {
		for key, ts := range l.attempts {
			if kept := recent(ts, cutoff); len(kept) > 0 {
				l.attempts[key] = kept
			} else {
				delete(l.attempts, key)
			}
		}
		l.lastSweep = now
	}

	ts := recent(l.attempts[ip], cutoff)
	if len(ts) >= l.maxAttempts {
		l.attempts[ip] = ts
		return false
	}
	l.attempts[ip] = append(ts, now)
	return true
}

func (l *loginLimiter) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.attempts)
}

func (l *loginLimiter) handler() gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(math.Ceil(l.window.Seconds())))
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.Header("Retry-After", retryAfter)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "로그인 시도가 너무 많습니다. 잠시 후 다시 시도해주세요",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoginRateLimit 登录与设置密码接口限流
// 每个 IP 在 window 内最多 maxAttempts 次尝试，超过则返回 429
func LoginRateLimit(maxAttempts int, window time.Duration) gin.HandlerFunc {
	return newLoginLimiter(maxAttempts, window).handler()
}

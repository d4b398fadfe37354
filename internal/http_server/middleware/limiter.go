// Package middleware
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// SlidingWindowLimiter 滑动窗口限流器, 按key记录窗口内的请求时间
type SlidingWindowLimiter struct {
	windowSize     time.Duration
	maxRequests    int
	requestRecords map[string][]time.Time
	mu             sync.Mutex
}

func NewSlidingWindowLimiter(windowSize time.Duration, maxRequests int) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		windowSize:     windowSize,
		maxRequests:    maxRequests,
		requestRecords: make(map[string][]time.Time),
	}
}

// Allow 检查是否允许请求
func (limiter *SlidingWindowLimiter) Allow(key string) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	now := time.Now()
	windowStart := now.Add(-limiter.windowSize)

	records := limiter.requestRecords[key]
	for len(records) > 0 && records[0].Before(windowStart) {
		records = records[1:]
	}

	if len(records) >= limiter.maxRequests {
		limiter.requestRecords[key] = records
		return false
	}

	limiter.requestRecords[key] = append(records, now)
	return true
}

// StartCleanup 周期性清理长时间无请求的key
func (limiter *SlidingWindowLimiter) StartCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			limiter.cleanup()
		}
	}()
}

func (limiter *SlidingWindowLimiter) cleanup() {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	threshold := time.Now().Add(-2 * limiter.windowSize)
	for key, records := range limiter.requestRecords {
		if len(records) > 0 && records[len(records)-1].Before(threshold) {
			delete(limiter.requestRecords, key)
		}
	}
}

// RateLimitMiddleware 创建echo限流中间件
func RateLimitMiddleware(limiter *SlidingWindowLimiter, keyFunc func(c echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(keyFunc(c)) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"code":    "RATE_LIMIT_EXCEEDED",
					"message": "请求次数过多, 请稍后再试",
					"data":    nil,
				})
			}
			return next(c)
		}
	}
}

// CombinedKeyFunc 组合IP和端点生成键
func CombinedKeyFunc(c echo.Context) string {
	return c.RealIP() + "|" + c.Path()
}

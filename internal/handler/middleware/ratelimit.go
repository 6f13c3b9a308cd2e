package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cinema-checkout/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills the bucket by whole intervals and takes one
// token. It returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// NewRateLimiter throttles each client address per route with a token
// bucket kept in Redis. A nil client disables it. Redis failures let the
// request through.
func NewRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client, logger *slog.Logger) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := RateLimitKey(cfg.KeyPrefix, c.ClientIP(), c.Request.Method, c.FullPath())
		args := []any{
			time.Now().UnixMilli(),
			cfg.Capacity,
			cfg.RefillTokens,
			cfg.RefillInterval.Milliseconds(),
			int64(cfg.KeyTTL / time.Second),
		}

		vals, err := tokenBucketScript.Run(c.Request.Context(), rdb, []string{key}, args...).Int64Slice()
		if err != nil || len(vals) != 3 {
			logger.Warn("rate limiter unavailable", slog.String("key", key), slog.Any("error", err))
			c.Next()
			return
		}

		c.Header(HeaderRateLimitLimit, strconv.Itoa(cfg.Capacity))
		c.Header(HeaderRateLimitRemaining, strconv.FormatInt(vals[1], 10))

		if vals[0] != 1 {
			secs := int(math.Ceil(float64(vals[2]) / 1000.0))
			c.Header(HeaderRetryAfter, strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{"message": "rate limit exceeded"},
			})
			return
		}
		c.Next()
	}
}

const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRetryAfter         = "Retry-After"
)

func RateLimitKey(prefix, clientIP, method, route string) string {
	if clientIP == "" {
		clientIP = "unknown"
	}
	if route == "" {
		route = "unmatched"
	}
	return strings.Join([]string{prefix, "ip", clientIP, "route", method + " " + route}, ":")
}

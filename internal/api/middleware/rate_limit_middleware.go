package middleware

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient 介面定義
type RedisClient interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

/*
redis token bucket
狀態存在redis，多副本部署時共用同一份額度
redis不可用時放行，限流屬於保護機制，不該擋下正常流量
*/
type redisTokenBucket struct {
	client   RedisClient
	capacity int
	rate     int
}

func (b *redisTokenBucket) Allow(ctx context.Context, key string) bool {
	luaScript := `
		local key = KEYS[1]
		local capacity = tonumber(ARGV[1])
		local rate = tonumber(ARGV[2])
		local now = tonumber(ARGV[3])

		local bucket = redis.call('HMGET', key, 'tokens', 'last_refill')
		local currentTokens = tonumber(bucket[1])
		local lastRefill = tonumber(bucket[2])

		if currentTokens == nil then
			currentTokens = capacity
			lastRefill = now
			redis.call('HMSET', key, 'tokens', currentTokens, 'last_refill', lastRefill)
			redis.call('EXPIRE', key, 60)
		end

		local elapsedSeconds = (now - lastRefill) / 1000000000
		currentTokens = math.min(capacity, currentTokens + elapsedSeconds * rate)

		if currentTokens < 1 then
			redis.call('HMSET', key, 'tokens', currentTokens, 'last_refill', now)
			return 0
		end

		currentTokens = currentTokens - 1
		redis.call('HMSET', key, 'tokens', currentTokens, 'last_refill', now)
		return 1
	`

	result, err := b.client.Eval(
		ctx,
		luaScript,
		[]string{key},
		b.capacity,
		b.rate,
		time.Now().UnixNano(),
	).Int64()
	if err != nil {
		return true
	}
	return result == 1
}

// NewRateLimitMiddleware 創建限流中間件，以來源IP分桶
func NewRateLimitMiddleware(client RedisClient, capacity, ratePS int) func(http.Handler) http.Handler {
	bucket := &redisTokenBucket{
		client:   client,
		capacity: capacity,
		rate:     ratePS,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			if !bucket.Allow(r.Context(), "ratelimit:"+host) {
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package utils

import (
	"context"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/phoenixwrites/phoenix/config"
)

var (
	redisClient *redis.Client
	redisMu     sync.Mutex
)

// InitRedis creates the shared Redis client when Redis is enabled. It returns nil
// when disabled or unreachable so callers fall back to in-process state.
func InitRedis(cfg config.AppConfig) *redis.Client {
	redisMu.Lock()
	defer redisMu.Unlock()
	if redisClient != nil || !cfg.RedisEnabled {
		return redisClient
	}

	rc := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(cfg.RedisHost, strconv.Itoa(cfg.RedisPort)),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		Sugar.Warnf("redis unavailable at %s, using in-memory fallbacks: %v", rc.Options().Addr, err)
		_ = rc.Close()
		return nil
	}
	redisClient = rc
	return redisClient
}

// GetRedis returns the shared client, or nil when Redis is not in use.
func GetRedis() *redis.Client {
	redisMu.Lock()
	defer redisMu.Unlock()
	return redisClient
}

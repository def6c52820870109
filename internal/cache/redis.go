// Package cache provides the Redis-backed cache-aside layer and the shared
// client used by the token blacklist and rate limiter.
package cache

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/middleware"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// errorCountHook bumps the redis error counter on every failed command so
// cache trouble shows up on the metrics endpoint. redis.Nil is a miss, not
// an error.
type errorCountHook struct{}

func (h errorCountHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h errorCountHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			middleware.RedisErrors.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (h errorCountHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			middleware.RedisErrors.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

// InitRedis connects the package client to addr, which may be a plain
// host:port or a redis:// URL. A missing or unreachable Redis leaves the
// client nil and the app serves from the database alone.
func InitRedis(addr string) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			log.Printf("cache disabled: bad REDIS_URL %q: %v", addr, err)
			client = nil
			return
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client = redis.NewClient(opts)
	client.AddHook(errorCountHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("cache disabled: redis unreachable at %s: %v", opts.Addr, err)
		client = nil
	} else {
		log.Printf("redis connected at %s", opts.Addr)
	}
}

// SetClient swaps the package-level client. Used by tests with miniredis.
func SetClient(c *redis.Client) {
	client = c
}

// GetClient returns the shared client, nil when caching is disabled.
func GetClient() *redis.Client {
	return client
}

package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDialTimeout = 5 * time.Second

// Options configures the client that stores idempotency entries.
type Options struct {
	Addr string
	DB   int
	// Bounds both dialing and the startup ping; zero means 5s.
	DialTimeout time.Duration
}

// OpenRedis connects and pings once so a bad address fails at startup.
func OpenRedis(opt Options) (*redis.Client, error) {
	timeout := opt.DialTimeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	r := redis.NewClient(&redis.Options{Addr: opt.Addr, DB: opt.DB, DialTimeout: timeout})
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

// Ping adapts the client to the health check signature.
func Ping(rdb *redis.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
}

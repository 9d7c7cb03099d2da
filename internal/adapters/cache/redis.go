package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ClientOptions carries the connection settings from internal/config.
// Zero pool values fall back to defaults so tests can construct a client
// with just an address.
type ClientOptions struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

func (o ClientOptions) redisOptions() *redis.Options {
	poolSize := o.PoolSize
	if poolSize <= 0 {
		poolSize = 10
	}
	minIdle := o.MinIdleConns
	if minIdle <= 0 {
		minIdle = 2
	}

	return &redis.Options{
		Addr:         fmt.Sprintf("%s:%s", o.Host, o.Port),
		Password:     o.Password,
		DB:           o.DB,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		PoolSize:     poolSize,
		MinIdleConns: minIdle,
	}
}

// NewRedisClient connects and verifies the connection with a bounded ping,
// so a dead Redis is reported at startup instead of on the first request.
func NewRedisClient(opts ClientOptions) (*redis.Client, error) {
	redisOpts := opts.redisOptions()
	rdb := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", redisOpts.Addr, err)
	}

	return rdb, nil
}

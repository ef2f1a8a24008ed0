package infra

import (
	"context"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// NewRedis creates and validates a go-redis client connection.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// Validate connectivity at startup
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

// NewLocker wraps the redis client in a redislock client, used for the
// advisory lock around the open-caja check-then-create sequence.
func NewLocker(rdb *redis.Client) *redislock.Client {
	return redislock.New(rdb)
}

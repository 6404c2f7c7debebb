package redisstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/shopcloud/backend/pkg/config"
)

var ErrEmptyAddr = errors.New("empty redis address")

type Options struct {
	Addr     string
	Password string
	DB       int
}

func ParseFromConfig(c *config.Config) Options {
	return Options{
		Addr:     c.Redis.Addr,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	}
}

func NewConnection(opts Options) (*redis.Client, error) {
	if opts.Addr == "" {
		return nil, ErrEmptyAddr
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	_, err := rdb.Ping(context.Background()).Result()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

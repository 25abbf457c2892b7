package redis

import (
	"context"
	"time"

	"merchant/api/internal/config"

	goredis "github.com/redis/go-redis/v9"
)

func Init(config *config.Config) *goredis.Client {
	client := goredis.NewClient(&goredis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
		// retries belong to the transport, adapters never retry
		MaxRetries: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		panic("Redis: connect failed: " + err.Error())
	}

	return client
}

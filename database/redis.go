package database

import (
	"context"
	"time"

	"github.com/battariah/storefront-api/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis holds guest carts, keyed by guest id with a sliding TTL.
var Redis *redis.Client

func ConnectRedis() {
	addr := config.GetEnv("REDIS_ADDR", "localhost:6379")

	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetEnvInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Redis.Ping(ctx).Err(); err != nil {
		zap.L().Fatal("Redis connection error", zap.Error(err))
	}

	zap.L().Info("connected to Redis", zap.String("addr", addr))
}

package common

import (
	"context"
	"log"
	"time"

	"github.com/Caarnus/newburgh-lodge/internal/config"
	"github.com/redis/go-redis/v9"
)

func NewRedisClient() *redis.Client {
	cfg := config.AppConfig

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[Redis] ERROR: Failed to ping Redis: %v", err)
		return client // connection pool will keep retrying
	}

	return client
}

package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis opens the client used for caching the day-picker index.
// Caching degrades gracefully: when the connection fails, Redis is left nil
// and callers fall back to computing the index per request.
func ConnectRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Println("redis unavailable, day-picker cache disabled:", err)
		return
	}
	Redis = client
}

package infra

import (
	"log"
	"os"

	"github.com/go-redis/redis/v8"
)

// InitRedis connects the client backing the per-IP rate limiter.
// REDIS_URL is optional; with no URL the limiter runs fail-open.
func InitRedis() *redis.Client {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379"
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("Error parsing REDIS_URL: %v", err)
	}

	return redis.NewClient(opts)
}

func CloseRedis(client *redis.Client) {
	if err := client.Close(); err != nil {
		log.Printf("Error closing redis connection: %v", err)
	}
}

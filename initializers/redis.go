package initializers

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

var Redis *redis.Client

// ConnectToRedis wires the catalog cache. Redis is optional; when REDIS_URL
// is unset or unreachable the API serves everything from the database.
func ConnectToRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("REDIS_URL not set, catalog cache disabled.")
		return
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Println("Invalid REDIS_URL, catalog cache disabled:", err)
		return
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("Redis unreachable, catalog cache disabled:", err)
		return
	}

	Redis = client
	log.Println("Connected to redis.")
}

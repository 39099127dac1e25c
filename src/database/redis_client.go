package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var RedisCtx = context.Background()
var RedisURI string

// InitRedis connects to Redis when REDIS_URI is set. Without Redis the
// service still runs: caching is skipped and notification emails are sent
// synchronously instead of queued.
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI")
	if RedisURI == "" {
		log.Println("⚠️ REDIS_URI not set. Cache and task queue disabled.")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     RedisURI, // เช่น localhost:6379
		Password: "",
		DB:       0,
	})
	_, err := RedisClient.Ping(RedisCtx).Result()
	if err != nil {
		log.Println("⚠️ Failed to connect Redis:", err)
		RedisClient = nil
		RedisURI = ""
		return
	}
	log.Println("✅ Redis connected successfully")
}

package redis

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

const blacklistPrefix = "token:blacklist:"

// InitRedis connects to Redis when REDIS_ADDR is set. Without it the service
// still runs; logout simply cannot revoke tokens before they expire.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("Warning: REDIS_ADDR is not set, token blacklist disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v, token blacklist disabled", err)
		return
	}

	Client = client
	log.Println("✅ Connected to Redis")
}

// BlacklistToken revokes a JWT until its natural expiry.
func BlacklistToken(token string, ttl time.Duration) error {
	if Client == nil || ttl <= 0 {
		return nil
	}
	return Client.Set(Ctx, blacklistPrefix+token, "1", ttl).Err()
}

// IsBlacklisted reports whether a token was revoked by a logout.
func IsBlacklisted(token string) bool {
	if Client == nil {
		return false
	}
	n, err := Client.Exists(Ctx, blacklistPrefix+token).Result()
	if err != nil {
		return false
	}
	return n > 0
}

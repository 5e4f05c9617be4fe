package helpers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	redisClients     = make(map[string]*redis.Client)
	redisClientMutex sync.Mutex
)

// RedisTimeout bounds every single Redis operation.
var RedisTimeout = 30 * time.Second

// RedisHelper returns the shared client for the given connection URL,
// dialing and ping-checking it on first use. Callers share one pooled
// client per URL for the lifetime of the process.
func RedisHelper(connectionUrl string) *redis.Client {
	redisClientMutex.Lock()
	defer redisClientMutex.Unlock()

	if client, exists := redisClients[connectionUrl]; exists {
		return client
	}

	opt, err := redis.ParseURL(connectionUrl)
	if err != nil {
		log.Fatalf("Error parsing Redis URL: %v", err)
		return nil
	}

	// the gate, limiter and export cache issue short single-key commands,
	// so a modest pool is enough
	opt.PoolSize = 50
	opt.MinIdleConns = 5
	opt.ConnMaxIdleTime = 200 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), RedisTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Error pinging Redis: %v", err)
		return nil
	}

	redisClients[connectionUrl] = client
	log.Println("Connected to Redis")

	return client
}

// DisconnectRedis closes every client opened through RedisHelper. Called
// once during graceful shutdown.
func DisconnectRedis() {
	redisClientMutex.Lock()
	defer redisClientMutex.Unlock()

	for _, client := range redisClients {
		if err := client.Close(); err != nil {
			log.Printf("Error disconnecting from Redis: %v", err)
		}
	}

	redisClients = make(map[string]*redis.Client)
}

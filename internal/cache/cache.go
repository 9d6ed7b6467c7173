package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/mathysbarber/agenda-api/internal/config"
)

func NewRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// o serviço funciona sem redis; só o lock do scheduler degrada
		log.Printf("redis unavailable at %s: %v", cfg.RedisAddr, err)
	}

	return client
}

// Lock é o mínimo que o scheduler precisa para não disparar a
// geração semanal em todas as réplicas ao mesmo tempo.
type Lock interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

type RedisLock struct {
	client *redis.Client
}

func NewRedisLock(client *redis.Client) *RedisLock {
	return &RedisLock{client: client}
}

func (l *RedisLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, key, "1", ttl).Result()
}

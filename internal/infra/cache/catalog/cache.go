package catalog

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Cache кэш ответов каталога поверх Redis.
// Кэш - оптимизация, а не слой корректности: любая ошибка Redis
// деградирует в промах, и запрос уходит на core-бэкенд.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    Logger
}

// New создает кэш каталога. Пингует Redis с коротким таймаутом;
// при недоступности возвращает nil - вызывающий код работает без кэша.
func New(addr, password string, db int, ttl time.Duration, log Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("catalog cache: redis at %s is unavailable, caching disabled: %v", addr, err)
		return nil
	}

	return &Cache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// Get возвращает закэшированное значение по ключу.
// Любая ошибка Redis трактуется как промах.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("catalog cache: get %s failed: %v", key, err)
		return nil, false
	}

	return val, true
}

// Set сохраняет значение с TTL кэша
func (c *Cache) Set(ctx context.Context, key string, value []byte) {
	if c == nil {
		return
	}

	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.log.Warn("catalog cache: set %s failed: %v", key, err)
	}
}

// Invalidate удаляет ключи. Вызывается при мутациях каталога.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("catalog cache: invalidate %v failed: %v", keys, err)
	}
}

// Close закрывает подключение к Redis
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

package server

import (
	"context"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin redis wrapper for rendered browse responses.
type Cache struct {
	client *redis.Client
	ctx    context.Context
}

func NewCache(addr, password string, db int) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Cache{client: rdb, ctx: context.Background()}
}

func (c *Cache) GetRaw(key string) ([]byte, error) {
	return c.client.Get(c.ctx, key).Bytes()
}

func (c *Cache) SetRaw(key string, data []byte, expiration time.Duration) error {
	return c.client.Set(c.ctx, key, data, expiration).Err()
}

type cacheWriter struct {
	key      string
	duration time.Duration
	buf      []byte
	store    func(string, []byte, time.Duration) error
}

func (cw *cacheWriter) Write(p []byte) (int, error) {
	cw.buf = append(cw.buf, p...)
	return len(p), nil
}

func (cw *cacheWriter) Flush() {
	if len(cw.buf) > 0 {
		cw.store(cw.key, cw.buf, cw.duration)
	}
}

// MakeCacheWriter tees everything written to w into the cache under key.
// Call the returned flush once the response is fully written.
func MakeCacheWriter(w io.Writer, key string, setRaw func(string, []byte, time.Duration) error) (io.Writer, func()) {
	cw := &cacheWriter{
		key:      key,
		duration: 5 * time.Minute,
		store:    setRaw,
	}
	return io.MultiWriter(w, cw), cw.Flush
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// ErrCacheMiss 缓存未命中
var ErrCacheMiss = errors.New("cache miss")

// Cache 图书详情缓存
type Cache interface {
	Get(ctx context.Context, id string) (*book.Book, error)
	Set(ctx context.Context, b *book.Book) error
	Delete(ctx context.Context, id string) error
}

// BookCache 基于Redis的图书详情缓存
// Key格式: bookshelf:<instance>:book:<id>
// instance在每次进程启动时重新生成,上一个进程留下的条目不会被读到,
// 只会随TTL过期
type BookCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewBookCache 创建缓存
func NewBookCache(client *redis.Client, ttl time.Duration) *BookCache {
	return &BookCache{
		client: client,
		prefix: fmt.Sprintf("bookshelf:%s:book:", uuid.NewString()),
		ttl:    ttl,
	}
}

// cachedBook 缓存的序列化格式
type cachedBook struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Reading    bool      `json:"reading"`
	Finished   bool      `json:"finished"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (c *BookCache) key(id string) string {
	return c.prefix + id
}

// Get 读取缓存,未命中返回ErrCacheMiss
func (c *BookCache) Get(ctx context.Context, id string) (*book.Book, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, apperrors.ErrRedisError.WithErr(err)
	}

	var cb cachedBook
	if err := json.Unmarshal(data, &cb); err != nil {
		return nil, apperrors.ErrRedisError.WithErr(err)
	}
	b := book.Book(cb)
	return &b, nil
}

// Set 写入缓存
func (c *BookCache) Set(ctx context.Context, b *book.Book) error {
	data, err := json.Marshal(cachedBook(*b))
	if err != nil {
		return apperrors.ErrRedisError.WithErr(err)
	}
	if err := c.client.Set(ctx, c.key(b.ID), data, c.ttl).Err(); err != nil {
		return apperrors.ErrRedisError.WithErr(err)
	}
	return nil
}

// Delete 删除缓存
func (c *BookCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		return apperrors.ErrRedisError.WithErr(err)
	}
	return nil
}

package redis

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// CachedRepository 图书仓储的旁路缓存装饰器
// 1. FindByID先查缓存,未命中回源并回填
// 2. Update/Delete成功后删除缓存
// 3. 缓存故障只记录日志,不影响结果
// 4. 回源期间发生过失效则不回填,避免把旧数据写回缓存
type CachedRepository struct {
	book.Repository
	cache Cache
	log   *zap.Logger

	// gen 每次失效加一,回填前后比较;回填持读锁,失效持写锁
	mu  sync.RWMutex
	gen uint64
}

var _ book.Repository = (*CachedRepository)(nil)

// NewCachedRepository 包装仓储
func NewCachedRepository(repo book.Repository, cache Cache, log *zap.Logger) *CachedRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedRepository{Repository: repo, cache: cache, log: log}
}

// FindByID 缓存优先
func (r *CachedRepository) FindByID(ctx context.Context, id string) (*book.Book, error) {
	b, err := r.cache.Get(ctx, id)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		r.log.Warn("book cache get failed", zap.String("book_id", id), zap.Error(err))
	}

	gen := r.generation()
	b, err = r.Repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.fill(ctx, b, gen)
	return b, nil
}

func (r *CachedRepository) generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.gen
}

// fill 仅当读取以来没有失效时回填
func (r *CachedRepository) fill(ctx context.Context, b *book.Book, gen uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.gen != gen {
		r.log.Debug("skip stale book cache fill", zap.String("book_id", b.ID))
		return
	}
	if err := r.cache.Set(ctx, b); err != nil {
		r.log.Warn("book cache set failed", zap.String("book_id", b.ID), zap.Error(err))
	}
}

// Update 更新后失效缓存
func (r *CachedRepository) Update(ctx context.Context, b *book.Book) error {
	if err := r.Repository.Update(ctx, b); err != nil {
		return err
	}
	r.invalidate(ctx, b.ID)
	return nil
}

// Delete 删除后失效缓存
func (r *CachedRepository) Delete(ctx context.Context, id string) error {
	if err := r.Repository.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedRepository) invalidate(ctx context.Context, id string) {
	r.mu.Lock()
	r.gen++
	r.mu.Unlock()

	if err := r.cache.Delete(ctx, id); err != nil {
		r.log.Warn("book cache delete failed", zap.String("book_id", id), zap.Error(err))
	}
}

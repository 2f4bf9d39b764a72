package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/memory"
)

func ptr[T any](v T) *T { return &v }

// fakeCache 进程内缓存,可注入故障
type fakeCache struct {
	mu      sync.Mutex
	items   map[string]book.Book
	gets    int
	hits    int
	failErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[string]book.Book)}
}

func (c *fakeCache) Get(_ context.Context, id string) (*book.Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.failErr != nil {
		return nil, c.failErr
	}
	b, ok := c.items[id]
	if !ok {
		return nil, ErrCacheMiss
	}
	c.hits++
	return &b, nil
}

func (c *fakeCache) Set(_ context.Context, b *book.Book) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failErr != nil {
		return c.failErr
	}
	c.items[b.ID] = *b
	return nil
}

func (c *fakeCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failErr != nil {
		return c.failErr
	}
	delete(c.items, id)
	return nil
}

func (c *fakeCache) has(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[id]
	return ok
}

var created = time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

func seed(t *testing.T) (*CachedRepository, *fakeCache) {
	t.Helper()
	store := memory.NewBookStore()
	cache := newFakeCache()
	repo := NewCachedRepository(store, cache, nil)
	b := book.NewBook("a", book.Details{Name: ptr("A"), PageCount: ptr(10), ReadPage: ptr(1)}, created)
	require.NoError(t, repo.Create(context.Background(), b))
	return repo, cache
}

func TestCachedRepository_ReadThrough(t *testing.T) {
	ctx := context.Background()
	repo, cache := seed(t)

	first, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.True(t, cache.has("a"))

	second, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.hits)
}

func TestCachedRepository_MissingNotCached(t *testing.T) {
	ctx := context.Background()
	repo, cache := seed(t)

	_, err := repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.False(t, cache.has("missing"))
}

func TestCachedRepository_UpdateInvalidates(t *testing.T) {
	ctx := context.Background()
	repo, cache := seed(t)
	_, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)

	replacement := &book.Book{ID: "a"}
	replacement.Apply(book.Details{Name: ptr("A2"), PageCount: ptr(10), ReadPage: ptr(10)}, created.Add(time.Hour))
	require.NoError(t, repo.Update(ctx, replacement))
	assert.False(t, cache.has("a"))

	got, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "A2", got.Name)
	assert.True(t, got.Finished)
	assert.Equal(t, created, got.InsertedAt)
}

func TestCachedRepository_DeleteInvalidates(t *testing.T) {
	ctx := context.Background()
	repo, cache := seed(t)
	_, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "a"))
	assert.False(t, cache.has("a"))

	_, err = repo.FindByID(ctx, "a")
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestCachedRepository_CacheFailureFallsThrough(t *testing.T) {
	ctx := context.Background()
	repo, cache := seed(t)
	cache.failErr = errors.New("connection refused")

	got, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)

	require.NoError(t, repo.Delete(ctx, "a"))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// slowReadRepo 回源读取完成后、返回前执行afterRead
type slowReadRepo struct {
	book.Repository
	afterRead func()
}

func (r *slowReadRepo) FindByID(ctx context.Context, id string) (*book.Book, error) {
	b, err := r.Repository.FindByID(ctx, id)
	if r.afterRead != nil {
		hook := r.afterRead
		r.afterRead = nil
		hook()
	}
	return b, err
}

func TestCachedRepository_NoStaleFillAfterUpdate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewBookStore()
	require.NoError(t, store.Create(ctx, book.NewBook("a", book.Details{Name: ptr("A"), PageCount: ptr(10), ReadPage: ptr(1)}, created)))

	slow := &slowReadRepo{Repository: store}
	cache := newFakeCache()
	repo := NewCachedRepository(slow, cache, nil)

	slow.afterRead = func() {
		replacement := &book.Book{ID: "a"}
		replacement.Apply(book.Details{Name: ptr("A2"), PageCount: ptr(10), ReadPage: ptr(10)}, created.Add(time.Hour))
		require.NoError(t, repo.Update(ctx, replacement))
	}

	stale, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "A", stale.Name)
	assert.False(t, cache.has("a"))

	got, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "A2", got.Name)
	assert.True(t, cache.has("a"))
}

func TestCachedRepository_NoStaleFillAfterDelete(t *testing.T) {
	ctx := context.Background()
	store := memory.NewBookStore()
	require.NoError(t, store.Create(ctx, book.NewBook("a", book.Details{Name: ptr("A")}, created)))

	slow := &slowReadRepo{Repository: store}
	cache := newFakeCache()
	repo := NewCachedRepository(slow, cache, nil)
	slow.afterRead = func() {
		require.NoError(t, repo.Delete(ctx, "a"))
	}

	_, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.False(t, cache.has("a"))

	_, err = repo.FindByID(ctx, "a")
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

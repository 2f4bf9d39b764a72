package book_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	domain "github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/memory"
)

func ptr[T any](v T) *T { return &v }

type recordingPublisher struct {
	mu     sync.Mutex
	events []appbook.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e appbook.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) types() []appbook.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]appbook.EventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type useCases struct {
	add    *appbook.AddBookUseCase
	list   *appbook.ListBooksUseCase
	get    *appbook.GetBookUseCase
	update *appbook.UpdateBookUseCase
	del    *appbook.DeleteBookUseCase
}

func newUseCases(pub appbook.EventPublisher) useCases {
	svc := domain.NewService(memory.NewBookStore(), domain.Options{
		Now: func() time.Time { return time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC) },
	})
	return useCases{
		add:    appbook.NewAddBookUseCase(svc, pub, nil),
		list:   appbook.NewListBooksUseCase(svc),
		get:    appbook.NewGetBookUseCase(svc),
		update: appbook.NewUpdateBookUseCase(svc, pub, nil),
		del:    appbook.NewDeleteBookUseCase(svc, pub, nil),
	}
}

func TestUseCases_Lifecycle(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	uc := newUseCases(pub)

	added, err := uc.add.Execute(ctx, appbook.BookInput{
		Name: ptr("Buku A"), Year: 2010, Author: "John Doe", Summary: "Lorem ipsum",
		Publisher: "Dicoding", PageCount: ptr(100), ReadPage: ptr(25), Reading: false,
	})
	require.NoError(t, err)
	require.NotEmpty(t, added.BookID)

	detail, err := uc.get.Execute(ctx, added.BookID)
	require.NoError(t, err)
	assert.Equal(t, "Buku A", detail.Name)
	assert.False(t, detail.Finished)
	assert.Equal(t, "2026-10-16T08:00:00.000Z", detail.InsertedAt)
	assert.Equal(t, detail.InsertedAt, detail.UpdatedAt)

	require.NoError(t, uc.update.Execute(ctx, added.BookID, appbook.BookInput{
		Name: ptr("Buku A Revisi"), Publisher: "Dicoding", PageCount: ptr(100), ReadPage: ptr(100),
	}))
	detail, err = uc.get.Execute(ctx, added.BookID)
	require.NoError(t, err)
	assert.True(t, detail.Finished)
	assert.Equal(t, "Buku A Revisi", detail.Name)

	require.NoError(t, uc.del.Execute(ctx, added.BookID))
	_, err = uc.get.Execute(ctx, added.BookID)
	assert.ErrorIs(t, err, domain.ErrBookNotFound)

	assert.Equal(t, []appbook.EventType{
		appbook.EventBookCreated,
		appbook.EventBookUpdated,
		appbook.EventBookDeleted,
	}, pub.types())
}

func TestUseCases_FailedMutationPublishesNothing(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	uc := newUseCases(pub)

	_, err := uc.add.Execute(ctx, appbook.BookInput{PageCount: ptr(10)})
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	err = uc.update.Execute(ctx, "missing", appbook.BookInput{Name: ptr("A")})
	assert.ErrorIs(t, err, domain.ErrBookNotFound)

	err = uc.del.Execute(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrBookNotFound)

	assert.Empty(t, pub.types())
}

func TestUseCases_PublishFailureDoesNotFailRequest(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{err: errors.New("broker down")}
	uc := newUseCases(pub)

	added, err := uc.add.Execute(ctx, appbook.BookInput{Name: ptr("A")})
	require.NoError(t, err)
	assert.NotEmpty(t, added.BookID)
}

func TestListBooks_ProjectionAndFilter(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(nil)

	empty, err := uc.list.Execute(ctx, appbook.ListBooksRequest{})
	require.NoError(t, err)
	assert.NotNil(t, empty.Books)
	assert.Empty(t, empty.Books)

	for _, name := range []string{"Harry Potter", "The Hobbit"} {
		_, err := uc.add.Execute(ctx, appbook.BookInput{Name: ptr(name), Publisher: "Pub " + name})
		require.NoError(t, err)
	}

	all, err := uc.list.Execute(ctx, appbook.ListBooksRequest{})
	require.NoError(t, err)
	require.Len(t, all.Books, 2)
	assert.Equal(t, "Pub Harry Potter", all.Books[0].Publisher)

	filtered, err := uc.list.Execute(ctx, appbook.ListBooksRequest{Name: "har"})
	require.NoError(t, err)
	require.Len(t, filtered.Books, 1)
	assert.Equal(t, "Harry Potter", filtered.Books[0].Name)
}

func TestFormatTime(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	ts := time.Date(2026, 10, 16, 15, 4, 5, 123456789, loc)
	assert.Equal(t, "2026-10-16T08:04:05.123Z", appbook.FormatTime(ts))
}

package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// DeleteBookUseCase 删除图书用例
type DeleteBookUseCase struct {
	bookService book.Service
	hooks       mutationHooks
}

// NewDeleteBookUseCase 创建用例实例
func NewDeleteBookUseCase(bookService book.Service, publisher EventPublisher, log *zap.Logger) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		hooks:       newMutationHooks(bookService, publisher, log),
	}
}

// Execute 删除图书,不存在返回book.ErrBookNotFound
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id string) error {
	if err := uc.bookService.DeleteBook(ctx, id); err != nil {
		return err
	}

	uc.hooks.after(ctx, metrics.BookDeleted, Event{Type: EventBookDeleted, BookID: id})
	return nil
}

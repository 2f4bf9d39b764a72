package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// UpdateBookUseCase 更新图书用例
type UpdateBookUseCase struct {
	bookService book.Service
	hooks       mutationHooks
}

// NewUpdateBookUseCase 创建用例实例
func NewUpdateBookUseCase(bookService book.Service, publisher EventPublisher, log *zap.Logger) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		hooks:       newMutationHooks(bookService, publisher, log),
	}
}

// Execute 整体替换图书可编辑字段
// 校验失败优先于不存在:请求不合法时即使ID不存在也返回校验错误
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id string, req BookInput) error {
	b, err := uc.bookService.UpdateBook(ctx, id, req.details())
	if err != nil {
		return err
	}

	uc.hooks.after(ctx, metrics.BookUpdated, Event{Type: EventBookUpdated, BookID: b.ID, Name: b.Name})
	return nil
}

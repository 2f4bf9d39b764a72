package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// AddBookUseCase 新增图书用例
// 职责:
// 1. 将请求转换为领域对象并调用领域服务
// 2. 成功后记录指标、发布book.created事件
type AddBookUseCase struct {
	bookService book.Service
	hooks       mutationHooks
}

// NewAddBookUseCase 创建用例实例
func NewAddBookUseCase(bookService book.Service, publisher EventPublisher, log *zap.Logger) *AddBookUseCase {
	return &AddBookUseCase{
		bookService: bookService,
		hooks:       newMutationHooks(bookService, publisher, log),
	}
}

// AddBookResponse 新增结果
type AddBookResponse struct {
	BookID string
}

// Execute 执行新增
func (uc *AddBookUseCase) Execute(ctx context.Context, req BookInput) (*AddBookResponse, error) {
	b, err := uc.bookService.AddBook(ctx, req.details())
	if err != nil {
		return nil, err
	}

	uc.hooks.after(ctx, metrics.BookCreated, Event{Type: EventBookCreated, BookID: b.ID, Name: b.Name})
	return &AddBookResponse{BookID: b.ID}, nil
}

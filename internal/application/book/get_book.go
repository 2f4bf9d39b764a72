package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// GetBookUseCase 图书详情查询用例
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建用例实例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService}
}

// Execute 按ID查询,不存在返回book.ErrBookNotFound
func (uc *GetBookUseCase) Execute(ctx context.Context, id string) (*BookDetail, error) {
	b, err := uc.bookService.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := toDetail(b)
	return &detail, nil
}

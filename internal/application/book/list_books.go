package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// ListBooksUseCase 图书列表查询用例
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建用例实例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksRequest 列表查询请求
type ListBooksRequest struct {
	Name string // 书名关键词,大小写不敏感;为空返回全部
}

// BookSummary 列表项,只包含id、name、publisher
type BookSummary struct {
	ID        string
	Name      string
	Publisher string
}

// ListBooksResponse 列表结果,Books永不为nil
type ListBooksResponse struct {
	Books []BookSummary
}

// Execute 执行查询
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	books, err := uc.bookService.ListBooks(ctx, book.ListParams{Name: req.Name})
	if err != nil {
		return nil, err
	}

	list := make([]BookSummary, len(books))
	for i, b := range books {
		list[i] = BookSummary{
			ID:        b.ID,
			Name:      b.Name,
			Publisher: b.Publisher,
		}
	}

	return &ListBooksResponse{Books: list}, nil
}

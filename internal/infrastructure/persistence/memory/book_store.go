package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

var _ book.Repository = (*BookStore)(nil)

// BookStore 进程内图书存储
// 设计说明:
// 1. 按插入顺序保存图书,查询均为线性扫描
// 2. 一把读写锁保护所有操作,每个Repository方法是一个完整的临界区
// 3. 进程退出后数据丢失
type BookStore struct {
	mu    sync.RWMutex
	books []*book.Book
}

// NewBookStore 创建空的图书存储
func NewBookStore() *BookStore {
	return &BookStore{
		books: make([]*book.Book, 0),
	}
}

// Create 追加图书
func (s *BookStore) Create(ctx context.Context, b *book.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(b.ID) != -1 {
		return apperrors.Wrap(fmt.Errorf("duplicate id %q", b.ID), "failed to add book")
	}
	s.books = append(s.books, b.Clone())
	return nil
}

// FindByID 根据ID查找图书(返回第一条匹配)
func (s *BookStore) FindByID(ctx context.Context, id string) (*book.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i == -1 {
		return nil, book.ErrBookNotFound
	}
	return s.books[i].Clone(), nil
}

// List 按插入顺序返回图书,可按书名子串过滤
func (s *BookStore) List(ctx context.Context, params book.ListParams) ([]*book.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*book.Book, 0, len(s.books))
	for _, b := range s.books {
		if params.Name != "" && !b.NameContains(params.Name) {
			continue
		}
		result = append(result, b.Clone())
	}
	return result, nil
}

// Update 整体替换图书内容,保留原记录的InsertedAt
func (s *BookStore) Update(ctx context.Context, b *book.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(b.ID)
	if i == -1 {
		return book.ErrBookNotFound
	}
	b.InsertedAt = s.books[i].InsertedAt
	s.books[i] = b.Clone()
	return nil
}

// Delete 删除图书
func (s *BookStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return book.ErrBookNotFound
	}
	s.removeAt(i)
	return nil
}

// Count 当前图书数量
func (s *BookStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books), nil
}

// indexOf 查找图书下标,调用方必须持有锁
func (s *BookStore) indexOf(id string) int {
	for i, b := range s.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// removeAt 按下标删除并保持顺序,调用方必须持有写锁
func (s *BookStore) removeAt(i int) {
	copy(s.books[i:], s.books[i+1:])
	s.books[len(s.books)-1] = nil
	s.books = s.books[:len(s.books)-1]
}

package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// bookRepository 图书仓储的GORM实现
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 插入图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return storageError("add book", err)
	}
	return nil
}

// FindByID 根据ID查询
func (r *bookRepository) FindByID(ctx context.Context, id string) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, storageError("get book", err)
	}
	return toBookEntity(&model), nil
}

// List 按插入顺序查询,可按书名过滤
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, error) {
	var models []BookModel

	query := r.db.WithContext(ctx).Model(&BookModel{})
	if params.Name != "" {
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(params.Name))+"%")
	}

	if err := query.Order("seq ASC").Find(&models).Error; err != nil {
		return nil, storageError("list books", err)
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// Update 事务内查找并整体替换,保留InsertedAt
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing BookModel
		if err := tx.Where("id = ?", b.ID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return storageError("update book", err)
		}

		b.InsertedAt = existing.InsertedAt
		model := toBookModel(b)
		model.Seq = existing.Seq
		if err := tx.Save(model).Error; err != nil {
			return storageError("update book", err)
		}
		return nil
	})
}

// Delete 删除图书
func (r *bookRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&BookModel{})
	if result.Error != nil {
		return storageError("delete book", result.Error)
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// Count 图书数量
func (r *bookRepository) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&BookModel{}).Count(&n).Error; err != nil {
		return 0, storageError("count books", err)
	}
	return int(n), nil
}

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:         b.ID,
		Name:       b.Name,
		Year:       b.Year,
		Author:     b.Author,
		Summary:    b.Summary,
		Publisher:  b.Publisher,
		PageCount:  b.PageCount,
		ReadPage:   b.ReadPage,
		Finished:   b.Finished,
		Reading:    b.Reading,
		InsertedAt: b.InsertedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func toBookEntity(m *BookModel) *book.Book {
	return &book.Book{
		ID:         m.ID,
		Name:       m.Name,
		Year:       m.Year,
		Author:     m.Author,
		Summary:    m.Summary,
		Publisher:  m.Publisher,
		PageCount:  m.PageCount,
		ReadPage:   m.ReadPage,
		Finished:   m.Finished,
		Reading:    m.Reading,
		InsertedAt: m.InsertedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// storageError 数据库错误统一映射为存储错误,原因只进日志
func storageError(op string, err error) error {
	return apperrors.ErrStorageError.WithErr(fmt.Errorf("%s: %w", op, err))
}

package book

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/xiebiao/bookshelf/pkg/tracing"
)

const tracerName = "bookshelf/domain/book"

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则校验(书名必填、已读页数不超过总页数)
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// AddBook 新增图书
	// 业务规则:
	// - 书名必填
	// - readPage不能大于pageCount
	AddBook(ctx context.Context, d Details) (*Book, error)

	// ListBooks 查询图书列表
	ListBooks(ctx context.Context, params ListParams) ([]*Book, error)

	// GetBook 根据ID获取图书详情
	GetBook(ctx context.Context, id string) (*Book, error)

	// UpdateBook 整体更新图书
	// 先校验请求内容,再检查图书是否存在
	UpdateBook(ctx context.Context, id string, d Details) (*Book, error)

	// DeleteBook 删除图书
	DeleteBook(ctx context.Context, id string) error

	// CountBooks 当前图书数量
	CountBooks(ctx context.Context) (int, error)
}

// Options 领域服务可选项
type Options struct {
	// VerifyWrites 新增后回读校验,回读失败返回ErrInconsistentWrite
	VerifyWrites bool
	// NewID ID生成器,默认uuid
	NewID func() string
	// Now 时钟,默认time.Now
	Now func() time.Time
}

// service 领域服务实现
type service struct {
	repo         Repository
	verifyWrites bool
	newID        func() string
	now          func() time.Time
}

// NewService 创建图书领域服务
func NewService(repo Repository, opts Options) Service {
	s := &service{
		repo:         repo,
		verifyWrites: opts.VerifyWrites,
		newID:        opts.NewID,
		now:          opts.Now,
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// AddBook 新增图书
func (s *service) AddBook(ctx context.Context, d Details) (*Book, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AddBook")
	defer span.End()

	// 1. 字段校验
	if err := d.Validate(); err != nil {
		return nil, recordError(span, err)
	}

	// 2. 创建图书实体
	book := NewBook(s.newID(), d, s.now().UTC())
	span.SetAttributes(attribute.String("book.id", book.ID))

	// 3. 持久化
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, recordError(span, err)
	}

	// 4. 回读校验(可选)
	if s.verifyWrites {
		if _, err := s.repo.FindByID(ctx, book.ID); err != nil {
			if errors.Is(err, ErrBookNotFound) {
				err = ErrInconsistentWrite.WithErr(err)
			}
			return nil, recordError(span, err)
		}
	}

	return book, nil
}

// ListBooks 查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ListBooks")
	defer span.End()

	span.SetAttributes(attribute.String("book.filter.name", params.Name))
	books, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, recordError(span, err)
	}
	span.SetAttributes(attribute.Int("book.count", len(books)))
	return books, nil
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id string) (*Book, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "GetBook")
	defer span.End()

	span.SetAttributes(attribute.String("book.id", id))
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, recordError(span, err)
	}
	return book, nil
}

// UpdateBook 更新图书
func (s *service) UpdateBook(ctx context.Context, id string, d Details) (*Book, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "UpdateBook")
	defer span.End()

	span.SetAttributes(attribute.String("book.id", id))

	// 1. 字段校验(先于存在性检查)
	if err := d.Validate(); err != nil {
		return nil, recordError(span, err)
	}

	// 2. 构建替换内容,InsertedAt由仓储从原记录保留
	book := &Book{ID: id}
	book.Apply(d, s.now().UTC())

	// 3. 原子替换
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, recordError(span, err)
	}

	return book, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id string) error {
	ctx, span := tracing.StartSpan(ctx, tracerName, "DeleteBook")
	defer span.End()

	span.SetAttributes(attribute.String("book.id", id))
	if err := s.repo.Delete(ctx, id); err != nil {
		return recordError(span, err)
	}
	return nil
}

// CountBooks 当前图书数量
func (s *service) CountBooks(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// recordError 记录错误到Span
func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

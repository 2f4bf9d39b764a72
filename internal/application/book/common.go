package book

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// TimeLayout 对外时间格式(UTC,毫秒精度)
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTime 格式化为 2026-10-16T08:00:00.000Z
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// BookDetail 图书详情
type BookDetail struct {
	ID         string
	Name       string
	Year       int
	Author     string
	Summary    string
	Publisher  string
	PageCount  int
	ReadPage   int
	Finished   bool
	Reading    bool
	InsertedAt string
	UpdatedAt  string
}

func toDetail(b *book.Book) BookDetail {
	return BookDetail{
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
		InsertedAt: FormatTime(b.InsertedAt),
		UpdatedAt:  FormatTime(b.UpdatedAt),
	}
}

// BookInput 新增与更新共用的请求字段
// 指针字段为nil表示请求中没有该字段
type BookInput struct {
	Name      *string
	Year      int
	Author    string
	Summary   string
	Publisher string
	PageCount *int
	ReadPage  *int
	Reading   bool
}

func (in BookInput) details() book.Details {
	return book.Details{
		Name:      in.Name,
		Year:      in.Year,
		Author:    in.Author,
		Summary:   in.Summary,
		Publisher: in.Publisher,
		PageCount: in.PageCount,
		ReadPage:  in.ReadPage,
		Reading:   in.Reading,
	}
}

// mutationHooks 变更成功后的副作用:指标与事件
type mutationHooks struct {
	bookService book.Service
	publisher   EventPublisher
	log         *zap.Logger
	now         func() time.Time
}

func newMutationHooks(bookService book.Service, publisher EventPublisher, log *zap.Logger) mutationHooks {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return mutationHooks{bookService: bookService, publisher: publisher, log: log, now: time.Now}
}

func (h mutationHooks) after(ctx context.Context, op metrics.BookOp, event Event) {
	stored, err := h.bookService.CountBooks(ctx)
	if err != nil {
		stored = -1
	}
	metrics.RecordBookOp(op, stored)

	event.OccurredAt = h.now().UTC()
	if err := h.publisher.Publish(ctx, event); err != nil {
		h.log.Warn("publish book event failed",
			zap.String("type", string(event.Type)),
			zap.String("book_id", event.BookID),
			zap.Error(err))
	}
}

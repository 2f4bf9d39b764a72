package messaging

import (
	"context"
	"time"

	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/pkg/circuitbreaker"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// Publisher 底层消息发布(mq.Publisher实现)
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
	Exchange() string
}

// BookEventPublisher 图书事件发布器
// 1. 路由键即事件类型(book.created等)
// 2. 经熔断器调用,Broker故障时快速失败
// 3. 每次发布有独立超时,不受请求取消影响
type BookEventPublisher struct {
	publisher Publisher
	breaker   *circuitbreaker.CircuitBreaker
	timeout   time.Duration
	log       *zap.Logger
}

var _ appbook.EventPublisher = (*BookEventPublisher)(nil)

// NewBookEventPublisher 创建事件发布器
func NewBookEventPublisher(publisher Publisher, breaker *circuitbreaker.CircuitBreaker, timeout time.Duration, log *zap.Logger) *BookEventPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	if breaker == nil {
		breaker = circuitbreaker.NewCircuitBreaker("book-events", circuitbreaker.DefaultConfig())
	}
	breaker.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		log.Warn("circuit breaker state changed",
			zap.String("name", name),
			zap.Stringer("from", from),
			zap.Stringer("to", to))
	})
	return &BookEventPublisher{
		publisher: publisher,
		breaker:   breaker,
		timeout:   timeout,
		log:       log,
	}
}

// Publish 发布图书事件
func (p *BookEventPublisher) Publish(ctx context.Context, event appbook.Event) error {
	routingKey := string(event.Type)

	ctx = context.WithoutCancel(ctx)
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err := p.breaker.ExecuteContext(ctx, func(ctx context.Context) error {
		return p.publisher.Publish(ctx, routingKey, event)
	})
	metrics.RecordPublish(p.publisher.Exchange(), routingKey, err)
	return err
}

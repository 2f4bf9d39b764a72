package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/pkg/mq"
)

// Consumer 底层消息消费(mq.Consumer实现)
type Consumer interface {
	Consume(ctx context.Context, handler func(context.Context, mq.Delivery) error) error
}

// EventListener 订阅图书事件并交给回调处理
type EventListener struct {
	consumer Consumer
	log      *zap.Logger
}

// NewEventListener 创建监听器
func NewEventListener(consumer Consumer, log *zap.Logger) *EventListener {
	if log == nil {
		log = zap.NewNop()
	}
	return &EventListener{consumer: consumer, log: log}
}

// Listen 阻塞直到ctx取消
// 无法解析的消息直接丢弃(确认),避免反复重新入队
func (l *EventListener) Listen(ctx context.Context, fn func(appbook.Event) error) error {
	return l.consumer.Consume(ctx, func(_ context.Context, d mq.Delivery) error {
		event, err := DecodeEvent(d.Body)
		if err != nil {
			l.log.Warn("drop malformed book event", zap.String("routing_key", d.RoutingKey), zap.Error(err))
			return nil
		}
		return fn(event)
	})
}

// DecodeEvent 解析事件消息
func DecodeEvent(body []byte) (appbook.Event, error) {
	var event appbook.Event
	if err := json.Unmarshal(body, &event); err != nil {
		return appbook.Event{}, fmt.Errorf("decode book event: %w", err)
	}
	if event.Type == "" || event.BookID == "" {
		return appbook.Event{}, fmt.Errorf("decode book event: missing type or bookId")
	}
	return event, nil
}

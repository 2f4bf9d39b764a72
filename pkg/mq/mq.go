// Package mq RabbitMQ消息发布与消费
//
// 使用Topic Exchange,路由键形如 book.created、book.updated、book.deleted,
// 消费方可用 book.* 订阅全部图书事件。
package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ExchangeTopic 默认Exchange类型
const ExchangeTopic = "topic"

// Publisher 消息发布者
// amqp.Channel不能并发发布,Publish内部串行化
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      *zap.Logger
}

// NewPublisher 连接RabbitMQ并声明持久化Exchange
func NewPublisher(url, exchange, exchangeType string, log *zap.Logger) (*Publisher, error) {
	if log == nil {
		log = zap.NewNop()
	}

	conn, channel, err := dial(url, exchange, exchangeType)
	if err != nil {
		return nil, err
	}

	log.Info("message publisher ready", zap.String("exchange", exchange), zap.String("type", exchangeType))
	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		log:      log,
	}, nil
}

// Exchange Exchange名称
func (p *Publisher) Exchange() string { return p.exchange }

// Publish 将message序列化为JSON并发布
func (p *Publisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil || p.channel.IsClosed() {
		return errors.New("publish: channel closed")
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	p.log.Debug("message published", zap.String("routing_key", routingKey), zap.Int("bytes", len(body)))
	return nil
}

// Close 关闭Channel和连接
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return closeAll(p.channel, p.conn)
}

// Consumer 消息消费者
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	log     *zap.Logger
}

// NewConsumer 声明Queue并按routingKeys绑定到Exchange
// queue为空时声明独占的临时队列,连接断开后自动删除
func NewConsumer(url, exchange, exchangeType, queue string, routingKeys []string, log *zap.Logger) (*Consumer, error) {
	if log == nil {
		log = zap.NewNop()
	}

	conn, channel, err := dial(url, exchange, exchangeType)
	if err != nil {
		return nil, err
	}

	durable := queue != ""
	q, err := channel.QueueDeclare(
		queue,
		durable,
		!durable, // autoDelete
		!durable, // exclusive
		false,
		nil,
	)
	if err != nil {
		_ = closeAll(channel, conn)
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	for _, key := range routingKeys {
		if err := channel.QueueBind(q.Name, key, exchange, false, nil); err != nil {
			_ = closeAll(channel, conn)
			return nil, fmt.Errorf("bind queue %s to %s: %w", q.Name, key, err)
		}
	}

	log.Info("message consumer ready", zap.String("queue", q.Name), zap.Strings("routing_keys", routingKeys))
	return &Consumer{
		conn:    conn,
		channel: channel,
		queue:   q.Name,
		log:     log,
	}, nil
}

// Delivery 交给处理函数的消息
type Delivery struct {
	RoutingKey string
	Body       []byte
	Timestamp  time.Time
}

// Consume 阻塞消费直到ctx取消
// handler返回错误时消息Nack并重新入队
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, Delivery) error) error {
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	msgs, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			d := Delivery{RoutingKey: msg.RoutingKey, Body: msg.Body, Timestamp: msg.Timestamp}
			if err := handler(ctx, d); err != nil {
				c.log.Warn("message handling failed, requeue", zap.String("routing_key", msg.RoutingKey), zap.Error(err))
				_ = msg.Nack(false, true)
				continue
			}
			_ = msg.Ack(false)
		}
	}
}

// Close 关闭Channel和连接
func (c *Consumer) Close() error {
	return closeAll(c.channel, c.conn)
}

func dial(url, exchange, exchangeType string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}

	if exchangeType == "" {
		exchangeType = ExchangeTopic
	}
	err = channel.ExchangeDeclare(exchange, exchangeType, true, false, false, false, nil)
	if err != nil {
		_ = closeAll(channel, conn)
		return nil, nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return conn, channel, nil
}

func closeAll(channel *amqp.Channel, conn *amqp.Connection) error {
	var errs []error
	if channel != nil && !channel.IsClosed() {
		errs = append(errs, channel.Close())
	}
	if conn != nil && !conn.IsClosed() {
		errs = append(errs, conn.Close())
	}
	return errors.Join(errs...)
}

package book

import (
	"context"
	"time"
)

// EventType 图书事件类型,同时用作消息路由键
type EventType string

const (
	EventBookCreated EventType = "book.created"
	EventBookUpdated EventType = "book.updated"
	EventBookDeleted EventType = "book.deleted"
)

// Event 图书变更事件
type Event struct {
	Type       EventType `json:"type"`
	BookID     string    `json:"bookId"`
	Name       string    `json:"name,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher 事件发布接口(由基础设施层实现)
// 发布失败只记录日志,不影响接口返回
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// NoopPublisher 未启用事件时使用
type NoopPublisher struct{}

// Publish 丢弃事件
func (NoopPublisher) Publish(context.Context, Event) error { return nil }

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/messaging"
	"github.com/xiebiao/bookshelf/pkg/mq"
)

// bookEventKeys 订阅全部图书事件
var bookEventKeys = []string{"book.*"}

func newEventsCmd() *cobra.Command {
	events := &cobra.Command{
		Use:   "events",
		Short: "图书事件工具",
	}

	var queue string
	tail := &cobra.Command{
		Use:   "tail",
		Short: "订阅并打印图书事件,Ctrl+C退出",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEventsTail(cmd.Context(), configPath, queue)
		},
	}
	tail.Flags().StringVar(&queue, "queue", "", "持久队列名(默认临时独占队列)")

	events.AddCommand(tail)
	return events
}

func runEventsTail(ctx context.Context, path, queue string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Events.URL == "" {
		return errors.New("events.url is not configured")
	}

	log, restore, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer restore()

	consumer, err := mq.NewConsumer(cfg.Events.URL, cfg.Events.Exchange, mq.ExchangeTopic, queue, bookEventKeys, log)
	if err != nil {
		return fmt.Errorf("connect consumer: %w", err)
	}
	defer consumer.Close()

	log.Info("listening for book events", zap.String("exchange", cfg.Events.Exchange))
	listener := messaging.NewEventListener(consumer, log)
	return listener.Listen(ctx, func(e appbook.Event) error {
		log.Info("book event",
			zap.String("type", string(e.Type)),
			zap.String("book_id", e.BookID),
			zap.String("name", e.Name),
			zap.Time("occurred_at", e.OccurredAt),
		)
		return nil
	})
}

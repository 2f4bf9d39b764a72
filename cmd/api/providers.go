package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/messaging"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/sqlite"
	"github.com/xiebiao/bookshelf/pkg/mq"
)

// provideRepository 按 storage.driver 选择存储,cache.enabled 时包一层Redis缓存
func provideRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (book.Repository, func(), error) {
	var (
		repo    book.Repository
		closers []func()
	)
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := sqlite.NewDB(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() {
			if err := sqlite.Close(db); err != nil {
				log.Warn("close sqlite", zap.Error(err))
			}
		})
		repo = sqlite.NewBookRepository(db)
	default:
		repo = memory.NewBookStore()
	}

	if cfg.Cache.Enabled {
		client, err := redis.NewClient(ctx, cfg, log)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, func() {
			if err := client.Close(); err != nil {
				log.Warn("close redis", zap.Error(err))
			}
		})
		repo = redis.NewCachedRepository(repo, redis.NewBookCache(client, cfg.Cache.TTL), log)
	}

	return repo, cleanup, nil
}

func provideServiceOptions(cfg *config.Config) book.Options {
	return book.Options{VerifyWrites: cfg.Server.VerifyWrites}
}

// provideEventPublisher events.enabled 为false时不发布事件
func provideEventPublisher(cfg *config.Config, log *zap.Logger) (appbook.EventPublisher, func(), error) {
	if !cfg.Events.Enabled {
		return appbook.NoopPublisher{}, func() {}, nil
	}

	publisher, err := mq.NewPublisher(cfg.Events.URL, cfg.Events.Exchange, mq.ExchangeTopic, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := publisher.Close(); err != nil {
			log.Warn("close event publisher", zap.Error(err))
		}
	}
	return messaging.NewBookEventPublisher(publisher, nil, cfg.Events.Timeout, log), cleanup, nil
}

func provideHTTPServer(cfg *config.Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}

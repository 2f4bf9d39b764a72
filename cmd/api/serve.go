package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// App 组装完成的应用
type App struct {
	cfg    *config.Config
	log    *zap.Logger
	server *http.Server
}

func newApp(cfg *config.Config, log *zap.Logger, server *http.Server) *App {
	return &App{cfg: cfg, log: log, server: server}
}

// Run 启动HTTP服务,ctx取消后优雅关闭
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("🚀 server started",
			zap.String("uri", a.cfg.Server.URI()),
			zap.String("storage", a.cfg.Storage.Driver),
			zap.Bool("cache", a.cfg.Cache.Enabled),
			zap.Bool("events", a.cfg.Events.Enabled),
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen %s: %w", a.server.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("⏳ shutting down", zap.Duration("timeout", a.cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	a.log.Info("✓ http server stopped")
	return nil
}

// runServe serve 子命令
// 顺序:配置 → 日志 → 追踪 → 依赖注入 → HTTP服务
func runServe(ctx context.Context, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, restore, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer restore()

	shutdownTracer, err := tracing.InitTracer(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracer(flushCtx); err != nil {
			log.Warn("shutdown tracer", zap.Error(err))
		}
	}()

	app, cleanup, err := InitializeApp(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	defer cleanup()

	err = app.Run(ctx)
	log.Info("👋 bye")
	return err
}

func setupLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	log, restore, err := logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}
	return log, restore, nil
}

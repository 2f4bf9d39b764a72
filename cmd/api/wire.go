//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改后运行 `wire gen ./cmd/api` 重新生成 wire_gen.go

package main

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/router"
)

// infrastructureSet 存储、缓存、事件发布
var infrastructureSet = wire.NewSet(
	provideRepository,
	provideEventPublisher,
)

// domainSet 领域层
var domainSet = wire.NewSet(
	provideServiceOptions,
	book.NewService,
)

// applicationSet 应用层用例
var applicationSet = wire.NewSet(
	appbook.NewAddBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
)

// interfaceSet HTTP接口层
var interfaceSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewHealthHandler,
	router.New,
	provideHTTPServer,
)

// InitializeApp 组装应用
// 依赖链:Repository ← Service ← UseCase ← Handler ← Router ← http.Server
// 返回的cleanup按创建的逆序关闭事件连接、Redis和SQLite
func InitializeApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		applicationSet,
		interfaceSet,
		newApp,
	)
	return nil, nil, nil
}

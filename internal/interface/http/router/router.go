package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/bookshelf/docs"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// New 创建Gin引擎并注册路由
//
// 路由:
//
//	POST   /books          新增图书
//	GET    /books          图书列表(?name=关键词)
//	GET    /books/:id      图书详情
//	PUT    /books/:id      更新图书
//	DELETE /books/:id      删除图书
//	GET    /ping           健康检查
//	GET    /metrics        Prometheus指标(metrics.enabled)
//	GET    /swagger/*any   Swagger UI(swagger.enabled)
func New(cfg *config.Config, log *zap.Logger, bookHandler *handler.BookHandler, healthHandler *handler.HealthHandler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		gin.Recovery(),
		middleware.Logger(log),
		middleware.CORS(cfg.CORS),
		middleware.Tracing(),
	)
	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperrors.ErrRouteNotFound)
	})
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, apperrors.ErrMethodNotAllowed)
	})

	r.GET("/ping", healthHandler.Ping)

	if cfg.Swagger.Enabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	books := r.Group("/books")
	{
		books.POST("", bookHandler.AddBook)
		books.GET("", bookHandler.ListBooks)
		books.GET("/:id", bookHandler.GetBook)
		books.PUT("/:id", bookHandler.UpdateBook)
		books.DELETE("/:id", bookHandler.DeleteBook)
	}

	return r
}

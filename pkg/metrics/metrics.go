// Package metrics 提供基于Prometheus的指标收集
//
// 指标类型选择:
//   - 计数用Counter:请求数、新增图书数、事件发布数
//   - 瞬时值用Gauge:在途请求数、当前图书数量、熔断器状态
//   - 分布用Histogram:请求耗时
//
// InitMetrics必须在暴露/metrics端点之前调用一次。
// 未初始化时所有Record*/Observe*辅助函数都是空操作,单元测试无需注册指标。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数
	// 标签:method、path(路由模板,如 /books/:id)、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	BooksCreatedTotal prometheus.Counter
	BooksUpdatedTotal prometheus.Counter
	BooksDeletedTotal prometheus.Counter

	// BooksStored 当前存储的图书数量
	BooksStored prometheus.Gauge

	// 熔断器指标

	// CircuitBreakerState 熔断器状态 0=CLOSED, 1=OPEN, 2=HALF_OPEN
	CircuitBreakerState *prometheus.GaugeVec

	// CircuitBreakerRequests 标签:name、result(success/failure/rejected)
	CircuitBreakerRequests *prometheus.CounterVec

	// 消息队列指标

	// MessagesPublishedTotal 标签:exchange、routing_key、result(success/failure)
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有指标并注册到默认Registry,重复调用安全
func InitMetrics() {
	initOnce.Do(func() {
		register(promauto.With(prometheus.DefaultRegisterer))
	})
}

// register 创建所有指标
func register(factory promauto.Factory) {
	HTTPRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	BooksCreatedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "books_created_total",
			Help: "新增图书总数",
		},
	)

	BooksUpdatedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "books_updated_total",
			Help: "更新图书总数",
		},
	)

	BooksDeletedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "books_deleted_total",
			Help: "删除图书总数",
		},
	)

	BooksStored = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "books_stored",
			Help: "当前存储的图书数量",
		},
	)

	CircuitBreakerState = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "熔断器请求总数",
		},
		[]string{"name", "result"},
	)

	MessagesPublishedTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"exchange", "routing_key", "result"},
	)
}

// BookOp 图书变更类型
type BookOp string

const (
	BookCreated BookOp = "created"
	BookUpdated BookOp = "updated"
	BookDeleted BookOp = "deleted"
)

// RecordBookOp 记录一次成功的图书变更,并刷新当前图书数量
func RecordBookOp(op BookOp, stored int) {
	if BooksStored == nil {
		return
	}
	switch op {
	case BookCreated:
		BooksCreatedTotal.Inc()
	case BookUpdated:
		BooksUpdatedTotal.Inc()
	case BookDeleted:
		BooksDeletedTotal.Inc()
	}
	if stored >= 0 {
		BooksStored.Set(float64(stored))
	}
}

// RecordHTTPRequest 记录一次HTTP请求
func RecordHTTPRequest(method, path, status string, seconds float64) {
	if HTTPRequestsTotal == nil {
		return
	}
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// TrackInProgress 在途请求数+1,返回的函数用于-1
func TrackInProgress() func() {
	if HTTPRequestsInProgress == nil {
		return func() {}
	}
	HTTPRequestsInProgress.Inc()
	return HTTPRequestsInProgress.Dec
}

// RecordBreakerState 记录熔断器状态
func RecordBreakerState(name string, state int) {
	if CircuitBreakerState == nil {
		return
	}
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordBreakerRequest 记录熔断器请求结果
func RecordBreakerRequest(name, result string) {
	if CircuitBreakerRequests == nil {
		return
	}
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// RecordPublish 记录消息发布结果
func RecordPublish(exchange, routingKey string, err error) {
	if MessagesPublishedTotal == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	MessagesPublishedTotal.WithLabelValues(exchange, routingKey, result).Inc()
}

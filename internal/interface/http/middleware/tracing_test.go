package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/pkg/tracing"
)

func newTracedEngine(t *testing.T) (*gin.Engine, *tracetest.SpanRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	tp := tracing.NewProvider(nil, tracing.Sampler(1))
	tp.RegisterSpanProcessor(rec)
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})

	r := gin.New()
	r.Use(Logger(zap.NewNop()), Tracing())
	r.GET("/books/:bookId", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.NoRoute(func(c *gin.Context) { c.Status(http.StatusNotFound) })
	return r, rec
}

func spanAttr(attrs []attribute.KeyValue, key string) string {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value.Emit()
		}
	}
	return ""
}

func TestTracing_SpanNames(t *testing.T) {
	r, rec := newTracedEngine(t)

	for _, path := range []string{"/books/abc", "/nope/1", "/nope/2?x=1"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(RequestIDHeader, "req-"+path)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	spans := rec.Ended()
	require.Len(t, spans, 3)
	assert.Equal(t, "GET /books/:bookId", spans[0].Name())
	assert.Equal(t, "/books/:bookId", spanAttr(spans[0].Attributes(), "http.route"))
	assert.Equal(t, "req-/books/abc", spanAttr(spans[0].Attributes(), "http.request_id"))

	for _, s := range spans[1:] {
		assert.Equal(t, "GET unmatched", s.Name())
		assert.Equal(t, "unmatched", spanAttr(s.Attributes(), "http.route"))
		assert.Equal(t, "404", spanAttr(s.Attributes(), "http.status_code"))
	}
}

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// Metrics HTTP指标中间件
// path使用路由模板(/books/:id),避免每个ID产生一条时间序列;未匹配路由记为 "unmatched"
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		done := metrics.TrackInProgress()
		start := time.Now()

		c.Next()

		done()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}

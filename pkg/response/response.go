package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 响应状态
const (
	StatusSuccess = "success"
	StatusFail    = "fail"  // 客户端错误（4xx）
	StatusError   = "error" // 服务端错误（5xx）
)

// Response 统一响应结构
// 设计说明：
// 1. Status区分成功、客户端失败、服务端错误
// 2. Message是可读的提示信息，失败时必有
// 3. Data是业务数据，成功时返回
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 200成功响应
func Success(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, "", data)
}

// SuccessWithMessage 带提示信息的200成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	JSON(c, http.StatusOK, message, data)
}

// Created 201创建成功响应
func Created(c *gin.Context, message string, data interface{}) {
	JSON(c, http.StatusCreated, message, data)
}

// JSON 自定义状态码的成功响应
func JSON(c *gin.Context, httpCode int, message string, data interface{}) {
	c.JSON(httpCode, Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	err := uc.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	httpCode := appErr.HTTPStatus()

	status := StatusFail
	if !appErr.IsClientError() {
		status = StatusError
		// 内部错误只记录日志，不把原因返回给客户端
		zap.L().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Int("code", appErr.Code),
			zap.Error(err),
		)
	}

	_ = c.Error(err)
	c.JSON(httpCode, Response{
		Status:  status,
		Message: appErr.Message,
	})
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code是业务错误码，前三位即HTTP状态码（40402 → 404）
// 2. Message是返回给客户端的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较，使Wrap出来的副本仍能匹配预定义错误
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// HTTPStatus 由业务错误码推导HTTP状态码
func (e *AppError) HTTPStatus() int {
	status := e.Code / 100
	if status < 400 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}

// IsClientError 4xx错误
func (e *AppError) IsClientError() bool {
	status := e.HTTPStatus()
	return status >= 400 && status < 500
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// WithErr 复制预定义错误并附带内部原因
func (e *AppError) WithErr(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 400xx: 参数与业务规则校验失败
// - 404xx: 资源不存在
// - 500xx: 服务端错误

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeStorageError  = 50001 // 存储错误
	ErrCodeRedisError    = 50002 // Redis错误
	ErrCodeInconsistency = 50003 // 写入后校验失败

	// 资源错误（40400-40499）
	ErrCodeBookNotFound = 40402 // 图书不存在

	// 参数错误（40000-40099）
	ErrCodeInvalidParams    = 40000 // 参数错误
	ErrCodeBindError        = 40001 // 参数绑定失败
	ErrCodeNameRequired     = 40010 // 书名必填
	ErrCodeReadPageExceeded = 40011 // 已读页数超过总页数

	// 路由错误
	ErrCodeRouteNotFound    = 40404 // 路由不存在
	ErrCodeMethodNotAllowed = 40500 // 方法不允许
)

// =========================================
// 预定义错误
// =========================================

var (
	// 系统错误
	ErrInternal     = New(ErrCodeInternal, "internal server error")
	ErrStorageError = New(ErrCodeStorageError, "storage error")
	ErrRedisError   = New(ErrCodeRedisError, "cache error")

	// 资源不存在
	ErrRouteNotFound = New(ErrCodeRouteNotFound, "route not found")

	// 参数错误
	ErrInvalidParams    = New(ErrCodeInvalidParams, "invalid parameters")
	ErrBindError        = New(ErrCodeBindError, "invalid request body")
	ErrMethodNotAllowed = New(ErrCodeMethodNotAllowed, "method not allowed")
)

// =========================================
// 辅助函数
// =========================================

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "internal server error")
}

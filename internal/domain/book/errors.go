package book

import (
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "book not found")

	// ErrNameRequired 未填写书名
	ErrNameRequired = apperrors.New(apperrors.ErrCodeNameRequired, "name is required")

	// ErrReadPageExceeded 已读页数超过总页数
	ErrReadPageExceeded = apperrors.New(apperrors.ErrCodeReadPageExceeded, "readPage cannot exceed pageCount")

	// ErrInconsistentWrite 写入后回读失败
	ErrInconsistentWrite = apperrors.New(apperrors.ErrCodeInconsistency, "book could not be added")
)

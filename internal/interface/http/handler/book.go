package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// 成功提示
const (
	MsgBookAdded   = "book added"
	MsgBookUpdated = "book updated"
	MsgBookDeleted = "book deleted"
)

// BookHandler 图书HTTP处理器
// 职责:解析请求 → 调用用例 → 写响应,不包含业务规则
type BookHandler struct {
	addBookUseCase    *appbook.AddBookUseCase
	listBooksUseCase  *appbook.ListBooksUseCase
	getBookUseCase    *appbook.GetBookUseCase
	updateBookUseCase *appbook.UpdateBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	addBookUseCase *appbook.AddBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		addBookUseCase:    addBookUseCase,
		listBooksUseCase:  listBooksUseCase,
		getBookUseCase:    getBookUseCase,
		updateBookUseCase: updateBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
	}
}

// AddBook 新增图书
// @Summary      新增图书
// @Description  书名必填,readPage不能大于pageCount;finished由服务端计算
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        request body dto.BookRequest true "图书信息"
// @Success      201 {object} response.Response{data=dto.AddBookData}
// @Failure      400 {object} response.Response "书名缺失/已读页数超过总页数/请求体格式错误"
// @Failure      500 {object} response.Response "写入失败"
// @Router       /books [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	req, ok := bindBookRequest(c)
	if !ok {
		return
	}

	result, err := h.addBookUseCase.Execute(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, MsgBookAdded, dto.AddBookData{BookID: result.BookID})
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  按插入顺序返回全部图书的id、name、publisher,可按书名关键词(大小写不敏感)过滤
// @Tags         books
// @Produce      json
// @Param        name query string false "书名关键词"
// @Success      200 {object} response.Response{data=dto.ListBooksData}
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var q dto.ListBooksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperrors.ErrInvalidParams.WithErr(err))
		return
	}

	result, err := h.listBooksUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{Name: q.Name})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewListBooksData(result))
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         books
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response{data=dto.GetBookData}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	detail, err := h.getBookUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewGetBookData(detail))
}

// UpdateBook 更新图书
// @Summary      更新图书
// @Description  整体替换可编辑字段;请求校验先于存在性检查
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id path string true "图书ID"
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "书名缺失/已读页数超过总页数/请求体格式错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	req, ok := bindBookRequest(c)
	if !ok {
		return
	}

	if err := h.updateBookUseCase.Execute(c.Request.Context(), c.Param("id"), req.ToInput()); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, MsgBookUpdated, nil)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Tags         books
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := h.deleteBookUseCase.Execute(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, MsgBookDeleted, nil)
}

// bindBookRequest 解析JSON请求体
// 空请求体按空对象处理,后续由领域校验报告书名缺失
func bindBookRequest(c *gin.Context) (dto.BookRequest, bool) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, apperrors.ErrBindError.WithErr(err))
		return req, false
	}
	return req, true
}

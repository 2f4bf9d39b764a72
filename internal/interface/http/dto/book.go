package dto

import (
	appbook "github.com/xiebiao/bookshelf/internal/application/book"
)

// BookRequest 新增/更新图书请求
// 字段校验(书名必填、readPage<=pageCount)在领域层完成,
// 以保证错误信息与检查顺序一致,这里不加binding tag
// name、pageCount、readPage 需要区分"未提供"和零值,使用Field
type BookRequest struct {
	Name      Field[string] `json:"name" swaggertype:"string" example:"Buku A"`
	Year      int           `json:"year" example:"2010"`
	Author    string        `json:"author" example:"John Doe"`
	Summary   string        `json:"summary" example:"Lorem ipsum dolor sit amet"`
	Publisher string        `json:"publisher" example:"Dicoding Indonesia"`
	PageCount Field[int]    `json:"pageCount" swaggertype:"integer" example:"100"`
	ReadPage  Field[int]    `json:"readPage" swaggertype:"integer" example:"25"`
	Reading   bool          `json:"reading" example:"false"`
}

// ToInput 转换为用例输入
func (r BookRequest) ToInput() appbook.BookInput {
	return appbook.BookInput{
		Name:      r.Name.Ptr(),
		Year:      r.Year,
		Author:    r.Author,
		Summary:   r.Summary,
		Publisher: r.Publisher,
		PageCount: r.PageCount.Ptr(),
		ReadPage:  r.ReadPage.Ptr(),
		Reading:   r.Reading,
	}
}

// ListBooksQuery 列表查询参数
type ListBooksQuery struct {
	Name string `form:"name" example:"har"`
}

// AddBookData 新增成功返回的数据
type AddBookData struct {
	BookID string `json:"bookId" example:"3f0c9b6e-9a0e-4c57-a1f2-6d3c1b2a9e10"`
}

// BookItem 列表项
type BookItem struct {
	ID        string `json:"id" example:"3f0c9b6e-9a0e-4c57-a1f2-6d3c1b2a9e10"`
	Name      string `json:"name" example:"Buku A"`
	Publisher string `json:"publisher" example:"Dicoding Indonesia"`
}

// ListBooksData 列表数据,books永不为null
type ListBooksData struct {
	Books []BookItem `json:"books"`
}

// BookResponse 图书详情
type BookResponse struct {
	ID         string `json:"id" example:"3f0c9b6e-9a0e-4c57-a1f2-6d3c1b2a9e10"`
	Name       string `json:"name" example:"Buku A"`
	Year       int    `json:"year" example:"2010"`
	Author     string `json:"author" example:"John Doe"`
	Summary    string `json:"summary" example:"Lorem ipsum dolor sit amet"`
	Publisher  string `json:"publisher" example:"Dicoding Indonesia"`
	PageCount  int    `json:"pageCount" example:"100"`
	ReadPage   int    `json:"readPage" example:"25"`
	Finished   bool   `json:"finished" example:"false"`
	Reading    bool   `json:"reading" example:"false"`
	InsertedAt string `json:"insertedAt" example:"2026-10-16T08:00:00.000Z"`
	UpdatedAt  string `json:"updatedAt" example:"2026-10-16T08:00:00.000Z"`
}

// GetBookData 详情数据
type GetBookData struct {
	Book BookResponse `json:"book"`
}

// NewListBooksData 列表结果转换
func NewListBooksData(resp *appbook.ListBooksResponse) ListBooksData {
	items := make([]BookItem, len(resp.Books))
	for i, b := range resp.Books {
		items[i] = BookItem{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
	}
	return ListBooksData{Books: items}
}

// NewGetBookData 详情结果转换
func NewGetBookData(d *appbook.BookDetail) GetBookData {
	return GetBookData{Book: BookResponse{
		ID:         d.ID,
		Name:       d.Name,
		Year:       d.Year,
		Author:     d.Author,
		Summary:    d.Summary,
		Publisher:  d.Publisher,
		PageCount:  d.PageCount,
		ReadPage:   d.ReadPage,
		Finished:   d.Finished,
		Reading:    d.Reading,
		InsertedAt: d.InsertedAt,
		UpdatedAt:  d.UpdatedAt,
	}}
}

// PingData 健康检查数据
type PingData struct {
	Message string `json:"message" example:"pong"`
	Books   int    `json:"books" example:"3"`
}

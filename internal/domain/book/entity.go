package book

import (
	"strings"
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. ID由服务端生成,创建后不可变
// 2. Finished是派生字段,写入时由请求中的 readPage/pageCount 计算
// 3. InsertedAt只在创建时写入一次,UpdatedAt在每次修改时刷新
type Book struct {
	ID         string
	Name       string // 书名
	Year       int    // 出版年份
	Author     string // 作者
	Summary    string // 简介
	Publisher  string // 出版社
	PageCount  int    // 总页数
	ReadPage   int    // 已读页数
	Reading    bool   // 是否在读
	Finished   bool   // 是否读完(派生)
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// Details 客户端可编辑的图书字段
// 创建与更新使用同一组字段,ID与InsertedAt不在其中
// Name、PageCount、ReadPage 为nil表示请求中没有该字段,空串和0都算已提供
type Details struct {
	Name      *string
	Year      int
	Author    string
	Summary   string
	Publisher string
	PageCount *int
	ReadPage  *int
	Reading   bool
}

// Validate 校验图书字段
// 校验顺序固定:先书名,再页数
// 页数比较只在两个字段都提供时进行
func (d Details) Validate() error {
	if d.Name == nil {
		return ErrNameRequired
	}
	if d.PageCount != nil && d.ReadPage != nil && *d.ReadPage > *d.PageCount {
		return ErrReadPageExceeded
	}
	return nil
}

// finished 已读页数等于总页数即读完
// 缺失的字段只与另一个缺失的字段相等
func (d Details) finished() bool {
	if d.PageCount == nil || d.ReadPage == nil {
		return d.PageCount == nil && d.ReadPage == nil
	}
	return *d.PageCount == *d.ReadPage
}

// NewBook 创建新图书(工厂方法)
// 调用方需先调用 Details.Validate
func NewBook(id string, d Details, now time.Time) *Book {
	b := &Book{
		ID:         id,
		InsertedAt: now,
	}
	b.Apply(d, now)
	return b
}

// Apply 用新字段整体替换图书内容(ID与InsertedAt保持不变)
func (b *Book) Apply(d Details, now time.Time) {
	b.Name = valueOf(d.Name)
	b.Year = d.Year
	b.Author = d.Author
	b.Summary = d.Summary
	b.Publisher = d.Publisher
	b.PageCount = valueOf(d.PageCount)
	b.ReadPage = valueOf(d.ReadPage)
	b.Reading = d.Reading
	b.Finished = d.finished()
	b.UpdatedAt = now
}

// valueOf 缺失字段按零值存储
func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// NameContains 书名是否包含关键字(不区分大小写)
func (b *Book) NameContains(keyword string) bool {
	return strings.Contains(strings.ToLower(b.Name), strings.ToLower(keyword))
}

// Clone 返回副本,避免调用方与存储共享同一指针
func (b *Book) Clone() *Book {
	if b == nil {
		return nil
	}
	cp := *b
	return &cp
}

package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(内存/SQLite/Redis缓存装饰)
// 2. 每个方法对实现而言都是一次原子操作,实现方负责并发安全
// 3. 返回的实体是副本,修改它不会影响存储
type Repository interface {
	// Create 追加图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书,不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id string) (*Book, error)

	// List 按插入顺序查询图书,params.Name非空时按书名子串过滤(不区分大小写)
	List(ctx context.Context, params ListParams) ([]*Book, error)

	// Update 整体替换图书内容
	// 实现方必须保留原记录的ID与InsertedAt,不存在返回ErrBookNotFound
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书,不存在返回ErrBookNotFound
	Delete(ctx context.Context, id string) error

	// Count 当前图书数量
	Count(ctx context.Context) (int, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Name string // 书名关键字,空字符串表示不过滤
}

// Package store 定义了记录仓库所依赖的远程表存储抽象.
// 该存储只提供等值条件查询, 单字段排序, 行数上限和按主键的增删改:
// 没有join, 没有事务, 也没有范围谓词, 所有范围与模糊过滤都由上层在
// 取回数据之后完成.
package store

import "context"

// Row 一行数据, 字段名到值的映射
type Row map[string]interface{}

// OrderBy 单字段排序
type OrderBy struct {
	Field string
	Desc  bool
}

type TableStore interface {
	// Select 等值条件查询, conditions为nil时返回全表(受limit限制), limit<=0时不限制
	Select(ctx context.Context, table string, conditions map[string]interface{}, orderBy OrderBy, limit int) ([]Row, error)
	// Insert 插入一行, 返回包含存储分配主键的完整行
	Insert(ctx context.Context, table string, fields Row) (Row, error)
	// Update 按主键更新给定字段, 返回更新后的完整行
	Update(ctx context.Context, table string, fields Row, id int64) (Row, error)
	// Delete 按主键永久删除一行
	Delete(ctx context.Context, table string, id int64) error
}

package dto

import (
	"bytes"
	"encoding/json"
)

// Field 可区分"缺少该键"与"值为null"的JSON字段
// 键不存在时 UnmarshalJSON 不会被调用,Set 保持false
type Field[T any] struct {
	Set   bool
	Value *T // null 时为nil
}

// UnmarshalJSON 实现 json.Unmarshaler
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	f.Value = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

// MarshalJSON 实现 json.Marshaler,未设置或null时输出null
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}

// Ptr 已提供时返回值的指针(null按零值处理),缺失时返回nil
func (f Field[T]) Ptr() *T {
	if !f.Set {
		return nil
	}
	if f.Value == nil {
		var zero T
		return &zero
	}
	v := *f.Value
	return &v
}

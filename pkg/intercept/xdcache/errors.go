package xdcache

import "errors"

var (
	// ErrNilResolver 表示创建缓存时未提供决策解析器。
	ErrNilResolver = errors.New("xdcache: nil resolver")

	// ErrNilType 表示注册时提供了 nil 类型。
	ErrNilType = errors.New("xdcache: nil reflect.Type provided")

	// ErrNotConcrete 表示注册的类型不是具体类型（如接口）。
	// 接口不注册，其查询经实现定位转发到具体类型。
	ErrNotConcrete = errors.New("xdcache: type is not a concrete type")
)

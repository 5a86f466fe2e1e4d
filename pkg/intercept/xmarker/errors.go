package xmarker

import "errors"

var (
	// ErrNilType 表示登记时提供了 nil 类型。
	ErrNilType = errors.New("xmarker: nil reflect.Type provided")

	// ErrEmptyMethodName 表示登记方法标记时提供了空方法名。
	ErrEmptyMethodName = errors.New("xmarker: empty method name provided")
)

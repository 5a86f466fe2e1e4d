package xtap

import "errors"

var (
	// ErrNilCache 表示创建 Tap 时未提供决策缓存。
	ErrNilCache = errors.New("xtap: nil decision cache")

	// ErrNilFn 表示 Invoke 收到 nil 目标函数。
	ErrNilFn = errors.New("xtap: nil target function")
)

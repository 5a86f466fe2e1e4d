package xruleconf

import "errors"

var (
	// ErrEmptyPath 表示配置文件路径为空。
	ErrEmptyPath = errors.New("xruleconf: empty path")

	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xruleconf: unsupported format")

	// ErrLoadFailed 表示配置文件读取失败。
	ErrLoadFailed = errors.New("xruleconf: load failed")

	// ErrParseFailed 表示配置数据解析失败。
	ErrParseFailed = errors.New("xruleconf: parse failed")

	// ErrInvalidRule 表示规则条目非法（行为/级别取值错误或模式畸形）。
	ErrInvalidRule = errors.New("xruleconf: invalid rule")
)

package xrule

import "errors"

var (
	// ErrEmptyPattern 表示规则模式为空。
	ErrEmptyPattern = errors.New("xrule: empty pattern")

	// ErrBadWildcard 表示通配符出现在非尾部位置。
	ErrBadWildcard = errors.New("xrule: wildcard only allowed in trailing position")
)

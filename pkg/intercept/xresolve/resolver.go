package xresolve

import (
	"reflect"

	"github.com/omeyang/xintercept/pkg/intercept/xident"
	"github.com/omeyang/xintercept/pkg/intercept/xmarker"
	"github.com/omeyang/xintercept/pkg/intercept/xpolicy"
	"github.com/omeyang/xintercept/pkg/intercept/xrule"
)

// Resolver 按固定优先级合成方法的拦截决策。
//
// Resolver 不可变、无内部状态，可被任意多个 goroutine 并发使用。
type Resolver struct {
	inspector     *xmarker.Inspector
	table         *xrule.Table
	autoIntercept bool
	defaultDec    xpolicy.Decision
}

// Option 定义 Resolver 的可选配置函数类型。
type Option func(*Resolver)

// WithAutoIntercept 设置全局自动拦截开关。
// 开启后，无标记且无规则命中的方法返回默认决策而非"不拦截"。
func WithAutoIntercept(enabled bool) Option {
	return func(r *Resolver) {
		r.autoIntercept = enabled
	}
}

// WithDefaultDecision 覆盖自动拦截时使用的默认决策。
// 仅在 WithAutoIntercept(true) 时生效。
func WithDefaultDecision(d xpolicy.Decision) Option {
	return func(r *Resolver) {
		r.defaultDec = d
	}
}

// New 创建决策解析器。
//
// inspector 为 nil 时视为空标记表（一切依赖配置与默认策略）；
// table 为 nil 时视为空规则表。自动拦截默认关闭。
func New(inspector *xmarker.Inspector, table *xrule.Table, opts ...Option) *Resolver {
	if inspector == nil {
		inspector = xmarker.NewInspector(nil)
	}
	if table == nil {
		table, _ = xrule.NewTable()
	}
	r := &Resolver{
		inspector:  inspector,
		table:      table,
		defaultDec: xpolicy.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Resolve 计算 t 上方法 method 的最终决策。
// 返回 false 表示不拦截。Resolve 是纯计算，永不失败。
func (r *Resolver) Resolve(t reflect.Type, method string) (xpolicy.Decision, bool) {
	report := r.inspector.Inspect(t, method)
	if report.Disabled {
		return xpolicy.Decision{}, false
	}
	if report.Decided {
		return report.Decision, true
	}

	if d, ok := r.table.Match(xident.TypeName(t)); ok {
		return d, true
	}

	if r.autoIntercept {
		return r.defaultDec, true
	}
	return xpolicy.Decision{}, false
}

// TypeDisabled 报告 t 是否被类型级禁用标记整体禁用。
func (r *Resolver) TypeDisabled(t reflect.Type) bool {
	return r.inspector.TypeDisabled(t)
}

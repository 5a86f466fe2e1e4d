package xmarker

import (
	"reflect"

	"github.com/omeyang/xintercept/pkg/intercept/xpolicy"
)

// Report 是一次标记检视的结论。
type Report struct {
	// Disabled 为 true 表示存在禁用标记，终态为"不拦截"。
	Disabled bool

	// Decided 为 true 表示启用标记产生了决策；false 且未禁用时表示
	// 无任何标记，应落空到配置规则。
	Decided bool

	// Decision 启用标记推导出的完整决策，仅 Decided 为 true 时有效。
	Decision xpolicy.Decision
}

// Inspector 依据登记表检视方法与类型上的标记。
//
// Inspect 是方法静态元数据的纯函数，无副作用，可并发调用。
type Inspector struct {
	registry *Registry
}

// NewInspector 创建基于 registry 的检视器。registry 为 nil 时使用空表
// （一切方法都报告"无标记"）。
func NewInspector(registry *Registry) *Inspector {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Inspector{registry: registry}
}

// Inspect 检视 t 上方法 method 的标记并给出结论。
//
// 优先级：方法级禁用 > 类型级禁用 > 方法级启用 > 类型级启用 > 无标记。
// 禁用检查先于启用检查完成，类型级禁用因此压过方法级启用标记——
// 类型被整体禁用后，其下任何方法都不再被拦截。
func (i *Inspector) Inspect(t reflect.Type, method string) Report {
	methodMarkers := i.registry.MethodMarkers(t, method)
	typeMarkers := i.registry.TypeMarkers(t)

	if hasDisabled(methodMarkers) || hasDisabled(typeMarkers) {
		return Report{Disabled: true}
	}

	if d, ok := merge(methodMarkers); ok {
		return Report{Decided: true, Decision: d}
	}
	if d, ok := merge(typeMarkers); ok {
		return Report{Decided: true, Decision: d}
	}
	return Report{}
}

// TypeDisabled 报告 t 是否存在类型级禁用标记（与各方法的标记无关）。
// 决策缓存用它作为整型短路标志。
func (i *Inspector) TypeDisabled(t reflect.Type) bool {
	return hasDisabled(i.registry.TypeMarkers(t))
}

func hasDisabled(markers []Marker) bool {
	for _, m := range markers {
		if m.disabled {
			return true
		}
	}
	return false
}

// merge 将同一级别上的启用标记合并为一个决策。
//
// 行为按位或（input+output 共存即 both）；级别取显式配置中数值更小
// （更详细）者；target 取声明顺序第一个非空值；失败级别取第一个显式
// 配置值。全部未配置的字段由 xpolicy.New 补齐默认值。
func merge(markers []Marker) (xpolicy.Decision, bool) {
	behavior := xpolicy.BehaviorNone
	var level, excLevel *xpolicy.Level
	target := ""

	for _, m := range markers {
		if m.disabled || m.behavior == xpolicy.BehaviorNone {
			continue
		}
		behavior |= m.behavior
		if m.level != nil {
			if level == nil {
				level = m.level
			} else {
				v := level.MoreVerbose(*m.level)
				level = &v
			}
		}
		if m.exceptionLevel != nil && excLevel == nil {
			excLevel = m.exceptionLevel
		}
		if target == "" && m.target != "" {
			target = m.target
		}
	}

	if behavior == xpolicy.BehaviorNone {
		return xpolicy.Decision{}, false
	}

	opts := make([]xpolicy.Option, 0, 3)
	if level != nil {
		opts = append(opts, xpolicy.WithLevel(*level))
	}
	if excLevel != nil {
		opts = append(opts, xpolicy.WithExceptionLevel(*excLevel))
	}
	if target != "" {
		opts = append(opts, xpolicy.WithTarget(target))
	}
	return xpolicy.New(behavior, opts...), true
}

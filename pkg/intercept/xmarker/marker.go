package xmarker

import (
	"github.com/omeyang/xintercept/pkg/intercept/xpolicy"
)

// Marker 是附着在方法或类型上的一条声明式拦截意图。
//
// Marker 不可变，由服务实现者在登记阶段产生，生命周期与进程一致
// （它是编译期事实的运行时表达，不是运行时状态）。
type Marker struct {
	disabled bool
	behavior xpolicy.Behavior

	// 以下为可选覆盖，nil/空表示未配置。
	level          *xpolicy.Level
	exceptionLevel *xpolicy.Level
	target         string
}

// Option 定义启用类标记的可选配置函数类型。
type Option func(*Marker)

// WithLevel 覆盖正常完成时的记录级别。
func WithLevel(level xpolicy.Level) Option {
	return func(m *Marker) {
		l := level
		m.level = &l
	}
}

// WithExceptionLevel 覆盖失败时的记录级别。
func WithExceptionLevel(level xpolicy.Level) Option {
	return func(m *Marker) {
		l := level
		m.exceptionLevel = &l
	}
}

// WithTarget 指定目标 sink 名称。
func WithTarget(target string) Option {
	return func(m *Marker) {
		m.target = target
	}
}

// Disabled 返回禁用拦截的标记。
func Disabled() Marker {
	return Marker{disabled: true}
}

// CaptureInput 返回捕获入参的启用标记。
func CaptureInput(opts ...Option) Marker {
	return enable(xpolicy.BehaviorInput, opts)
}

// CaptureOutput 返回捕获出参的启用标记。
func CaptureOutput(opts ...Option) Marker {
	return enable(xpolicy.BehaviorOutput, opts)
}

// CaptureBoth 返回同时捕获入参与出参的启用标记。
func CaptureBoth(opts ...Option) Marker {
	return enable(xpolicy.BehaviorBoth, opts)
}

func enable(behavior xpolicy.Behavior, opts []Option) Marker {
	m := Marker{behavior: behavior}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

// IsDisabled 报告此标记是否为禁用标记。
func (m Marker) IsDisabled() bool {
	return m.disabled
}

// Behavior 返回此标记声明的捕获行为；禁用标记返回 BehaviorNone。
func (m Marker) Behavior() xpolicy.Behavior {
	if m.disabled {
		return xpolicy.BehaviorNone
	}
	return m.behavior
}

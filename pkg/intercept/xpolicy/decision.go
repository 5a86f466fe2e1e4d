package xpolicy

// Decision 是一个方法的最终拦截决策。
//
// Decision 是不可变值对象：由决策解析器对每个方法产生一次，之后只读。
// 更新以新值表达，不做原地修改。必须通过 [New] 构造，保证默认值
// （Level=Info、ExceptionLevel=Error）被正确补齐；零值 Decision 的
// ExceptionLevel 为 Info，不是有效的决策。
type Decision struct {
	// Behavior 捕获行为。
	Behavior Behavior

	// Level 正常完成时的记录级别。
	Level Level

	// ExceptionLevel 调用失败时的记录级别。
	ExceptionLevel Level

	// Target 目标 sink 名称，空字符串表示使用默认 sink。
	Target string
}

// Option 定义 Decision 的可选配置函数类型。
type Option func(*Decision)

// WithLevel 设置正常完成时的记录级别。
func WithLevel(level Level) Option {
	return func(d *Decision) {
		d.Level = level
	}
}

// WithExceptionLevel 设置失败时的记录级别。
func WithExceptionLevel(level Level) Option {
	return func(d *Decision) {
		d.ExceptionLevel = level
	}
}

// WithTarget 设置目标 sink 名称。
func WithTarget(target string) Option {
	return func(d *Decision) {
		d.Target = target
	}
}

// New 构造一个决策值。
// 未显式配置时，Level 默认为 Info，ExceptionLevel 默认为 Error，
// Target 默认为空（使用默认 sink）。
func New(behavior Behavior, opts ...Option) Decision {
	d := Decision{
		Behavior:       behavior,
		Level:          LevelInfo,
		ExceptionLevel: LevelError,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	return d
}

// Default 返回自动拦截开启时使用的默认决策：
// 捕获入参、Info 级别、失败 Error 级别、默认 sink。
func Default() Decision {
	return New(BehaviorInput)
}

package xtap

import (
	"context"
	"log/slog"
	"time"

	"github.com/omeyang/xintercept/pkg/intercept/xpolicy"
)

// Call 描述一次已完成的被拦截调用。
type Call struct {
	// Method 方法的可读标识，通常为 "类型全名.方法名"。
	Method string

	// Args 调用入参。仅在决策捕获入参时被记录。
	Args []any

	// Results 调用出参。仅在决策捕获出参时被记录。
	Results []any

	// Err 调用失败时的错误，nil 表示正常完成。
	Err error

	// Duration 调用耗时。
	Duration time.Duration
}

// Recorder 按决策把调用记录路由到命名 sink。
// 路由表在构造后只读，可并发使用。
type Recorder struct {
	fallback *slog.Logger
	sinks    map[string]*slog.Logger
}

// RecorderOption 定义 Recorder 的可选配置函数类型。
type RecorderOption func(*Recorder)

// WithSink 登记一个命名 sink。logger 为 nil 的登记被忽略。
func WithSink(name string, logger *slog.Logger) RecorderOption {
	return func(r *Recorder) {
		if name != "" && logger != nil {
			r.sinks[name] = logger
		}
	}
}

// NewRecorder 创建记录器。fallback 为默认 sink（Decision.Target 为空
// 或指向未登记 sink 时使用）；nil 时回退 slog.Default()。
func NewRecorder(fallback *slog.Logger, opts ...RecorderOption) *Recorder {
	if fallback == nil {
		fallback = slog.Default()
	}
	r := &Recorder{
		fallback: fallback,
		sinks:    make(map[string]*slog.Logger),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// sink 返回 target 对应的 logger。
// 未知 target 回退默认 sink——投递是可选增强，不因配置漂移而丢记录。
func (r *Recorder) sink(target string) *slog.Logger {
	if target != "" {
		if logger, ok := r.sinks[target]; ok {
			return logger
		}
	}
	return r.fallback
}

// Record 按决策记录一次调用。
// 正常完成使用 d.Level，失败使用 d.ExceptionLevel；入参/出参只在
// 对应捕获行为开启时进入记录。
func (r *Recorder) Record(ctx context.Context, d xpolicy.Decision, call Call) {
	logger := r.sink(d.Target)

	level := d.Level.Slog()
	msg := "call completed"
	if call.Err != nil {
		level = d.ExceptionLevel.Slog()
		msg = "call failed"
	}
	if !logger.Enabled(ctx, level) {
		return
	}

	attrs := make([]slog.Attr, 0, 5)
	attrs = append(attrs,
		slog.String("method", call.Method),
		slog.Duration("duration", call.Duration),
	)
	if d.Behavior.CapturesInput() {
		attrs = append(attrs, slog.Any("input", call.Args))
	}
	if d.Behavior.CapturesOutput() && call.Err == nil {
		attrs = append(attrs, slog.Any("output", call.Results))
	}
	if call.Err != nil {
		attrs = append(attrs, slog.String("error", call.Err.Error()))
	}

	logger.LogAttrs(ctx, level, msg, attrs...)
}

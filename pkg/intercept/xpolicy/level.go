package xpolicy

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level 严重级别，与 slog.Level 数值兼容。
//
// 数值越小越详细：Trace(-8) < Debug(-4) < Info(0) < Warn(4) < Error(8)。
// 标记合并规则依赖此方向（取数值更小者作为"更详细"的级别）。
type Level slog.Level

// 严重级别常量，除 Trace 外与 slog 保持一致。
const (
	// LevelTrace 比 Debug 更详细的级别，slog 无对应常量，按 slog 的
	// 级别间距（4）向下扩展。
	LevelTrace = Level(slog.LevelDebug - 4)

	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// MoreVerbose 返回 l 与 other 中更详细（数值更小）的级别。
func (l Level) MoreVerbose(other Level) Level {
	if other < l {
		return other
	}
	return l
}

// Slog 返回对应的 slog.Level，供日志输出侧使用。
func (l Level) Slog() slog.Level {
	return slog.Level(l)
}

// String 返回级别的字符串表示。
//
// 对于标准级别返回大写名称（TRACE/DEBUG/INFO/WARN/ERROR），
// 非标准级别委托给 slog.Level.String()（如 "INFO+2"）。
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return slog.Level(l).String()
	}
}

// MarshalText 实现 encoding.TextMarshaler 接口。
//
// 支持配置序列化场景（YAML/JSON）。
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler 接口。
//
// 支持从配置文件直接反序列化严重级别。
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel 解析字符串为严重级别。
// 支持 trace/debug/info/warn/warning/error（大小写不敏感），
// 输入会自动 TrimSpace。
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("xpolicy: unknown level %q", s)
	}
}

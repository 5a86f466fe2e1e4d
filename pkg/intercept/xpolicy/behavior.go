package xpolicy

import (
	"fmt"
	"strconv"
	"strings"
)

// Behavior 表示一次调用中被捕获的部分，按位组合。
//
// 设计决策: 使用位掩码而非枚举序号，使"入参标记 + 出参标记共存等价于
// 捕获双方"这一合并规则退化为一次按位或，无需特判。
type Behavior uint8

const (
	// BehaviorNone 不捕获任何内容。
	BehaviorNone Behavior = 0

	// BehaviorInput 捕获入参。
	BehaviorInput Behavior = 1 << 0

	// BehaviorOutput 捕获出参。
	BehaviorOutput Behavior = 1 << 1

	// BehaviorBoth 同时捕获入参与出参。
	BehaviorBoth Behavior = BehaviorInput | BehaviorOutput
)

// CapturesInput 报告是否捕获入参。
func (b Behavior) CapturesInput() bool {
	return b&BehaviorInput != 0
}

// CapturesOutput 报告是否捕获出参。
func (b Behavior) CapturesOutput() bool {
	return b&BehaviorOutput != 0
}

// String 返回行为的可读字符串表示。
func (b Behavior) String() string {
	switch b {
	case BehaviorNone:
		return "none"
	case BehaviorInput:
		return "input"
	case BehaviorOutput:
		return "output"
	case BehaviorBoth:
		return "both"
	default:
		return "Behavior(" + strconv.Itoa(int(b)) + ")"
	}
}

// ParseBehavior 解析字符串为捕获行为。
// 支持 none/input/output/both（大小写不敏感），输入会自动 TrimSpace。
func ParseBehavior(s string) (Behavior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return BehaviorNone, nil
	case "input":
		return BehaviorInput, nil
	case "output":
		return BehaviorOutput, nil
	case "both":
		return BehaviorBoth, nil
	default:
		return BehaviorNone, fmt.Errorf("xpolicy: unknown behavior %q", s)
	}
}

// MarshalText 实现 encoding.TextMarshaler 接口。
func (b Behavior) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler 接口。
func (b *Behavior) UnmarshalText(data []byte) error {
	parsed, err := ParseBehavior(string(data))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

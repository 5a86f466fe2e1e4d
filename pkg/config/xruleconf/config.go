package xruleconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/xintercept/pkg/intercept/xpolicy"
	"github.com/omeyang/xintercept/pkg/intercept/xrule"
)

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式（推荐用于 K8s ConfigMap）。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// delim koanf 的键路径分隔符。
const delim = "."

// fileSchema 配置文件的反序列化结构。
type fileSchema struct {
	AutoIntercept bool       `koanf:"auto_intercept"`
	Rules         []ruleSpec `koanf:"rules"`
}

// ruleSpec 单条规则的原始文本形态。
// 级别与行为以字符串承载，解析交给 xpolicy 的 Parse 系列函数，
// 保证取值校验与引擎一致。
type ruleSpec struct {
	Pattern        string `koanf:"pattern"`
	Behavior       string `koanf:"behavior"`
	Level          string `koanf:"level"`
	ExceptionLevel string `koanf:"exception_level"`
	Target         string `koanf:"target"`
}

// Config 是已加载、已校验的规则配置。不可变。
type Config struct {
	autoIntercept bool
	table         *xrule.Table
}

// New 从文件路径创建规则配置。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
func New(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return NewFromBytes(data, format)
}

// NewFromBytes 从字节数据创建规则配置，需显式指定格式。
// 空数据产生空规则表与关闭的自动拦截开关。
func NewFromBytes(data []byte, format Format) (*Config, error) {
	if !isValidFormat(format) {
		return nil, ErrUnsupportedFormat
	}

	var schema fileSchema
	if len(data) > 0 {
		k := koanf.New(delim)
		if err := loadData(k, data, format); err != nil {
			return nil, err
		}
		if err := k.Unmarshal("", &schema); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}

	table, err := buildTable(schema.Rules)
	if err != nil {
		return nil, err
	}
	return &Config{
		autoIntercept: schema.AutoIntercept,
		table:         table,
	}, nil
}

// AutoIntercept 返回全局自动拦截开关。
func (c *Config) AutoIntercept() bool {
	return c.autoIntercept
}

// Table 返回已校验的规则表。
func (c *Config) Table() *xrule.Table {
	return c.table
}

// buildTable 将原始规则解析为 xrule.Table。
// 行为必填；级别与 target 可选，缺省由 xpolicy.New 补齐。
func buildTable(specs []ruleSpec) (*xrule.Table, error) {
	rules := make([]xrule.Rule, 0, len(specs))
	for i, spec := range specs {
		behavior, err := xpolicy.ParseBehavior(spec.Behavior)
		if err != nil {
			return nil, fmt.Errorf("%w (rule %d %q): %w", ErrInvalidRule, i, spec.Pattern, err)
		}

		opts := make([]xpolicy.Option, 0, 3)
		if spec.Level != "" {
			level, err := xpolicy.ParseLevel(spec.Level)
			if err != nil {
				return nil, fmt.Errorf("%w (rule %d %q): %w", ErrInvalidRule, i, spec.Pattern, err)
			}
			opts = append(opts, xpolicy.WithLevel(level))
		}
		if spec.ExceptionLevel != "" {
			level, err := xpolicy.ParseLevel(spec.ExceptionLevel)
			if err != nil {
				return nil, fmt.Errorf("%w (rule %d %q): %w", ErrInvalidRule, i, spec.Pattern, err)
			}
			opts = append(opts, xpolicy.WithExceptionLevel(level))
		}
		if spec.Target != "" {
			opts = append(opts, xpolicy.WithTarget(spec.Target))
		}

		rules = append(rules, xrule.Rule{
			Pattern:  spec.Pattern,
			Decision: xpolicy.New(behavior, opts...),
		})
	}

	table, err := xrule.NewTable(rules...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}
	return table, nil
}

// detectFormat 根据文件扩展名检测配置格式。
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %s", ErrUnsupportedFormat, ext)
	}
}

// isValidFormat 检查格式是否有效。
func isValidFormat(format Format) bool {
	switch format {
	case FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// loadData 加载数据到 koanf 实例。
func loadData(k *koanf.Koanf, data []byte, format Format) error {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return ErrUnsupportedFormat
	}
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return nil
}

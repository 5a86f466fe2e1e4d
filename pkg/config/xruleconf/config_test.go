package xruleconf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/omeyang/xintercept/pkg/intercept/xpolicy"
)

const sampleYAML = `
auto_intercept: true
rules:
  - pattern: "billing.Service"
    behavior: input
  - pattern: "billing.*"
    behavior: output
    level: debug
    exception_level: warn
    target: audit
`

const sampleJSON = `{
  "auto_intercept": false,
  "rules": [
    {"pattern": "orders.Service", "behavior": "both", "level": "warn"}
  ]
}`

func TestNewFromBytes_YAML(t *testing.T) {
	cfg, err := NewFromBytes([]byte(sampleYAML), FormatYAML)
	if err != nil {
		t.Fatalf("NewFromBytes failed: %v", err)
	}

	if !cfg.AutoIntercept() {
		t.Error("auto_intercept should be true")
	}

	t.Run("exact rule", func(t *testing.T) {
		d, ok := cfg.Table().Match("billing.Service")
		if !ok {
			t.Fatal("expected exact match")
		}
		if d.Behavior != xpolicy.BehaviorInput {
			t.Errorf("Behavior = %v, expected input", d.Behavior)
		}
		// 未配置的字段补默认值。
		if d.Level != xpolicy.LevelInfo || d.ExceptionLevel != xpolicy.LevelError {
			t.Errorf("unexpected defaults: %+v", d)
		}
	})

	t.Run("wildcard rule", func(t *testing.T) {
		d, ok := cfg.Table().Match("billing.OtherService")
		if !ok {
			t.Fatal("expected wildcard match")
		}
		if d.Behavior != xpolicy.BehaviorOutput {
			t.Errorf("Behavior = %v, expected output", d.Behavior)
		}
		if d.Level != xpolicy.LevelDebug {
			t.Errorf("Level = %v, expected DEBUG", d.Level)
		}
		if d.ExceptionLevel != xpolicy.LevelWarn {
			t.Errorf("ExceptionLevel = %v, expected WARN", d.ExceptionLevel)
		}
		if d.Target != "audit" {
			t.Errorf("Target = %q, expected %q", d.Target, "audit")
		}
	})
}

func TestNewFromBytes_JSON(t *testing.T) {
	cfg, err := NewFromBytes([]byte(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatalf("NewFromBytes failed: %v", err)
	}
	if cfg.AutoIntercept() {
		t.Error("auto_intercept should be false")
	}
	d, ok := cfg.Table().Match("orders.Service")
	if !ok {
		t.Fatal("expected match")
	}
	if d.Behavior != xpolicy.BehaviorBoth || d.Level != xpolicy.LevelWarn {
		t.Errorf("unexpected decision: %+v", d)
	}
}

func TestNewFromBytes_Invalid(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
	}{
		{"unknown behavior", `rules: [{pattern: "a.B", behavior: "everything"}]`, ErrInvalidRule},
		{"missing behavior", `rules: [{pattern: "a.B"}]`, ErrInvalidRule},
		{"unknown level", `rules: [{pattern: "a.B", behavior: input, level: loud}]`, ErrInvalidRule},
		{"unknown exception level", `rules: [{pattern: "a.B", behavior: input, exception_level: loud}]`, ErrInvalidRule},
		{"empty pattern", `rules: [{pattern: "", behavior: input}]`, ErrInvalidRule},
		{"infix wildcard", `rules: [{pattern: "a.*B", behavior: input}]`, ErrInvalidRule},
		{"malformed yaml", "rules: [", ErrParseFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFromBytes([]byte(tc.data), FormatYAML)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestNewFromBytes_EmptyData(t *testing.T) {
	cfg, err := NewFromBytes(nil, FormatYAML)
	if err != nil {
		t.Fatalf("NewFromBytes failed: %v", err)
	}
	if cfg.AutoIntercept() {
		t.Error("empty config should disable auto-intercept")
	}
	if cfg.Table().Len() != 0 {
		t.Errorf("Len = %d, expected 0", cfg.Table().Len())
	}
}

func TestNewFromBytes_UnsupportedFormat(t *testing.T) {
	if _, err := NewFromBytes([]byte("{}"), Format("toml")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestNew_FromFile(t *testing.T) {
	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		if err := os.WriteFile(path, []byte(sampleYAML), 0o600); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		cfg, err := New(path)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if !cfg.AutoIntercept() {
			t.Error("auto_intercept should be true")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, err := New(""); !errors.Is(err, ErrEmptyPath) {
			t.Errorf("expected ErrEmptyPath, got %v", err)
		}
	})

	t.Run("unknown extension", func(t *testing.T) {
		if _, err := New("rules.toml"); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := New(filepath.Join(t.TempDir(), "absent.yaml")); !errors.Is(err, ErrLoadFailed) {
			t.Errorf("expected ErrLoadFailed, got %v", err)
		}
	})
}

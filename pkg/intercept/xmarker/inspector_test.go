package xmarker

import (
	"reflect"
	"testing"

	"github.com/omeyang/xintercept/pkg/intercept/xpolicy"
)

type paymentService struct{}

func (s *paymentService) Pay(amount int64) error { return nil }

var paymentType = reflect.TypeOf(&paymentService{})

func TestInspect_NoMarkers(t *testing.T) {
	insp := NewInspector(NewRegistry())
	report := insp.Inspect(paymentType, "Pay")
	if report.Disabled || report.Decided {
		t.Errorf("expected empty report, got %+v", report)
	}
}

func TestInspect_MethodDisable(t *testing.T) {
	reg := NewRegistry()
	if err := reg.SetMethod(paymentType, "Pay", Disabled()); err != nil {
		t.Fatalf("SetMethod failed: %v", err)
	}
	// 方法级禁用压过同方法的启用标记。
	if err := reg.SetMethod(paymentType, "Pay", CaptureBoth()); err != nil {
		t.Fatalf("SetMethod failed: %v", err)
	}

	report := NewInspector(reg).Inspect(paymentType, "Pay")
	if !report.Disabled {
		t.Error("expected disabled report")
	}
}

func TestInspect_TypeDisableBeatsMethodEnable(t *testing.T) {
	reg := NewRegistry()
	if err := reg.SetType(paymentType, Disabled()); err != nil {
		t.Fatalf("SetType failed: %v", err)
	}
	if err := reg.SetMethod(paymentType, "Pay", CaptureInput()); err != nil {
		t.Fatalf("SetMethod failed: %v", err)
	}

	report := NewInspector(reg).Inspect(paymentType, "Pay")
	if !report.Disabled {
		t.Error("type-level disable should outrank method-level enable")
	}
}

func TestInspect_MethodEnableBeatsTypeEnable(t *testing.T) {
	reg := NewRegistry()
	if err := reg.SetType(paymentType, CaptureInput(WithLevel(xpolicy.LevelInfo))); err != nil {
		t.Fatalf("SetType failed: %v", err)
	}
	if err := reg.SetMethod(paymentType, "Pay", CaptureBoth(WithLevel(xpolicy.LevelWarn))); err != nil {
		t.Fatalf("SetMethod failed: %v", err)
	}

	report := NewInspector(reg).Inspect(paymentType, "Pay")
	if !report.Decided {
		t.Fatal("expected decided report")
	}
	if report.Decision.Behavior != xpolicy.BehaviorBoth {
		t.Errorf("Behavior = %v, expected both", report.Decision.Behavior)
	}
	if report.Decision.Level != xpolicy.LevelWarn {
		t.Errorf("Level = %v, expected WARN", report.Decision.Level)
	}
}

func TestInspect_TypeEnableFallback(t *testing.T) {
	reg := NewRegistry()
	if err := reg.SetType(paymentType, CaptureOutput(WithLevel(xpolicy.LevelDebug))); err != nil {
		t.Fatalf("SetType failed: %v", err)
	}

	report := NewInspector(reg).Inspect(paymentType, "Pay")
	if !report.Decided {
		t.Fatal("expected decided report")
	}
	if report.Decision.Behavior != xpolicy.BehaviorOutput {
		t.Errorf("Behavior = %v, expected output", report.Decision.Behavior)
	}
	if report.Decision.Level != xpolicy.LevelDebug {
		t.Errorf("Level = %v, expected DEBUG", report.Decision.Level)
	}
}

func TestInspect_MergeInputOutput(t *testing.T) {
	t.Run("behavior and more verbose level", func(t *testing.T) {
		reg := NewRegistry()
		err := reg.SetMethod(paymentType, "Pay",
			CaptureInput(WithLevel(xpolicy.LevelWarn)),
			CaptureOutput(WithLevel(xpolicy.LevelDebug)),
		)
		if err != nil {
			t.Fatalf("SetMethod failed: %v", err)
		}

		report := NewInspector(reg).Inspect(paymentType, "Pay")
		if !report.Decided {
			t.Fatal("expected decided report")
		}
		if report.Decision.Behavior != xpolicy.BehaviorBoth {
			t.Errorf("Behavior = %v, expected both", report.Decision.Behavior)
		}
		// 合并取数值更小（更详细）的级别。
		if report.Decision.Level != xpolicy.LevelDebug {
			t.Errorf("Level = %v, expected DEBUG", report.Decision.Level)
		}
	})

	t.Run("first non-empty target wins", func(t *testing.T) {
		reg := NewRegistry()
		err := reg.SetMethod(paymentType, "Pay",
			CaptureInput(),
			CaptureOutput(WithTarget("audit")),
			CaptureOutput(WithTarget("other")),
		)
		if err != nil {
			t.Fatalf("SetMethod failed: %v", err)
		}

		report := NewInspector(reg).Inspect(paymentType, "Pay")
		if report.Decision.Target != "audit" {
			t.Errorf("Target = %q, expected %q", report.Decision.Target, "audit")
		}
	})

	t.Run("exception level defaults to error unless overridden", func(t *testing.T) {
		reg := NewRegistry()
		err := reg.SetMethod(paymentType, "Pay",
			CaptureInput(),
			CaptureOutput(WithExceptionLevel(xpolicy.LevelWarn)),
		)
		if err != nil {
			t.Fatalf("SetMethod failed: %v", err)
		}

		report := NewInspector(reg).Inspect(paymentType, "Pay")
		if report.Decision.ExceptionLevel != xpolicy.LevelWarn {
			t.Errorf("ExceptionLevel = %v, expected WARN", report.Decision.ExceptionLevel)
		}
	})

	t.Run("no configured level defaults to info", func(t *testing.T) {
		reg := NewRegistry()
		if err := reg.SetMethod(paymentType, "Pay", CaptureInput(), CaptureOutput()); err != nil {
			t.Fatalf("SetMethod failed: %v", err)
		}

		report := NewInspector(reg).Inspect(paymentType, "Pay")
		if report.Decision.Level != xpolicy.LevelInfo {
			t.Errorf("Level = %v, expected INFO", report.Decision.Level)
		}
		if report.Decision.ExceptionLevel != xpolicy.LevelError {
			t.Errorf("ExceptionLevel = %v, expected ERROR", report.Decision.ExceptionLevel)
		}
	})
}

func TestTypeDisabled(t *testing.T) {
	reg := NewRegistry()
	insp := NewInspector(reg)
	if insp.TypeDisabled(paymentType) {
		t.Error("expected not disabled")
	}

	if err := reg.SetType(paymentType, Disabled()); err != nil {
		t.Fatalf("SetType failed: %v", err)
	}
	if !insp.TypeDisabled(paymentType) {
		t.Error("expected disabled")
	}
}

func TestNewInspector_NilRegistry(t *testing.T) {
	insp := NewInspector(nil)
	report := insp.Inspect(paymentType, "Pay")
	if report.Disabled || report.Decided {
		t.Errorf("expected empty report, got %+v", report)
	}
}

package xpolicy

import (
	"log/slog"
	"testing"
)

func TestLevelOrdering(t *testing.T) {
	// 合并规则依赖"数值更小 = 更详细"，这里固定这一方向。
	ordered := []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("%v should be less than %v", ordered[i-1], ordered[i])
		}
	}
}

func TestLevel_MoreVerbose(t *testing.T) {
	t.Run("picks numerically lower", func(t *testing.T) {
		if got := LevelWarn.MoreVerbose(LevelDebug); got != LevelDebug {
			t.Errorf("MoreVerbose = %v, expected DEBUG", got)
		}
		if got := LevelDebug.MoreVerbose(LevelWarn); got != LevelDebug {
			t.Errorf("MoreVerbose = %v, expected DEBUG", got)
		}
	})

	t.Run("equal levels", func(t *testing.T) {
		if got := LevelInfo.MoreVerbose(LevelInfo); got != LevelInfo {
			t.Errorf("MoreVerbose = %v, expected INFO", got)
		}
	})
}

func TestLevel_String(t *testing.T) {
	cases := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "TRACE"},
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(2), "INFO+2"},
	}
	for _, tc := range cases {
		if got := tc.level.String(); got != tc.want {
			t.Errorf("String(%d) = %q, expected %q", tc.level, got, tc.want)
		}
	}
}

func TestLevel_Slog(t *testing.T) {
	if LevelWarn.Slog() != slog.LevelWarn {
		t.Error("LevelWarn should map to slog.LevelWarn")
	}
}

func TestParseLevel(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cases := []struct {
			in   string
			want Level
		}{
			{"trace", LevelTrace},
			{"debug", LevelDebug},
			{"INFO", LevelInfo},
			{" warn ", LevelWarn},
			{"warning", LevelWarn},
			{"Error", LevelError},
		}
		for _, tc := range cases {
			got, err := ParseLevel(tc.in)
			if err != nil {
				t.Errorf("ParseLevel(%q) failed: %v", tc.in, err)
				continue
			}
			if got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tc.in, got, tc.want)
			}
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := ParseLevel("verbose"); err == nil {
			t.Error("expected error for unknown level")
		}
	})
}

func TestLevel_TextRoundTrip(t *testing.T) {
	for _, level := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError} {
		data, err := level.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText failed: %v", err)
		}
		var back Level
		if err := back.UnmarshalText(data); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", data, err)
		}
		if back != level {
			t.Errorf("round trip = %v, expected %v", back, level)
		}
	}
}

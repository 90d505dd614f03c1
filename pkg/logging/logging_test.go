package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" INFO ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.WarnLevel,
		"bogus":   zerolog.WarnLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.Info().Msg("quiet")
	log.Warn().Str("key", "uav_report_history_v1").Msg("store: using empty value")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info message leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "store: using empty value") || !strings.Contains(out, "uav_report_history_v1") {
		t.Fatalf("expected warn message with field, got %q", out)
	}
}

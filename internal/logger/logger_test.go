package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbose, quiet bool
		want           zerolog.Level
	}{
		{false, false, zerolog.WarnLevel},
		{true, false, zerolog.DebugLevel},
		{false, true, zerolog.Disabled},
		{true, true, zerolog.Disabled},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.verbose, tt.quiet); got != tt.want {
			t.Errorf("LevelFor(%v, %v) = %v, want %v", tt.verbose, tt.quiet, got, tt.want)
		}
	}
}

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf, zerolog.WarnLevel)

	log.Debug().Msg("hidden")
	log.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("output = %q, want it to contain the warning", out)
	}
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf, zerolog.InfoLevel))

	log := FromContext(ctx)
	log.Info().Msg("test")
	if buf.Len() == 0 {
		t.Error("expected output from the logger stored in the context")
	}

	if FromContext(context.Background()).GetLevel() != zerolog.WarnLevel {
		t.Error("default logger level is not warn")
	}
}

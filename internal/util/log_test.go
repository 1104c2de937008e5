package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLoggerToRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "warn")

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line leaked past warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn line missing: %s", out)
	}
}

func TestNewLoggerToFallsBackToInfo(t *testing.T) {
	for _, level := range []string{"", "bogus"} {
		var buf bytes.Buffer
		log := NewLoggerTo(&buf, level)
		if log.GetLevel() != zerolog.InfoLevel {
			t.Fatalf("level %q: got %s, want info", level, log.GetLevel())
		}
	}
}

func TestNewLoggerToUppercaseLevel(t *testing.T) {
	var buf bytes.Buffer
	if log := NewLoggerTo(&buf, "DEBUG"); log.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("got %s, want debug", log.GetLevel())
	}
}

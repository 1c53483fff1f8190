package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.trai.ch/molt/internal/adapters/logger"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput(&buf)

	log.Info("resolving packages")
	log.Warn("unexpected lock version")
	log.Error(errors.New("boom"))

	out := buf.String()
	if !strings.Contains(out, "level=INFO") || !strings.Contains(out, "resolving packages") {
		t.Errorf("missing info line: %q", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "unexpected lock version") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "boom") {
		t.Errorf("missing error line: %q", out)
	}
}

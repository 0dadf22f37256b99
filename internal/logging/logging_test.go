package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goliatone/go-stepform/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "info", Format: config.FormatJSON}, &buf)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Debug().Msg("hidden")
	logger.Info().Str("key", "multiStepFormData").Msg("record persisted")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %q", buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry["message"] != "record persisted" || entry["app"] != "stepform" || entry["level"] != "info" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestNew_ConsoleDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{}, &buf)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info().Msg("quiet")
	logger.Warn().Msg("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") || !strings.Contains(out, "loud") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "loud"}, nil); err == nil {
		t.Fatalf("expected level error")
	}
	if _, err := New(config.LogConfig{Format: "xml"}, nil); err == nil {
		t.Fatalf("expected format error")
	}
}

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"DEBUG":   LevelDebug,
		" warn ":  LevelWarn,
		"warning": LevelWarn,
		"Error":   LevelError,
		"info":    LevelInfo,
		"verbose": LevelInfo,
		"":        LevelInfo,
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSlogLoggerWritesContextFields(t *testing.T) {
	var buf bytes.Buffer
	cfg := ConfigFrom("debug", "json")
	cfg.Output = &buf
	log := NewSlogLogger(cfg)

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithUserID(ctx, "user-1")
	ctx = WithLogger(ctx, log)

	Ctx(ctx).Info("analysis computed", String("phase", "Luteal"), Int("records", 4), Err(errors.New("boom")))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to decode log line %q: %v", buf.String(), err)
	}

	want := map[string]any{
		"msg":        "analysis computed",
		"request_id": "req-1",
		"user_id":    "user-1",
		"phase":      "Luteal",
		"records":    float64(4),
		"error":      "boom",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("Expected %s=%v, got %v", k, v, entry[k])
		}
	}
}

func TestSlogLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := ConfigFrom("warn", "text")
	cfg.Output = &buf
	log := NewSlogLogger(cfg)

	log.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("Expected info to be filtered at warn level, got %q", buf.String())
	}

	log.Warn("kept")
	if !bytes.Contains(buf.Bytes(), []byte("kept")) {
		t.Errorf("Expected warn entry, got %q", buf.String())
	}
}

func TestWithRequestIDGeneratesWhenEmpty(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")
	if RequestIDFromContext(ctx) == "" {
		t.Error("Expected a generated request ID")
	}
	if FromContext(context.Background()) == nil {
		t.Error("Expected the default logger when none is stored")
	}
}

func TestSlogLoggerRedactsSensitiveKeys(t *testing.T) {
	var buf bytes.Buffer
	cfg := ConfigFrom("info", "json")
	cfg.Output = &buf
	log := NewSlogLogger(cfg).With(String("password", "hunter2"))

	log.Info("text analyzed", String("text", "heavy cramps since monday"), Int("length", 25))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to decode log line %q: %v", buf.String(), err)
	}
	if entry["text"] != Redacted || entry["password"] != Redacted {
		t.Errorf("Expected sensitive values to be redacted, got %v", entry)
	}
	if entry["length"] != float64(25) {
		t.Errorf("Expected length=25, got %v", entry["length"])
	}
}

func TestConfigFromAndDefault(t *testing.T) {
	cfg := ConfigFrom("error", "yaml")
	if cfg.Level != LevelError || cfg.Format != "json" {
		t.Errorf("Expected error/json, got %v/%s", cfg.Level, cfg.Format)
	}

	var buf bytes.Buffer
	cfg = ConfigFrom("info", "text")
	cfg.Output = &buf
	custom := NewSlogLogger(cfg)

	SetDefault(custom)
	t.Cleanup(func() { SetDefault(nil) })

	Default().Info("default replaced", Err(nil))
	if !bytes.Contains(buf.Bytes(), []byte("default replaced")) {
		t.Errorf("Expected entry through the replaced default, got %q", buf.String())
	}
}

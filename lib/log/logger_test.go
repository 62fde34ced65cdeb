package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandlerFormatsModuleAndAttrs(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, nil)).With(ModuleKey, "shaders")

	logger.Warn("could not compile shader", "stage", "vertex", "attempt", 1)

	line := out.String()
	if strings.Contains(line, "\033[") {
		t.Errorf("no colour expected when not writing to a terminal: %q", line)
	}
	for _, want := range []string{"WARN ", "[shaders] ", "could not compile shader", "attempt=1", "stage=vertex"} {
		if !strings.Contains(line, want) {
			t.Errorf("%q missing from %q", want, line)
		}
	}
	if strings.Index(line, "attempt=1") > strings.Index(line, "stage=vertex") {
		t.Errorf("attributes should be sorted: %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("line should be newline terminated: %q", line)
	}
}

func TestHandlerRespectsLevel(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("hidden")
	if out.Len() != 0 {
		t.Errorf("info should be filtered, got %q", out.String())
	}
	logger.Error("shown")
	if !strings.Contains(out.String(), "shown") {
		t.Errorf("error should be logged, got %q", out.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Errorf("%s: unexpected error %s", in, err)
		}
		if got != want {
			t.Errorf("%s: got %s, want %s", in, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

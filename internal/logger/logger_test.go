package logger

import "bytes"
import "context"
import "log/slog"
import "strings"
import "testing"

func TestDefaultIsSilent(t *testing.T) {
	if Get().Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("expected default logger to be disabled")
	}
}

func TestSetAndReset(t *testing.T) {
	var buffer bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buffer, &slog.HandlerOptions{ Level: slog.LevelDebug })))
	defer Set(nil)

	Get().Debug("synth shard", "glyphs", 3)
	if !strings.Contains(buffer.String(), "glyphs=3") {
		t.Fatalf("expected log output to contain glyphs=3, got %q", buffer.String())
	}

	Set(nil)
	if Get().Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("expected nil logger to restore the silent default")
	}
}

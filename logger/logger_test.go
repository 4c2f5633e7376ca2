package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewWithLevel(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
		muted   slog.Level
	}{
		{"info", slog.LevelInfo, slog.LevelDebug},
		{"WARN", slog.LevelWarn, slog.LevelInfo},
		{" error ", slog.LevelError, slog.LevelWarn},
		{"nonsense", slog.LevelDebug, slog.LevelDebug - 1},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, ok := NewWithLevel(tt.level).(*slog.Logger)
			if !ok {
				t.Fatal("NewWithLevel() is not backed by slog")
			}
			if !l.Enabled(context.Background(), tt.enabled) {
				t.Errorf("level %v is disabled", tt.enabled)
			}
			if l.Enabled(context.Background(), tt.muted) {
				t.Errorf("level %v is enabled", tt.muted)
			}
		})
	}
}

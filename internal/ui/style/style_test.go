package style_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pbxpatch/internal/ui/style"
)

func TestForLevel(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug, "msg"},
		{slog.LevelInfo, "msg"},
		{slog.LevelWarn, "! msg"},
		{slog.LevelError, "✗ msg"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, style.ForLevel(tt.level).Prefix("msg"))
		})
	}
	assert.Equal(t, style.Red, style.ForLevel(slog.LevelError).Color)
}

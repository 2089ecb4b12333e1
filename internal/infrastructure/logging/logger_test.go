package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		env, level string
		want       zapcore.Level
	}{
		{"development", "debug", zapcore.DebugLevel},
		{"production", "warn", zapcore.WarnLevel},
		{"production", "nonsense", zapcore.InfoLevel},
		{"", "", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		l, err := New(tt.env, tt.level)
		require.NoError(t, err, "%s/%s", tt.env, tt.level)
		assert.True(t, l.Core().Enabled(tt.want), "%s/%s: %v disabled", tt.env, tt.level, tt.want)
		if tt.want > zapcore.DebugLevel {
			assert.False(t, l.Core().Enabled(tt.want-1), "%s/%s: below %v enabled", tt.env, tt.level, tt.want)
		}
	}
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		env       string
		wantDebug bool
	}{
		{env: "production", wantDebug: false},
		{env: "development", wantDebug: true},
		{env: "", wantDebug: true},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			lg, err := NewLogger(tt.env)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantDebug, lg.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

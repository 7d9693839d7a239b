package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name      string
		mode      string
		wantError bool
	}{
		{name: "Debug", mode: "debug", wantError: false},
		{name: "Production", mode: "prod", wantError: false},
		{name: "EmptyDefaultsToProduction", mode: "", wantError: false},
		{name: "Unknown", mode: "verbose", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer InitTestLogger()

			err := Init(tt.mode)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, log)
			}
		})
	}
}

func TestSet_RoutesPackageFunctions(t *testing.T) {
	defer InitTestLogger()

	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))

	Debug("d")
	Info("i", zap.String("function", "TestSet"))
	Warn("w")
	Error("e")

	entries := logs.All()
	assert.Len(t, entries, 4)
	assert.Equal(t, "i", entries[1].Message)
	assert.Equal(t, "TestSet", entries[1].ContextMap()["function"])
}

func TestSet_IgnoresNil(t *testing.T) {
	defer InitTestLogger()

	before := log
	Set(nil)
	assert.Same(t, before, log)
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGet_BeforeInit(t *testing.T) {
	Set(nil)
	l := Get()
	require.NotNil(t, l)
	// no-op logger 不应 panic
	l.Info("ignored")
}

func TestInit_Levels(t *testing.T) {
	defer Set(nil)

	cases := map[LogLevel]zapcore.Level{
		DebugLevel:       zapcore.DebugLevel,
		InfoLevel:        zapcore.InfoLevel,
		WarnLevel:        zapcore.WarnLevel,
		ErrorLevel:       zapcore.ErrorLevel,
		LogLevel("oops"): zapcore.InfoLevel,
	}
	for level, want := range cases {
		require.NoError(t, Init(false, level))
		assert.True(t, Get().Core().Enabled(want), "level %s", level)
		if want > zapcore.DebugLevel {
			assert.False(t, Get().Core().Enabled(want-1), "level %s", level)
		}
	}
}

func TestSet_Observer(t *testing.T) {
	defer Set(nil)

	core, logs := observer.New(zapcore.InfoLevel)
	Set(zap.New(core))

	Get().Info("重算余额", zap.String("user_id", "u1"))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "重算余额", entry.Message)
	assert.Equal(t, "u1", entry.ContextMap()["user_id"])
}

package logger

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/muhammadchandra19/marketsim/pkg/errors"
	"github.com/muhammadchandra19/marketsim/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &Logger{logger: zap.New(core)}, logs
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(
		WithLoggingLevel(DebugLevel),
		WithEncoding("console"),
		WithTimeKey("ts"),
	)
	require.NoError(t, err)
	assert.NotNil(t, log.GetZap())
	assert.True(t, log.GetZap().Core().Enabled(zapcore.DebugLevel))
}

func TestLevel_getZapLevel(t *testing.T) {
	testCases := []struct {
		level    Level
		expected zapcore.Level
	}{
		{DebugLevel, zapcore.DebugLevel},
		{InfoLevel, zapcore.InfoLevel},
		{WarnLevel, zapcore.WarnLevel},
		{ErrorLevel, zapcore.ErrorLevel},
		{Level("WARN"), zapcore.WarnLevel},
		{Level("unknown"), zapcore.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(string(tc.level), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.level.getZapLevel())
		})
	}
}

func TestLogger_InfoContextAppendsRunID(t *testing.T) {
	log, logs := newObservedLogger(zapcore.InfoLevel)
	ctx := util.WithRunID(context.Background(), "run-42")

	log.InfoContext(ctx, "quotes placed", NewField("bid", 99.5))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "run-42", fields["run_id"])
	assert.Equal(t, 99.5, fields["bid"])
}

func TestLogger_ContextAppendsSymbol(t *testing.T) {
	log, logs := newObservedLogger(zapcore.DebugLevel)
	ctx := util.WithSymbol(util.WithRunID(context.Background(), "run-7"), "BTCUSDT")

	log.DebugContext(ctx, "tick")
	log.ErrorContext(ctx, stderrors.New("rejected"))

	entries := logs.All()
	require.Len(t, entries, 2)
	for _, entry := range entries {
		fields := entry.ContextMap()
		assert.Equal(t, "BTCUSDT", fields["symbol"])
		assert.Equal(t, "run-7", fields["run_id"])
	}
}

func TestLogger_ContextWithoutRunID(t *testing.T) {
	log, logs := newObservedLogger(zapcore.InfoLevel)

	log.WarnContext(context.Background(), "no liquidity")

	require.Len(t, logs.All(), 1)
	fields := logs.All()[0].ContextMap()
	assert.NotContains(t, fields, "run_id")
	assert.NotContains(t, fields, "symbol")
}

func TestLogger_Error(t *testing.T) {
	log, logs := newObservedLogger(zapcore.DebugLevel)

	log.Error(errors.NewTracer("publish failed").Wrap(stderrors.New("broker down")),
		NewField("action", "publish"))
	log.Error(stderrors.New("plain"))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "publish failed: broker down", entries[0].Message)
	assert.NotEmpty(t, entries[0].Stack)
	assert.Equal(t, "plain", entries[1].Message)
}

func TestLogger_WithFields(t *testing.T) {
	log, logs := newObservedLogger(zapcore.InfoLevel)

	child := log.WithFields(NewField("component", "orderbook"))
	child.Info("order rested")
	child.Debug("filtered out")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "orderbook", entries[0].ContextMap()["component"])
}

func TestNewNopLogger(t *testing.T) {
	log := NewNopLogger()
	assert.NotPanics(t, func() {
		log.Info("discarded")
		log.Error(stderrors.New("discarded"))
	})
}

package logging_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-userform/internal/logging"
)

func TestNew(t *testing.T) {
	logger, err := logging.New("debug", false)
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = logging.New("warn", true)
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logging.New("loud", false)
	require.Error(t, err)
}

func TestNamed_NilLogger(t *testing.T) {
	sugar := logging.Named(nil, "server")
	require.NotNil(t, sugar)
	sugar.Infow("dropped")
}

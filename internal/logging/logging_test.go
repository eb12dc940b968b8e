package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel(" warning "))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("verbose"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel(""))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, logrus.TraceLevel, ParseLevel("trace"))
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "moviegrid.log")

	logger, closer, err := New(path, "debug")
	require.NoError(t, err)
	logger.WithField("tab", 2).Debug("focus moved")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "focus moved")
	assert.Contains(t, string(data), "tab=2")
}

func TestNewFallsBackToDiscard(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	logger, closer, err := New(filepath.Join(blocker, "moviegrid.log"), "info")
	require.Error(t, err)
	require.NotNil(t, logger)
	assert.NoError(t, closer.Close())
	assert.NotPanics(t, func() { logger.Info("dropped") })
}

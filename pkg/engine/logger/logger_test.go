package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")
	t.Setenv("LOG_FILE", "")

	closer, err := Init()
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, Log.Formatter)
}

func TestInit_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "station.log")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_FILE", path)

	closer, err := Init()
	require.NoError(t, err)

	Component("test").Debug("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestInit_BadLevelFallsBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("LOG_FILE", "")

	closer, err := Init()
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())
}

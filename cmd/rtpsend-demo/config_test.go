package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), conf)
}

func TestLoadConfigOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "bufferSize: 42\nuseNack: false\nlogLevel: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	conf, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 42, conf.BufferSize)
	require.False(t, conf.UseNack)
	require.Equal(t, "debug", conf.LogLevel)
	// fields absent from the file keep their defaults.
	require.Equal(t, defaultConfig().MTU, conf.MTU)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

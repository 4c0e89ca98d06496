package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:54321", c.BackendURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "media", c.StorageBucket)
	assert.Empty(t, c.AnonKey)
	assert.Empty(t, c.StateDir)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:54321", cfg.BackendURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

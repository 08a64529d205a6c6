package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	conf, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, conf.Network.TimeoutSeconds)
	assert.Equal(t, "none", conf.Logging.Level)
	assert.Zero(t, conf.Viewport.Width)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
viewport:
  width: 120
  height: 50
stylesheet: user.css
network:
  timeout: 10
logging:
  level: debug
`), 0644))

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120, conf.Viewport.Width)
	assert.Equal(t, 50, conf.Viewport.Height)
	assert.Equal(t, "user.css", conf.Stylesheet)
	assert.Equal(t, 10, conf.Network.TimeoutSeconds)
	assert.Equal(t, "debug", conf.Logging.Level)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown level", "logging:\n  level: verbose\n"},
		{"negative viewport", "viewport:\n  width: -1\n"},
		{"negative timeout", "network:\n  timeout: -5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPrepareLogger(t *testing.T) {
	nop, err := (&LoggingConfig{Level: "none"}).Prepare()
	require.NoError(t, err)
	assert.NotNil(t, nop)

	path := filepath.Join(t.TempDir(), "hibari.log")
	log, err := (&LoggingConfig{Level: "debug", Destination: path}).Prepare()
	require.NoError(t, err)
	log.Debug("probe")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "probe")
}

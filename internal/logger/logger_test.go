package logger

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		cfg           Config
		expectedLevel logrus.Level
		json          bool
	}{
		{
			name:          "defaults",
			cfg:           DefaultConfig(),
			expectedLevel: logrus.InfoLevel,
		},
		{
			name:          "debug json",
			cfg:           Config{Level: "DEBUG", Format: "json"},
			expectedLevel: logrus.DebugLevel,
			json:          true,
		},
		{
			name:          "unknown level falls back to info",
			cfg:           Config{Level: "loud"},
			expectedLevel: logrus.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, closer, err := New(tt.cfg)
			require.NoError(t, err)
			defer closer.Close()

			assert.Equal(t, tt.expectedLevel, log.GetLevel())
			_, isJSON := log.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.json, isJSON)
		})
	}
}

func TestNew_WithFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "logs", "catalog.log")

	log, closer, err := New(cfg)
	require.NoError(t, err)
	log.Info("hello")
	assert.NoError(t, closer.Close())
	assert.FileExists(t, cfg.File)
}

func TestOrDefault(t *testing.T) {
	assert.NotNil(t, OrDefault(nil))

	custom := logrus.New()
	assert.Same(t, custom, OrDefault(custom))
}

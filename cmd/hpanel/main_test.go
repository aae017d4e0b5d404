package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hpanel/internal/config"
)

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	pad := 5.0
	require.NoError(t, config.Save(path, &config.Config{Padding: &pad, Dir: "/docs"}))

	cfg, err := loadConfig(options{configPath: path, set: map[string]bool{}})
	require.NoError(t, err)
	assert.Equal(t, 5.0, *cfg.Padding)
	assert.Equal(t, "/docs", cfg.Dir)

	cfg, err = loadConfig(options{
		configPath:  path,
		padding:     1,
		prevOverlap: 0,
		dir:         "/other",
		set:         map[string]bool{"padding": true, "prev-overlap": true},
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, *cfg.Padding)
	assert.Equal(t, 0.0, *cfg.PrevOverlap)
	assert.Equal(t, "/other", cfg.Dir)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(options{configPath: filepath.Join(t.TempDir(), "missing.yaml"), set: map[string]bool{}})
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Dir)
	assert.Equal(t, float64(config.DefaultPadding), *cfg.Padding)
}

func TestLoadConfig_RejectsNegativePadding(t *testing.T) {
	_, err := loadConfig(options{
		configPath: filepath.Join(t.TempDir(), "missing.yaml"),
		padding:    -1,
		set:        map[string]bool{"padding": true},
	})
	assert.Error(t, err)
}

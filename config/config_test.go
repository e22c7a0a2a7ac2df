package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDefaults(t *testing.T) {
	cfg, err := Decode(map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, uint(1), cfg.Models)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Assignment)
	require.NotNil(t, cfg.Logger)
}

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg, err := Decode(map[string]interface{}{
		"verbose":    true,
		"assignment": true,
		"models":     uint(3),
	})
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Assignment)
	assert.Equal(t, uint(3), cfg.Models)
}

func TestDecodeBadShape(t *testing.T) {
	_, err := Decode(map[string]interface{}{"models": "not-a-number"})
	require.Error(t, err)
}

func TestLoadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dpllsat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: true\nmodels: 2\n"), 0o644))

	raw, err := LoadFile(path)
	require.NoError(t, err)

	cfg, err := Decode(raw)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, uint(2), cfg.Models)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadFileBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: [this is not a map"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
}

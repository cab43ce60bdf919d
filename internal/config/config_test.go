package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "counter", cfg.Canvas.IDs)
	assert.Equal(t, "keep", cfg.Canvas.DanglingEdges)
	assert.Equal(t, float32(1024), cfg.Window.Width)
}

func TestLoadFile(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "canvas.toml")
	err := os.WriteFile(path, []byte(`
[window]
title = "Schema"
width = 800

[canvas]
ids = "uuid"
dangling_edges = "cascade"
`), 0o644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Schema", cfg.Window.Title)
	assert.Equal(t, float32(800), cfg.Window.Width)
	assert.Equal(t, float32(768), cfg.Window.Height, "Unset keys keep their defaults")
	assert.Equal(t, "uuid", cfg.Canvas.IDs)
	assert.Equal(t, "cascade", cfg.Canvas.DanglingEdges)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CANVAS_IDS", "uuid")
	t.Setenv("CANVAS_HEIGHT", "600")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "uuid", cfg.Canvas.IDs)
	assert.Equal(t, float32(600), cfg.Window.Height)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CANVAS_DANGLING_EDGES=cascade\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("CANVAS_DANGLING_EDGES") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "cascade", cfg.Canvas.DanglingEdges)
}

func TestLoadBadNumber(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CANVAS_WIDTH", "wide")

	_, err := Load("")
	assert.Error(t, err)
}

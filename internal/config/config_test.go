package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/stimulus-features/internal/hull"
	"github.com/ironsheep/stimulus-features/internal/imaging"
)

func TestDefault_Validates(t *testing.T) {
	cfg := Default()
	cfg.InputDir = "stimuli"
	require.NoError(t, cfg.Validate())

	assert.Equal(t, imaging.RGBColor{R: 255, G: 255, B: 0}, cfg.Palette().Color1)
	assert.Equal(t, imaging.RGBColor{R: 0, G: 0, B: 255}, cfg.Palette().Color2)
	assert.Equal(t, imaging.RGBColor{R: 128, G: 128, B: 128}, cfg.BackgroundColor())
	assert.Equal(t, hull.PolicyZero, cfg.Policy())
	assert.Equal(t, OnErrorAbort, cfg.OnError)
	assert.Equal(t, ".png", cfg.Extension)
}

func TestValidate_Errors(t *testing.T) {
	cfg := Default()
	cfg.Color1 = "not-a-color"
	cfg.HullPolicy = "sometimes"
	cfg.OnError = "retry"

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "input directory is required")
	assert.Contains(t, msg, "color1")
	assert.Contains(t, msg, "sometimes")
	assert.Contains(t, msg, "retry")

	assert.Panics(t, func() { cfg.Palette() })
}

func TestValidate_Normalizes(t *testing.T) {
	cfg := Default()
	cfg.InputDir = "in"
	cfg.Extension = "tif"
	cfg.MaskScale = 0
	cfg.OnError = ""

	require.NoError(t, cfg.Validate())
	assert.Equal(t, ".tif", cfg.Extension)
	assert.Equal(t, 1, cfg.MaskScale)
	assert.Equal(t, OnErrorAbort, cfg.OnError)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := `
input_dir: /data/stimuli
output_file: /data/features.csv
color1: "#FF0000"
hull_policy: strict
on_error: skip
mask_dir: /data/masks
mask_scale: 4
check_components: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/data/stimuli", cfg.InputDir)
	assert.Equal(t, "/data/features.csv", cfg.OutputFile)
	assert.Equal(t, imaging.RGBColor{R: 255}, cfg.Palette().Color1)
	// Absent keys keep defaults
	assert.Equal(t, imaging.RGBColor{B: 255}, cfg.Palette().Color2)
	assert.Equal(t, ".png", cfg.Extension)
	assert.Equal(t, hull.PolicyStrict, cfg.Policy())
	assert.Equal(t, OnErrorSkip, cfg.OnError)
	assert.Equal(t, "/data/masks", cfg.MaskDir)
	assert.Equal(t, 4, cfg.MaskScale)
	assert.True(t, cfg.CheckComponents)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mask_scale: [1, 2"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

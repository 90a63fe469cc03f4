package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hairykiwi/csv2kicad/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPartialOverride(t *testing.T) {
	path := writeConfig(t, "[geometry]\nspacing = 50\npower_width = 1200\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Geometry.Spacing)
	assert.Equal(t, 1200, cfg.Geometry.PowerWidth)
	// Untouched keys keep their defaults.
	assert.Equal(t, 300, cfg.Geometry.PinLength)
	assert.Equal(t, 150, cfg.Geometry.BoxOffset)
}

func TestLoadDocOverride(t *testing.T) {
	path := writeConfig(t, "[doc]\nkeywords = \"EFM32 MCU\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "EFM32 MCU", cfg.Doc.Keywords)
	assert.Empty(t, cfg.Doc.Datasheet)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[geometry]\nspacign = 50\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestLoadRejectsNonPositiveGeometry(t *testing.T) {
	path := writeConfig(t, "[geometry]\nspacing = 0\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hairykiwi/csv2kicad/pkg/errors"
)

func TestDeriveOutputs(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		input   string
		isDir   bool
		wantLib string
		wantDoc string
	}{
		{
			name:    "single file next to input",
			input:   "devices/efm32tg108.csv",
			wantLib: "devices/efm32tg108.lib",
			wantDoc: "devices/efm32tg108.dcm",
		},
		{
			name:    "directory uses library name",
			input:   "devices",
			isDir:   true,
			wantLib: filepath.Join("devices", "energymicro-efm32.lib"),
			wantDoc: filepath.Join("devices", "energymicro-efm32.dcm"),
		},
		{
			name:    "explicit base wins",
			base:    "out/efm32",
			input:   "devices",
			isDir:   true,
			wantLib: "out/efm32.lib",
			wantDoc: "out/efm32.dcm",
		},
		{
			name:    "explicit base extension stripped",
			base:    "out/efm32.lib",
			input:   "x.csv",
			wantLib: "out/efm32.lib",
			wantDoc: "out/efm32.dcm",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib, doc := deriveOutputs(tt.base, tt.input, tt.isDir)
			assert.Equal(t, tt.wantLib, lib)
			assert.Equal(t, tt.wantDoc, doc)
		})
	}
}

func TestCollectInputsSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dev.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	inputs, isDir, err := collectInputs(path)
	require.NoError(t, err)
	assert.False(t, isDir)
	assert.Equal(t, []string{path}, inputs)
}

func TestCollectInputsRejectsNonCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dev.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, _, err := collectInputs(path)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
}

func TestCollectInputsDirectorySorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.csv", "readme.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	inputs, isDir, err := collectInputs(dir)
	require.NoError(t, err)
	assert.True(t, isDir)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.csv"),
		filepath.Join(dir, "b.csv"),
	}, inputs)
}

func TestCollectInputsEmptyDirectory(t *testing.T) {
	_, _, err := collectInputs(t.TempDir())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
}

func TestCollectInputsMissing(t *testing.T) {
	_, _, err := collectInputs(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeFileNotFound, errors.GetCode(err))
}

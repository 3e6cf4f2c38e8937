package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/misterclayt0n/ftracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "packages.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParsePackagesFromTOML(t *testing.T) {
	path := writeFile(t, `
[[package]]
code = "SWM"
values = [720, 1, 80, 25, 40]

[[package]]
code = "RUN"
values = [15000, 1.5, 75.5]
`)

	pkgs, err := ParsePackagesFromTOML(path)
	require.NoError(t, err)
	assert.Equal(t, []models.Package{
		{Code: "SWM", Values: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Values: []float64{15000, 1.5, 75.5}},
	}, pkgs)
}

func TestParsePackagesFromTOMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `[[package]`},
		{"unknown key", "[[package]]\ncode = \"RUN\"\nvalue = [1, 2, 3]\n"},
		{"wrong type", "[[package]]\ncode = 1\nvalues = [1, 2, 3]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePackagesFromTOML(writeFile(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := ParsePackagesFromTOML(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

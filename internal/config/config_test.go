package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "output", c.OutputDir)
	assert.Equal(t, -1, c.Frame)
	assert.Equal(t, -1, c.To)
	assert.Equal(t, 1, c.Step)
	assert.Equal(t, runtime.NumCPU(), c.Workers)
	assert.NoError(t, c.Validate())
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	c := Default()
	c.Input = "p.yaml"
	c.Workers = 3
	c.AspectRatio = "9:16"
	require.NoError(t, Save(path, c))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("step: 5\npreview: true\n"), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Step)
	assert.True(t, c.Preview)
	assert.Equal(t, "output", c.OutputDir)
	assert.Equal(t, -1, c.Frame)
}

func TestParsePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("step: 5\nworkers: 2\noutput_dir: frames\n"), 0644))

	c, err := Parse("test", []string{"-config", path, "-workers", "7", "-v"}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 5, c.Step)
	assert.Equal(t, 7, c.Workers)
	assert.Equal(t, "frames", c.OutputDir)
	assert.True(t, c.Verbose)
}

func TestParseMissingFileWarns(t *testing.T) {
	var buf strings.Builder
	c, err := Parse("test", []string{"-config", filepath.Join(t.TempDir(), "none.yaml"), "-frame", "12"}, zerolog.New(&buf))
	require.NoError(t, err)
	assert.Equal(t, 12, c.Frame)
	assert.Contains(t, buf.String(), "config file not found")
}

func TestParseErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("step: [\n"), 0644))

	_, err := Parse("test", []string{"-config", bad}, zerolog.Nop())
	assert.Error(t, err)

	_, err = Parse("test", []string{"-config", filepath.Join(dir, "none.yaml"), "-step", "0"}, zerolog.Nop())
	assert.Error(t, err)

	_, err = Parse("test", []string{"-config", filepath.Join(dir, "none.yaml"), "-from", "9", "-to", "3"}, zerolog.Nop())
	assert.Error(t, err)
}

func TestParseConfigPathFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("step: 4\n"), 0644))
	t.Setenv(PathEnv, path)

	c, err := Parse("test", nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 4, c.Step)
}

func TestValidateThemePreset(t *testing.T) {
	c := Default()
	c.ThemePreset = "nightfall"
	assert.NoError(t, c.Validate())

	c.ThemePreset = "sepia"
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme preset")
	assert.Contains(t, err.Error(), "nightfall")
}

func TestParseActions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	c, err := Parse("test", []string{"-config", path, "-init", "-save-config", "-theme-file", "house.yaml"}, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, c.Init)
	assert.True(t, c.SaveConfig)
	assert.Equal(t, "house.yaml", c.ThemeFile)
	assert.Equal(t, path, c.Path)

	require.NoError(t, Save(path, c))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme_file: house.yaml")
	assert.NotContains(t, string(data), "init")
	assert.NotContains(t, string(data), "save")
}

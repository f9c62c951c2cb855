package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := LoadFromPath(fs, "/somewhere/deep")
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Theme)
	assert.Empty(t, cfg.OutputDir)
	assert.Equal(t, "/somewhere/deep", cfg.ProjectRoot)
}

func TestLoadWalksUp(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/project/docs/sub", 0755))
	require.NoError(t, afero.WriteFile(
		fs,
		"/project/pastex.yaml",
		[]byte("theme: plain\noutput_dir: public\n"),
		0644,
	))

	cfg, err := LoadFromPath(fs, "/project/docs/sub")
	require.NoError(t, err)

	assert.Equal(t, "plain", cfg.Theme)
	assert.Equal(t, "public", cfg.OutputDir)
	assert.Equal(t, "/project", cfg.ProjectRoot)
}

func TestLoadInvalidYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(
		fs,
		"/project/pastex.yaml",
		[]byte("theme: [unterminated\n"),
		0644,
	))

	_, err := LoadFromPath(fs, "/project")
	assert.Error(t, err)
}

package controller

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeProjectFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "project.toml")
	err := ioutil.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err)

	return path
}

func TestLoadVersion(t *testing.T) {
	path := writeProjectFile(t, `
[tool.controller]
version = "0.2.0"
`)

	require.Equal(t, "0.2.0", LoadVersion(path))
}

func TestLoadVersionPoetryFallback(t *testing.T) {
	path := writeProjectFile(t, `
[tool.poetry]
name = "mc-controller-api"
version = "0.1.9"
`)

	require.Equal(t, "0.1.9", LoadVersion(path))
}

func TestLoadVersionMissingFile(t *testing.T) {
	require.Equal(t, UnknownVersion, LoadVersion(filepath.Join(t.TempDir(), "nope.toml")))
}

func TestLoadVersionMalformedFile(t *testing.T) {
	path := writeProjectFile(t, "not toml at [[[ all")

	require.Equal(t, UnknownVersion, LoadVersion(path))
}

func TestLoadVersionNoVersionKey(t *testing.T) {
	path := writeProjectFile(t, `
[tool.controller]
name = "mc-controller-api"
`)

	require.Equal(t, UnknownVersion, LoadVersion(path))
}

package controller

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	publicUtils "github.com/bedrock-ops/mc-controller-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetConfigEnv(t *testing.T) {
	t.Helper()

	for _, name := range []string{
		publicUtils.ServerNameEnvVarName,
		publicUtils.DockerHostEnvVarName,
		publicUtils.DataDirEnvVarName,
		publicUtils.ConfigEnvVarName,
	} {
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetConfigEnv(t)

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, defaultServerName, config.ServerName)
	assert.Equal(t, defaultDataDir, config.DataDir)
	assert.Empty(t, config.DockerHost)
}

func TestLoadConfigFromFile(t *testing.T) {
	unsetConfigEnv(t)

	configPath := filepath.Join(t.TempDir(), "controller.yaml")
	configYAML := `
server_name: bedrock
docker_host: tcp://127.0.0.1:2375
data_dir: /srv/bedrock
`
	require.NoError(t, ioutil.WriteFile(configPath, []byte(configYAML), 0o644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "bedrock", config.ServerName)
	assert.Equal(t, "tcp://127.0.0.1:2375", config.DockerHost)
	assert.Equal(t, "/srv/bedrock", config.DataDir)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	unsetConfigEnv(t)

	configPath := filepath.Join(t.TempDir(), "controller.yaml")
	require.NoError(t, ioutil.WriteFile(configPath, []byte("server_name: from-file"), 0o644))

	require.NoError(t, os.Setenv(publicUtils.ServerNameEnvVarName, "from-env"))
	defer func() {
		require.NoError(t, os.Unsetenv(publicUtils.ServerNameEnvVarName))
	}()

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "from-env", config.ServerName)
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	unsetConfigEnv(t)

	configPath := filepath.Join(t.TempDir(), "controller.yaml")
	require.NoError(t, ioutil.WriteFile(configPath, []byte("data_dir: /env/data"), 0o644))

	require.NoError(t, os.Setenv(publicUtils.ConfigEnvVarName, configPath))
	defer func() {
		require.NoError(t, os.Unsetenv(publicUtils.ConfigEnvVarName))
	}()

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "/env/data", config.DataDir)
}

func TestLoadConfigMissingFile(t *testing.T) {
	unsetConfigEnv(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

package controller

import (
	"io/ioutil"
	"os"

	publicUtils "github.com/bedrock-ops/mc-controller-api/pkg/utils"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultServerName = "mc-server"
	defaultDataDir    = "/data"
)

// Config holds the controller settings. Values are resolved from the YAML
// config file first, then environment variables, then defaults.
type Config struct {
	ServerName string `yaml:"server_name"`
	DockerHost string `yaml:"docker_host"`
	DataDir    string `yaml:"data_dir"`
}

func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	if configPath == "" {
		configPath = os.Getenv(publicUtils.ConfigEnvVarName)
	}

	if configPath != "" {
		fileBytes, err := ioutil.ReadFile(configPath)
		if err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", configPath)
		}

		err = yaml.Unmarshal(fileBytes, config)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing config file %s", configPath)
		}

		log.Debugf("loaded config from %s", configPath)
	}

	if serverName, exists := os.LookupEnv(publicUtils.ServerNameEnvVarName); exists {
		config.ServerName = serverName
	}

	if dockerHost, exists := os.LookupEnv(publicUtils.DockerHostEnvVarName); exists {
		config.DockerHost = dockerHost
	}

	if dataDir, exists := os.LookupEnv(publicUtils.DataDirEnvVarName); exists {
		config.DataDir = dataDir
	}

	if config.ServerName == "" {
		config.ServerName = defaultServerName
	}

	if config.DataDir == "" {
		config.DataDir = defaultDataDir
	}

	return config, nil
}

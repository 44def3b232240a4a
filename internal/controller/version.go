package controller

import (
	"io/ioutil"

	toml "github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
)

const (
	// UnknownVersion is reported when the project file is missing or malformed.
	UnknownVersion = "???"

	DefaultProjectFile = "project.toml"
)

type projectFile struct {
	Tool struct {
		Controller struct {
			Version string `toml:"version"`
		} `toml:"controller"`
		Poetry struct {
			Version string `toml:"version"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// LoadVersion single-sources the version number from the project TOML file.
func LoadVersion(path string) string {
	fileBytes, err := ioutil.ReadFile(path)
	if err != nil {
		log.Warnf("could not read project file %s: %s", path, err)

		return UnknownVersion
	}

	var project projectFile

	err = toml.Unmarshal(fileBytes, &project)
	if err != nil {
		log.Warnf("could not parse project file %s: %s", path, err)

		return UnknownVersion
	}

	version := project.Tool.Controller.Version
	if version == "" {
		version = project.Tool.Poetry.Version
	}

	if version == "" {
		return UnknownVersion
	}

	log.Infof("version %s", version)

	return version
}

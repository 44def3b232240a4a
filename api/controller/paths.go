package controller

import (
	"fmt"
)

// Paths
const (
	PrefixPath = "/controller"

	VersionPath = "/"
	LevelsPath  = "/levels"
	LevelPath   = "/levels/%s"
	ControlPath = "/control"
	StatusPath  = "/status"
	LogsPath    = "/logs"
)

func GetVersionPath() string {
	return PrefixPath + VersionPath
}

func GetLevelsPath() string {
	return PrefixPath + LevelsPath
}

func GetLevelPath(levelName string) string {
	return PrefixPath + fmt.Sprintf(LevelPath, levelName)
}

func GetControlPath() string {
	return PrefixPath + ControlPath
}

func GetStatusPath() string {
	return PrefixPath + StatusPath
}

func GetLogsPath() string {
	return PrefixPath + LogsPath
}

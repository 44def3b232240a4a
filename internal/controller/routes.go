package controller

import (
	"fmt"
	"net/http"

	api "github.com/bedrock-ops/mc-controller-api/api/controller"
	"github.com/bedrock-ops/mc-controller-api/internal/utils"
)

// Route names
const (
	getVersionName = "GET_VERSION"
	getLevelsName  = "GET_LEVELS"
	getLevelName   = "GET_LEVEL"
	controlName    = "CONTROL"
	getStatusName  = "GET_STATUS"
	getLogsName    = "GET_LOGS"
)

// Path variables
const (
	levelNamePathVar = "levelName"
)

var (
	_levelNamePathVarFormatted = fmt.Sprintf(utils.PathVarFormat, levelNamePathVar)

	versionRoute = api.VersionPath
	levelsRoute  = api.LevelsPath
	levelRoute   = fmt.Sprintf(api.LevelPath, _levelNamePathVarFormatted)
	controlRoute = api.ControlPath
	statusRoute  = api.StatusPath
	logsRoute    = api.LogsPath
)

var Routes = []utils.Route{
	{
		Name:        getVersionName,
		Method:      http.MethodGet,
		Pattern:     versionRoute,
		HandlerFunc: getVersionHandler,
	},

	{
		Name:        getLevelsName,
		Method:      http.MethodGet,
		Pattern:     levelsRoute,
		HandlerFunc: getLevelsHandler,
	},

	{
		Name:        getLevelName,
		Method:      http.MethodGet,
		Pattern:     levelRoute,
		HandlerFunc: getLevelHandler,
	},

	{
		Name:        controlName,
		Method:      http.MethodPost,
		Pattern:     controlRoute,
		HandlerFunc: controlHandler,
	},

	{
		Name:        getStatusName,
		Method:      http.MethodGet,
		Pattern:     statusRoute,
		HandlerFunc: getStatusHandler,
	},

	{
		Name:        getLogsName,
		Method:      http.MethodGet,
		Pattern:     logsRoute,
		HandlerFunc: getLogsHandler,
	},
}

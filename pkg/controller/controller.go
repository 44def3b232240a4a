package controller

import (
	api "github.com/bedrock-ops/mc-controller-api/api/controller"
	"github.com/bedrock-ops/mc-controller-api/pkg/utils"
)

const (
	Port = 80
)

type Client interface {
	utils.GenericClient
	GetVersion() (version string, status int)
	GetLevels() (levels api.GetLevelsResponseBody, status int)
	GetLevel(levelName string) (level *api.LevelDTO, status int)
	Control(action string) (status int)
	GetStatus() (containerStatus *api.StatusDTO, status int)
	GetLogs(tail string) (logs string, status int)
}

type ClientFactory interface {
	New(addr string) Client
}

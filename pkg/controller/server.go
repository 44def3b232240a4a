package controller

import (
	"strconv"

	publicUtils "github.com/bedrock-ops/mc-controller-api/pkg/utils"
)

var (
	DefaultHostPort = publicUtils.ControllerServiceName + ":" + strconv.Itoa(Port)
)

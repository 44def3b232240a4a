package controller

type (
	GetVersionResponseBody = VersionDTO
	GetLevelsResponseBody  = []*LevelDTO
	GetLevelResponseBody   = LevelDTO
	ControlResponseBody    = ControlDTO
	GetStatusResponseBody  = StatusDTO
	ErrorResponseBody      = struct {
		Error string `json:"error"`
	}
)

package utils

const (
	ServerNameEnvVarName = "MC_DOCKER_NAME"
	DockerHostEnvVarName = "DOCKER_BASE_URL"
	DataDirEnvVarName    = "MC_DATA_DIR"
	ConfigEnvVarName     = "CONTROLLER_CONFIG"
)

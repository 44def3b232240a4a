package utils

const (
	ControllerServiceName = "mc-controller"
)

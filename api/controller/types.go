package controller

import (
	"github.com/docker/go-connections/nat"
)

// Control actions accepted by the controller.
const (
	StartAction   = "start"
	StopAction    = "stop"
	RestartAction = "restart"
)

// Container statuses reported by the engine.
const (
	RunningStatus = "running"
	ExitedStatus  = "exited"
)

type VersionDTO struct {
	Version string `json:"version"`
}

// PackDTO describes a behavior or resource pack referenced by a level.
// Bedrock world pack lists name the id either "pack_id" or "uuid"
// depending on the world's age.
type PackDTO struct {
	Name              string `json:"name,omitempty" mapstructure:"name"`
	CanBeRedownloaded *bool  `json:"can_be_redownloaded,omitempty" mapstructure:"can_be_redownloaded"`
	UUID              string `json:"uuid" mapstructure:"pack_id"`
	Version           []int  `json:"version" mapstructure:"version"`
}

type LevelDTO struct {
	Name          string     `json:"name"`
	BehaviorPacks []*PackDTO `json:"behavior_packs,omitempty"`
	ResourcePacks []*PackDTO `json:"resource_packs,omitempty"`
}

type ControlDTO struct {
	Action  string `json:"action"`
	Message string `json:"message,omitempty"`
}

type StatusDTO struct {
	Status    string      `json:"status"`
	StartedAt string      `json:"started_at,omitempty"`
	Ports     nat.PortMap `json:"ports,omitempty"`
}

package controller

import (
	"context"
	"io"
	"time"

	api "github.com/bedrock-ops/mc-controller-api/api/controller"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	stopContainerTimeout = 10
)

var (
	errUnknownAction = errors.New("unknown control action")

	stopContainerTimeoutVar = stopContainerTimeout * time.Second
)

// engine abstracts the container runtime operations the handlers need.
type engine interface {
	Status(ctx context.Context) (*api.StatusDTO, error)
	Control(ctx context.Context, action string) error
	Logs(ctx context.Context, tail string) (io.ReadCloser, error)
}

// dockerEngine implements engine over the Docker Engine API for a single
// named container.
type dockerEngine struct {
	docker     *client.Client
	serverName string
}

func newDockerEngine(dockerHost, serverName string) (*dockerEngine, error) {
	var (
		dockerClient *client.Client
		err          error
	)

	if dockerHost != "" {
		dockerClient, err = client.NewClient(dockerHost, "", nil, nil)
	} else {
		dockerClient, err = client.NewEnvClient()
	}

	if err != nil {
		return nil, errors.Wrap(err, "creating docker client")
	}

	return &dockerEngine{
		docker:     dockerClient,
		serverName: serverName,
	}, nil
}

func (e *dockerEngine) Status(ctx context.Context) (*api.StatusDTO, error) {
	cont, err := e.docker.ContainerInspect(ctx, e.serverName)
	if err != nil {
		return nil, errors.Wrapf(err, "inspecting container %s", e.serverName)
	}

	containerStatus := &api.StatusDTO{}

	if cont.State != nil {
		containerStatus.Status = cont.State.Status
		if cont.State.Running {
			containerStatus.StartedAt = cont.State.StartedAt
		}
	}

	if cont.NetworkSettings != nil {
		containerStatus.Ports = cont.NetworkSettings.Ports
	}

	return containerStatus, nil
}

func (e *dockerEngine) Control(ctx context.Context, action string) error {
	log.Debugf("%s container %s", action, e.serverName)

	var err error

	switch action {
	case api.StartAction:
		err = e.docker.ContainerStart(ctx, e.serverName, types.ContainerStartOptions{})
	case api.StopAction:
		err = e.docker.ContainerStop(ctx, e.serverName, &stopContainerTimeoutVar)
	case api.RestartAction:
		err = e.docker.ContainerRestart(ctx, e.serverName, &stopContainerTimeoutVar)
	default:
		return errUnknownAction
	}

	return errors.Wrapf(err, "%s container %s", action, e.serverName)
}

func (e *dockerEngine) Logs(ctx context.Context, tail string) (io.ReadCloser, error) {
	options := types.ContainerLogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Timestamps: true,
		Tail:       tail,
	}

	logs, err := e.docker.ContainerLogs(ctx, e.serverName, options)

	return logs, errors.Wrapf(err, "getting logs for container %s", e.serverName)
}

type notFoundErr interface {
	NotFound() bool
}

// isNotFoundErr tells whether err means the managed container does not exist.
// The docker client marks these errors with a NotFound method.
func isNotFoundErr(err error) bool {
	nf, ok := errors.Cause(err).(notFoundErr)

	return ok && nf.NotFound()
}

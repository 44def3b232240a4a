package clientfactory

import (
	"github.com/bedrock-ops/mc-controller-api/pkg/controller"
	"github.com/bedrock-ops/mc-controller-api/pkg/controller/client"
)

type ClientFactory struct{}

func (cf *ClientFactory) New(addr string) controller.Client {
	return client.NewControllerClient(addr)
}

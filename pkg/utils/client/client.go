package client

import (
	"net/http"
	"sync"
	"time"
)

const (
	defaultTimeout = 10 * time.Second
)

type Client struct {
	hostPort     string
	hostPortLock sync.RWMutex
	Client       *http.Client
}

func NewGenericClient(addr string) *Client {
	return &Client{
		hostPort: addr,
		Client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

func (c *Client) SetHostPort(addr string) {
	c.hostPortLock.Lock()
	c.hostPort = addr
	c.hostPortLock.Unlock()
}

func (c *Client) GetHostPort() string {
	c.hostPortLock.RLock()
	defer c.hostPortLock.RUnlock()

	return c.hostPort
}

func (c *Client) GetHTTPClient() *http.Client {
	return c.Client
}

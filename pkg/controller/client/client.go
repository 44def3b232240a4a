package client

import (
	"io/ioutil"
	"net/http"

	api "github.com/bedrock-ops/mc-controller-api/api/controller"
	internalUtils "github.com/bedrock-ops/mc-controller-api/internal/utils"
	"github.com/bedrock-ops/mc-controller-api/pkg/utils/client"
	log "github.com/sirupsen/logrus"
)

type Client struct {
	*client.Client
}

func NewControllerClient(addr string) *Client {
	return &Client{
		Client: client.NewGenericClient(addr),
	}
}

func (c *Client) GetVersion() (version string, status int) {
	path := api.GetVersionPath()
	req := internalUtils.BuildRequest(http.MethodGet, c.GetHostPort(), path, nil)

	var resp api.GetVersionResponseBody
	status, _ = internalUtils.DoRequest(c.GetHTTPClient(), req, &resp)

	return resp.Version, status
}

func (c *Client) GetLevels() (levels api.GetLevelsResponseBody, status int) {
	path := api.GetLevelsPath()
	req := internalUtils.BuildRequest(http.MethodGet, c.GetHostPort(), path, nil)

	status, _ = internalUtils.DoRequest(c.GetHTTPClient(), req, &levels)

	return levels, status
}

func (c *Client) GetLevel(levelName string) (level *api.LevelDTO, status int) {
	path := api.GetLevelPath(levelName)
	req := internalUtils.BuildRequest(http.MethodGet, c.GetHostPort(), path, nil)

	var resp api.GetLevelResponseBody
	status, _ = internalUtils.DoRequest(c.GetHTTPClient(), req, &resp)

	return &resp, status
}

func (c *Client) Control(action string) (status int) {
	reqBody := api.ControlRequestBody{
		Control: &api.ControlDTO{Action: action},
	}

	path := api.GetControlPath()
	req := internalUtils.BuildRequest(http.MethodPost, c.GetHostPort(), path, reqBody)

	status, _ = internalUtils.DoRequest(c.GetHTTPClient(), req, nil)

	return status
}

func (c *Client) GetStatus() (containerStatus *api.StatusDTO, status int) {
	path := api.GetStatusPath()
	req := internalUtils.BuildRequest(http.MethodGet, c.GetHostPort(), path, nil)

	var resp api.GetStatusResponseBody
	status, _ = internalUtils.DoRequest(c.GetHTTPClient(), req, &resp)

	return &resp, status
}

// GetLogs returns the raw log tail, since the logs endpoint replies with
// plain text instead of JSON.
func (c *Client) GetLogs(tail string) (logs string, status int) {
	path := api.GetLogsPath()
	req := internalUtils.BuildRequest(http.MethodGet, c.GetHostPort(), path, nil)

	if tail != "" {
		q := req.URL.Query()
		q.Set("tail", tail)
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.GetHTTPClient().Do(req)
	if err != nil {
		log.Warn(err)

		return "", -1
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn(closeErr)
		}
	}()

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		log.Warn(err)

		return "", resp.StatusCode
	}

	return string(raw), resp.StatusCode
}

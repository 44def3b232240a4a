package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	ReqIDHeaderField = "REQ_ID"
)

func BuildRequest(method, host, path string, body interface{}) *http.Request {
	hostURL := url.URL{
		Scheme: "http",
		Host:   host,
		Path:   path,
	}

	bodyBuffer := new(bytes.Buffer)

	if body != nil {
		jsonStr, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}

		bodyBuffer = bytes.NewBuffer(jsonStr)
	}

	request, err := http.NewRequestWithContext(context.Background(), method, hostURL.String(), bodyBuffer)
	if err != nil {
		panic(err)
	}

	request.Header.Set("Content-Type", "application/json")

	return request
}

func DoRequest(httpClient *http.Client, request *http.Request, responseBody interface{}) (status int, timedOut bool) {
	log.Debugf("doing request: %s %s", request.Method, request.URL.String())

	if httpClient == nil {
		panic(errors.New("httpclient is nil"))
	}

	request.Header.Add(ReqIDHeaderField, uuid.New().String())

	resp, err := httpClient.Do(request)
	if err != nil {
		timedOut = os.IsTimeout(err)

		log.Warn(err)

		return -1, timedOut
	}

	if responseBody != nil {
		decodeResponseBody(resp, responseBody)
	} else {
		discardResponseBody(resp)
	}

	log.Debugf("done: %s %s", request.Method, request.URL.String())

	return resp.StatusCode, false
}

func decodeResponseBody(resp *http.Response, responseBody interface{}) {
	err := json.NewDecoder(resp.Body).Decode(responseBody)
	if err != nil {
		panic(err)
	}

	err = resp.Body.Close()
	if err != nil {
		panic(err)
	}
}

func discardResponseBody(resp *http.Response) {
	_, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		panic(err)
	}

	err = resp.Body.Close()
	if err != nil {
		panic(err)
	}
}

func ExtractPathVar(r *http.Request, varName string) (varValue string) {
	vars := mux.Vars(r)

	varValue, ok := vars[varName]
	if !ok {
		panic(errors.Errorf("var %s was not in request path", varName))
	}

	return varValue
}

package utils

import (
	"net/http"
)

type GenericClient interface {
	GetHostPort() string
	SetHostPort(addr string)
	GetHTTPClient() *http.Client
}

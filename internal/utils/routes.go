package utils

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	// PathVarFormat is how mux expects path variables to show up in patterns.
	PathVarFormat = "{%s}"
)

type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// NewRouter builds a mux router serving the given routes under prefixPath.
func NewRouter(prefixPath string, routes []Route) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	subRouter := router.PathPrefix(prefixPath).Subrouter()

	for _, route := range routes {
		log.Debugf("registering route %s: %s %s", route.Name, route.Method, route.Pattern)

		subRouter.
			Methods(route.Method).
			Path(route.Pattern).
			Name(route.Name).
			Handler(route.HandlerFunc)
	}

	return router
}

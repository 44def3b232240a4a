package utils

import (
	"flag"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// LocalhostAddr contains the default interface address
	LocalhostAddr = "0.0.0.0"
)

// StartServer seeds the random generator and starts a server on the
// specified host and port serving the routes passed with a specified prefix.
func StartServer(serviceName string, port int, prefixPath string, routes []Route) {
	debug := flag.Bool("d", false, "add debug logs")
	listenAddr := flag.String("l", LocalhostAddr, "address to listen on")
	flag.Parse()

	StartServerWithoutDefaultFlags(serviceName, port, prefixPath, routes, debug, listenAddr)
}

func StartServerWithoutDefaultFlags(serviceName string, port int, prefixPath string, routes []Route,
	debug *bool, listenAddr *string) {
	rand.Seed(time.Now().UnixNano())

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	log.Debug("starting log in debug mode")
	r := NewRouter(prefixPath, routes)

	listenAddrPort := *listenAddr
	if listenAddrPort == "" {
		listenAddrPort = LocalhostAddr
	}
	listenAddrPort += ":" + strconv.Itoa(port)

	log.Infof("%s server listening at %s...", serviceName, listenAddrPort)
	log.Panic(http.ListenAndServe(listenAddrPort, r))
}

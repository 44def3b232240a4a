package main

import (
	"flag"

	api "github.com/bedrock-ops/mc-controller-api/api/controller"
	internal "github.com/bedrock-ops/mc-controller-api/internal/controller"
	"github.com/bedrock-ops/mc-controller-api/internal/utils"
	"github.com/bedrock-ops/mc-controller-api/pkg/controller"
	log "github.com/sirupsen/logrus"
)

const (
	serviceName = "CONTROLLER"
)

func main() {
	debug := flag.Bool("d", false, "add debug logs")
	listenAddr := flag.String("l", utils.LocalhostAddr, "address to listen on")
	configPath := flag.String("c", "", "path to YAML config file")
	projectFile := flag.String("p", internal.DefaultProjectFile, "path to project TOML file")
	flag.Parse()

	config, err := internal.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	internal.InitHandlers(config, *projectFile)

	utils.StartServerWithoutDefaultFlags(serviceName, controller.Port, api.PrefixPath, internal.Routes,
		debug, listenAddr)
}

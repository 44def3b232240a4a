package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	api "github.com/bedrock-ops/mc-controller-api/api/controller"
	"github.com/bedrock-ops/mc-controller-api/pkg/controller/client"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	controllerClient *client.Client
)

func main() {
	debug := flag.Bool("d", false, "add debug logs")
	addr := flag.String("a", "localhost:80", "controller address")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	controllerClient = client.NewControllerClient(*addr)

	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "show the controller version",
				Action: func(c *cli.Context) error {
					showVersion()

					return nil
				},
			},
			{
				Name:    "status",
				Aliases: []string{"s"},
				Usage:   "show the managed server status",
				Action: func(c *cli.Context) error {
					showStatus()

					return nil
				},
			},
			{
				Name:    "levels",
				Aliases: []string{"lv"},
				Usage:   "list levels, or show one level when a name is given",
				Action: func(c *cli.Context) error {
					if c.Args().Len() > 0 {
						showLevel(c.Args().First())
					} else {
						showLevels()
					}

					return nil
				},
			},
			{
				Name:    "control",
				Aliases: []string{"c"},
				Usage:   "issue a control action (start|stop|restart)",
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						log.Fatal("control: start|stop|restart")
					}

					controlServer(c.Args().First())

					return nil
				},
			},
			{
				Name:    "logs",
				Aliases: []string{"lg"},
				Usage:   "show the managed server log tail",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "tail",
						Value: "100",
						Usage: "number of log lines",
					},
				},
				Action: func(c *cli.Context) error {
					showLogs(c.String("tail"))

					return nil
				},
			},
		},
	}

	err := app.Run(append([]string{os.Args[0]}, flag.Args()...))
	if err != nil {
		log.Fatal(err)
	}
}

func showVersion() {
	version, status := controllerClient.GetVersion()
	if status != http.StatusOK {
		log.Fatalf("got status %d from controller", status)
	}

	fmt.Println(version)
}

func showStatus() {
	containerStatus, status := controllerClient.GetStatus()
	if status != http.StatusOK {
		log.Fatalf("got status %d from controller", status)
	}

	fmt.Println(containerStatus.Status)

	if containerStatus.StartedAt != "" {
		fmt.Println("started at: ", containerStatus.StartedAt)
	}
}

func showLevels() {
	levels, status := controllerClient.GetLevels()
	if status != http.StatusOK {
		log.Fatalf("got status %d from controller", status)
	}

	for _, level := range levels {
		fmt.Println(level.Name)
	}
}

func showLevel(levelName string) {
	level, status := controllerClient.GetLevel(levelName)
	if status != http.StatusOK {
		log.Fatalf("got status %d from controller", status)
	}

	fmt.Println(level.Name)

	for _, pack := range level.BehaviorPacks {
		fmt.Printf("behavior pack %s %v\n", pack.UUID, pack.Version)
	}

	for _, pack := range level.ResourcePacks {
		fmt.Printf("resource pack %s %v\n", pack.UUID, pack.Version)
	}
}

func controlServer(action string) {
	switch action {
	case api.StartAction, api.StopAction, api.RestartAction:
	default:
		log.Fatalf("unknown action %s", action)
	}

	status := controllerClient.Control(action)
	if status != http.StatusAccepted {
		log.Fatalf("got status %d from controller", status)
	}
}

func showLogs(tail string) {
	logs, status := controllerClient.GetLogs(tail)
	if status != http.StatusOK {
		log.Fatalf("got status %d from controller", status)
	}

	fmt.Print(logs)
}

package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

// NewApp creates an app with sane defaults.
func (s *srv) loadApp() {
	s.ctx = context.Background()

	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "LocalBoost"
	app.Usage = ""
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Flags:       []cli.Flag{},
			Category:    "Api",
			Description: `Used for start service api, it main service included all apis.`,
		},
		{
			Action: server.startMigrate,
			Name:   "migrate",
			Usage:  "Migrate database",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "version",
					Usage: "The migration version which you want to run",
					Value: "auto",
				},
			},
			Category:    "Database",
			Description: `Used to run a database migration by its version.`,
		},
	}

	s.app = app
}

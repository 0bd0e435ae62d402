package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/authtokens/cmd/app/commands"
	"github.com/allisson/authtokens/internal/app"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Serve the token API until SIGINT or SIGTERM",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Create or upgrade the auth_tokens schema for DB_DRIVER",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg, err := commands.LoadConfig()
				if err != nil {
					return err
				}

				// Only the logger is used; no database connection is opened here.
				container := app.NewContainer(cfg)
				return commands.RunMigrations(ctx, container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
			},
		},
	}
}

package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

// migrateCommand returns a CLI command that creates the tables and indexes
// the scanner needs. Running it twice is harmless.
//
// Usage example:
//
//	aptoswatch migrate
func migrateCommand(m Migrator) *cli.Command {
	return &cli.Command{
		Name:        "migrate",
		Description: "Creates the checkpoint, subscription and token tables if they do not exist.",
		Usage:       "Applies the database schema.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return m.Migrate(ctx)
		},
	}
}

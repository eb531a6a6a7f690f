package cli

import (
	"context"
	"os"

	"github.com/gabapcia/aptoswatch/internal/pipeline"
	"github.com/gabapcia/aptoswatch/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

// Migrator applies the storage schema.
type Migrator interface {
	Migrate(ctx context.Context) error
}

// Run initializes and executes the aptoswatch CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Runs the block scanner until interrupted or a loop fails.
//   - `watch`: Subscribes a chat to a wallet.
//   - `unwatch`: Removes a subscription by chat and wallet, or by unsubscribe token.
//   - `migrate`: Applies the database schema.
func Run(ctx context.Context, wr walletregistry.Service, p pipeline.Service, m Migrator) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "aptoswatch",
		Description:           "Command-line interface for running the Aptos block scanner and managing wallet subscriptions.",
		Usage:                 "aptoswatch [command] [flags]",
		Commands: []*cli.Command{
			startPipelineCommand(p),
			startWatchingWalletCommand(wr),
			stopWatchingWalletCommand(wr),
			migrateCommand(m),
		},
	}

	return app.Run(ctx, os.Args)
}

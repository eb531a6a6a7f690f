package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/aptoswatch/internal/pipeline"

	"github.com/urfave/cli/v3"
)

// startPipelineCommand returns a CLI command that runs the scanner: shard
// workers, watermark compactor, tip tracker, snapshot refreshers and health
// monitor.
//
// Usage example:
//
//	aptoswatch start
//
// The process runs until it receives SIGINT or SIGTERM, or until one of the
// loops fails, in which case that failure is returned.
func startPipelineCommand(p pipeline.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the sharded block scanner and the wallet notification pipeline.",
		Usage:       "Initializes and runs the scanner. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := p.Start(ctx); err != nil {
				return err
			}
			defer p.Close()

			select {
			case <-quit:
				return nil
			case <-p.Done():
				return p.Err()
			}
		},
	}
}

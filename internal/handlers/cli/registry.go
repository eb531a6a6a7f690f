package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/aptoswatch/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

// ErrMissingTarget is returned by unwatch when neither a token nor a
// chat/address pair is given.
var ErrMissingTarget = errors.New("either --token or both --chat and --address are required")

// startWatchingWalletCommand returns a CLI command that subscribes a chat to
// a wallet address.
//
// Usage example:
//
//	aptoswatch watch --chat 42 --address 0x1 --track sent --min-usd 10
func startWatchingWalletCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Subscribe a chat to the fungible asset activity of a wallet.",
		Usage:       "Registers a wallet address for a chat. Must provide both chat and address.",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:     "chat",
				Usage:    "Telegram chat id that receives the notifications",
				Required: true,
			},
			&cli.Int64Flag{
				Name:  "user",
				Usage: "Telegram user id that owns the subscription",
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to start watching",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "nickname",
				Usage: "Label shown in notifications instead of the address",
			},
			&cli.StringFlag{
				Name:  "track",
				Usage: "Which activity to notify: full, sent, receive or balance",
				Value: "full",
			},
			&cli.FloatFlag{
				Name:  "min-usd",
				Usage: "Minimum USD value of a change worth notifying",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			req := walletregistry.SubscribeRequest{
				ChatID:          c.Int64("chat"),
				UserID:          c.Int64("user"),
				WalletAddress:   c.String("address"),
				TrackType:       c.String("track"),
				MinimumValueUSD: c.Float("min-usd"),
			}
			if c.IsSet("nickname") {
				nickname := c.String("nickname")
				req.Nickname = &nickname
			}

			id, err := wr.Subscribe(ctx, req)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.Root().Writer, "subscription %d created\n", id)
			return err
		},
	}
}

// stopWatchingWalletCommand returns a CLI command that removes a
// subscription, either by chat and address or by the token embedded in a
// notification's unsubscribe button.
//
// Usage example:
//
//	aptoswatch unwatch --chat 42 --address 0x1
//	aptoswatch unwatch --token "0 17"
func stopWatchingWalletCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "unwatch",
		Description: "Remove a wallet subscription from a chat.",
		Usage:       "Stops watching a wallet. Provide --token, or both --chat and --address.",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "chat",
				Usage: "Telegram chat id of the subscription",
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "Wallet address to stop watching",
			},
			&cli.StringFlag{
				Name:  "token",
				Usage: "Unsubscribe token taken from a notification",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if token := c.String("token"); token != "" {
				return wr.UnsubscribeByToken(ctx, token)
			}

			var (
				chatID  = c.Int64("chat")
				address = c.String("address")
			)
			if chatID == 0 || address == "" {
				return ErrMissingTarget
			}

			return wr.Unsubscribe(ctx, chatID, address)
		},
	}
}

package walletregistry

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/aptoswatch/internal/address"
	"github.com/gabapcia/aptoswatch/internal/pkg/validator"
	"github.com/gabapcia/aptoswatch/internal/walletalert"
	"github.com/gabapcia/aptoswatch/internal/walletindex"
)

var (
	// ErrAlreadySubscribed is returned when the chat already follows the wallet.
	ErrAlreadySubscribed = errors.New("chat already follows this wallet")

	// ErrSubscriptionNotFound is returned when there is nothing to remove.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscribeRequest describes a new subscription.
type SubscribeRequest struct {
	ChatID          int64 `validate:"required"`
	UserID          int64
	WalletAddress   string  `validate:"required,aptos_address"`
	Nickname        *string `validate:"omitempty,max=64"`
	TrackType       string  `validate:"omitempty,oneof=full sent receive balance FULL SENT RECEIVE BALANCE"`
	MinimumValueUSD float64 `validate:"gte=0"`
}

// SubscriptionStorage persists subscriptions.
type SubscriptionStorage interface {
	// InsertSubscription stores sub and returns its id. It returns
	// ErrAlreadySubscribed when (chat, wallet) is already present.
	InsertSubscription(ctx context.Context, sub walletindex.Subscription) (int64, error)

	// DeleteSubscription removes the (chat, wallet) subscription and returns
	// how many rows were deleted.
	DeleteSubscription(ctx context.Context, chatID int64, wallet string) (int64, error)

	// DeleteSubscriptionByID removes a subscription by id and returns how
	// many rows were deleted.
	DeleteSubscriptionByID(ctx context.Context, id int64) (int64, error)
}

// Subscribe validates req, normalizes the wallet address and stores the
// subscription.
func (s *service) Subscribe(ctx context.Context, req SubscribeRequest) (int64, error) {
	if err := validator.Validate(req); err != nil {
		return 0, err
	}

	trackType, err := walletindex.ParseTrackType(req.TrackType)
	if err != nil {
		return 0, err
	}

	return s.storage.InsertSubscription(ctx, walletindex.Subscription{
		ChatID:          req.ChatID,
		UserID:          req.UserID,
		WalletAddress:   address.Normalize(req.WalletAddress),
		Nickname:        req.Nickname,
		TrackType:       trackType,
		MinimumValueUSD: req.MinimumValueUSD,
	})
}

type unsubscribeRequest struct {
	ChatID        int64  `validate:"required"`
	WalletAddress string `validate:"required,aptos_address"`
}

// Unsubscribe removes the subscription of chatID to wallet.
func (s *service) Unsubscribe(ctx context.Context, chatID int64, wallet string) error {
	req := unsubscribeRequest{ChatID: chatID, WalletAddress: wallet}
	if err := validator.Validate(req); err != nil {
		return err
	}

	n, err := s.storage.DeleteSubscription(ctx, chatID, address.Normalize(wallet))
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: chat %d, wallet %s", ErrSubscriptionNotFound, chatID, wallet)
	}
	return nil
}

// UnsubscribeByToken removes the subscription referenced by token.
func (s *service) UnsubscribeByToken(ctx context.Context, token string) error {
	id, err := walletalert.ParseUnsubscribeToken(token)
	if err != nil {
		return err
	}

	n, err := s.storage.DeleteSubscriptionByID(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrSubscriptionNotFound, id)
	}
	return nil
}

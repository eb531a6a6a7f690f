// Package walletregistry manages the wallet subscriptions that drive alerts:
// which chat follows which Aptos account, under which policy.
package walletregistry

import "context"

// Service defines the administrative operations over wallet subscriptions.
//
// Implementations are responsible for validating input and delegating
// persistence to the configured SubscriptionStorage.
type Service interface {
	// Subscribe makes a chat follow a wallet.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout.
	//   - req: the chat, the wallet and the alert policy.
	//
	// Returns:
	//   - The id of the new subscription.
	//   - ErrAlreadySubscribed if the chat already follows the wallet.
	//   - A validation error if the request is malformed.
	Subscribe(ctx context.Context, req SubscribeRequest) (int64, error)

	// Unsubscribe stops a chat from following a wallet.
	//
	// Returns ErrSubscriptionNotFound if the chat did not follow it.
	Unsubscribe(ctx context.Context, chatID int64, wallet string) error

	// UnsubscribeByToken removes the subscription referenced by an
	// unsubscribe callback token ("0 <id>").
	UnsubscribeByToken(ctx context.Context, token string) error
}

// service is the concrete implementation of the Service interface.
type service struct {
	storage SubscriptionStorage
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a walletregistry service backed by the given storage.
func New(storage SubscriptionStorage) *service {
	return &service{
		storage: storage,
	}
}

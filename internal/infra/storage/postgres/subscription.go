package postgres

import (
	"context"
	"fmt"

	"github.com/gabapcia/aptoswatch/internal/walletalert"
	"github.com/gabapcia/aptoswatch/internal/walletindex"
	"github.com/gabapcia/aptoswatch/internal/walletregistry"

	"github.com/jackc/pgx/v5"
)

// SubscriptionStore keeps the wallet_tracked rows.
type SubscriptionStore struct {
	db Executor
}

var (
	_ walletindex.Storage                = (*SubscriptionStore)(nil)
	_ walletalert.SubscriptionStorage    = (*SubscriptionStore)(nil)
	_ walletregistry.SubscriptionStorage = (*SubscriptionStore)(nil)
)

// NewSubscriptionStore returns a store running its statements on db.
func NewSubscriptionStore(db Executor) *SubscriptionStore {
	return &SubscriptionStore{db: db}
}

func (s *SubscriptionStore) ListSubscriptions(ctx context.Context) ([]walletindex.Subscription, error) {
	const query = `
		SELECT id, chat_id, user_id, wallet_address, nickname, track_type, minimum_value_usd, created_at
		FROM wallet_tracked
		ORDER BY id
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	subs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (walletindex.Subscription, error) {
		var (
			sub       walletindex.Subscription
			trackType string
		)
		err := row.Scan(&sub.ID, &sub.ChatID, &sub.UserID, &sub.WalletAddress, &sub.Nickname, &trackType, &sub.MinimumValueUSD, &sub.CreatedAt)
		if err != nil {
			return sub, err
		}

		sub.TrackType, err = walletindex.ParseTrackType(trackType)
		if err != nil {
			return sub, fmt.Errorf("subscription %d: %w", sub.ID, err)
		}
		return sub, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan subscriptions: %w", err)
	}
	return subs, nil
}

func (s *SubscriptionStore) InsertSubscription(ctx context.Context, sub walletindex.Subscription) (int64, error) {
	const query = `
		INSERT INTO wallet_tracked (chat_id, user_id, wallet_address, nickname, track_type, minimum_value_usd)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRow(ctx, query,
		sub.ChatID,
		sub.UserID,
		sub.WalletAddress,
		sub.Nickname,
		string(sub.TrackType),
		sub.MinimumValueUSD,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: chat %d, wallet %s", walletregistry.ErrAlreadySubscribed, sub.ChatID, sub.WalletAddress)
		}
		return 0, fmt.Errorf("insert subscription: %w", err)
	}
	return id, nil
}

func (s *SubscriptionStore) DeleteSubscription(ctx context.Context, chatID int64, wallet string) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM wallet_tracked WHERE chat_id = $1 AND wallet_address = $2`, chatID, wallet)
	if err != nil {
		return 0, fmt.Errorf("delete subscription: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *SubscriptionStore) DeleteSubscriptionByID(ctx context.Context, id int64) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM wallet_tracked WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete subscription %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

func (s *SubscriptionStore) PurgeChat(ctx context.Context, chatID int64) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM wallet_tracked WHERE chat_id = $1`, chatID)
	if err != nil {
		return 0, fmt.Errorf("purge chat %d: %w", chatID, err)
	}
	return tag.RowsAffected(), nil
}

// MigrateChat moves the subscriptions of from to to. Wallets that to already
// follows keep the existing row of to.
func (s *SubscriptionStore) MigrateChat(ctx context.Context, from, to int64) error {
	const query = `
		UPDATE wallet_tracked AS w
		SET chat_id = $2
		WHERE w.chat_id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM wallet_tracked AS t
			WHERE t.chat_id = $2 AND t.wallet_address = w.wallet_address
		  )
	`

	if _, err := s.db.Exec(ctx, query, from, to); err != nil {
		return fmt.Errorf("migrate chat %d to %d: %w", from, to, err)
	}
	if _, err := s.db.Exec(ctx, `DELETE FROM wallet_tracked WHERE chat_id = $1`, from); err != nil {
		return fmt.Errorf("drop leftovers of chat %d: %w", from, err)
	}
	return nil
}

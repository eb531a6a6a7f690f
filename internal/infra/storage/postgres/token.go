package postgres

import (
	"context"
	"fmt"

	"github.com/gabapcia/aptoswatch/internal/tokenprice"

	"github.com/jackc/pgx/v5"
)

// TokenStore keeps the token_info rows.
type TokenStore struct {
	db Executor
}

var _ tokenprice.Storage = (*TokenStore)(nil)

// NewTokenStore returns a store running its statements on db.
func NewTokenStore(db Executor) *TokenStore {
	return &TokenStore{db: db}
}

func (s *TokenStore) ListTokens(ctx context.Context) ([]tokenprice.Entry, error) {
	rows, err := s.db.Query(ctx, `SELECT address, price_usd, decimals, name FROM token_info`)
	if err != nil {
		return nil, fmt.Errorf("list tokens: %w", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (tokenprice.Entry, error) {
		var (
			e        tokenprice.Entry
			decimals int16
		)
		if err := row.Scan(&e.Address, &e.PriceUSD, &decimals, &e.Name); err != nil {
			return e, err
		}
		e.Decimals = uint8(decimals)
		return e, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan tokens: %w", err)
	}
	return entries, nil
}

// RegisterTokens inserts the tokens in one batch, ignoring known addresses.
func (s *TokenStore) RegisterTokens(ctx context.Context, tokens []tokenprice.Discovery) error {
	if len(tokens) == 0 {
		return nil
	}

	const query = `
		INSERT INTO token_info (address, decimals)
		VALUES ($1, $2)
		ON CONFLICT (address) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, t := range tokens {
		batch.Queue(query, t.Address, int16(t.Decimals))
	}

	if err := s.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("register %d tokens: %w", len(tokens), err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/gabapcia/aptoswatch/internal/checkpoint"

	"github.com/jackc/pgx/v5"
)

// CheckpointStore keeps one processed_block row per claimed height.
type CheckpointStore struct {
	db Executor
}

var _ checkpoint.Storage = (*CheckpointStore)(nil)

// NewCheckpointStore returns a store running its statements on db.
func NewCheckpointStore(db Executor) *CheckpointStore {
	return &CheckpointStore{db: db}
}

func (s *CheckpointStore) InsertClaim(ctx context.Context, height uint64, shard checkpoint.Shard) error {
	const query = `
		INSERT INTO processed_block (height, shard_modulo, shard_remainder, place, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (height) DO NOTHING
	`

	tag, err := s.db.Exec(ctx, query,
		int64(height),
		int16(shard.Modulo),
		int16(shard.Remainder),
		string(checkpoint.PlaceHead),
		string(checkpoint.StatusProcessing),
	)
	if err != nil {
		return fmt.Errorf("insert claim %d: %w", height, err)
	}
	if tag.RowsAffected() == 0 {
		return checkpoint.ErrAlreadyClaimed
	}
	return nil
}

func (s *CheckpointStore) InsertWatermark(ctx context.Context, height uint64) error {
	const query = `
		INSERT INTO processed_block (height, place, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (height) DO NOTHING
	`

	if _, err := s.db.Exec(ctx, query, int64(height), string(checkpoint.PlaceBottom), string(checkpoint.StatusComplete)); err != nil {
		return fmt.Errorf("insert watermark %d: %w", height, err)
	}
	return nil
}

func (s *CheckpointStore) UpdateStatus(ctx context.Context, height uint64, status checkpoint.Status, txCount uint32) error {
	if err := checkpoint.CheckStatusMove(checkpoint.StatusProcessing, status); err != nil {
		return err
	}

	const query = `
		UPDATE processed_block
		SET status = $2, tx_count = $3, updated_at = NOW()
		WHERE height = $1 AND status = ANY($4)
	`

	tag, err := s.db.Exec(ctx, query, int64(height), string(status), int64(txCount), toStrings(checkpoint.StatusSources(status)))
	if err != nil {
		return fmt.Errorf("update status %d: %w", height, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: no processing row at %d", checkpoint.ErrRecordNotFound, height)
	}
	return nil
}

func (s *CheckpointStore) FindWatermark(ctx context.Context, place checkpoint.Place, order checkpoint.Order) (uint64, error) {
	query := `SELECT height FROM processed_block WHERE place = $1 ORDER BY height ` + direction(order) + ` LIMIT 1`

	var height int64
	if err := s.db.QueryRow(ctx, query, string(place)).Scan(&height); err != nil {
		if IsNoRows(err) {
			return 0, checkpoint.ErrRecordNotFound
		}
		return 0, fmt.Errorf("find %s watermark: %w", place, err)
	}
	return uint64(height), nil
}

func (s *CheckpointStore) FindRange(ctx context.Context, minHeight uint64, limit int, order checkpoint.Order) ([]uint64, error) {
	// LIMIT NULL returns every row.
	var limitArg *int64
	if limit > 0 {
		l := int64(limit)
		limitArg = &l
	}

	query := `SELECT height FROM processed_block WHERE height >= $1 ORDER BY height ` + direction(order) + ` LIMIT $2`

	rows, err := s.db.Query(ctx, query, int64(minHeight), limitArg)
	if err != nil {
		return nil, fmt.Errorf("find range from %d: %w", minHeight, err)
	}

	heights, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan range from %d: %w", minHeight, err)
	}
	return toHeights(heights), nil
}

func (s *CheckpointStore) BulkSetPlace(ctx context.Context, minHeight, maxHeight uint64, place checkpoint.Place) (int64, error) {
	const query = `
		UPDATE processed_block
		SET place = $3, updated_at = NOW()
		WHERE height BETWEEN $1 AND $2 AND place = ANY($4)
	`

	tag, err := s.db.Exec(ctx, query, int64(minHeight), int64(maxHeight), string(place), toStrings(checkpoint.PlaceSources(place)))
	if err != nil {
		return 0, fmt.Errorf("move [%d, %d] to %s: %w", minHeight, maxHeight, place, err)
	}
	return tag.RowsAffected(), nil
}

func (s *CheckpointStore) SetPlace(ctx context.Context, height uint64, place checkpoint.Place) error {
	const query = `
		UPDATE processed_block
		SET place = $2, updated_at = NOW()
		WHERE height = $1 AND place = ANY($3)
	`

	tag, err := s.db.Exec(ctx, query, int64(height), string(place), toStrings(checkpoint.PlaceSources(place)))
	if err != nil {
		return fmt.Errorf("move %d to %s: %w", height, place, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var current string
	err = s.db.QueryRow(ctx, `SELECT place FROM processed_block WHERE height = $1`, int64(height)).Scan(&current)
	if err != nil {
		if IsNoRows(err) {
			return fmt.Errorf("%w: %d", checkpoint.ErrRecordNotFound, height)
		}
		return fmt.Errorf("read place of %d: %w", height, err)
	}

	if err := checkpoint.CheckPlaceMove(checkpoint.Place(current), place); err != nil {
		return err
	}
	return fmt.Errorf("%w: place %s -> %s", checkpoint.ErrIllegalTransition, current, place)
}

func (s *CheckpointStore) Exists(ctx context.Context, height uint64) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM processed_block WHERE height = $1)`, int64(height)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check %d: %w", height, err)
	}
	return exists, nil
}

// MarkStaleClaims moves every Processing row created before cutoff to Error
// and returns their heights in ascending order.
func (s *CheckpointStore) MarkStaleClaims(ctx context.Context, cutoff time.Time) ([]uint64, error) {
	const query = `
		UPDATE processed_block
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND created_at < $3
		RETURNING height
	`

	rows, err := s.db.Query(ctx, query, string(checkpoint.StatusError), string(checkpoint.StatusProcessing), cutoff)
	if err != nil {
		return nil, fmt.Errorf("mark stale claims: %w", err)
	}

	heights, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan stale claims: %w", err)
	}

	out := toHeights(heights)
	slices.Sort(out)
	return out, nil
}

func direction(order checkpoint.Order) string {
	if order == checkpoint.Descending {
		return "DESC"
	}
	return "ASC"
}

func toStrings[S ~string](values []S) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

func toHeights(values []int64) []uint64 {
	out := make([]uint64, 0, len(values))
	for _, v := range values {
		out = append(out, uint64(v))
	}
	return out
}

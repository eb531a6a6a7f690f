package checkpoint

import "context"

// Storage persists Records. Heights are unique. Implementations must enforce
// the transitions described by PlaceSources and StatusSources.
type Storage interface {
	// InsertClaim creates a Processing/Head record for height. It returns
	// ErrAlreadyClaimed if the height already exists.
	InsertClaim(ctx context.Context, height uint64, shard Shard) error

	// InsertWatermark creates a Complete/Bottom record for height. An existing
	// record at that height is left untouched.
	InsertWatermark(ctx context.Context, height uint64) error

	// UpdateStatus finalizes a Processing record. It returns ErrRecordNotFound
	// if no Processing record exists at height.
	UpdateStatus(ctx context.Context, height uint64, status Status, txCount uint32) error

	// FindWatermark returns the lowest (Ascending) or highest (Descending)
	// height with the given place, or ErrRecordNotFound.
	FindWatermark(ctx context.Context, place Place, order Order) (uint64, error)

	// FindRange returns heights >= minHeight sorted by order. A limit <= 0
	// returns every matching height.
	FindRange(ctx context.Context, minHeight uint64, limit int, order Order) ([]uint64, error)

	// BulkSetPlace moves every record with minHeight <= height <= maxHeight
	// whose place may legally reach place, returning how many moved.
	BulkSetPlace(ctx context.Context, minHeight, maxHeight uint64, place Place) (int64, error)

	// SetPlace moves a single record. It returns ErrIllegalTransition when
	// the record exists but cannot move, ErrRecordNotFound when it does not.
	SetPlace(ctx context.Context, height uint64, place Place) error

	// Exists reports whether a record exists at height.
	Exists(ctx context.Context, height uint64) (bool, error)
}

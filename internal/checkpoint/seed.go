package checkpoint

import (
	"context"
	"errors"
	"fmt"
)

// Seed creates the initial watermark at tip when the store holds no records
// at all. A store that has Head or Old rows but no Bottom is left for the
// Compactor to repair. It reports whether a seed was written.
func Seed(ctx context.Context, storage Storage, tip uint64) (bool, error) {
	for _, lookup := range []struct {
		place Place
		order Order
	}{
		{PlaceBottom, Ascending},
		{PlaceHead, Ascending},
		{PlaceOld, Descending},
	} {
		_, err := storage.FindWatermark(ctx, lookup.place, lookup.order)
		if err == nil {
			return false, nil
		}
		if !errors.Is(err, ErrRecordNotFound) {
			return false, fmt.Errorf("find %s: %w", lookup.place, err)
		}
	}

	if err := storage.InsertWatermark(ctx, tip); err != nil {
		return false, fmt.Errorf("seed watermark at %d: %w", tip, err)
	}

	return true, nil
}

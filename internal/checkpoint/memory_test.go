package checkpoint

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"
)

// memStore is an in-memory Storage honoring the record state machines.
type memStore struct {
	mu      sync.Mutex
	records map[uint64]Record
}

var _ Storage = (*memStore)(nil)

func newMemStore(records ...Record) *memStore {
	s := &memStore{records: make(map[uint64]Record)}
	for _, r := range records {
		s.records[r.Height] = r
	}
	return s
}

func row(height uint64, place Place) Record {
	return Record{Height: height, Place: place, Status: StatusComplete, Shard: Shard{Modulo: 1}}
}

func rows(from, to uint64, place Place) []Record {
	var out []Record
	for h := from; h <= to; h++ {
		out = append(out, row(h, place))
	}
	return out
}

func (s *memStore) snapshot() map[uint64]Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.records)
}

func (s *memStore) heightsAt(place Place) []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []uint64
	for h, r := range s.records {
		if r.Place == place {
			out = append(out, h)
		}
	}
	slices.Sort(out)
	return out
}

func (s *memStore) InsertClaim(_ context.Context, height uint64, shard Shard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[height]; ok {
		return ErrAlreadyClaimed
	}
	s.records[height] = Record{Height: height, Shard: shard, Place: PlaceHead, Status: StatusProcessing, CreatedAt: time.Now()}
	return nil
}

func (s *memStore) InsertWatermark(_ context.Context, height uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[height]; !ok {
		s.records[height] = Record{Height: height, Place: PlaceBottom, Status: StatusComplete, CreatedAt: time.Now()}
	}
	return nil
}

func (s *memStore) UpdateStatus(_ context.Context, height uint64, status Status, txCount uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[height]
	if !ok || r.Status != StatusProcessing {
		return ErrRecordNotFound
	}
	if err := CheckStatusMove(r.Status, status); err != nil {
		return err
	}

	r.Status, r.TxCount = status, txCount
	s.records[height] = r
	return nil
}

func (s *memStore) FindWatermark(_ context.Context, place Place, order Order) (uint64, error) {
	heights := s.heightsAt(place)
	if len(heights) == 0 {
		return 0, ErrRecordNotFound
	}
	if order == Descending {
		return heights[len(heights)-1], nil
	}
	return heights[0], nil
}

func (s *memStore) FindRange(_ context.Context, minHeight uint64, limit int, order Order) ([]uint64, error) {
	s.mu.Lock()
	var out []uint64
	for h := range s.records {
		if h >= minHeight {
			out = append(out, h)
		}
	}
	s.mu.Unlock()

	slices.Sort(out)
	if order == Descending {
		slices.Reverse(out)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) BulkSetPlace(_ context.Context, minHeight, maxHeight uint64, place Place) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var moved int64
	for h, r := range s.records {
		if h < minHeight || h > maxHeight || !r.Place.CanMove(place) {
			continue
		}
		r.Place = place
		s.records[h] = r
		moved++
	}
	return moved, nil
}

func (s *memStore) SetPlace(_ context.Context, height uint64, place Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[height]
	if !ok {
		return ErrRecordNotFound
	}
	if err := CheckPlaceMove(r.Place, place); err != nil {
		return err
	}

	r.Place = place
	s.records[height] = r
	return nil
}

func (s *memStore) Exists(_ context.Context, height uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.records[height]
	return ok, nil
}

// faultyStore wraps memStore and fails selected operations.
type faultyStore struct {
	*memStore
	findWatermarkErr error
	findRangeErr     error
	findRange        func(minHeight uint64) []uint64
	bulkErr          error
}

func (s *faultyStore) FindWatermark(ctx context.Context, place Place, order Order) (uint64, error) {
	if s.findWatermarkErr != nil {
		return 0, s.findWatermarkErr
	}
	return s.memStore.FindWatermark(ctx, place, order)
}

func (s *faultyStore) FindRange(ctx context.Context, minHeight uint64, limit int, order Order) ([]uint64, error) {
	if s.findRangeErr != nil {
		return nil, s.findRangeErr
	}
	if s.findRange != nil {
		return s.findRange(minHeight), nil
	}
	return s.memStore.FindRange(ctx, minHeight, limit, order)
}

func (s *faultyStore) BulkSetPlace(ctx context.Context, minHeight, maxHeight uint64, place Place) (int64, error) {
	if s.bulkErr != nil {
		return 0, s.bulkErr
	}
	return s.memStore.BulkSetPlace(ctx, minHeight, maxHeight, place)
}

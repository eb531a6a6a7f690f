// Package checkpoint keeps the per-height processing records that let several
// shard workers scan a chain in parallel and restart without gaps. It owns the
// record model and its state machines, the storage contract, the scheduler
// that picks the next height for a shard and the compactor that advances the
// contiguous watermark.
package checkpoint

import (
	"fmt"
	"time"
)

// Place is the position of a record relative to the watermark.
type Place string

const (
	// PlaceHead marks a record above the watermark.
	PlaceHead Place = "head"
	// PlaceBottom marks the single watermark record.
	PlaceBottom Place = "bottom"
	// PlaceOld marks a record below the watermark, all of which are contiguous.
	PlaceOld Place = "old"
)

// Status is the processing outcome of a record.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusComplete   Status = "complete"
	StatusError      Status = "error"
	StatusSkipped    Status = "skipped"
)

// Order selects the sort direction of height lookups.
type Order int

const (
	Ascending Order = iota
	Descending
)

// Shard identifies a worker's slice of heights: every height h with
// h % Modulo == Remainder.
type Shard struct {
	Modulo    uint8
	Remainder uint8
}

// Validate reports ErrInvalidShard when Modulo is zero or Remainder is out of range.
func (s Shard) Validate() error {
	if s.Modulo == 0 || s.Remainder >= s.Modulo {
		return fmt.Errorf("%w: %d/%d", ErrInvalidShard, s.Remainder, s.Modulo)
	}
	return nil
}

// Owns reports whether height belongs to the shard.
func (s Shard) Owns(height uint64) bool {
	return height%uint64(s.Modulo) == uint64(s.Remainder)
}

func (s Shard) String() string {
	return fmt.Sprintf("%d/%d", s.Remainder, s.Modulo)
}

// Shards returns every shard of an n-way split.
func Shards(n uint8) []Shard {
	shards := make([]Shard, 0, n)
	for r := uint8(0); r < n; r++ {
		shards = append(shards, Shard{Modulo: n, Remainder: r})
	}
	return shards
}

// Record is one processed (or in-flight) block height.
type Record struct {
	Height    uint64
	Shard     Shard
	Place     Place
	Status    Status
	TxCount   uint32
	CreatedAt time.Time
}

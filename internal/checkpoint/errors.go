package checkpoint

import "errors"

var (
	// ErrSlotDatabaseEmpty means no watermark could be located: the table is
	// empty, or the row at the watermark height is missing from the window.
	ErrSlotDatabaseEmpty = errors.New("checkpoint: no watermark row")

	// ErrWaitTillBottomUpdate means the scan budget above the window was
	// exhausted without finding an unclaimed height for the shard.
	ErrWaitTillBottomUpdate = errors.New("checkpoint: wait till bottom update")

	// ErrAlreadyClaimed is returned by InsertClaim when the height already has a record.
	ErrAlreadyClaimed = errors.New("checkpoint: height already claimed")

	// ErrRecordNotFound is returned when a lookup matches no record.
	ErrRecordNotFound = errors.New("checkpoint: record not found")

	// ErrOverflow is returned when a candidate height would not fit in a uint64
	// or the window spans more heights than the scheduler will scan.
	ErrOverflow = errors.New("checkpoint: height overflow")

	// ErrIllegalTransition is returned when a place or status change is not
	// allowed by the record state machines.
	ErrIllegalTransition = errors.New("checkpoint: illegal state transition")

	// ErrInvalidShard is returned for a zero modulo or a remainder >= modulo.
	ErrInvalidShard = errors.New("checkpoint: invalid shard")

	// ErrCompactorAlreadyRunning is returned when Run is called twice.
	ErrCompactorAlreadyRunning = errors.New("checkpoint: compactor already running")
)

package uht

import (
	"fmt"

	"github.com/aalhour/unchained/internal/logging"
)

// DefaultPartitionsShift is the default LocalCollector partition count
// expressed as a shift: 1<<DefaultPartitionsShift partitions (128).
const DefaultPartitionsShift = 7

// MaxPartitionsShift bounds num_partitions_shift per spec.md §6.1.
const MaxPartitionsShift = 16

// BuildConfig collects the options shared by LocalCollector and Build:
// the fixed tuple stride and the collector partition count. It follows
// the same options-struct-with-chainable-setters shape as this module's
// teacher lineage's ReaderOptions/WriteOptions.
type BuildConfig struct {
	tupleStride        int
	numPartitionsShift int
	logger             logging.Logger
}

// NewBuildConfig creates a BuildConfig for tuples of tupleStride bytes.
// tupleStride must be at least 8 and a multiple of 8 (a contract
// violation panics, matching the "REQUIRES:" discipline used throughout
// this module for programmer-misuse rather than runtime conditions).
func NewBuildConfig(tupleStride int) *BuildConfig {
	if tupleStride < 8 || tupleStride%8 != 0 {
		panic(fmt.Sprintf("uht: tupleStride must be >= 8 and a multiple of 8, got %d", tupleStride))
	}
	return &BuildConfig{
		tupleStride:        tupleStride,
		numPartitionsShift: DefaultPartitionsShift,
		logger:             logging.Discard,
	}
}

// WithPartitionsShift overrides the collector partition count, given as
// a shift (must be in [0, 16]). Returns cfg for chaining.
func (cfg *BuildConfig) WithPartitionsShift(shift int) *BuildConfig {
	if shift < 0 || shift > MaxPartitionsShift {
		panic(fmt.Sprintf("uht: numPartitionsShift must be in [0, %d], got %d", MaxPartitionsShift, shift))
	}
	cfg.numPartitionsShift = shift
	return cfg
}

// WithLogger attaches a diagnostic sink for Build's phase transitions.
// Passing nil restores the discarding default. Never consulted on
// Probe, Insert, or any other hot path.
func (cfg *BuildConfig) WithLogger(l logging.Logger) *BuildConfig {
	cfg.logger = logging.OrDiscard(l)
	return cfg
}

// TupleStride returns the configured byte width of one stored tuple.
func (cfg *BuildConfig) TupleStride() int { return cfg.tupleStride }

// NumPartitions returns 1<<numPartitionsShift, the collector partition count.
func (cfg *BuildConfig) NumPartitions() int { return 1 << cfg.numPartitionsShift }

// partitionShift returns the bit shift selecting a partition from a
// hash's Slot half: its top numPartitionsShift bits. Build selects a
// table slot from the top log2(table size) bits and merges partitions
// when there are more partitions than slots, so each merged partition
// covers a disjoint range of slots.
func (cfg *BuildConfig) partitionShift() uint {
	return uint(64 - cfg.numPartitionsShift)
}

package uht

import "fmt"

// LocalCollector accumulates build-side tuples for one scan partition
// or thread. It hash-partitions on insert using a high-order prefix of
// the key's hash — the same high-order bits Build later uses to pick a
// final table slot — so that the partition buffers it produces can be
// scattered into the final table without any synchronization between
// workers: different partitions never target the same final slot range.
type LocalCollector struct {
	stride   int
	shift    uint
	buffers  [][]byte
	tupleCnt int
}

// NewLocalCollector allocates 1<<cfg.numPartitionsShift empty partition
// buffers sized for cfg.TupleStride()-byte rows.
func NewLocalCollector(cfg *BuildConfig) *LocalCollector {
	n := cfg.NumPartitions()
	return &LocalCollector{
		stride:  cfg.tupleStride,
		shift:   cfg.partitionShift(),
		buffers: make([][]byte, n),
	}
}

// Insert appends one tuple row to the partition its key hashes into.
// payload must have exactly stride/8-1 words; a mismatch is a
// programmer-contract violation and panics, the same as a misused
// REQUIRES-documented stdlib-style encoder.
func (c *LocalCollector) Insert(key uint32, payload []uint64) {
	wantWords := c.stride/8 - 1
	if len(payload) != wantWords {
		panic(fmt.Sprintf("uht: payload length %d does not match stride %d (want %d words)", len(payload), c.stride, wantWords))
	}

	h := Hash(key)
	partition := h.Slot >> c.shift
	row := make([]byte, c.stride)
	EncodeTuple(row, key, payload)
	c.buffers[partition] = append(c.buffers[partition], row...)
	c.tupleCnt++
}

// TupleCount returns the number of tuples inserted so far.
func (c *LocalCollector) TupleCount() int { return c.tupleCnt }

// numPartitions returns the number of partition buffers this collector
// was allocated with.
func (c *LocalCollector) numPartitions() int { return len(c.buffers) }

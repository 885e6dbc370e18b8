package uht

import (
	"math/bits"
	"sync"

	"github.com/aalhour/unchained/internal/logging"
)

// minTableSize is the floor table_size regardless of tuple count,
// matching spec table_size(0) == 16.
const minTableSize = 16

// loadFactorNumerator/Denominator express the 1.125x minimum sizing
// factor as an integer ratio so table sizing needs no floating point.
const (
	loadFactorNumerator   = 9
	loadFactorDenominator = 8
)

// tableSizeFor returns the smallest power-of-two table size N with
// N >= 16 and N >= 1.125*n, plus the directory-index shift
// shift = 64 - log2(N) that selects a slot from a hash's Slot half.
func tableSizeFor(n int) (size int, shift uint) {
	need := minTableSize
	if scaled := (n*loadFactorNumerator + loadFactorDenominator - 1) / loadFactorDenominator; scaled > need {
		need = scaled
	}
	size = minTableSize
	for size < need {
		size <<= 1
	}
	shift = uint(65 - bits.Len(uint(size))) // 64 - log2(size)
	return size, shift
}

// Build runs the three-phase parallel build over a set of collectors'
// partition buffers and returns the resulting immutable Table.
//
// Phase 1 (count & Bloom accumulation) and phase 3 (scatter) run one
// goroutine per final partition; phase 2 (exclusive prefix sum) runs
// sequentially in between. Hash partitioning guarantees each worker's
// partition buffer maps to a disjoint directory index range in every
// phase, so no atomics are used for the directory or tuple-storage
// writes — only the wg.Wait() barriers between phases are needed to
// establish happens-before.
func Build(collectors []*LocalCollector, cfg *BuildConfig) *Table {
	total := 0
	for _, c := range collectors {
		total += c.tupleCnt
	}

	stride := cfg.tupleStride
	size, shift := tableSizeFor(total)
	partitions := cfg.NumPartitions()
	workers := min(partitions, size)
	ratio := partitions / workers

	partitionData := mergePartitions(collectors, workers, ratio)

	cfg.logger.Debugf(logging.NSUHT+"phase=count partitions=%d tuples=%d", workers, total)
	directory := make([]DirectoryEntry, size+1)
	runOverPartitions(partitionData, func(data []byte) {
		for off := 0; off < len(data); off += stride {
			row := data[off : off+stride]
			h := Hash(uint32(rowKey(row)))
			slot := h.Slot >> shift
			tag := BloomTag(h.Filter)
			directory[slot+1] = directory[slot+1].AddOffset(uint64(stride)).WithTag(tag)
		}
	})

	cfg.logger.Debugf(logging.NSUHT + "phase=prefixsum")
	var cumulative uint64
	for i := 1; i <= size; i++ {
		count := directory[i].Offset()
		directory[i] = NewDirectoryEntry(cumulative, directory[i].Bloom())
		cumulative += count
	}

	storage := make([]byte, cumulative)

	cfg.logger.Debugf(logging.NSUHT + "phase=scatter")
	runOverPartitions(partitionData, func(data []byte) {
		for off := 0; off < len(data); off += stride {
			row := data[off : off+stride]
			h := Hash(uint32(rowKey(row)))
			slot := h.Slot >> shift
			cursor := directory[slot+1].Offset()
			directory[slot+1] = directory[slot+1].AddOffset(uint64(stride))
			copy(storage[cursor:cursor+uint64(stride)], row)
		}
	})

	return &Table{
		directory: directory,
		storage:   storage,
		stride:    stride,
		shift:     shift,
		numTuples: total,
	}
}

// mergePartitions concatenates each collector's buffers[k*ratio:(k+1)*ratio)
// across all collectors into one blob per final partition, implementing
// the merge step spec.md §4.4 describes for when the collector partition
// count exceeds the final table's.
func mergePartitions(collectors []*LocalCollector, workers, ratio int) [][]byte {
	data := make([][]byte, workers)
	for k := 0; k < workers; k++ {
		lo, hi := k*ratio, (k+1)*ratio
		var size int
		for _, c := range collectors {
			for p := lo; p < hi; p++ {
				size += len(c.buffers[p])
			}
		}
		buf := make([]byte, 0, size)
		for _, c := range collectors {
			for p := lo; p < hi; p++ {
				buf = append(buf, c.buffers[p]...)
			}
		}
		data[k] = buf
	}
	return data
}

// runOverPartitions fans fn out over one goroutine per partition and
// waits for all of them, the fork-join shape every phase of Build uses.
func runOverPartitions(partitionData [][]byte, fn func(data []byte)) {
	var wg sync.WaitGroup
	wg.Add(len(partitionData))
	for _, data := range partitionData {
		go func(data []byte) {
			defer wg.Done()
			fn(data)
		}(data)
	}
	wg.Wait()
}

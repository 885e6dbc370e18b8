package uht

import (
	"math/bits"
	"unsafe"

	"github.com/aalhour/unchained/internal/cpufeatures"
)

const (
	// bloomTagTableSize is 2^11: an 11-bit index (bits [31:21] of a
	// hash's Filter half) can select an entry with no bounds check.
	bloomTagTableSize = 2048

	// bloomTagDistinctCount is C(16,4): the number of distinct 16-bit
	// masks with exactly 4 bits set.
	bloomTagDistinctCount = 1820
)

// bloomTags is the process-wide static table of 2048 sixteen-bit masks,
// each of Hamming weight exactly 4. The first bloomTagDistinctCount
// entries are pairwise distinct; the remainder are arbitrary repeats
// used only so BloomTag never needs a bounds check. It is built once at
// package init and aligned to a page boundary so the whole table sits
// on as few TLB entries as the runtime's allocator allows.
var bloomTags = newBloomTagTable()

// newBloomTagTable allocates a page-aligned backing array and fills it
// with every 4-of-16 bit pattern, padded to bloomTagTableSize.
//
// Go's allocator gives no alignment guarantee beyond the type's natural
// alignment, so this over-allocates and carves an aligned window out of
// the slack — the same trick as manually aligning a buffer in C, just
// expressed with unsafe.Pointer arithmetic instead of posix_memalign.
func newBloomTagTable() *[bloomTagTableSize]uint16 {
	pageBytes := cpufeatures.PageSizeBytes
	// The alignment target is the larger of the page and the detected
	// cache line: on a host where cpuid reports an unusually wide line,
	// aligning to the page alone would not be enough slack to also land
	// the table on a cache line boundary.
	alignBytes := pageBytes
	if cl := cpufeatures.CacheLineBytes(); cl > alignBytes {
		alignBytes = cl
	}
	slack := alignBytes / 2 // in uint16 elements
	raw := make([]uint16, bloomTagTableSize+slack)

	base := uintptr(unsafe.Pointer(&raw[0]))
	align := uintptr(alignBytes)
	pad := (align - base%align) % align
	start := pad / 2 // byte pad -> uint16 element offset

	table := (*[bloomTagTableSize]uint16)(unsafe.Pointer(&raw[start]))
	fillBloomTags(table)
	return table
}

// fillBloomTags enumerates the distinct 4-of-16 masks in ascending
// numeric order, then pads the remainder of the table by cycling back
// through that same distinct set.
func fillBloomTags(table *[bloomTagTableSize]uint16) {
	i := 0
	for v := 0; v <= 0xFFFF && i < bloomTagDistinctCount; v++ {
		if bits.OnesCount16(uint16(v)) == 4 {
			table[i] = uint16(v)
			i++
		}
	}
	if i != bloomTagDistinctCount {
		panic("uht: bloom tag enumeration produced an unexpected count")
	}
	for ; i < bloomTagTableSize; i++ {
		table[i] = table[i%bloomTagDistinctCount]
	}
}

// BloomTag selects the 16-bit, weight-4 tag for a hash's filter half.
// It extracts bits [31:21] of filter as an 11-bit index into the
// process-wide static table.
func BloomTag(filter uint32) uint16 {
	return bloomTags[filter>>21]
}

// BloomCheck reports whether bloom's set bits are a superset of tag's.
// A false result guarantees absence; a true result only means "maybe" —
// the caller must still compare full keys.
func BloomCheck(bloom, tag uint16) bool {
	return bloom&tag == tag
}

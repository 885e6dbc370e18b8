package uht

// Table is an immutable, partition-built hash table. It supports no
// mutation after Build or Empty returns it; its lifetime must outlive
// every concurrent Probe/BloomCheck caller.
type Table struct {
	directory []DirectoryEntry
	storage   []byte
	stride    int
	shift     uint
	numTuples int
}

// Empty returns a minimum-size (16-slot) table with no tuples, the
// degenerate case Build itself falls back to for empty input.
func Empty(stride int) *Table {
	size, shift := tableSizeFor(0)
	return &Table{
		directory: make([]DirectoryEntry, size+1),
		storage:   nil,
		stride:    stride,
		shift:     shift,
		numTuples: 0,
	}
}

// NumTuples returns the total number of tuples stored.
func (t *Table) NumTuples() int { return t.numTuples }

// BloomCheck reports the Bloom verdict for key without scanning the
// matching slot: false guarantees key was never inserted, true means
// "maybe". It is cheap enough to use as a semi-join reducer pushed
// upstream of the full probe.
func (t *Table) BloomCheck(key uint32) bool {
	h := Hash(key)
	slot := h.Slot >> t.shift
	entry := t.directory[slot+1]
	tag := BloomTag(h.Filter)
	return BloomCheck(entry.Bloom(), tag)
}

// Probe looks up key and invokes fn once per stored tuple whose key
// matches, passing a stride/8-word slice whose first word is the key
// (as a zero-extended uint64) and whose remaining words are the
// payload. fn may return false to stop scanning early; this never
// changes Probe's own return value.
//
// Probe's return value is the Bloom verdict (see BloomCheck), not
// whether any tuple actually matched: a true result only means the
// Bloom filter could not rule key out, and the scan that follows may
// still invoke fn zero times.
//
// Tuples within a slot are visited in storage order, which reflects
// collector insertion order and is otherwise arbitrary; callers must
// not depend on it.
func (t *Table) Probe(key uint32, fn func(words []uint64) bool) bool {
	h := Hash(key)
	slot := h.Slot >> t.shift
	entry := t.directory[slot+1]
	tag := BloomTag(h.Filter)
	if !BloomCheck(entry.Bloom(), tag) {
		return false
	}

	start := t.directory[slot].Offset()
	end := entry.Offset()
	wantKey := uint64(key)
	stride := uint64(t.stride)
	for off := start; off < end; off += stride {
		row := t.storage[off : off+stride]
		if rowKey(row) != wantKey {
			continue
		}
		if !fn(DecodeWords(row)) {
			break
		}
	}
	return true
}

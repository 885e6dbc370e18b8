package uht

import "encoding/binary"

// Tuple is a decoded (key, payload) pair, the shape every LocalCollector
// insert and every Probe callback ultimately deals with. It exists so
// collector, build, probe, and their tests share one conversion to and
// from the packed byte layout instead of each hand-rolling it.
type Tuple struct {
	Key     uint32
	Payload []uint64
}

// EncodeTuple writes key followed by payload as native-endian uint64
// words into dst, which must be exactly stride bytes
// (8*(1+len(payload))).
func EncodeTuple(dst []byte, key uint32, payload []uint64) {
	binary.NativeEndian.PutUint64(dst[0:8], uint64(key))
	for i, w := range payload {
		off := 8 * (i + 1)
		binary.NativeEndian.PutUint64(dst[off:off+8], w)
	}
}

// DecodeWords reinterprets a stride-byte tuple row as stride/8
// native-endian uint64 words, words[0] being the key.
func DecodeWords(row []byte) []uint64 {
	words := make([]uint64, len(row)/8)
	for i := range words {
		words[i] = binary.NativeEndian.Uint64(row[i*8 : i*8+8])
	}
	return words
}

// rowKey reads only the leading key word of a stride-byte tuple row,
// the hot-path comparison Probe performs against every candidate.
func rowKey(row []byte) uint64 {
	return binary.NativeEndian.Uint64(row[0:8])
}

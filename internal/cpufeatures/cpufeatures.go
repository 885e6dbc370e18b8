// Package cpufeatures wraps github.com/klauspost/cpuid/v2 to answer the
// one question the uht package's layout code needs when the package is
// initialized: how wide is this machine's cache line, so the static
// Bloom tag table can be aligned to both a cache line and a page.
//
// Reference: RocksDB v10.7.5's own filter.CacheLineSize constant
// (internal/filter/bloom.go in this module's teacher lineage) hardcodes
// 64 bytes for Intel parts. cpuid lets us confirm that assumption on the
// host instead of hardcoding it everywhere.
package cpufeatures

import "github.com/klauspost/cpuid/v2"

// DefaultCacheLineBytes is used when CPU feature detection reports
// nothing usable (e.g. on an architecture cpuid doesn't recognize).
const DefaultCacheLineBytes = 64

// PageSizeBytes is the alignment used for the static Bloom tag table.
// Page size detection is not exposed by cpuid; 4 KB is the universal
// minimum across the platforms this module targets.
const PageSizeBytes = 4096

// CacheLineBytes returns the detected L1 data cache line size in bytes,
// or DefaultCacheLineBytes if detection is unavailable.
func CacheLineBytes() int {
	n := cpuid.CPU.CacheLine
	if n <= 0 {
		return DefaultCacheLineBytes
	}
	return n
}

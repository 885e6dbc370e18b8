// Package uht implements the Unchained Hash Table: a cache-friendly,
// partition-parallel, Bloom-filtered hash table optimized for equi-joins
// in a column-oriented query engine.
//
// A build-side scan feeds one LocalCollector per thread or partition.
// Collectors are handed to Build, which runs three phases — count and
// Bloom accumulation, an exclusive prefix sum, and scatter — to produce
// an immutable Table. Probers then call Table.Probe or Table.BloomCheck
// concurrently; a built Table supports no further mutation.
//
// Layout: the table stores tuples as fixed-stride byte rows (an 8-byte
// key followed by stride/8-1 native-endian uint64 payload words) in a
// single contiguous array, indexed by a directory of N+1 packed 64-bit
// entries (48-bit byte offset, 16-bit Bloom bitmap). Slot s occupies
// [directory[s].Offset(), directory[s+1].Offset()); the Bloom bitmap of
// slot s is carried in directory[s+1].
//
// Concurrency: Build uses a fork-join pattern — goroutines for phase 1
// and phase 3, a single sequential pass for phase 2 — relying on hash
// partitioning to guarantee that no two workers in the same phase touch
// the same directory entry or tuple-storage range, so no atomics are
// needed inside a phase. Probe is read-only and trivially concurrent
// once a Table exists; its lifetime must outlive every prober.
package uht

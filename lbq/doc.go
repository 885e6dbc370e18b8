// Package lbq implements a lock-free, bounded, multi-producer
// multi-consumer ring queue suitable for passing tuple batches between
// pipeline stages.
//
// The queue is a fixed array of C cells, C a power of two. Each cell
// packs a slot index and a generation counter into one 64-bit word; the
// counter's value relative to pos/C (the "lap") tells a producer or
// consumer whether the cell is ready for it without ever touching a
// pointer, which is what lets the ring avoid ABA hazards without an
// external reclamation scheme.
//
// Enqueue and Dequeue never block: each either completes or returns
// immediately (ErrFull, or ok=false) and leaves the queue unchanged.
// There is no cancellation layer here — callers own their own retry and
// back-pressure policy.
package lbq

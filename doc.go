/*
Package unchained provides data-plane primitives for an analytical query
engine: a cache-friendly, partition-parallel, Bloom-filtered hash table
for equi-joins (package uht) and a lock-free bounded MPMC ring queue for
passing tuple batches between pipeline stages (package lbq).

# Usage

Insert build-side tuples into one or more uht.LocalCollector values, pass
them to uht.Build, and look keys up with Table.Probe or Table.BloomCheck.
Create a ring queue with lbq.New and move values through it with Enqueue
and Dequeue.

# Concurrency

A uht.Table is immutable once built and safe for concurrent Probe/
BloomCheck calls from any number of goroutines; its lifetime must
outlive every prober. An lbq.Queue is safe for concurrent Enqueue and
Dequeue calls from any number of goroutines.

# Non-goals

This module does not provide durability, transactions, variable-width
tuples, keys wider than 32 bits, dynamic resizing of a built table, or
concurrent mutation of a built table.
*/
package unchained

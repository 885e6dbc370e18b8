// Command collisioncheck builds a synthetic UnchainedHashTable from a
// stream of xxh3-dispersed keys and reports the stored tuple count and
// the observed Bloom false-positive rate (slot occupancy is not
// reported), standing in for the benchmark
// harnesses spec.md §1 treats as out of scope while still exercising
// the properties spec.md §8 describes (scenario 4: Bloom isolation).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zeebo/xxh3"

	"github.com/aalhour/unchained/uht"
)

func main() {
	numKeys := flag.Int("keys", 100000, "number of unique keys to insert")
	probeKeys := flag.Int("probe", 100000, "number of absent keys to probe for false positives")
	partitionsShift := flag.Int("partitions-shift", uht.DefaultPartitionsShift, "collector partitions shift")
	flag.Parse()

	if *numKeys <= 0 || *probeKeys <= 0 {
		fmt.Fprintln(os.Stderr, "collisioncheck: --keys and --probe must be positive")
		os.Exit(1)
	}

	cfg := uht.NewBuildConfig(16).WithPartitionsShift(*partitionsShift)
	collector := uht.NewLocalCollector(cfg)

	keys := make([]uint32, *numKeys)
	for i := range keys {
		keys[i] = xxh3StreamKey(uint64(i))
	}
	for _, k := range keys {
		collector.Insert(k, []uint64{uint64(k)})
	}

	table := uht.Build([]*uht.LocalCollector{collector}, cfg)
	fmt.Printf("built table: %d tuples\n", table.NumTuples())

	missing := 0
	for _, k := range keys {
		if !table.BloomCheck(k) {
			missing++
		}
	}
	if missing > 0 {
		fmt.Printf("WARNING: %d inserted keys failed BloomCheck (should be 0)\n", missing)
	}

	falsePositives := 0
	for i := 0; i < *probeKeys; i++ {
		k := xxh3StreamKey(uint64(*numKeys) + uint64(i))
		if table.BloomCheck(k) {
			falsePositives++
		}
	}
	rate := float64(falsePositives) / float64(*probeKeys)
	fmt.Printf("observed false-positive rate: %.4f (%d/%d)\n", rate, falsePositives, *probeKeys)
}

// xxh3StreamKey hashes a monotonic counter into a well-dispersed
// uint32 key, avoiding math/rand's weaker dispersion guarantees at the
// key volumes this tool is meant to stress.
func xxh3StreamKey(counter uint64) uint32 {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(counter >> (8 * i))
	}
	return uint32(xxh3.Hash(buf[:]))
}

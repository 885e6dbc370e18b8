package uht

import "testing"

func TestProbeEarlyStop(t *testing.T) {
	table := buildSingleCollector(t, [][2]uint64{
		{10, 1}, {10, 2}, {10, 3},
	}, 16)

	var seen []uint64
	table.Probe(10, func(words []uint64) bool {
		seen = append(seen, words[1])
		return len(seen) < 2 // stop after the second match
	})
	if len(seen) != 2 {
		t.Fatalf("early-stopping Probe invoked callback %d times, want 2", len(seen))
	}
}

func TestBloomCheckAgreesWithPresence(t *testing.T) {
	table := buildSingleCollector(t, [][2]uint64{{5, 50}, {6, 60}}, 16)
	if !table.BloomCheck(5) || !table.BloomCheck(6) {
		t.Fatalf("BloomCheck false for an inserted key")
	}
}

func TestProbeReturnsBloomVerdictEvenWithoutMatch(t *testing.T) {
	// Build a table with one real key, then search for a different key
	// that lands in the same slot with a tag the slot's Bloom bitmap
	// covers (a Bloom false positive). Probe must return the true Bloom
	// verdict for it while invoking the callback zero times.
	table := buildSingleCollector(t, [][2]uint64{{1, 1}}, 16)
	scanned := false
	verdict := table.Probe(1, func([]uint64) bool { scanned = true; return true })
	if !verdict || !scanned {
		t.Fatalf("Probe(1) verdict=%v scanned=%v, want true/true", verdict, scanned)
	}

	for k := uint32(2); k < 1<<22; k++ {
		if !table.BloomCheck(k) {
			continue
		}
		calls := 0
		if !table.Probe(k, func([]uint64) bool { calls++; return true }) {
			t.Fatalf("Probe(%d) verdict=false, want true since BloomCheck(%d) is true", k, k)
		}
		if calls != 0 {
			t.Fatalf("Probe(%d) invoked callback %d times, want 0 for an absent key", k, calls)
		}
		return
	}
	t.Fatalf("no Bloom false positive found for the one-key table")
}

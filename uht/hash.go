package uht

// fibonacciConstant is 2^64/phi rounded to the nearest odd integer,
// the standard multiplier for Fibonacci hashing: multiplying by it
// concentrates entropy in the high bits of the 64-bit product, which is
// exactly what a right-shift-based slot selector wants.
const fibonacciConstant uint64 = 11400714819323198485

// HashPair is the derived (slot, filter) pair computed from a 32-bit
// key. Both fields are pure functions of key: Slot is the full 64-bit
// product of key*fibonacciConstant, and Filter is its low 32 bits.
type HashPair struct {
	Slot   uint64
	Filter uint32
}

// Hash multiplies key (zero-extended to 64 bits) by fibonacciConstant
// using wrapping 64-bit multiplication. No key is special-cased;
// Hash(0) is (0, 0) simply because 0 times anything is 0.
func Hash(key uint32) HashPair {
	slot := uint64(key) * fibonacciConstant
	return HashPair{Slot: slot, Filter: uint32(slot)}
}

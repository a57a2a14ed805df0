package splithash

import "sync/atomic"

// deepHashAtCount tracks how often a node's hashAt derivation had to recurse
// past the i=0/i=1 base cases (i >= 2), the path the spec notes is reached
// "only with astronomically unlikely probability". Kept as a package-level
// counter rather than threaded through every call so tests and embedders can
// sanity-check that the fast paths are in fact doing almost all the work.
var deepHashAtCount atomic.Uint64

func noteDeepHashAt() {
	deepHashAtCount.Add(1)
}

// DeepHashAtCount returns the number of hashAt(i) calls, across the whole
// process, that needed the i>=2 recursive derivation rather than the i=0/i=1
// base cases.
func DeepHashAtCount() uint64 {
	return deepHashAtCount.Load()
}

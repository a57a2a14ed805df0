package splithash

import "github.com/odipar/splithash/internal/oracle"

// P1, P2, P3 are the magic multipliers the node model's hashAt derivations
// mix in alongside the raw oracle output, re-exported from the oracle
// package as uint32 so callers don't need the conversion at every use.
const (
	P1 = uint32(oracle.P1)
	P2 = uint32(oracle.P2)
	P3 = uint32(oracle.P3)
)

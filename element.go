package splithash

import "github.com/odipar/splithash/internal/oracle"

// Element is any value usable as a SplitHash leaf. Implementations must be
// comparable in the domain sense (EqualElement) and able to derive a stable
// 32-bit digest of their own content; the node model never looks past this
// interface, so alternative element types plug in without touching the tree
// machinery.
type Element interface {
	Hash32() uint32
	EqualElement(other Element) bool
}

// IntElement is the reference Element: a bare 32-bit integer leaf, used
// throughout the test suite's scenarios.
type IntElement int32

// Hash32 seeds the oracle with a fixed second word so that two distinct
// IntElements never collide purely by reusing the same first word twice.
func (e IntElement) Hash32() uint32 {
	return oracle.SipHash24(uint32(e), 0)
}

func (e IntElement) EqualElement(other Element) bool {
	o, ok := other.(IntElement)
	return ok && o == e
}

// Leaf builds a single-element Node from v.
func Leaf(v Element) Node {
	return newLeaf(v)
}

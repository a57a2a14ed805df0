package splithash

import "github.com/odipar/splithash/internal/oracle"

// rleNode run-length-compresses m >= 2 adjacent, content-equal copies of
// inner into a single O(log m)-sized unit. inner is never itself an RLE —
// combine always unwraps one level before re-wrapping, so nesting can't
// happen.
type rleNode struct {
	inner Node
	m     int
	hash  uint32 // computed once at construction, immutable thereafter
}

// makeRLE builds the canonical representation of m copies of inner. A
// multiplicity of 1 degenerates to inner itself, since an RLE of one copy
// carries no information an RLE wrapper would add.
func makeRLE(inner Node, m int) Node {
	if m <= 1 {
		return inner
	}
	return &rleNode{
		inner: inner,
		m:     m,
		hash:  oracle.SipHash24(inner.HashAt(0), uint32(m)),
	}
}

func (n *rleNode) Size() int64        { return n.inner.Size() * int64(n.m) }
func (n *rleNode) Height() int        { return n.inner.Height() }
func (n *rleNode) ChunkHeight() int   { return n.inner.ChunkHeight() }
func (n *rleNode) IsChunked() bool    { return false }
func (n *rleNode) Multiplicity() int  { return n.m }
func (n *rleNode) First() Element     { return firstElement(n.inner) }
func (n *rleNode) Last() Element      { return lastElement(n.inner) }
func (n *rleNode) SplitParts() []Node { return []Node{n.inner} }

func (n *rleNode) Left() Node  { fail("Left() called on an RLE node") ; return nil }
func (n *rleNode) Right() Node { fail("Right() called on an RLE node") ; return nil }

func (n *rleNode) HashCode() uint32 { return n.hash }

func (n *rleNode) HashAt(i int) uint32 {
	switch {
	case i <= 0:
		return n.hash
	case i == 1:
		return oracle.SipHash24(n.hash+P2, uint32(n.m)-P3)
	default:
		noteDeepHashAt()
		return oracle.SipHash24(n.HashAt(i/2)+P2, uint32(n.m)-P3*uint32(i))
	}
}

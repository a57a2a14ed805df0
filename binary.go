package splithash

import (
	"sync/atomic"

	"github.com/odipar/splithash/internal/oracle"
)

// binaryNode is the workhorse two-child node. size is stored with a sign
// trick: a negative value means this node is itself the reconstructed root
// of a chunk boundary (IsChunked() true) — set only when decodeChunk
// rebuilds a ChunkedNode's top node. combine() does not consult it: the
// re-chunk decision in newBinary looks only at ChunkHeight. height
// and chunkHeight are packed into one 16-bit field since both are small,
// bounded values computed once at construction.
type binaryNode struct {
	left, right Node
	size        int64
	encoded     uint16 // height<<8 | chunkHeight
	hash        atomic.Uint32
}

func packEncoded(height, chunkHeight int) uint16 {
	return uint16(height)<<8 | uint16(chunkHeight&0xFF)
}

// newBinary assembles a canonical Binary node from two already-canonical
// children, auto-chunking the result if its chunkHeight would exceed the
// engine's cap — exactly the trigger §4.8 describes.
func newBinary(left, right Node, eng *Engine) Node {
	bn := rawBinary(left, right)
	if bn.ChunkHeight() > eng.maxChunk() {
		eng.logf("splithash: chunkHeight %d exceeds cap %d, re-chunking", bn.ChunkHeight(), eng.maxChunk())
		return chunkEncode(bn, eng)
	}
	return bn
}

func rawBinary(left, right Node) *binaryNode {
	height := left.Height()
	if right.Height() > height {
		height = right.Height()
	}
	height++
	chunkHeight := left.ChunkHeight()
	if right.ChunkHeight() > chunkHeight {
		chunkHeight = right.ChunkHeight()
	}
	chunkHeight++
	return &binaryNode{
		left:    left,
		right:   right,
		size:    left.Size() + right.Size(),
		encoded: packEncoded(height, chunkHeight),
	}
}

func (n *binaryNode) Size() int64 {
	if n.size < 0 {
		return -n.size
	}
	return n.size
}

func (n *binaryNode) Height() int      { return int(n.encoded >> 8) }
func (n *binaryNode) ChunkHeight() int { return int(n.encoded & 0xFF) }
func (n *binaryNode) IsChunked() bool  { return n.size < 0 }
func (n *binaryNode) Multiplicity() int { return 1 }

func (n *binaryNode) Left() Node  { return n.left }
func (n *binaryNode) Right() Node { return n.right }

func (n *binaryNode) First() Element { return firstElement(n.left) }
func (n *binaryNode) Last() Element  { return lastElement(n.right) }

func (n *binaryNode) SplitParts() []Node { return []Node{n.left, n.right} }

// HashCode is hashAt(0), lazily computed and cached. 0 doubles as "not yet
// computed" — a node whose real hash happens to be 0 just recomputes it
// every call, which is harmless since the derivation is pure and cheap.
func (n *binaryNode) HashCode() uint32 {
	if h := n.hash.Load(); h != 0 {
		return h
	}
	h := oracle.SipHash24(n.left.HashAt(0)-P2, n.right.HashAt(0)+P3)
	n.hash.Store(h)
	return h
}

func (n *binaryNode) HashAt(i int) uint32 {
	switch {
	case i <= 0:
		return n.HashCode()
	case i == 1:
		return (n.left.HashAt(0) - n.right.HashAt(0)) ^ n.HashCode()
	default:
		noteDeepHashAt()
		return oracle.SipHash24(n.left.HashAt(i/2)+P1, n.right.HashAt(i-i/2)+P2)
	}
}

func firstElement(n Node) Element {
	for {
		l, _, ok := asBinaryChildren(n)
		if !ok {
			return n.First()
		}
		n = l
	}
}

func lastElement(n Node) Element {
	for {
		_, r, ok := asBinaryChildren(n)
		if !ok {
			return n.Last()
		}
		n = r
	}
}

package splithash

import (
	"golang.org/x/sync/singleflight"
	"sync/atomic"
)

// chunkedNode replaces a deep, un-chunked Binary subtree with a flat pair of
// arrays (§4.8): leaves holds the leaf-of-chunk nodes in left-to-right
// order, structure is the pre-order internal/leaf bit sequence that lets
// decodeChunk rebuild the exact original shape. Its own ChunkHeight is always
// 0, so a parent Binary's chunk-height counter resets across a chunk
// boundary.
type chunkedNode struct {
	leaves    []Node
	structure []bool
	size      int64
	height    int
	hash      uint32

	cache atomic.Value // holds unchunkedHolder once reconstructed
	group singleflight.Group
}

type unchunkedHolder struct {
	node Node
}

func (n *chunkedNode) Size() int64        { return n.size }
func (n *chunkedNode) Height() int        { return n.height }
func (n *chunkedNode) ChunkHeight() int   { return 0 }
func (n *chunkedNode) IsChunked() bool    { return true }
func (n *chunkedNode) Multiplicity() int  { return 1 }
func (n *chunkedNode) HashCode() uint32   { return n.hash }
func (n *chunkedNode) SplitParts() []Node { return n.leaves }

func (n *chunkedNode) HashAt(i int) uint32 {
	return n.getUnchunked().HashAt(i)
}

// First and Last read off the outer leaf-of-chunk entries directly —
// leaves is already in left-to-right traversal order, so there's no need
// to reconstruct the binary form just to find an edge element.
func (n *chunkedNode) First() Element {
	return firstElement(n.leaves[0])
}

func (n *chunkedNode) Last() Element {
	return lastElement(n.leaves[len(n.leaves)-1])
}

func (n *chunkedNode) Left() Node {
	l, _, ok := asBinaryChildren(n.getUnchunked())
	if !ok {
		fail("Left() called on a chunked node whose reconstruction has no children")
	}
	return l
}

func (n *chunkedNode) Right() Node {
	_, r, ok := asBinaryChildren(n.getUnchunked())
	if !ok {
		fail("Right() called on a chunked node whose reconstruction has no children")
	}
	return r
}

// getUnchunked lazily rebuilds this node's pre-chunk binary form, caching
// the result and coalescing concurrent cache misses through a singleflight
// group — the double-checked-reconstruction pattern §5 calls for, using the
// ecosystem's idiomatic tool instead of a hand-rolled mutex-and-recheck.
func (n *chunkedNode) getUnchunked() Node {
	if v := n.cache.Load(); v != nil {
		return v.(unchunkedHolder).node
	}
	v, _, _ := n.group.Do("unchunk", func() (any, error) {
		if v := n.cache.Load(); v != nil {
			return v.(unchunkedHolder).node, nil
		}
		root := decodeChunk(n)
		n.cache.Store(unchunkedHolder{node: root})
		return root, nil
	})
	return v.(Node)
}

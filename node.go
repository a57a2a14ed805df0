package splithash

// Node is the shared interface implemented by all five SplitHash node
// variants: Leaf, Binary, RLE, Chunked, and the transient TempBinary used
// only while the fringe machinery assembles non-canonical intermediate
// trees. Operations that a variant cannot support (e.g. Size on a
// TempBinary) panic with InternalInconsistencyError rather than returning a
// zero value, since reaching them means a structural invariant was already
// broken by the caller.
type Node interface {
	// Size is the number of elements in the sequence this node roots.
	Size() int64
	// Height is the node's height above its leaves (a leaf has height 0).
	Height() int
	// ChunkHeight counts unbroken, un-chunked Binary layers since the last
	// chunk boundary (0 for Leaf or Chunked; an RLE reports its inner node's
	// ChunkHeight).
	ChunkHeight() int
	// First returns the leftmost element.
	First() Element
	// Last returns the rightmost element.
	Last() Element
	// Left and Right return the two children of a decomposable node.
	Left() Node
	Right() Node
	// HashCode is the node's canonical hash, hashAt(0).
	HashCode() uint32
	// HashAt derives the i-th independent hash of this node's subtree.
	HashAt(i int) uint32
	// IsChunked reports whether this node is itself a chunk-root boundary.
	IsChunked() bool
	// Multiplicity is the RLE repeat count (1 for every non-RLE node).
	Multiplicity() int
	// SplitParts returns the node's children, or its flat leaf array for a
	// Chunked node.
	SplitParts() []Node
}

func isBinary(n Node) bool {
	_, ok := n.(*binaryNode)
	return ok
}

// asBinaryChildren exposes a node's two children whenever it is (or can be
// transparently reconstructed into) a binary split: a *binaryNode directly,
// or a *chunkedNode via its lazy unchunked form. Leaf and RLE nodes are
// atomic for this purpose regardless of their own Height(), since neither
// decomposes into two siblings.
func asBinaryChildren(n Node) (Node, Node, bool) {
	switch v := n.(type) {
	case *binaryNode:
		return v.left, v.right, true
	case *tempBinaryNode:
		return v.left, v.right, true
	case *chunkedNode:
		u := v.getUnchunked()
		return asBinaryChildren(u)
	default:
		return nil, nil, false
	}
}

// multiplicityOf and unwrapRLE let combine/isMultipleOf treat a bare node
// and an RLE-wrapped node uniformly.
func multiplicityOf(n Node) int {
	return n.Multiplicity()
}

func unwrapRLE(n Node) Node {
	if r, ok := n.(*rleNode); ok {
		return r.inner
	}
	return n
}

func isMultipleOf(a, b Node) bool {
	return EqualTo(unwrapRLE(a), unwrapRLE(b))
}

// combine merges two adjacent, possibly-equal siblings into their canonical
// parent: an RLE run when they're multiples of the same subtree, otherwise
// a regular Binary node.
func combine(a, b Node, eng *Engine) Node {
	if isMultipleOf(a, b) {
		return makeRLE(unwrapRLE(a), multiplicityOf(a)+multiplicityOf(b))
	}
	return newBinary(a, b, eng)
}

// combine2 is combine's counterpart used while assembling transient,
// non-canonical trees during fringe decomposition: RLE-compressible pairs
// still compress (RLE has no "canonical vs temporary" distinction), but a
// non-matching pair becomes a TempBinary rather than a Binary, since the
// resulting shape is not yet a legal canonical tree.
func combine2(a, b Node, eng *Engine) Node {
	if isMultipleOf(a, b) {
		return makeRLE(unwrapRLE(a), multiplicityOf(a)+multiplicityOf(b))
	}
	return newTempBinary(a, b)
}

// onePairingPass folds an ordered slice of same-height nodes up exactly one
// level via combine2, carrying a trailing odd node up unchanged. Unlike
// foldCombine2, it stops after a single pass: transformSide uses this to move
// from one fringe round's band directly to the next round's band, reusing
// the in-memory slice instead of re-describing an already-built temporary
// tree from its root at every height.
func onePairingPass(nodes []Node, eng *Engine) []Node {
	if len(nodes) <= 1 {
		return nodes
	}
	next := make([]Node, 0, (len(nodes)+1)/2)
	i := 0
	for i+1 < len(nodes) {
		next = append(next, combine2(nodes[i], nodes[i+1], eng))
		i += 2
	}
	if i < len(nodes) {
		next = append(next, nodes[i])
	}
	return next
}

// foldCombine2 reduces an ordered slice of same-height nodes to a single
// (possibly unbalanced, always non-canonical) tree via repeated pairwise
// combine2, carrying an odd node at each level up unchanged. Order is always
// preserved left to right.
func foldCombine2(nodes []Node, eng *Engine) Node {
	level := nodes
	for len(level) > 1 {
		level = onePairingPass(level, eng)
	}
	if len(level) == 0 {
		return nil
	}
	return level[0]
}

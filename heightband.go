package splithash

// nodesAtHeight is the eager form of the height-band iterator (§4.2): it
// yields, left to right, the maximal nodes of tree whose height is at most
// h — descending through Binary/Chunked structure only while a node's
// height still exceeds h, and treating anything else (Leaf, RLE, or a
// Chunked node that bottoms out) as an atomic band element even when its
// own Height() is larger than h. RLE in particular never decomposes for
// this purpose: it represents a repeated subtree, not a binary split, so
// the whole run stays a single band element regardless of how tall the
// repeated subtree is.
//
// This flattens the whole band up front, so fringe.go's hot path drives
// round 0 from heightBandCursor instead; nodesAtHeight itself stays around
// for callers that genuinely want the full band materialized.
func nodesAtHeight(tree Node, h int) []Node {
	if tree.Height() <= h {
		return []Node{tree}
	}
	left, right, ok := asBinaryChildren(tree)
	if !ok {
		return []Node{tree}
	}
	out := nodesAtHeight(left, h)
	out = append(out, nodesAtHeight(right, h)...)
	return out
}

// heightBandCursor walks a tree from one edge, yielding height-0 band
// elements (leaves, RLE runs, bottomed-out Chunked nodes) nearest that edge
// first, decomposing a node only once next actually needs to go deeper.
// Anything not yet visited stays parked whole on the stack, so a caller that
// stops early after pulling k elements has only paid for the O(k) nodes it
// actually inspected, not for flattening the whole tree.
type heightBandCursor struct {
	dir   direction
	stack []Node
}

func newHeightBandCursor(tree Node, dir direction) *heightBandCursor {
	c := &heightBandCursor{dir: dir}
	if tree != nil {
		c.stack = []Node{tree}
	}
	return c
}

// next returns the next band element in edge-first order, or false once the
// tree is exhausted.
func (c *heightBandCursor) next() (Node, bool) {
	for len(c.stack) > 0 {
		n := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		left, right, ok := asBinaryChildren(n)
		if !ok {
			return n, true
		}
		if c.dir == dirLeft {
			c.stack = append(c.stack, right, left)
		} else {
			c.stack = append(c.stack, left, right)
		}
	}
	return nil, false
}

// rest returns whatever the cursor hasn't yet visited, undecomposed, in
// left-to-right sequence order. For dirRight the stack (edge-to-edge, top
// nearest the edge) already reads in sequence order bottom-to-top; for
// dirLeft it needs reversing first.
func (c *heightBandCursor) rest() []Node {
	if len(c.stack) == 0 {
		return nil
	}
	out := make([]Node, len(c.stack))
	copy(out, c.stack)
	if c.dir == dirLeft {
		reverseNodes(out)
	}
	return out
}

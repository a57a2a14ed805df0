package splithash

// Concat joins a and b into the canonical tree for their concatenated
// sequence (§4.6). Either operand may be nil (the empty sequence), in which
// case the other is returned unchanged.
func Concat(a, b Node) Node {
	return concatWith(a, b, nil)
}

// Concat is Engine-scoped Concat, honoring this engine's MaxChunkHeight and
// FringeScanWidth instead of the package defaults.
func (e *Engine) Concat(a, b Node) Node {
	return concatWith(a, b, e)
}

func concatWith(a, b Node, eng *Engine) Node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	right := transformSide(a, dirRight, eng)
	left := transformSide(b, dirLeft, eng)
	return concatFringes(right, left, eng)
}

// Split divides tree at index i into (tree[:i], tree[i:]) (§4.7). i is
// clamped: i<=0 yields an empty left half and the whole tree on the right;
// i>=Size(tree) yields the whole tree on the left and an empty right half.
func Split(tree Node, i int64) (Node, Node) {
	return splitWith(tree, i, nil)
}

func (e *Engine) Split(tree Node, i int64) (Node, Node) {
	return splitWith(tree, i, e)
}

func splitWith(tree Node, i int64, eng *Engine) (Node, Node) {
	return leftSplit(tree, i, eng), rightSplit(tree, i, eng)
}

func leftSplit(tree Node, i int64, eng *Engine) Node {
	if tree == nil || i <= 0 {
		return nil
	}
	if i >= tree.Size() {
		return tree
	}
	covered := compressRLE(collectLeftCover(tree, i))
	tmp := foldCombine2(covered, eng)
	rf := transformSide(tmp, dirRight, eng)
	return concatFringes(rf, emptyFringeSide(dirLeft), eng)
}

func rightSplit(tree Node, i int64, eng *Engine) Node {
	if tree == nil || i <= 0 {
		return tree
	}
	if i >= tree.Size() {
		return nil
	}
	remaining := tree.Size() - i
	covered := collectRightCover(tree, remaining)
	reverseNodes(covered)
	covered = compressRLE(covered)
	tmp := foldCombine2(covered, eng)
	lf := transformSide(tmp, dirLeft, eng)
	return concatFringes(emptyFringeSide(dirRight), lf, eng)
}

// collectLeftCover walks down from tree, greedily taking a whole left
// subtree and moving on to its right sibling whenever it fits within
// remaining, and descending into the left subtree otherwise,
// producing the ordered list of subtrees covering the first `remaining`
// elements. An RLE run that the cut falls inside is partially unrolled:
// whole copies become a smaller RLE, and the partial copy is resolved by
// recursing one level into its inner subtree.
func collectLeftCover(tree Node, remaining int64) []Node {
	var out []Node
	cur := tree
	for remaining > 0 {
		if r, ok := cur.(*rleNode); ok {
			innerSize := r.inner.Size()
			q := remaining / innerSize
			rem := remaining % innerSize
			if q > 0 {
				out = append(out, makeRLE(r.inner, int(q)))
			}
			if rem > 0 {
				out = append(out, collectLeftCover(r.inner, rem)...)
			}
			return out
		}
		left, right, ok := asBinaryChildren(cur)
		if !ok {
			out = append(out, cur)
			remaining -= cur.Size()
			continue
		}
		if left.Size() <= remaining {
			out = append(out, left)
			remaining -= left.Size()
			cur = right
		} else {
			cur = left
		}
	}
	return out
}

// collectRightCover is collectLeftCover's mirror image: it walks from the
// right edge, producing the cover list in right-to-left order (nearest the
// end first). Callers reverse it before use.
func collectRightCover(tree Node, remaining int64) []Node {
	var out []Node
	cur := tree
	for remaining > 0 {
		if r, ok := cur.(*rleNode); ok {
			innerSize := r.inner.Size()
			q := remaining / innerSize
			rem := remaining % innerSize
			if q > 0 {
				out = append(out, makeRLE(r.inner, int(q)))
			}
			if rem > 0 {
				out = append(out, collectRightCover(r.inner, rem)...)
			}
			return out
		}
		left, right, ok := asBinaryChildren(cur)
		if !ok {
			out = append(out, cur)
			remaining -= cur.Size()
			continue
		}
		if right.Size() <= remaining {
			out = append(out, right)
			remaining -= right.Size()
			cur = left
		} else {
			cur = right
		}
	}
	return out
}

func reverseNodes(nodes []Node) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}

// Size returns the number of elements in tree (0 for nil).
func Size(tree Node) int64 {
	if tree == nil {
		return 0
	}
	return tree.Size()
}

// Height returns tree's height (-1 for nil, so Size-0 and Height-(-1) both
// signal "empty" unambiguously).
func Height(tree Node) int {
	if tree == nil {
		return -1
	}
	return tree.Height()
}

// First returns tree's leftmost element, or nil if tree is empty.
func First(tree Node) Element {
	if tree == nil {
		return nil
	}
	return firstElement(tree)
}

// Last returns tree's rightmost element, or nil if tree is empty.
func Last(tree Node) Element {
	if tree == nil {
		return nil
	}
	return lastElement(tree)
}

// HashCode returns tree's canonical hash (0 for nil).
func HashCode(tree Node) uint32 {
	if tree == nil {
		return 0
	}
	return tree.HashCode()
}

// HashAt derives tree's i-th independent hash (0 for nil).
func HashAt(tree Node, i int) uint32 {
	if tree == nil {
		return 0
	}
	return tree.HashAt(i)
}

// EqualTo reports whether a and b represent the same sequence content. Two
// trees built independently from the same sequence always converge to the
// same canonical shape (history independence), so content equality reduces
// to comparing the canonical hash — itself already a recursive function of
// every element and of the tree's own shape.
func EqualTo(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Size() == b.Size() && a.HashCode() == b.HashCode()
}

package splithash

// direction names which edge of a tree a fringe decomposition peels from.
type direction int

const (
	dirLeft direction = iota
	dirRight
)

// fringeSide is the result of decomposing a canonical tree into a one-sided
// fringe representation (§4.4): layers[h] holds the fringe nodes peeled at
// height h, in left-to-right sequence order, for h in [0, topHeight). top
// holds whatever remained once an entire height-band was fringe; topHeight
// is the height at which it sits. An empty fringe (topHeight == -1, no
// layers, no top) represents "nothing on this side" and is used as the
// fixed operand when Split glues one real fringe against an empty one.
type fringeSide struct {
	dir        direction
	layers     [][]Node
	top        []Node
	topHeight  int
}

func emptyFringeSide(dir direction) *fringeSide {
	return &fringeSide{dir: dir, topHeight: -1}
}

// transformSide runs transformRight/transformLeft (§4.4): at each height h
// = 0, 1, 2, ..., peel the stable fringe off the `dir` edge of the current
// tree, rebuild whatever's left into a temporary tree via combine2, and
// keep going until peeling consumes the current tree entirely — that
// final band becomes top.
//
// Height 0 is driven by scanEdgeFringe, which pulls band elements lazily
// from the dir edge via heightBandCursor instead of flattening the whole
// tree up front — near-the-edge concats and splits only pay for the nodes
// the widening fringe scan actually inspects. Once round 0's keep is a
// flat slice, every later round folds it up exactly one level at a time
// via onePairingPass: that slice already IS the next round's band, so
// there's no need to re-describe a freshly built temporary tree from its
// root just to ask nodesAtHeight for the same level again.
func transformSide(tree Node, dir direction, eng *Engine) *fringeSide {
	fs := &fringeSide{dir: dir}
	if tree == nil {
		fs.topHeight = -1
		return fs
	}
	fringeNodes, keep, top := scanEdgeFringe(tree, dir, eng)
	if top {
		fs.top = fringeNodes
		fs.topHeight = 0
		return fs
	}
	fs.layers = append(fs.layers, fringeNodes)
	band := onePairingPass(keep, eng)
	h := 1
	for {
		k := scanFringeBoundary(band, dir, eng)
		if k >= len(band) {
			fs.top = band
			fs.topHeight = h
			return fs
		}
		var fn, kp []Node
		if dir == dirLeft {
			fn = band[:k]
			kp = band[k:]
		} else {
			fn = band[len(band)-k:]
			kp = band[:len(band)-k]
		}
		fs.layers = append(fs.layers, fn)
		band = onePairingPass(kp, eng)
		h++
	}
}

// pullWindow pulls up to width elements from li (starting at 0), returning
// what it got and whether that's everything li will ever produce — either
// because li ran dry before filling width, or because width elements fill
// li exactly with nothing left beyond them.
func pullWindow(li *lazyIndexable[Node], width int) ([]Node, bool) {
	out := make([]Node, 0, width)
	for i := 0; i < width; i++ {
		v, ok := li.At(i)
		if !ok {
			return out, true
		}
		out = append(out, v)
	}
	_, more := li.At(width)
	return out, !more
}

// scanEdgeFringe runs the §4.5 widening-frontier search directly against
// tree's dir edge via a heightBandCursor, instead of scanFringeBoundary's
// array-based version: it only pulls as many band elements as the scan
// actually needs, and reassembles the fringe/keep split in sequence order
// from whatever prefix it pulled plus the cursor's untouched residual. top
// reports that the dir edge's entire tree turned out to be fringe, with no
// keep remainder — the §4.4 "whole current band becomes top" case, for
// height 0.
func scanEdgeFringe(tree Node, dir direction, eng *Engine) (fringeSeq []Node, keep []Node, top bool) {
	cursor := newHeightBandCursor(tree, dir)
	li := newLazyIndexable(cursor.next)
	width := eng.scanWidth()
	var window []Node
	var k int
	var wasFinal bool
	for {
		win1, final1 := pullWindow(li, width)
		k1 := classifyFringeLength(win1, dir, eng)
		if final1 {
			window, k, wasFinal = win1, k1, true
			break
		}
		win2, final2 := pullWindow(li, width+1)
		k2 := classifyFringeLength(win2, dir, eng)
		if k1 == k2 {
			window, k, wasFinal = win1, k1, false
			break
		}
		if final2 {
			window, k, wasFinal = win2, k2, true
			break
		}
		width += eng.scanWidth()
	}
	eng.logf("splithash: fringe boundary stabilized at distance %d from the edge", k)
	if wasFinal && k >= len(window) {
		seq := append([]Node(nil), window...)
		if dir == dirRight {
			reverseNodes(seq)
		}
		return seq, nil, true
	}
	fringeDist := append([]Node(nil), window[:k]...)
	extraDist := append([]Node(nil), window[k:]...)
	extraDist = append(extraDist, li.cached[len(window):]...)
	residual := cursor.rest()
	if dir == dirRight {
		reverseNodes(fringeDist)
		reverseNodes(extraDist)
		keep = append(append([]Node{}, residual...), extraDist...)
	} else {
		keep = append(append([]Node{}, extraDist...), residual...)
	}
	return fringeDist, keep, false
}

// scanFringeBoundary implements §4.5's widening-frontier search over an
// already-materialized band: used for fringe rounds after height 0, where
// band is already a flat in-memory slice (round 0 itself goes through
// scanEdgeFringe instead, to avoid ever flattening a whole subtree).
func scanFringeBoundary(band []Node, dir direction, eng *Engine) int {
	total := len(band)
	if total == 0 {
		return 0
	}
	dist := toDistanceOrder(band, dir)
	width := eng.scanWidth()
	if width > total {
		width = total
	}
	for {
		k1 := classifyFringeLength(dist[:width], dir, eng)
		width2 := width + 1
		if width2 > total {
			width2 = total
		}
		k2 := classifyFringeLength(dist[:width2], dir, eng)
		if k1 == k2 {
			eng.logf("splithash: fringe boundary stabilized at distance %d from the edge", k1)
			return k1
		}
		if width >= total {
			eng.logf("splithash: fringe boundary stabilized at distance %d from the edge", k2)
			return k2
		}
		width += eng.scanWidth()
		if width > total {
			width = total
		}
	}
}

// toDistanceOrder reorders band so index 0 is nearest the dir edge. For
// dirLeft that's already band's own order; for dirRight it's the reverse.
func toDistanceOrder(band []Node, dir direction) []Node {
	if dir == dirLeft {
		return band
	}
	out := make([]Node, len(band))
	for i, n := range band {
		out[len(band)-1-i] = n
	}
	return out
}

// classifyFringeLength finds the first (nearest-edge) adjacent pair within
// a distance-ordered window that exhibits the "opposite-then-direction"
// bit pattern terminating the fringe: the node closer to the edge has the
// bit opposite of dir's own direction bit, and the one further in has dir's
// bit. Everything before that pair is fringe; if no such pair appears in
// the window, the whole window is tentatively fringe (pending widening).
func classifyFringeLength(distOrdered []Node, dir direction, eng *Engine) int {
	dirBit := uint32(0)
	if dir == dirRight {
		dirBit = 1
	}
	oppBit := uint32(1) - dirBit
	pairMerge := bitDrivenPairs(distOrdered, func(b1, b2 uint32) bool {
		return b1 == oppBit && b2 == dirBit
	}, eng)
	for j, merged := range pairMerge {
		if merged {
			return j
		}
	}
	return len(distOrdered)
}

// concatFringes glues a RightFringe (from the left operand of a concat)
// against a LeftFringe (from the right operand) per §4.4: at each height h,
// prepend the right side's contribution to the working array E, append the
// left side's, and stop once both sides are exhausted and exactly one node
// remains.
func concatFringes(right, left *fringeSide, eng *Engine) Node {
	var e []Node
	h := 0
	for {
		if h < len(right.layers) {
			e = append(append([]Node{}, right.layers[h]...), e...)
		} else if h == right.topHeight {
			e = append(append([]Node{}, right.top...), e...)
		}
		if h < len(left.layers) {
			e = append(e, left.layers[h]...)
		} else if h == left.topHeight {
			e = append(e, left.top...)
		}
		if h >= right.topHeight && h >= left.topHeight && len(e) == 1 {
			return e[0]
		}
		e = mergeRound(e, eng)
		h++
	}
}

package splithash

import "testing"

// foldLeftToRight concats leaf(values[0]), leaf(values[1]), ... in ascending
// order: ((((v0 . v1) . v2) . v3) ...).
func foldLeftToRight(values []int32) Node {
	var acc Node
	for _, v := range values {
		acc = Concat(acc, Leaf(IntElement(v)))
	}
	return acc
}

// foldRightToLeft concats the same values in descending order: (v0 . (v1 .
// (v2 . (v3 . ...)))). Scenario A and invariant 1 compare this against
// foldLeftToRight.
func foldRightToLeft(values []int32) Node {
	var acc Node
	for i := len(values) - 1; i >= 0; i-- {
		acc = Concat(Leaf(IntElement(values[i])), acc)
	}
	return acc
}

func intRange(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(i)
	}
	return out
}

// TestScenarioA_BuildOrderIndependence is spec.md §8 scenario A: folding the
// same sequence left-to-right and right-to-left must converge on the same
// canonical tree.
func TestScenarioA_BuildOrderIndependence(t *testing.T) {
	const n = 50000
	values := intRange(n)
	s1 := foldLeftToRight(values)
	s2 := foldRightToLeft(values)

	if HashCode(s1) != HashCode(s2) {
		t.Fatalf("hash mismatch between build orders: %d != %d", HashCode(s1), HashCode(s2))
	}
	if Size(s1) != n || Size(s2) != n {
		t.Fatalf("unexpected size: s1=%d s2=%d want %d", Size(s1), Size(s2), n)
	}
	if !EqualTo(s1, s2) {
		t.Fatalf("s1 and s2 are not content-equal")
	}
	if f, ok := First(s1).(IntElement); !ok || f != 0 {
		t.Fatalf("First(s1) = %v, want 0", First(s1))
	}
	if l, ok := Last(s1).(IntElement); !ok || int32(l) != n-1 {
		t.Fatalf("Last(s1) = %v, want %d", Last(s1), n-1)
	}
}

// TestScenarioB_RepeatsCompressAndStabilize is spec.md §8 scenario B: a
// sequence with frequent repeats (i mod 63) must contain RLE nodes and must
// hash identically across repeated builds of the same sequence.
func TestScenarioB_RepeatsCompressAndStabilize(t *testing.T) {
	const n = 50000
	values := make([]int32, n)
	for i := range values {
		values[i] = int32(i % 63)
	}
	s1 := foldLeftToRight(values)
	s2 := foldLeftToRight(values)

	if HashCode(s1) != HashCode(s2) {
		t.Fatalf("hashing the same sequence twice produced different results: %d != %d", HashCode(s1), HashCode(s2))
	}
	if !containsRLE(s1) {
		t.Fatalf("expected at least one RLE node in a sequence built from i mod 63")
	}
}

// containsRLE walks a tree looking for any rleNode, expanding Chunked nodes
// along the way since an RLE run could sit on either side of a chunk
// boundary.
func containsRLE(n Node) bool {
	if n == nil {
		return false
	}
	if _, ok := n.(*rleNode); ok {
		return true
	}
	if l, r, ok := asBinaryChildren(n); ok {
		return containsRLE(l) || containsRLE(r)
	}
	return false
}

// TestScenarioC_SplitConcatChunkRoundTrip is spec.md §8 scenario C: for a
// representative sample of split points, splitting, re-concatenating and
// chunking must reproduce the original tree exactly.
func TestScenarioC_SplitConcatChunkRoundTrip(t *testing.T) {
	const n = 2000
	values := intRange(n)
	s1 := foldLeftToRight(values)

	for i := 1; i < n; i += 37 {
		left, right := Split(s1, int64(i))
		rebuilt := Concat(left, right)
		rebuilt = Chunk(rebuilt)

		if !EqualTo(rebuilt, s1) {
			t.Fatalf("split/concat/chunk round trip failed at i=%d", i)
		}
		if Size(rebuilt) != n {
			t.Fatalf("size mismatch after round trip at i=%d: got %d want %d", i, Size(rebuilt), n)
		}
	}
}

// TestScenarioD_BlockwiseRoundMatchesLinearFold is spec.md §8 scenario D:
// building 1000-element blocks by running merge rounds to a single node,
// then concatenating the blocks, must match the plain left-to-right fold.
func TestScenarioD_BlockwiseRoundMatchesLinearFold(t *testing.T) {
	const n = 50000
	const blockSize = 1000
	values := intRange(n)
	s1 := foldLeftToRight(values)

	var blocks []Node
	for start := 0; start < n; start += blockSize {
		end := start + blockSize
		if end > n {
			end = n
		}
		leaves := make([]Node, 0, end-start)
		for _, v := range values[start:end] {
			leaves = append(leaves, Leaf(IntElement(v)))
		}
		level := leaves
		for len(level) > 1 {
			level = mergeRound(level, nil)
		}
		blocks = append(blocks, level[0])
	}

	var whole Node
	for _, b := range blocks {
		whole = Concat(whole, b)
	}

	if !EqualTo(whole, s1) {
		t.Fatalf("blockwise build does not match linear fold: hash %d != %d", HashCode(whole), HashCode(s1))
	}
}

// TestScenarioE_ThreeElementSplit is spec.md §8 scenario E: a tiny,
// hand-inspectable tree.
func TestScenarioE_ThreeElementSplit(t *testing.T) {
	seq := Concat(Leaf(IntElement(1)), Concat(Leaf(IntElement(2)), Leaf(IntElement(3))))

	left, right := Split(seq, 1)

	if Size(left) != 1 {
		t.Fatalf("left.Size() = %d, want 1", Size(left))
	}
	if v, ok := First(left).(IntElement); !ok || v != 1 {
		t.Fatalf("First(left) = %v, want 1", First(left))
	}

	if Size(right) != 2 {
		t.Fatalf("right.Size() = %d, want 2", Size(right))
	}
	if v, ok := First(right).(IntElement); !ok || v != 2 {
		t.Fatalf("First(right) = %v, want 2", First(right))
	}
	if v, ok := Last(right).(IntElement); !ok || v != 3 {
		t.Fatalf("Last(right) = %v, want 3", Last(right))
	}

	rebuilt := Concat(left, right)
	if !EqualTo(rebuilt, seq) {
		t.Fatalf("Concat(Split(seq,1)) is not content-equal to seq")
	}
}

// TestScenarioF_SingleValueRunProducesRLE is spec.md §8 scenario F.
func TestScenarioF_SingleValueRunProducesRLE(t *testing.T) {
	var rep Node
	for i := 0; i < 100; i++ {
		rep = Concat(rep, Leaf(IntElement(7)))
	}

	total := 0
	var walk func(Node)
	walk = func(n Node) {
		if n == nil {
			return
		}
		if r, ok := n.(*rleNode); ok {
			total += r.m
			return
		}
		if l, r, ok := asBinaryChildren(n); ok {
			walk(l)
			walk(r)
			return
		}
		total++
	}
	walk(rep)

	if total != 100 {
		t.Fatalf("total elements accounted for across RLE/non-RLE nodes = %d, want 100", total)
	}
	if !containsRLE(rep) {
		t.Fatalf("expected at least one RLE node for a 100-element run of the same value")
	}
}

// TestInvariant_HashAtZeroIsHashCode is spec.md §8 invariant 5.
func TestInvariant_HashAtZeroIsHashCode(t *testing.T) {
	tree := foldLeftToRight(intRange(500))
	if HashAt(tree, 0) != HashCode(tree) {
		t.Fatalf("HashAt(tree, 0) = %d, want HashCode(tree) = %d", HashAt(tree, 0), HashCode(tree))
	}
}

// TestInvariant_ConcatIndependentOfBracketing is spec.md §8 invariant 4:
// hashing concat(a,b) must not depend on how a and b were themselves
// assembled, only on their element sequence.
func TestInvariant_ConcatIndependentOfBracketing(t *testing.T) {
	values := intRange(300)

	a1 := foldLeftToRight(values[:150])
	a2 := foldRightToLeft(values[:150])
	b1 := foldLeftToRight(values[150:])
	b2 := foldRightToLeft(values[150:])

	c1 := Concat(a1, b1)
	c2 := Concat(a2, b2)

	if HashCode(c1) != HashCode(c2) {
		t.Fatalf("concat hash depends on operand bracketing: %d != %d", HashCode(c1), HashCode(c2))
	}
}

func TestEmptyOperandsPassThrough(t *testing.T) {
	leaf := Leaf(IntElement(42))
	if got := Concat(nil, leaf); !EqualTo(got, leaf) {
		t.Fatalf("Concat(nil, leaf) did not return leaf unchanged")
	}
	if got := Concat(leaf, nil); !EqualTo(got, leaf) {
		t.Fatalf("Concat(leaf, nil) did not return leaf unchanged")
	}
}

func TestSplitBoundaryClamping(t *testing.T) {
	tree := foldLeftToRight(intRange(10))

	left, right := Split(tree, -5)
	if left != nil {
		t.Fatalf("Split at i<=0 should return a nil left half, got size %d", Size(left))
	}
	if !EqualTo(right, tree) {
		t.Fatalf("Split at i<=0 should return the whole tree as the right half")
	}

	left, right = Split(tree, 1000)
	if right != nil {
		t.Fatalf("Split at i>=size should return a nil right half, got size %d", Size(right))
	}
	if !EqualTo(left, tree) {
		t.Fatalf("Split at i>=size should return the whole tree as the left half")
	}
}

package splithash

import "testing"

func TestElementCursorMatchesSequenceOrder(t *testing.T) {
	values := intRange(777)
	tree := foldLeftToRight(values)
	cur := Elements(tree)

	for i, want := range values {
		got, ok := cur.At(i)
		if !ok {
			t.Fatalf("cursor reported no element at index %d, want %d", i, want)
		}
		ie, ok := got.(IntElement)
		if !ok || int32(ie) != want {
			t.Fatalf("cursor.At(%d) = %v, want %d", i, got, want)
		}
	}
	if _, ok := cur.At(len(values)); ok {
		t.Fatalf("cursor.At(len(values)) should report out-of-range, got a value")
	}
}

func TestElementCursorOverRLERuns(t *testing.T) {
	var tree Node
	for i := 0; i < 50; i++ {
		tree = Concat(tree, Leaf(IntElement(9)))
	}
	if !containsRLE(tree) {
		t.Fatalf("expected a 50-copy run to compress into at least one RLE node")
	}

	cur := Elements(tree)
	for i := 0; i < 50; i++ {
		got, ok := cur.At(i)
		if !ok {
			t.Fatalf("cursor reported no element at index %d", i)
		}
		if ie, ok := got.(IntElement); !ok || ie != 9 {
			t.Fatalf("cursor.At(%d) = %v, want 9", i, got)
		}
	}
}

func TestElementCursorRandomAccessDoesNotReorder(t *testing.T) {
	values := intRange(200)
	tree := foldLeftToRight(values)
	cur := Elements(tree)

	// Access out of order; caching must not disturb sequence semantics.
	if v, ok := cur.At(150); !ok || v.(IntElement) != 150 {
		t.Fatalf("cursor.At(150) = %v, want 150", v)
	}
	if v, ok := cur.At(10); !ok || v.(IntElement) != 10 {
		t.Fatalf("cursor.At(10) = %v, want 10", v)
	}
	if v, ok := cur.At(199); !ok || v.(IntElement) != 199 {
		t.Fatalf("cursor.At(199) = %v, want 199", v)
	}
}

func TestNodesAtHeightCoversWholeBand(t *testing.T) {
	tree := foldLeftToRight(intRange(500))
	band := nodesAtHeight(tree, 2)

	var total int64
	for _, n := range band {
		total += n.Size()
		if n.Height() > 2 {
			if _, _, ok := asBinaryChildren(n); ok {
				t.Fatalf("band node at height %d should have been descended into further", n.Height())
			}
		}
	}
	if total != tree.Size() {
		t.Fatalf("height-band nodes cover %d elements, want %d", total, tree.Size())
	}
}

package splithash

// lazyIndexable is a random-access cache over a one-shot traversal
// iterator: it pulls from next only as far as needed to satisfy the
// highest index requested so far, caching every value it has already
// produced so repeated indexed access doesn't re-walk the tree from
// scratch each time.
type lazyIndexable[T any] struct {
	next   func() (T, bool)
	cached []T
	done   bool
}

func newLazyIndexable[T any](next func() (T, bool)) *lazyIndexable[T] {
	return &lazyIndexable[T]{next: next}
}

// At returns the i-th value the iterator would produce, pulling and caching
// whatever hasn't been pulled yet. The second return is false once i is
// past the end of the underlying sequence.
func (l *lazyIndexable[T]) At(i int) (T, bool) {
	for !l.done && i >= len(l.cached) {
		v, ok := l.next()
		if !ok {
			l.done = true
			break
		}
		l.cached = append(l.cached, v)
	}
	var zero T
	if i < 0 || i >= len(l.cached) {
		return zero, false
	}
	return l.cached[i], true
}

// ElementCursor gives repeated, cheap indexed access to a tree's logical
// element sequence without reconstructing a flat array up front: it walks
// the tree lazily (expanding RLE runs and Chunked subtrees only as far as a
// requested index needs) and caches every element it has already produced.
type ElementCursor struct {
	it *lazyIndexable[Element]
}

// Elements returns a cursor over tree's elements in sequence order.
func Elements(tree Node) *ElementCursor {
	return &ElementCursor{it: newLazyIndexable(elementGenerator(tree))}
}

// At returns the element at position i (0-based), or false if i is out of
// range.
func (c *ElementCursor) At(i int) (Element, bool) {
	return c.it.At(i)
}

// elementGenerator returns a closure that yields tree's elements in order,
// one call at a time, using an explicit stack so RLE runs and Chunked
// subtrees only get expanded as the caller actually asks for them.
func elementGenerator(tree Node) func() (Element, bool) {
	type frame struct {
		n   Node
		rep int // 1-based index of the next RLE copy to emit for this frame
	}
	var stack []frame
	if tree != nil {
		stack = append(stack, frame{n: tree, rep: 1})
	}
	return func() (Element, bool) {
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if l, r, ok := asBinaryChildren(top.n); ok {
				stack = stack[:len(stack)-1]
				stack = append(stack, frame{n: r, rep: 1}, frame{n: l, rep: 1})
				continue
			}
			if rl, ok := top.n.(*rleNode); ok {
				if top.rep > rl.m {
					stack = stack[:len(stack)-1]
					continue
				}
				stack[len(stack)-1].rep++
				stack = append(stack, frame{n: rl.inner, rep: 1})
				continue
			}
			stack = stack[:len(stack)-1]
			return top.n.First(), true
		}
		var zero Element
		return zero, false
	}
}

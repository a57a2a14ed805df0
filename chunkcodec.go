package splithash

// chunkEncode flattens a Binary subtree into a ChunkedNode (§4.8): a
// pre-order walk emits `true` and recurses at every *binaryNode it meets,
// `false` plus the node itself at anything else (Leaf, RLE, or an already
// -Chunked node, which stays intact rather than being expanded further).
func chunkEncode(tree Node, eng *Engine) *chunkedNode {
	var structure []bool
	var leaves []Node

	var walk func(Node)
	walk = func(n Node) {
		if bn, ok := n.(*binaryNode); ok {
			structure = append(structure, true)
			walk(bn.left)
			walk(bn.right)
			return
		}
		structure = append(structure, false)
		leaves = append(leaves, n)
	}
	walk(tree)

	return &chunkedNode{
		leaves:    leaves,
		structure: structure,
		size:      tree.Size(),
		height:    tree.Height(),
		hash:      tree.HashAt(0),
	}
}

// decodeChunk rebuilds the exact binary shape chunkEncode flattened, then
// marks the reconstructed root as a chunk boundary (IsChunked() true). The
// rebuilt nodes keep their ordinary ChunkHeight values.
func decodeChunk(n *chunkedNode) Node {
	leafIdx, structIdx := 0, 0

	var rec func() Node
	rec = func() Node {
		if structIdx >= len(n.structure) {
			fail("chunk structure exhausted while decoding")
		}
		isInternal := n.structure[structIdx]
		structIdx++
		if !isInternal {
			leaf := n.leaves[leafIdx]
			leafIdx++
			return leaf
		}
		left := rec()
		right := rec()
		return rawBinary(left, right)
	}

	root := rec()
	if bn, ok := root.(*binaryNode); ok {
		if bn.size > 0 {
			bn.size = -bn.size
		}
		return bn
	}
	return root
}

// Chunk explicitly compresses tree into a ChunkedNode, idempotently —
// re-chunking an already-chunked node returns it unchanged.
func Chunk(tree Node) Node {
	return chunkWith(tree, nil)
}

// Chunk is Engine-scoped Chunk. Explicit chunking sends nothing to this
// engine's LogCb.
func (e *Engine) Chunk(tree Node) Node {
	return chunkWith(tree, e)
}

func chunkWith(tree Node, eng *Engine) Node {
	if tree == nil {
		return tree
	}
	if cn, ok := tree.(*chunkedNode); ok {
		return cn
	}
	return chunkEncode(tree, eng)
}

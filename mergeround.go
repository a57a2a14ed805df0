package splithash

import "github.com/odipar/splithash/internal/oracle"

// bitDrivenPairs is the hash-bit-driven adjacent-pairing scan shared by
// merge rounds (§4.3) and fringe-boundary detection (§4.5). It repeatedly
// inspects bit j = 0, 1, 2, ... of each still-undecided node's HashAt word,
// refilling via HashAt(intIndex) once a 32-bit word is exhausted, left to
// right, until every adjacent pair is either paired off or has an
// already-paired neighbor. match reports whether the pair at the current
// bit should merge; the result marks pairMerge[k] for every k whose (k,k+1)
// pair merged.
func bitDrivenPairs(nodes []Node, match func(b1, b2 uint32) bool, eng *Engine) []bool {
	n := len(nodes)
	pairMerge := make([]bool, n)
	if n < 2 {
		return pairMerge
	}
	resolved := make([]bool, n)
	hashWord := make([]uint32, n)
	intIndex := make([]int, n)
	for i, nd := range nodes {
		hashWord[i] = nd.HashAt(0)
	}

	bit := 0
	for {
		if bit == 32 {
			eng.logf("splithash: merge round exhausted a 32-bit hash word, refilling via HashAt")
			for i := range nodes {
				if !resolved[i] {
					intIndex[i]++
					hashWord[i] = nodes[i].HashAt(intIndex[i])
				}
			}
			bit = 0
		}
		k := 0
		for k < n-1 {
			if resolved[k] || resolved[k+1] {
				k++
				continue
			}
			if match(oracle.BitAt(hashWord[k], bit), oracle.BitAt(hashWord[k+1], bit)) {
				pairMerge[k] = true
				resolved[k] = true
				resolved[k+1] = true
				k += 2
			} else {
				k++
			}
		}
		done := true
		for k := 0; k < n-1; k++ {
			if !resolved[k] && !resolved[k+1] {
				done = false
				break
			}
		}
		if done {
			return pairMerge
		}
		bit++
	}
}

// compressRLE scans E left to right with a running stack: whenever the top
// of the stack and the next element are multiples of the same subtree, they
// replace the stack's top with their RLE combination; otherwise the element
// is pushed as-is.
func compressRLE(nodes []Node) []Node {
	stack := make([]Node, 0, len(nodes))
	for _, nd := range nodes {
		if len(stack) > 0 && isMultipleOf(stack[len(stack)-1], nd) {
			top := stack[len(stack)-1]
			stack[len(stack)-1] = makeRLE(unwrapRLE(top), multiplicityOf(top)+multiplicityOf(nd))
			continue
		}
		stack = append(stack, nd)
	}
	return stack
}

// hashBitMerge runs the bit-driven pairing scan over E and builds the next
// round's array: an UNKNOWN node passes through unchanged, a MERGE pair
// becomes combine(a,b).
func hashBitMerge(nodes []Node, eng *Engine) []Node {
	if len(nodes) <= 1 {
		return nodes
	}
	pairMerge := bitDrivenPairs(nodes, func(b1, b2 uint32) bool { return b1 == 1 && b2 == 0 }, eng)
	out := make([]Node, 0, len(nodes))
	i := 0
	for i < len(nodes) {
		if i < len(nodes)-1 && pairMerge[i] {
			out = append(out, combine(nodes[i], nodes[i+1], eng))
			i += 2
		} else {
			out = append(out, nodes[i])
			i++
		}
	}
	return out
}

// mergeRound is one full round of canonicalization (§4.3): RLE-compress,
// then hash-bit-merge whatever remains.
func mergeRound(nodes []Node, eng *Engine) []Node {
	return hashBitMerge(compressRLE(nodes), eng)
}

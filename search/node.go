package search

// Node is one discovered cell. Nodes are append-only: a better route to
// an already-open coordinate is represented by a fresh Node, never by
// mutating an existing one. Parent links form an exclusive chain back to
// the seed node (Parent == nil), so G never decreases along a chain.
type Node[C comparable] struct {
	Parent *Node[C]
	Pos    C
	G      float64 // cost from the source, unit steps
	H      float64 // heuristic estimate to the target
	F      float64 // always G + H
}

// path walks the Parent chain back to the seed and returns the cell
// sequence in source-to-n order.
func (n *Node[C]) path() []C {
	var out []C
	for cur := n; cur != nil; cur = cur.Parent {
		out = append(out, cur.Pos)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

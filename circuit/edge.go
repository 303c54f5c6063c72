package circuit

import (
	"cmp"
	"fmt"
	"slices"
)

// Edge is a candidate connection between points U and V, U < V.
type Edge struct {
	U, V   int
	DistSq int64
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d:%d", e.U, e.V, e.DistSq)
}

// Edges returns one edge for every unordered pair of pts.
func Edges(pts []Point) []Edge {
	n := len(pts)
	if n < 2 {
		return nil
	}
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{U: i, V: j, DistSq: pts[i].DistSq(pts[j])})
		}
	}
	return edges
}

// compareEdges orders edges by distance, then by endpoints so that equal
// distances always come out in the same order.
func compareEdges(a, b Edge) int {
	if c := cmp.Compare(a.DistSq, b.DistSq); c != 0 {
		return c
	}
	if c := cmp.Compare(a.U, b.U); c != 0 {
		return c
	}
	return cmp.Compare(a.V, b.V)
}

// SortEdges sorts edges shortest first.
func SortEdges(edges []Edge) {
	slices.SortFunc(edges, compareEdges)
}

// SortedEdges returns all edges between pts, shortest first.
func SortedEdges(pts []Point) []Edge {
	edges := Edges(pts)
	SortEdges(edges)
	return edges
}

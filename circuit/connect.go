package circuit

import (
	"slices"
)

// Circuits connects the pairs closest pairs of pts, in order of distance,
// and returns the resulting circuit sizes, largest first. Connecting two boxes
// that already share a circuit still counts as one of the pairs.
func Circuits(pts []Point, pairs int) []int {
	edges := SortedEdges(pts)
	ds := NewDisjointSet(len(pts))
	for _, e := range edges[:max(0, min(pairs, len(edges)))] {
		ds.Union(e.U, e.V)
	}
	sizes := ds.ComponentSizes()
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return sizes
}

// LargestProduct returns the product of the k largest circuit sizes after
// connecting pairs pairs. It reports false if fewer than k circuits remain.
func LargestProduct(pts []Point, pairs, k int) (int64, bool) {
	sizes := Circuits(pts, pairs)
	if len(sizes) < k {
		return 0, false
	}
	prod := int64(1)
	for _, s := range sizes[:k] {
		prod *= int64(s)
	}
	return prod, true
}

// Unify connects the closest pairs of pts until every box is in one circuit
// and returns the edge that completed it. It reports false if that never
// happens, which is the case for fewer than two points.
func Unify(pts []Point) (Edge, bool) {
	ds := NewDisjointSet(len(pts))
	for _, e := range SortedEdges(pts) {
		if !ds.Union(e.U, e.V) {
			continue
		}
		if ds.Count() == 1 {
			return e, true
		}
	}
	return Edge{}, false
}

// UnifyingProduct returns the product of the X coordinates of the two boxes
// whose connection first puts every box in one circuit.
func UnifyingProduct(pts []Point) (int64, bool) {
	e, ok := Unify(pts)
	if !ok {
		return 0, false
	}
	return int64(pts[e.U].X) * int64(pts[e.V].X), true
}

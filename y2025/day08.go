package main

import (
	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/circuit"
)

/*
want=40

162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
*/
func (s solver) D8p1() any {
	pts := aoc.MustGet(circuit.ParsePoints(s.Lines()))
	pairs := 1000
	if s.SampleMode {
		pairs = 10
		s.Debugf("circuits after %d pairs: %v", pairs, circuit.Circuits(pts, pairs))
	}
	prod, ok := circuit.LargestProduct(pts, pairs, 3)
	if !ok {
		return "fewer than 3 circuits"
	}
	return prod
}

// want=25272
func (s solver) D8p2() any {
	pts := aoc.MustGet(circuit.ParsePoints(s.Lines()))
	prod, ok := circuit.UnifyingProduct(pts)
	if !ok {
		return "never a single circuit"
	}
	return prod
}

package main

import (
	"strings"

	"github.com/maisem/aoc2025"
)

func parseTiles(lines []string) []aoc.Pt {
	var pts []aoc.Pt
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		xy := aoc.Ints(strings.Split(line, ",")...)
		if len(xy) != 2 {
			panic("bad tile " + line)
		}
		pts = append(pts, aoc.Pt{X: xy[0], Y: xy[1]})
	}
	return pts
}

// tileArea returns the number of tiles in the rectangle with corners a and b.
func tileArea(a, b aoc.Pt) int {
	return (aoc.AbsDiff(a.X, b.X) + 1) * (aoc.AbsDiff(a.Y, b.Y) + 1)
}

func largestRectangle(pts []aoc.Pt) int {
	best := 0
	for i, a := range pts {
		for _, b := range pts[i+1:] {
			best = max(best, tileArea(a, b))
		}
	}
	return best
}

// polygon returns the edges of the loop through pts, closing it back to the
// first point.
func polygon(pts []aoc.Pt) []aoc.Segment {
	edges := make([]aoc.Segment, len(pts))
	for i, p := range pts {
		edges[i] = aoc.Segment{A: p, B: pts[(i+1)%len(pts)]}
	}
	return edges
}

// insidePolygon reports whether the rectangle spanned by a and b lies inside
// the rectilinear polygon given by edges: its centre must be inside, and no
// edge may cross its interior.
func insidePolygon(a, b aoc.Pt, edges []aoc.Segment) bool {
	lo := aoc.Pt{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
	hi := aoc.Pt{X: max(a.X, b.X), Y: max(a.Y, b.Y)}

	// Cast a ray from the centre towards +X. Coordinates are doubled so the
	// centre stays integral.
	cx, cy := lo.X+hi.X, lo.Y+hi.Y
	crossings := 0
	for _, e := range edges {
		if !e.Vertical() {
			continue
		}
		elo, ehi := e.Bounds()
		if 2*elo.Y <= cy && cy < 2*ehi.Y && 2*e.A.X > cx {
			crossings++
		}
	}
	if crossings%2 == 0 {
		return false
	}

	for _, e := range edges {
		elo, ehi := e.Bounds()
		if e.Vertical() {
			if lo.X < e.A.X && e.A.X < hi.X && max(elo.Y, lo.Y) < min(ehi.Y, hi.Y) {
				return false
			}
		} else {
			if lo.Y < e.A.Y && e.A.Y < hi.Y && max(elo.X, lo.X) < min(ehi.X, hi.X) {
				return false
			}
		}
	}
	return true
}

func largestInsideRectangle(pts []aoc.Pt) int {
	edges := polygon(pts)
	best := 0
	for i, a := range pts {
		for _, b := range pts[i+1:] {
			area := tileArea(a, b)
			if area <= best {
				continue
			}
			if insidePolygon(a, b, edges) {
				best = area
			}
		}
	}
	return best
}

/*
want=50

7,1
11,1
11,7
9,7
9,5
2,5
2,3
7,3
*/
func (s solver) D9p1() any {
	return largestRectangle(parseTiles(s.Lines()))
}

// want=24
func (s solver) D9p2() any {
	return largestInsideRectangle(parseTiles(s.Lines()))
}

package main

import (
	"github.com/maisem/aoc2025"
)

const (
	paperRoll  = '@'
	emptyFloor = '.'
)

// accessibleRolls returns the rolls with fewer than four rolls around them.
func accessibleRolls(g aoc.Grid[byte]) []aoc.Pt {
	var out []aoc.Pt
	for y, row := range g {
		for x, c := range row {
			if c != paperRoll {
				continue
			}
			p := aoc.Pt{X: x, Y: y}
			n := 0
			p.ForNeighbors(func(q aoc.Pt) bool {
				if v, ok := g.AtOk(q); ok && v == paperRoll {
					n++
				}
				return n < 4
			})
			if n < 4 {
				out = append(out, p)
			}
		}
	}
	return out
}

// removeRolls repeatedly removes every accessible roll until the grid stops
// changing and returns how many were removed.
func removeRolls(g aoc.Grid[byte]) int {
	removed := 0
	for h := g.Hash(); ; {
		for _, p := range accessibleRolls(g) {
			g.Set(p, emptyFloor)
			removed++
		}
		next := g.Hash()
		if next == h {
			return removed
		}
		h = next
	}
}

/*
want=13

..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
*/
func (s solver) D4p1() any {
	return len(accessibleRolls(s.Grid()))
}

// want=43
func (s solver) D4p2() any {
	return removeRolls(s.Grid())
}

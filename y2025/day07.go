package main

import (
	"bytes"

	"github.com/maisem/aoc2025"
)

const (
	beamStart = 'S'
	splitter  = '^'
)

func beamEntry(g aoc.Grid[byte]) aoc.Pt {
	x := bytes.IndexByte(g[0], beamStart)
	if x < 0 {
		panic("no start in first row")
	}
	return aoc.Pt{X: x, Y: 0}
}

// countSplits follows the beam down from S and counts the splitters it hits.
// A splitter sends beams down from both of its sides; beams that meet merge.
func countSplits(g aoc.Grid[byte]) int {
	seen := make(map[aoc.Pt]bool)
	splits := 0
	q := aoc.NewQueue(aoc.Path{Pt: beamEntry(g), Dir: aoc.Down})
	q.While(func(b aoc.Path) bool {
		if seen[b.Pt] {
			return true
		}
		seen[b.Pt] = true
		if g.At(b.Pt) != splitter {
			if next, ok := g.Move(b); ok {
				q.Push(next)
			}
			return true
		}
		splits++
		for _, side := range []aoc.Direction{aoc.Left, aoc.Right} {
			beside, ok := g.Move(aoc.Path{Pt: b.Pt, Dir: side})
			if !ok {
				continue
			}
			beside.Dir = aoc.Down
			if next, ok := g.Move(beside); ok {
				q.Push(next)
			}
		}
		return true
	})
	return splits
}

// countTimelines counts the timelines of a single particle that goes either
// way at every splitter. Timelines leaving the manifold sideways end there.
func countTimelines(g aoc.Grid[byte]) int {
	width := g.Size().X
	active := map[int]int{beamEntry(g).X: 1}
	done := 0
	for _, row := range g {
		next := make(map[int]int, len(active))
		for x, n := range active {
			if x < 0 || x >= width {
				done += n
				continue
			}
			if row[x] == splitter {
				next[x-1] += n
				next[x+1] += n
			} else {
				next[x] += n
			}
		}
		active = next
	}
	for _, n := range active {
		done += n
	}
	return done
}

/*
want=21

.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............
*/
func (s solver) D7p1() any {
	return countSplits(s.Grid())
}

// want=40
func (s solver) D7p2() any {
	return countTimelines(s.Grid())
}

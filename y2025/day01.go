package main

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2025"
)

const dialSize = 100

// parseTurns returns the rotations, left turns negative.
func parseTurns(lines []string) []int {
	var turns []int
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n := aoc.Int(line[1:])
		switch line[0] {
		case 'L':
			turns = append(turns, -n)
		case 'R':
			turns = append(turns, n)
		default:
			panic(fmt.Sprintf("bad turn %q", line))
		}
	}
	return turns
}

// dialStops counts the turns that leave the dial at 0.
func dialStops(turns []int) int {
	pos, count := 50, 0
	for _, t := range turns {
		pos = aoc.Mod(pos+t, dialSize)
		if pos == 0 {
			count++
		}
	}
	return count
}

// zeroClicks returns how many times the dial points at 0 while turning t
// clicks from pos.
func zeroClicks(pos, t int) int {
	first := dialSize - pos
	if t < 0 {
		first, t = pos, -t
	}
	if first == 0 {
		first = dialSize
	}
	if t < first {
		return 0
	}
	return 1 + (t-first)/dialSize
}

// dialPasses counts every click at which the dial points at 0.
func dialPasses(turns []int) int {
	pos, count := 50, 0
	for _, t := range turns {
		count += zeroClicks(pos, t)
		pos = aoc.Mod(pos+t, dialSize)
	}
	return count
}

/*
want=3

L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
*/
func (s solver) D1p1() any {
	return dialStops(parseTurns(s.Lines()))
}

// want=6
func (s solver) D1p2() any {
	return dialPasses(parseTurns(s.Lines()))
}

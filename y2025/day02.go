package main

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2025"
)

type idRange struct {
	lo, hi int
}

func (r idRange) contains(v int) bool {
	return r.lo <= v && v <= r.hi
}

func parseIDRanges(line string) []idRange {
	var out []idRange
	for _, f := range strings.Split(strings.TrimSpace(line), ",") {
		lo, hi, ok := strings.Cut(f, "-")
		if !ok {
			panic(fmt.Sprintf("bad range %q", f))
		}
		out = append(out, idRange{aoc.Int(lo), aoc.Int(hi)})
	}
	return out
}

// sumRepeatedIDs sums the IDs within ranges whose digits are one block
// repeated. If onlyTwice, the block must appear exactly twice.
//
// Instead of scanning the ranges, it builds every repeated number up to the
// largest range end.
func sumRepeatedIDs(ranges []idRange, onlyTwice bool) int {
	var limit int
	for _, r := range ranges {
		limit = max(limit, r.hi)
	}
	inRange := func(v int) bool {
		for _, r := range ranges {
			if r.contains(v) {
				return true
			}
		}
		return false
	}

	seen := make(map[int]bool)
	sum := 0
	for width := 1; ; width++ {
		shift := aoc.Pow10(width)
		first := aoc.Pow10(width - 1)
		if first*shift+first > limit {
			break
		}
		for block := first; block < shift; block++ {
			if block*shift+block > limit {
				break
			}
			for reps, v := 2, block*shift+block; v <= limit; reps, v = reps+1, v*shift+block {
				if onlyTwice && reps > 2 {
					break
				}
				if !seen[v] && inRange(v) {
					seen[v] = true
					sum += v
				}
			}
		}
	}
	return sum
}

/*
want=1227775554

11-22,95-115,998-1012,1188511880-1188511890,222220-222224,1698522-1698528,446443-446449,38593856-38593862,565653-565659,824824821-824824827,2121212118-2121212124
*/
func (s solver) D2p1() any {
	return sumRepeatedIDs(parseIDRanges(s.Lines()[0]), true)
}

// want=4174379265
func (s solver) D2p2() any {
	return sumRepeatedIDs(parseIDRanges(s.Lines()[0]), false)
}

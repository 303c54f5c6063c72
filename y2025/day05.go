package main

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/maisem/aoc2025"
)

type freshRange struct {
	lo, hi int
}

// parseInventory splits the input into the fresh ranges and the available
// ingredient IDs, separated by a blank line.
func parseInventory(lines []string) (ranges []freshRange, ids []int) {
	i := slices.IndexFunc(lines, func(l string) bool { return strings.TrimSpace(l) == "" })
	if i < 0 {
		i = len(lines)
	}
	for _, l := range lines[:i] {
		lo, hi, ok := strings.Cut(l, "-")
		if !ok {
			panic(fmt.Sprintf("bad range %q", l))
		}
		ranges = append(ranges, freshRange{aoc.Int(lo), aoc.Int(hi)})
	}
	for _, l := range lines[min(i+1, len(lines)):] {
		if strings.TrimSpace(l) != "" {
			ids = append(ids, aoc.Int(l))
		}
	}
	return ranges, ids
}

func countFresh(ranges []freshRange, ids []int) int {
	n := 0
	for _, id := range ids {
		if slices.ContainsFunc(ranges, func(r freshRange) bool { return r.lo <= id && id <= r.hi }) {
			n++
		}
	}
	return n
}

// mergeRanges returns the union of ranges as sorted, disjoint ranges.
func mergeRanges(ranges []freshRange) []freshRange {
	if len(ranges) == 0 {
		return nil
	}
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b freshRange) int { return cmp.Compare(a.lo, b.lo) })
	merged := []freshRange{sorted[0]}
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.lo <= last.hi {
			last.hi = max(last.hi, r.hi)
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

func countFreshIDs(ranges []freshRange) int {
	n := 0
	for _, r := range mergeRanges(ranges) {
		n += r.hi - r.lo + 1
	}
	return n
}

/*
want=3

3-5
10-14
16-20
12-18

1
5
8
11
17
32
*/
func (s solver) D5p1() any {
	return countFresh(parseInventory(s.Lines()))
}

// want=14
func (s solver) D5p2() any {
	ranges, _ := parseInventory(s.Lines())
	return countFreshIDs(ranges)
}

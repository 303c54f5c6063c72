package main

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2025"
)

// apply folds nums with the worksheet operator op.
func apply(op byte, nums []int) int {
	switch op {
	case '+':
		return aoc.Sum(nums...)
	case '*':
		return aoc.Product(nums...)
	}
	panic(fmt.Sprintf("bad operator %q", op))
}

// worksheetRows solves the problems read row-wise: each whitespace
// separated column is one problem, its operator in the last line.
func worksheetRows(lines []string) int {
	if len(lines) == 0 {
		return 0
	}
	ops := strings.Fields(lines[len(lines)-1])
	cols := make([][]int, len(ops))
	for _, line := range lines[:len(lines)-1] {
		for i, f := range strings.Fields(line) {
			cols[i] = append(cols[i], aoc.Int(f))
		}
	}
	total := 0
	for i, op := range ops {
		total += apply(op[0], cols[i])
	}
	return total
}

// worksheetColumns solves the problems read column-wise: every character
// column holds one number, top digit most significant, and problems are
// separated by blank columns.
func worksheetColumns(lines []string) int {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	g := aoc.MakeGrid[byte](width, len(lines))
	for y, l := range lines {
		copy(g[y], strings.Repeat(" ", width))
		copy(g[y], l)
	}

	total := 0
	var (
		op   byte
		nums []int
	)
	flush := func() {
		if len(nums) > 0 {
			total += apply(op, nums)
		}
		op, nums = 0, nil
	}
	for _, col := range g.Transpose() {
		text := string(col)
		if strings.TrimSpace(text) == "" {
			flush()
			continue
		}
		if i := strings.IndexAny(text, "+*"); i >= 0 {
			op = text[i]
		}
		if digits := strings.Map(keepDigits, text); digits != "" {
			nums = append(nums, aoc.Int(digits))
		}
	}
	flush()
	return total
}

func keepDigits(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}
	return -1
}

/*
want=4277556

123 328  51 64
 45 64  387 23
  6 98  215 314
*   +   *   +
*/
func (s solver) D6p1() any {
	return worksheetRows(s.Lines())
}

// want=3263827
func (s solver) D6p2() any {
	return worksheetColumns(s.Lines())
}

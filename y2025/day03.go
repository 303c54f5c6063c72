package main

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2025"
)

// maxJoltage returns the largest n-digit number that can be made from bank by
// keeping n of its digits in order.
func maxJoltage(bank string, n int) int {
	digits := aoc.Digits(bank)
	if len(digits) < n {
		panic(fmt.Sprintf("bank %q has fewer than %d batteries", bank, n))
	}
	var st aoc.Stack[int]
	drop := len(digits) - n
	for _, d := range digits {
		for drop > 0 {
			top, ok := st.Peek()
			if !ok || top >= d {
				break
			}
			st.Pop()
			drop--
		}
		st.Push(d)
	}
	for st.Len() > n {
		st.Pop()
	}
	v, place := 0, 1
	st.While(func(d int) bool {
		v += d * place
		place *= 10
		return true
	})
	return v
}

func totalJoltage(lines []string, n int) int {
	total := 0
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			total += maxJoltage(line, n)
		}
	}
	return total
}

/*
want=357

987654321111111
811111111111119
234234234234278
818181911112111
*/
func (s solver) D3p1() any {
	return totalJoltage(s.Lines(), 2)
}

// want=3121910778619
func (s solver) D3p2() any {
	return totalJoltage(s.Lines(), 12)
}

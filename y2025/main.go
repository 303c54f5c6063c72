// Command y2025 solves Advent of Code 2025.
//
// Inputs are cached under -inputs as 2025/{day}.input and fetched with the
// session cookie from $AOC_SESSION (or .env) when missing.
package main

import (
	"embed"

	"github.com/maisem/aoc2025"
)

func main() {
	aoc.Run(2025, source, &solver{})
}

//go:embed day??.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}

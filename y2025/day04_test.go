package main

import (
	"strings"
	"testing"

	"github.com/maisem/aoc2025"
	"github.com/stretchr/testify/assert"
)

const rollSample = `..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.`

func gridOf(s string) aoc.Grid[byte] {
	var g aoc.Grid[byte]
	for _, l := range strings.Split(s, "\n") {
		g = append(g, []byte(l))
	}
	return g
}

func TestAccessibleRolls(t *testing.T) {
	g := gridOf(rollSample)
	got := accessibleRolls(g)
	assert.Len(t, got, 13)
	assert.Contains(t, got, aoc.Pt{X: 2, Y: 0})
	assert.NotContains(t, got, aoc.Pt{X: 1, Y: 1})
}

func TestRemoveRolls(t *testing.T) {
	g := gridOf(rollSample)
	assert.Equal(t, 43, removeRolls(g))
	assert.Empty(t, accessibleRolls(g), "nothing left to remove")
	assert.Equal(t, 0, removeRolls(g))
}

func TestRemoveRollsSolidBlock(t *testing.T) {
	// Corners go first, then the rest peels off.
	g := gridOf("@@@\n@@@\n@@@")
	assert.Len(t, accessibleRolls(g), 4)
	assert.Equal(t, 9, removeRolls(g))
}

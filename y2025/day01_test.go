package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const dialSample = `L68
L30
R48
L5
R60
L55
L1
L99
R14
L82`

func TestDial(t *testing.T) {
	turns := parseTurns(strings.Split(dialSample, "\n"))
	assert.Equal(t, []int{-68, -30, 48, -5, 60, -55, -1, -99, 14, -82}, turns)
	assert.Equal(t, 3, dialStops(turns))
	assert.Equal(t, 6, dialPasses(turns))
}

func TestZeroClicks(t *testing.T) {
	tests := []struct {
		pos, turn, want int
	}{
		{50, 1000, 10},
		{50, -1000, 10},
		{50, 49, 0},
		{50, 50, 1},
		{50, -50, 1},
		{0, 5, 0},
		{0, -5, 0},
		{0, 100, 1},
		{0, -100, 1},
		{0, -99, 0},
		{99, 1, 1},
		{1, -1, 1},
		{1, -101, 2},
	}
	for _, tt := range tests {
		if got := zeroClicks(tt.pos, tt.turn); got != tt.want {
			t.Errorf("zeroClicks(%d, %d) = %d; want %d", tt.pos, tt.turn, got, tt.want)
		}
	}
}

func TestParseTurnsBad(t *testing.T) {
	assert.Panics(t, func() { parseTurns([]string{"X10"}) })
}

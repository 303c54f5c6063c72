package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const joltageSample = `987654321111111
811111111111119
234234234234278
818181911112111`

func TestMaxJoltage(t *testing.T) {
	tests := []struct {
		bank string
		n    int
		want int
	}{
		{"987654321111111", 2, 98},
		{"811111111111119", 2, 89},
		{"234234234234278", 2, 78},
		{"818181911112111", 2, 92},
		{"987654321111111", 12, 987654321111},
		{"811111111111119", 12, 811111111119},
		{"234234234234278", 12, 434234234278},
		{"818181911112111", 12, 888911112111},
		{"12", 2, 12},
		{"5", 1, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, maxJoltage(tt.bank, tt.n), "maxJoltage(%q, %d)", tt.bank, tt.n)
	}
	assert.Panics(t, func() { maxJoltage("1", 2) })
}

func TestTotalJoltage(t *testing.T) {
	lines := strings.Split(joltageSample, "\n")
	assert.Equal(t, 357, totalJoltage(lines, 2))
	assert.Equal(t, 3121910778619, totalJoltage(lines, 12))
}

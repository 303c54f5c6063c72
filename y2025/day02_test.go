package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const idSample = "11-22,95-115,998-1012,1188511880-1188511890,222220-222224,1698522-1698528,446443-446449,38593856-38593862,565653-565659,824824821-824824827,2121212118-2121212124"

func TestRepeatedIDs(t *testing.T) {
	ranges := parseIDRanges(idSample)
	assert.Len(t, ranges, 11)
	assert.Equal(t, idRange{11, 22}, ranges[0])
	assert.Equal(t, 1227775554, sumRepeatedIDs(ranges, true))
	assert.Equal(t, 4174379265, sumRepeatedIDs(ranges, false))
}

func TestRepeatedIDsSmall(t *testing.T) {
	tests := []struct {
		r         idRange
		onlyTwice bool
		want      int
	}{
		{idRange{11, 22}, true, 11 + 22},
		{idRange{95, 115}, true, 99},
		{idRange{95, 115}, false, 99 + 111},
		{idRange{1, 9}, false, 0},
		// 1111 is both 1x4 and 11x2 and must only count once.
		{idRange{1111, 1111}, false, 1111},
		{idRange{1111, 1111}, true, 1111},
		{idRange{111, 111}, true, 0},
	}
	for _, tt := range tests {
		got := sumRepeatedIDs([]idRange{tt.r}, tt.onlyTwice)
		assert.Equal(t, tt.want, got, "%v onlyTwice=%v", tt.r, tt.onlyTwice)
	}
}

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inventorySample = `3-5
10-14
16-20
12-18

1
5
8
11
17
32`

func TestInventory(t *testing.T) {
	ranges, ids := parseInventory(strings.Split(inventorySample, "\n"))
	require.Len(t, ranges, 4)
	require.Equal(t, []int{1, 5, 8, 11, 17, 32}, ids)

	assert.Equal(t, 3, countFresh(ranges, ids))
	assert.Equal(t, []freshRange{{3, 5}, {10, 20}}, mergeRanges(ranges))
	assert.Equal(t, 14, countFreshIDs(ranges))
}

func TestMergeRanges(t *testing.T) {
	tests := []struct {
		in   []freshRange
		want []freshRange
	}{
		{nil, nil},
		{[]freshRange{{1, 1}}, []freshRange{{1, 1}}},
		{[]freshRange{{5, 9}, {1, 5}}, []freshRange{{1, 9}}},
		{[]freshRange{{1, 10}, {2, 3}}, []freshRange{{1, 10}}},
		{[]freshRange{{1, 2}, {3, 4}}, []freshRange{{1, 2}, {3, 4}}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mergeRanges(tt.in), "mergeRanges(%v)", tt.in)
	}
	// Adjacent ranges stay apart but count the same.
	assert.Equal(t, 4, countFreshIDs([]freshRange{{1, 2}, {3, 4}}))
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const manifoldSample = `.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............`

func TestBeams(t *testing.T) {
	g := gridOf(manifoldSample)
	assert.Equal(t, 21, countSplits(g))
	assert.Equal(t, 40, countTimelines(g))
}

func TestBeamsEdges(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		splits    int
		timelines int
	}{
		{"no splitters", "..S..\n.....\n.....", 0, 1},
		{"one split", "..S..\n..^..\n.....", 1, 2},
		{"split off the side", "S....\n^....\n.....", 1, 2},
		{"beams merge", "..S..\n..^..\n.^.^.\n.....", 3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridOf(tt.in)
			assert.Equal(t, tt.splits, countSplits(g))
			assert.Equal(t, tt.timelines, countTimelines(g))
		})
	}
}

package circuit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}
	return s
}

func TestNewDisjointSet(t *testing.T) {
	ds := NewDisjointSet(5)
	require.Equal(t, 5, ds.Len())
	require.Equal(t, 5, ds.Count())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, ds.Find(i))
		assert.Equal(t, 1, ds.Size(i))
	}
	assert.ElementsMatch(t, []int{1, 1, 1, 1, 1}, ds.ComponentSizes())
}

func TestDisjointSetEmpty(t *testing.T) {
	ds := NewDisjointSet(0)
	assert.Zero(t, ds.Count())
	assert.Empty(t, ds.ComponentSizes())
}

func TestUnionIdempotent(t *testing.T) {
	ds := NewDisjointSet(4)
	require.True(t, ds.Union(0, 1))
	sizes := ds.ComponentSizes()

	assert.False(t, ds.Union(0, 1))
	assert.False(t, ds.Union(1, 0))
	assert.Equal(t, 3, ds.Count())
	assert.ElementsMatch(t, sizes, ds.ComponentSizes())
	assert.Equal(t, 2, ds.Size(0))
}

func TestUnionBySize(t *testing.T) {
	ds := NewDisjointSet(4)
	ds.Union(0, 1)
	ds.Union(0, 2)
	big := ds.Find(0)

	ds.Union(3, 0)
	assert.Equal(t, big, ds.Find(3), "singleton should be attached under the larger root")
	assert.Equal(t, 4, ds.Size(3))
}

func TestUnionTieAttachesSecondUnderFirst(t *testing.T) {
	ds := NewDisjointSet(2)
	ds.Union(0, 1)
	assert.Equal(t, 0, ds.parent[1])
	assert.Equal(t, 0, ds.parent[0])
}

func TestFindCompressesPath(t *testing.T) {
	ds := NewDisjointSet(5)
	// Build a chain 4 -> 3 -> 2 -> 1 -> 0 by hand.
	for i := 1; i < 5; i++ {
		ds.parent[i] = i - 1
	}
	ds.size[0] = 5
	ds.count = 1

	require.Equal(t, 0, ds.Find(4))
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, ds.parent[i], "parent[%d]", i)
	}
}

func TestFindTransitive(t *testing.T) {
	ds := NewDisjointSet(6)
	ds.Union(0, 1)
	ds.Union(1, 2)
	ds.Union(3, 4)
	ds.Union(4, 5)

	assert.True(t, ds.Connected(0, 2))
	assert.True(t, ds.Connected(3, 5))
	assert.False(t, ds.Connected(0, 3))

	ds.Union(2, 4)
	root := ds.Find(0)
	for i := 1; i < 6; i++ {
		assert.Equal(t, root, ds.Find(i), "Find(%d)", i)
	}
	assert.Equal(t, []int{6}, ds.ComponentSizes())
}

func TestComponentSizesSumToLen(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(8))
	ds := NewDisjointSet(n)
	for step := 0; step < 500; step++ {
		i, j := r.Intn(n), r.Intn(n)
		before := ds.Count()
		merged := ds.Union(i, j)
		if merged {
			require.Equal(t, before-1, ds.Count())
		} else {
			require.Equal(t, before, ds.Count())
		}
		sizes := ds.ComponentSizes()
		require.Len(t, sizes, ds.Count())
		require.Equal(t, n, sum(sizes), "step %d", step)
	}
}

package circuit

// DisjointSet partitions the indices [0, n) into components. It uses path
// compression and union by size.
type DisjointSet struct {
	parent []int // parent[i] == i means i is a root
	size   []int // only meaningful at roots
	count  int
}

// NewDisjointSet returns a DisjointSet of n singleton components.
func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}
	return ds
}

// Len returns the number of indices tracked.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Count returns the number of components.
func (ds *DisjointSet) Count() int {
	return ds.count
}

// Find returns the root of the component containing i.
func (ds *DisjointSet) Find(i int) int {
	root := i
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[i] != root {
		i, ds.parent[i] = ds.parent[i], root
	}
	return root
}

// Union merges the components containing i and j. The smaller component is
// attached under the larger one's root; on a tie j's root goes under i's.
// It reports whether two components were merged.
func (ds *DisjointSet) Union(i, j int) bool {
	ri, rj := ds.Find(i), ds.Find(j)
	if ri == rj {
		return false
	}
	if ds.size[ri] < ds.size[rj] {
		ri, rj = rj, ri
	}
	ds.parent[rj] = ri
	ds.size[ri] += ds.size[rj]
	ds.count--
	return true
}

// Connected reports whether i and j are in the same component.
func (ds *DisjointSet) Connected(i, j int) bool {
	return ds.Find(i) == ds.Find(j)
}

// Size returns the size of the component containing i.
func (ds *DisjointSet) Size(i int) int {
	return ds.size[ds.Find(i)]
}

// ComponentSizes returns the size of every component, in no particular order.
func (ds *DisjointSet) ComponentSizes() []int {
	sizes := make([]int, 0, ds.count)
	for i, p := range ds.parent {
		if p == i {
			sizes = append(sizes, ds.size[i])
		}
	}
	return sizes
}

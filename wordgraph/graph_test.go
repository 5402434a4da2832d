package wordgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromEdges(t *testing.T) {
	g := NewFromEdges([][2]int{{0, 1}, {1, 2}, {2, 0}})

	assert.Equal(t, []int{0, 1, 2}, g.Nodes())
	assert.Equal(t, 3, g.CountNodes())
	assert.Equal(t, 3, g.CountEdges())
	assert.True(t, g.HasNode(1))
	assert.False(t, g.HasNode(7))
}

func TestAddNode(t *testing.T) {
	g := New()

	assert.False(t, g.AddNode(4))
	assert.True(t, g.AddNode(4))
	assert.Equal(t, []int{4}, g.Nodes())
	assert.Equal(t, 0, g.CountEdges())
}

func TestDuplicateEdgesCollapse(t *testing.T) {
	g := NewFromEdges([][2]int{{0, 1}, {1, 0}, {0, 1}})

	assert.Equal(t, 1, g.CountEdges())
}

func TestEdges(t *testing.T) {
	g := NewFromEdges([][2]int{{3, 1}, {0, 1}, {2, 3}})

	assert.Equal(t, [][2]int{{0, 1}, {1, 3}, {2, 3}}, g.Edges())
}

func TestIsConnected(t *testing.T) {
	tests := []struct {
		name      string
		edges     [][2]int
		isolated  []int
		connected bool
	}{
		{name: "empty", connected: true},
		{name: "single node", isolated: []int{0}, connected: true},
		{name: "path", edges: [][2]int{{0, 1}, {1, 2}}, connected: true},
		{name: "two components", edges: [][2]int{{0, 1}, {2, 3}}, connected: false},
		{name: "isolated node", edges: [][2]int{{0, 1}}, isolated: []int{5}, connected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewFromEdges(tc.edges)
			for _, id := range tc.isolated {
				g.AddNode(id)
			}
			assert.Equal(t, tc.connected, g.IsConnected())
		})
	}
}

func TestCountCycles(t *testing.T) {
	square := NewFromEdges([][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	assert.Equal(t, 1, square.CountCycles())

	square.AddEdges([][2]int{{2, 0}})
	assert.Equal(t, 2, square.CountCycles())

	tree := NewFromEdges([][2]int{{0, 1}, {1, 2}, {1, 3}})
	assert.Equal(t, 0, tree.CountCycles())

	// No nodes means no cycles; the Euler formula does not apply.
	assert.Equal(t, 0, New().CountCycles())
}

func TestFindLeaves(t *testing.T) {
	tests := []struct {
		name   string
		edges  [][2]int
		leaves []int
	}{
		{
			name:   "star",
			edges:  [][2]int{{0, 1}, {0, 2}, {0, 3}},
			leaves: []int{1, 2, 3},
		},
		{
			name:   "cycle has no leaves",
			edges:  [][2]int{{0, 1}, {1, 2}, {2, 0}},
			leaves: nil,
		},
		{
			name:   "path endpoints",
			edges:  [][2]int{{4, 2}, {2, 7}},
			leaves: []int{4, 7},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewFromEdges(tc.edges)
			assert.Equal(t, tc.leaves, g.FindLeaves())
		})
	}
}

func TestFindLeavesIsolatedNode(t *testing.T) {
	g := NewFromEdges([][2]int{{0, 1}, {1, 2}})
	g.AddNode(9)

	assert.Equal(t, []int{0, 2, 9}, g.FindLeaves())
}

func TestPartitionNodes(t *testing.T) {
	tests := []struct {
		name  string
		edges [][2]int
		a, b  int
	}{
		{
			name:  "path",
			edges: [][2]int{{0, 1}, {1, 2}, {2, 3}},
			a:     0, b: 3,
		},
		{
			name:  "cycle",
			edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
			a:     0, b: 2,
		},
		{
			name:  "star",
			edges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}},
			a:     0, b: 4,
		},
		{
			name: "dense",
			edges: [][2]int{
				{0, 1}, {0, 2}, {1, 2}, {2, 3}, {3, 4}, {3, 5}, {4, 5}, {5, 6},
			},
			a: 1, b: 6,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewFromEdges(tc.edges)
			compA, compB, err := g.PartitionNodes(tc.a, tc.b)
			require.NoError(t, err)

			assert.Contains(t, compA, tc.a)
			assert.Contains(t, compB, tc.b)

			// Components are disjoint and cover every node.
			seen := make(map[int]bool)
			for _, id := range compA {
				seen[id] = true
			}
			for _, id := range compB {
				assert.False(t, seen[id], "node %d in both components", id)
				seen[id] = true
			}
			assert.Len(t, seen, g.CountNodes())

			// Each component is internally connected using only its own nodes.
			for _, comp := range [][]int{compA, compB} {
				sub := New()
				inComp := make(map[int]bool)
				for _, id := range comp {
					sub.AddNode(id)
					inComp[id] = true
				}
				for _, e := range g.Edges() {
					if inComp[e[0]] && inComp[e[1]] {
						sub.AddEdges([][2]int{e})
					}
				}
				assert.True(t, sub.IsConnected(), "component %v not connected", comp)
			}
		})
	}
}

func TestPartitionNodesDeterministic(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {1, 3}}
	first, second, err := NewFromEdges(edges).PartitionNodes(0, 3)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		a, b, err := NewFromEdges(edges).PartitionNodes(0, 3)
		require.NoError(t, err)
		assert.Equal(t, first, a)
		assert.Equal(t, second, b)
	}
}

func TestPartitionNodesMissingNode(t *testing.T) {
	g := NewFromEdges([][2]int{{0, 1}})

	_, _, err := g.PartitionNodes(0, 9)
	assert.ErrorIs(t, err, ErrNodeNotFound)

	_, _, err = g.PartitionNodes(9, 0)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestComponentsAfterDeletingNode(t *testing.T) {
	tests := []struct {
		name   string
		edges  [][2]int
		delete int
		want   [][]int
	}{
		{
			name:   "cut vertex splits",
			edges:  [][2]int{{0, 1}, {1, 2}},
			delete: 1,
			want:   [][]int{{0}, {2}},
		},
		{
			name:   "leaf removal keeps one component",
			edges:  [][2]int{{0, 1}, {1, 2}},
			delete: 0,
			want:   [][]int{{1, 2}},
		},
		{
			name:   "cycle survives any deletion",
			edges:  [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
			delete: 2,
			want:   [][]int{{0, 1, 3}},
		},
		{
			name:   "star centre shatters",
			edges:  [][2]int{{0, 1}, {0, 2}, {0, 3}},
			delete: 0,
			want:   [][]int{{1}, {2}, {3}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewFromEdges(tc.edges)
			comps, err := g.ComponentsAfterDeletingNode(tc.delete)
			require.NoError(t, err)
			assert.Equal(t, tc.want, comps)
		})
	}
}

func TestComponentsAfterDeletingNodeMissing(t *testing.T) {
	g := NewFromEdges([][2]int{{0, 1}})

	_, err := g.ComponentsAfterDeletingNode(5)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

package wordgraph

import (
	"errors"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/zyedidia/generic/mapset"
)

// Sentinel errors for wordgraph operations.
var (
	// ErrNodeNotFound indicates an operation referenced an unregistered node.
	ErrNodeNotFound = errors.New("wordgraph: node not found")
	// ErrInvalidEdgeReference indicates an edge referencing a node missing
	// from the node map.
	ErrInvalidEdgeReference = errors.New("wordgraph: edge references unknown node")
)

// Graph is an undirected graph over small integer node ids (word ids).
// Parallel edges collapse: neighbor sets, not edge lists, back the
// structure, matching one-intersection-per-word-pair crossword geometry.
type Graph struct {
	neighbors map[int]mapset.Set[int]
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{neighbors: make(map[int]mapset.Set[int])}
}

// NewFromEdges builds a graph from intersection pairs, registering both
// endpoints of every edge.
func NewFromEdges(edges [][2]int) *Graph {
	g := New()
	g.AddEdges(edges)
	return g
}

// AddNode registers id as a (possibly isolated) node. Reports whether it
// was already present.
func (g *Graph) AddNode(id int) bool {
	if _, ok := g.neighbors[id]; ok {
		return true
	}
	g.neighbors[id] = mapset.New[int]()
	return false
}

// AddEdges inserts undirected edges, registering endpoints as needed.
func (g *Graph) AddEdges(edges [][2]int) {
	for _, e := range edges {
		g.AddNode(e[0])
		g.AddNode(e[1])
		g.neighbors[e[0]].Put(e[1])
		g.neighbors[e[1]].Put(e[0])
	}
}

// Nodes returns every registered node id in ascending order.
func (g *Graph) Nodes() []int {
	ids := make([]int, 0, len(g.neighbors))
	for id := range g.neighbors {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// HasNode reports whether id is registered.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.neighbors[id]
	return ok
}

// CountNodes returns the number of registered nodes.
func (g *Graph) CountNodes() int { return len(g.neighbors) }

// CountEdges returns the number of undirected edges.
func (g *Graph) CountEdges() int {
	total := 0
	for _, nbrs := range g.neighbors {
		total += nbrs.Size()
	}
	return total / 2
}

// Edges returns every undirected edge exactly once as an ordered pair
// with the smaller endpoint first, sorted lexicographically.
func (g *Graph) Edges() [][2]int {
	var out [][2]int
	for _, id := range g.Nodes() {
		for _, n := range g.sortedNeighbors(id) {
			if id < n {
				out = append(out, [2]int{id, n})
			}
		}
	}
	return out
}

// sortedNeighbors returns id's neighbors ascending, establishing the
// fixed edge ordering every traversal follows.
func (g *Graph) sortedNeighbors(id int) []int {
	nbrs, ok := g.neighbors[id]
	if !ok {
		return nil
	}
	out := make([]int, 0, nbrs.Size())
	nbrs.Each(func(n int) { out = append(out, n) })
	sort.Ints(out)
	return out
}

// IsConnected reports whether every registered node is reachable from
// the smallest node id. The empty graph is connected.
func (g *Graph) IsConnected() bool {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return true
	}
	visited := mapset.New[int]()
	stack := []int{nodes[0]}
	visited.Put(nodes[0])
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range g.sortedNeighbors(id) {
			if !visited.Has(n) {
				visited.Put(n)
				stack = append(stack, n)
			}
		}
	}
	return visited.Size() == len(nodes)
}

// CountCycles returns the number of independent cycles, E - N + 1 for a
// connected graph; the empty graph has none. On a disconnected graph the
// formula under-reports; that is logged as a warning, not an error,
// because the scorer calls this speculatively on intermediate
// construction states.
func (g *Graph) CountCycles() int {
	if g.CountNodes() == 0 {
		return 0
	}
	if !g.IsConnected() {
		log.Warnf("wordgraph: CountCycles on disconnected graph (%d nodes); cycle count will be low",
			g.CountNodes())
	}
	return g.CountEdges() - g.CountNodes() + 1
}

// FindLeaves returns the nodes with degree ≤ 1 in ascending order; these
// words can be unplaced without disconnecting the remainder.
func (g *Graph) FindLeaves() []int {
	var leaves []int
	for id, nbrs := range g.neighbors {
		if nbrs.Size() <= 1 {
			leaves = append(leaves, id)
		}
	}
	sort.Ints(leaves)
	return leaves
}

// checkEdgeTargets verifies every neighbor reference resolves to a
// registered node.
func (g *Graph) checkEdgeTargets() error {
	for id, nbrs := range g.neighbors {
		var bad error
		nbrs.Each(func(n int) {
			if _, ok := g.neighbors[n]; !ok && bad == nil {
				bad = fmt.Errorf("%w: edge %d-%d", ErrInvalidEdgeReference, id, n)
			}
		})
		if bad != nil {
			return bad
		}
	}
	return nil
}

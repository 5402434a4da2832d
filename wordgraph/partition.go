package wordgraph

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// PartitionNodes splits the graph into two components by growing
// breadth-first frontiers simultaneously from a and b along disjoint
// edge sets: each unclaimed node joins whichever frontier reaches it
// first, alternating one expansion step per side. For a connected graph
// the two returned components cover every node, are disjoint, and are
// each internally connected; a lands in the first, b in the second.
// Deterministic for a given graph because neighbors expand in ascending
// order.
//
// Returns ErrNodeNotFound if either seed is unregistered and
// ErrInvalidEdgeReference if traversal discovers an edge pointing at an
// unknown node.
func (g *Graph) PartitionNodes(a, b int) (compA, compB []int, err error) {
	if !g.HasNode(a) {
		return nil, nil, fmt.Errorf("%w: %d", ErrNodeNotFound, a)
	}
	if !g.HasNode(b) {
		return nil, nil, fmt.Errorf("%w: %d", ErrNodeNotFound, b)
	}
	if err = g.checkEdgeTargets(); err != nil {
		return nil, nil, err
	}

	claimed := mapset.New[int]()
	claimed.Put(a)
	claimed.Put(b)
	queueA, queueB := []int{a}, []int{b}
	compA, compB = []int{a}, []int{b}

	step := func(queue []int, comp []int) ([]int, []int) {
		if len(queue) == 0 {
			return queue, comp
		}
		id := queue[0]
		queue = queue[1:]
		for _, n := range g.sortedNeighbors(id) {
			if !claimed.Has(n) {
				claimed.Put(n)
				queue = append(queue, n)
				comp = append(comp, n)
			}
		}
		return queue, comp
	}

	for len(queueA) > 0 || len(queueB) > 0 {
		queueA, compA = step(queueA, compA)
		queueB, compB = step(queueB, compB)
	}

	sort.Ints(compA)
	sort.Ints(compB)
	return compA, compB, nil
}

// ComponentsAfterDeletingNode removes id and all its edges, then returns
// the connected components of what remains. Each component is sorted
// ascending and components are ordered by their smallest node, so the
// output is fully deterministic.
func (g *Graph) ComponentsAfterDeletingNode(id int) ([][]int, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	if err := g.checkEdgeTargets(); err != nil {
		return nil, err
	}

	visited := mapset.New[int]()
	visited.Put(id)
	var components [][]int
	for _, start := range g.Nodes() {
		if visited.Has(start) {
			continue
		}
		var comp []int
		queue := []int{start}
		visited.Put(start)
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			comp = append(comp, node)
			for _, n := range g.sortedNeighbors(node) {
				if !visited.Has(n) {
					visited.Put(n)
					queue = append(queue, n)
				}
			}
		}
		sort.Ints(comp)
		components = append(components, comp)
	}
	return components, nil
}

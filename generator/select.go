package generator

// rankBy chooses which integer score a selection pass ranks on.
type rankBy int

const (
	summaryRank rankBy = iota
	ancestorRank
)

func rawScore(a *Attempt, rank rankBy) int {
	if rank == ancestorRank {
		return a.ancestorScore
	}
	return a.summaryScore
}

// edgeSet is a candidate's word-intersection adjacency, keyed by word
// id pair with the smaller id first. Two grids that intersect the same
// words the same way have identical edge sets regardless of layout.
func edgeSet(a *Attempt) map[[2]int]bool {
	edges := a.grid.ToGraph().Edges()
	set := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		set[e] = true
	}
	return set
}

// similarity is the Jaccard index of two adjacency edge sets. Grids
// with no intersections at all count as dissimilar.
func similarity(a, b map[[2]int]bool) float64 {
	shared := 0
	for e := range a {
		if b[e] {
			shared++
		}
	}
	union := len(a) + len(b) - shared
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}

// pickBestVaried selects up to n attempts by repeatedly taking the
// candidate with the highest adjusted score, then penalising every
// remaining candidate by its own raw score times its similarity to the
// pick. High scorers that duplicate an already-chosen structure lose
// out to varied ones. Ties keep the earlier candidate, so the result is
// deterministic for a fixed input order.
func (g *Generator) pickBestVaried(candidates []*Attempt, n int, rank rankBy) []*Attempt {
	if len(candidates) == 0 || n <= 0 {
		return nil
	}

	adjusted := make([]float64, len(candidates))
	edges := make([]map[[2]int]bool, len(candidates))
	remaining := make([]bool, len(candidates))
	for i, c := range candidates {
		adjusted[i] = float64(rawScore(c, rank))
		edges[i] = edgeSet(c)
		remaining[i] = true
	}

	picked := make([]*Attempt, 0, n)
	for len(picked) < n {
		best := -1
		for i := range candidates {
			if remaining[i] && (best == -1 || adjusted[i] > adjusted[best]) {
				best = i
			}
		}
		if best == -1 {
			break
		}
		remaining[best] = false
		picked = append(picked, candidates[best])
		for i := range candidates {
			if remaining[i] {
				adjusted[i] -= float64(rawScore(candidates[i], rank)) * similarity(edges[best], edges[i])
			}
		}
	}
	return picked
}

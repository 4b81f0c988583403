package metaheuristic

import (
	"container/heap"
	"math/rand"

	"mstop/bra"
	"mstop/heuristic"
	"mstop/model"
	"mstop/pjs"
)

// RunIntensive restarts like Run, but keeps the nelites best mappings seen
// (by revenue) in a min-heap instead of a single incumbent. Once the
// restart budget is spent, every elite's mapping is re-optimized with
// pjs.MultiStart per source, and the best resulting Solution overall is
// returned.
//
// Complexity: O(maxIter) heuristic passes plus O(nelites * S * maxIter)
// MultiStart PJS builds during the re-optimization phase.
func RunIntensive(p *model.Problem, rng *rand.Rand, minBeta, maxBeta float64, maxIter, nelites int) (*model.Solution, error) {
	best, err := heuristic.Run(p, rng, bra.GreedyBeta)
	if err != nil {
		return nil, err
	}

	elites := &eliteHeap{{revenue: best.TotalRevenue, solution: best}}
	heap.Init(elites)

	dist := bra.BetaSampler(rng, minBeta, maxBeta)

	for i := 0; i < maxIter; i++ {
		beta := dist.Rand()

		candidate, err := heuristic.Run(p, rng, beta)
		if err != nil {
			return nil, err
		}

		worstRevenue := (*elites)[0].revenue
		if candidate.TotalRevenue > worstRevenue || elites.Len() < nelites {
			heap.Push(elites, eliteItem{revenue: candidate.TotalRevenue, solution: candidate})
		}
		if elites.Len() > nelites {
			heap.Pop(elites)
		}
	}

	for _, elite := range *elites {
		reoptimized, err := reoptimizeMapping(p, elite.solution.Mapping, rng, minBeta, maxBeta, maxIter)
		if err != nil {
			return nil, err
		}
		if reoptimized.TotalRevenue > best.TotalRevenue {
			best = reoptimized
		}
	}

	return best, nil
}

// reoptimizeMapping holds a customer-to-source Mapping fixed and reruns
// per-source routing via pjs.MultiStart, assembling a fresh Solution.
func reoptimizeMapping(p *model.Problem, mapping *model.Mapping, rng *rand.Rand, minBeta, maxBeta float64, maxIter int) (*model.Solution, error) {
	sol := &model.Solution{Mapping: mapping, PerSource: make([]model.PJSSolution, 0, p.NSources())}

	for si, sourceID := range p.SourceIDs {
		customers, err := mapping.CustomersOf(si)
		if err != nil {
			return nil, err
		}

		pjsSol, err := pjs.MultiStart(p, sourceID, customers, rng, minBeta, maxBeta, maxIter)
		if err != nil {
			return nil, err
		}

		sol.PerSource = append(sol.PerSource, *pjsSol)
	}

	sol.Rollup()
	return sol, nil
}

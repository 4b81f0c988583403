// Package metaheuristic repeatedly restarts the heuristic pass with a
// randomized beta, keeping the best-by-revenue Solution seen, and
// offers an elite-pool variant that re-optimizes the most promising
// mappings once the restart budget is spent.
package metaheuristic

import (
	"math/rand"

	"mstop/bra"
	"mstop/heuristic"
	"mstop/model"
)

// Run restarts heuristic.Run maxIter times with beta drawn from
// [minBeta, maxBeta), after one bra.GreedyBeta baseline pass, and returns
// whichever Solution achieved the highest total revenue.
//
// Complexity: O(maxIter) heuristic passes.
func Run(p *model.Problem, rng *rand.Rand, minBeta, maxBeta float64, maxIter int) (*model.Solution, error) {
	best, err := heuristic.Run(p, rng, bra.GreedyBeta)
	if err != nil {
		return nil, err
	}

	dist := bra.BetaSampler(rng, minBeta, maxBeta)

	for i := 0; i < maxIter; i++ {
		beta := dist.Rand()

		candidate, err := heuristic.Run(p, rng, beta)
		if err != nil {
			return nil, err
		}

		if candidate.TotalRevenue > best.TotalRevenue {
			best = candidate
		}
	}

	return best, nil
}

package pjs

import (
	"math/rand"

	"mstop/bra"
	"mstop/model"
)

// MultiStart runs Build once at bra.GreedyBeta and maxIter more times with
// beta drawn uniformly from [minBeta, maxBeta), keeping the best-by-revenue
// result. It is the per-elite re-optimization step the intensive
// metaheuristic runs once a mapping has been fixed.
func MultiStart(p *model.Problem, sourceID int, customers []int, rng *rand.Rand, minBeta, maxBeta float64, maxIter int) (*model.PJSSolution, error) {
	best, err := Build(p, sourceID, customers, rng, bra.GreedyBeta)
	if err != nil {
		return nil, err
	}

	dist := bra.BetaSampler(rng, minBeta, maxBeta)

	for i := 0; i < maxIter; i++ {
		beta := dist.Rand()

		candidate, err := Build(p, sourceID, customers, rng, beta)
		if err != nil {
			return nil, err
		}
		if candidate.Revenue > best.Revenue {
			best = candidate
		}
	}

	return best, nil
}

// Package alphatuner sweeps the savings blend parameter alpha to find the
// value that maximizes a single greedy heuristic pass's revenue.
package alphatuner

import (
	"math/rand"

	"mstop/bra"
	"mstop/heuristic"
	"mstop/model"
	"mstop/savings"
)

// steps is the number of equal intervals [0, 1] is divided into; the sweep
// visits steps+1 alpha values: 0.0, 0.1, ..., 1.0.
const steps = 10

// Tune evaluates alpha = k/10 for k in 0..10, calling savings.Set and one
// bra.GreedyBeta heuristic pass for each, and returns the alpha whose pass
// achieved the highest revenue. Ties keep the first (lowest) alpha seen,
// matching the original's strict "greater than" update rule.
//
// Tune mutates p's edge savings as a side effect of evaluating every
// candidate alpha; callers that need a specific alpha's savings active
// afterward must call savings.Set(p, chosenAlpha) again once Tune returns.
//
// Complexity: O(steps) heuristic passes.
func Tune(p *model.Problem, rng *rand.Rand) (float64, error) {
	bestAlpha := 0.0
	bestRevenue := -1.0

	for k := 0; k <= steps; k++ {
		alpha := float64(k) / steps

		if err := savings.Set(p, alpha); err != nil {
			return 0, err
		}

		sol, err := heuristic.Run(p, rng, bra.GreedyBeta)
		if err != nil {
			return 0, err
		}

		if sol.TotalRevenue > bestRevenue {
			bestAlpha = alpha
			bestRevenue = sol.TotalRevenue
		}
	}

	return bestAlpha, nil
}

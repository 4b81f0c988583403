// Package heuristic runs one complete Mapper+PJS pass over a Problem and
// assembles the resulting per-source routes into a Solution.
package heuristic

import (
	"math/rand"

	"mstop/bra"
	"mstop/mapper"
	"mstop/model"
	"mstop/pjs"
)

// Run maps customers to sources with the given beta, then builds each
// source's routes with bra.GreedyBeta (the Mapper is the stage that
// explores; PJS itself always merges greedily once a mapping is fixed,
// matching original_source/src/solver.h's heuristic function).
//
// Complexity: O(Mapper) + O(S) PJS builds.
func Run(p *model.Problem, rng *rand.Rand, beta float64) (*model.Solution, error) {
	mapping, err := mapper.Map(p, rng, beta)
	if err != nil {
		return nil, err
	}

	sol := &model.Solution{Mapping: mapping, PerSource: make([]model.PJSSolution, 0, p.NSources())}

	for si, sourceID := range p.SourceIDs {
		customers, err := mapping.CustomersOf(si)
		if err != nil {
			return nil, err
		}

		pjsSol, err := pjs.Build(p, sourceID, customers, rng, bra.GreedyBeta)
		if err != nil {
			return nil, err
		}

		sol.PerSource = append(sol.PerSource, *pjsSol)
	}

	sol.Rollup()
	return sol, nil
}

// Package savings computes each candidate edge's per-source savings value,
// blending route-shortening savings against collected revenue.
package savings

import (
	"errors"

	"mstop/model"
)

// ErrAlphaOutOfRange indicates alpha fell outside [0, 1].
var ErrAlphaOutOfRange = errors.New("savings: alpha must lie in [0, 1]")

const tolerance = 1e-9

// Set computes, for every directed customer edge (i,j) in p.Edges and every
// source s, the blended savings value:
//
//	savings[s] = (1-alpha) * (dist(i, depot) + dist(s, j) - cost(i,j)) + alpha * (revenue(i) + revenue(j))
//
// and stores it on edge.Savings[s.ID]. alpha must lie in [0, 1];
// alpha=0 yields pure distance savings, alpha=1 yields pure revenue
// maximization.
//
// Set mutates p.Edges in place: it is meant to be called once per
// alpha/heuristic-pass combination, immediately before a PJS run consumes
// the freshly computed savings.
func Set(p *model.Problem, alpha float64) error {
	if alpha < -tolerance || alpha > 1+tolerance {
		return ErrAlphaOutOfRange
	}

	depotID := p.DepotID

	for idx := range p.Edges {
		edge := &p.Edges[idx]
		iNode, err := p.Node(edge.INode)
		if err != nil {
			return err
		}
		jNode, err := p.Node(edge.JNode)
		if err != nil {
			return err
		}

		iToDepot, err := p.Dist.At(edge.INode, depotID)
		if err != nil {
			return err
		}

		edge.Savings = make(map[int]float64, len(p.SourceIDs))
		for _, sourceID := range p.SourceIDs {
			sourceToJ, err := p.Dist.At(sourceID, edge.JNode)
			if err != nil {
				return err
			}
			distanceSavings := iToDepot + sourceToJ - edge.Cost
			revenueTerm := iNode.Revenue + jNode.Revenue
			edge.Savings[sourceID] = (1-alpha)*distanceSavings + alpha*revenueTerm
		}
	}

	return nil
}

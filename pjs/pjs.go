// Package pjs builds, for a single source, a set of routes covering that
// source's assigned customers via the Parallel Joint Savings merge process.
package pjs

import (
	"errors"
	"math/rand"
	"sort"

	"mstop/bra"
	"mstop/model"
)

// ErrUnknownSource indicates a source id that is not part of the Problem.
var ErrUnknownSource = errors.New("pjs: unknown source id")

// candidateEdge is a savings-bearing edge restricted to the customers this
// source currently owns, carrying its source-specific savings value for
// sorting.
type candidateEdge struct {
	iNode, jNode int
	cost         float64
	savings      float64
}

// Build runs one PJS pass for sourceID over the customer set customers,
// starting from the dummy all-singleton-routes solution and greedily
// merging routes along the savings-sorted, BRA-drawn edge list, subject to
// Tmax and the source's vehicle count.
//
// Complexity: O(E log E) for the initial savings sort, O(E) merge attempts
// where E is the number of candidate edges among customers.
func Build(p *model.Problem, sourceID int, customers []int, rng *rand.Rand, beta float64) (*model.PJSSolution, error) {
	source, err := p.Node(sourceID)
	if err != nil || source.Role != model.RoleSource {
		return nil, ErrUnknownSource
	}
	depotID := p.DepotID

	owned := make(map[int]bool, len(customers))
	for _, c := range customers {
		owned[c] = true
	}

	st := newRoutingState(p, sourceID, depotID, customers)
	sc := st.scratch

	edges := candidateEdgesFor(p, sourceID, owned)
	sort.Slice(edges, func(i, j int) bool { return edges[i].savings > edges[j].savings })

	for len(edges) > 0 && st.live > source.NVehicles {
		idx, err := bra.Sample(rng, len(edges), beta)
		if err != nil {
			return nil, err
		}
		edge := edges[idx]
		edges = append(edges[:idx], edges[idx+1:]...)

		iRouteIdx := sc.RouteOf[edge.iNode]
		jRouteIdx := sc.RouteOf[edge.jNode]
		if iRouteIdx == -1 || jRouteIdx == -1 || iRouteIdx == jRouteIdx {
			continue
		}
		if !sc.LinkDepot[edge.iNode] || !sc.LinkSource[edge.jNode] {
			continue
		}

		iRoute := st.routes[iRouteIdx]
		jRoute := st.routes[jRouteIdx]

		merged := iRoute.Cost + jRoute.Cost + edge.cost - sc.ToDepot[edge.iNode] - sc.FromSource[edge.jNode]
		if merged > p.Tmax {
			continue
		}

		st.merge(iRouteIdx, jRouteIdx, edge)
	}

	routes := st.liveRoutes()

	if len(routes) > source.NVehicles {
		sort.Slice(routes, func(i, j int) bool { return routes[i].Revenue > routes[j].Revenue })
		routes = routes[:source.NVehicles]
	}

	var cost, revenue float64
	for _, r := range routes {
		cost += r.Cost
		revenue += r.Revenue
	}

	return &model.PJSSolution{SourceID: sourceID, Routes: routes, Cost: cost, Revenue: revenue}, nil
}

// candidateEdgesFor filters the problem's directed customer edges down to
// those whose endpoints are both owned by this source, attaching the
// source's own savings value for each.
func candidateEdgesFor(p *model.Problem, sourceID int, owned map[int]bool) []candidateEdge {
	var out []candidateEdge
	for _, e := range p.Edges {
		if !owned[e.INode] || !owned[e.JNode] {
			continue
		}
		out = append(out, candidateEdge{
			iNode:   e.INode,
			jNode:   e.JNode,
			cost:    e.Cost,
			savings: e.Savings[sourceID],
		})
	}
	return out
}

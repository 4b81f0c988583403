package pjs

import "mstop/model"

// routingState holds the ephemeral per-build bookkeeping PJS needs: the
// dummy-then-merged routes, plus the from-source/to-depot cost and link
// bookkeeping for every node, kept in a model.Scratch rather than a
// bespoke map of this package's own. dead and live track which of the
// initial dummy routes have since been merged away, which Scratch itself
// has no notion of.
type routingState struct {
	scratch *model.Scratch
	routes  []*model.Route
	dead    map[int]bool // routes index -> merged away
	live    int          // count of routes not yet merged away
}

// newRoutingState builds the dummy solution: every customer within Tmax of
// a direct source-customer-depot round trip starts in its own singleton
// route; customers that can't be reached and back within Tmax start
// unrouted.
func newRoutingState(p *model.Problem, sourceID, depotID int, customers []int) *routingState {
	st := &routingState{
		scratch: model.NewScratch(p),
		dead:    make(map[int]bool),
	}

	for _, c := range customers {
		fromSource, _ := p.Dist.At(sourceID, c)
		toDepot, _ := p.Dist.At(c, depotID)

		st.scratch.FromSource[c] = fromSource
		st.scratch.ToDepot[c] = toDepot
		st.scratch.LinkSource[c] = true
		st.scratch.LinkDepot[c] = true

		if fromSource+toDepot <= p.Tmax {
			node, _ := p.Node(c)
			r := &model.Route{
				SourceID: sourceID,
				DepotID:  depotID,
				NodeIDs:  []int{c},
				Cost:     fromSource + toDepot,
				Revenue:  node.Revenue,
			}
			st.scratch.RouteOf[c] = len(st.routes)
			st.routes = append(st.routes, r)
		}
	}

	st.live = len(st.routes)
	return st
}

// merge joins jRoute onto the tail of iRoute along edge, matching the
// original's route-merge semantics: iRoute absorbs jRoute's nodes, costs
// combine minus the two dangling leg costs edge replaces, and jRoute's
// head is no longer a source link while iRoute's former tail is no longer
// a depot link.
func (st *routingState) merge(iRouteIdx, jRouteIdx int, edge candidateEdge) {
	iRoute := st.routes[iRouteIdx]
	jRoute := st.routes[jRouteIdx]
	sc := st.scratch

	iRoute.Cost += jRoute.Cost + edge.cost - sc.ToDepot[edge.iNode] - sc.FromSource[edge.jNode]
	iRoute.Revenue += jRoute.Revenue

	sc.LinkDepot[edge.iNode] = false
	sc.LinkSource[edge.jNode] = false

	for _, n := range jRoute.NodeIDs {
		sc.RouteOf[n] = iRouteIdx
		iRoute.NodeIDs = append(iRoute.NodeIDs, n)
	}

	st.dead[jRouteIdx] = true
	st.live--
}

// liveRoutes returns the routes that survived merging, i.e. weren't
// absorbed into another route.
func (st *routingState) liveRoutes() []*model.Route {
	out := make([]*model.Route, 0, len(st.routes))
	for i, r := range st.routes {
		if !st.dead[i] {
			out = append(out, r)
		}
	}
	return out
}

package model

// Scratch holds the ephemeral per-pass routing state that a pointer-heavy
// design would keep directly on Node (from_source, to_depot, link_source,
// link_depot, route membership). Here it lives in a side table keyed by
// node id instead, so a single immutable Problem can drive many
// independent, even concurrent, solve passes: one Scratch per goroutine,
// zero shared mutable state.
type Scratch struct {
	// FromSource[i] is the cost from node i's currently linked source to i,
	// once i has been attached to a route; undefined (0) until then.
	FromSource []float64

	// ToDepot[i] is the cost from node i to the depot.
	ToDepot []float64

	// LinkSource[i] reports whether node i is currently a route head (the
	// end directly reachable from its source).
	LinkSource []bool

	// LinkDepot[i] reports whether node i is currently a route tail (the
	// end directly reachable from the depot).
	LinkDepot []bool

	// RouteOf[i] is the index into the owning solution's route slice that
	// currently contains node i, or -1 if node i is unrouted.
	RouteOf []int

	// Assigned[i] reports whether the Mapper has already bound node i to a
	// source. Unused outside mapper.
	Assigned []bool
}

// NewScratch allocates a Scratch sized to the Problem's node arena, with
// RouteOf initialized to the unrouted sentinel (-1).
func NewScratch(p *Problem) *Scratch {
	n := len(p.Nodes)
	s := &Scratch{
		FromSource: make([]float64, n),
		ToDepot:    make([]float64, n),
		LinkSource: make([]bool, n),
		LinkDepot:  make([]bool, n),
		RouteOf:    make([]int, n),
		Assigned:   make([]bool, n),
	}
	for i := range s.RouteOf {
		s.RouteOf[i] = -1
	}
	return s
}

// Reset clears all per-pass fields back to their zero/sentinel values,
// letting a single Scratch be reused across repeated heuristic passes
// without reallocating.
func (s *Scratch) Reset() {
	for i := range s.RouteOf {
		s.FromSource[i] = 0
		s.ToDepot[i] = 0
		s.LinkSource[i] = false
		s.LinkDepot[i] = false
		s.RouteOf[i] = -1
		s.Assigned[i] = false
	}
}

package model

// PJSSolution is the per-source output of one Parallel Joint Savings run:
// the routes that source operates, and their aggregate cost and collected
// revenue.
type PJSSolution struct {
	SourceID int
	Routes   []*Route
	Cost     float64
	Revenue  float64
}

// Solution is one complete heuristic pass's output: the customer-
// to-source Mapping that produced it, the per-source PJSSolutions, and the
// totals rolled up across every source.
type Solution struct {
	Mapping      *Mapping
	PerSource    []PJSSolution
	TotalCost    float64
	TotalRevenue float64
}

// Rollup recomputes TotalCost and TotalRevenue from PerSource. Callers that
// build a Solution incrementally (one source at a time) should call this
// once after the last source is appended.
func (s *Solution) Rollup() {
	var cost, revenue float64
	for _, ps := range s.PerSource {
		cost += ps.Cost
		revenue += ps.Revenue
	}
	s.TotalCost = cost
	s.TotalRevenue = revenue
}

// Routes flattens PerSource into a single slice, in source order, for
// callers (routeexport, the CLI) that don't care about per-source
// grouping.
func (s *Solution) Routes() []*Route {
	var all []*Route
	for _, ps := range s.PerSource {
		all = append(all, ps.Routes...)
	}
	return all
}

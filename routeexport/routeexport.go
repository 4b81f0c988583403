// Package routeexport renders a solved Solution as a Graphviz DOT graph
// and as a flat table of (source, depot, sequence, cost, revenue) records,
// for inspection and reporting.
//
// It follows a Vertex/Edge/sentinel-error idiom rather than a general-
// purpose, mutex-guarded, string-keyed mutable graph: that shape is wrong
// for a one-shot read of an already-solved, dense-integer-id Solution.
// Export here works directly off model.Solution instead.
package routeexport

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"mstop/model"
)

// ErrNilSolution indicates Flatten or WriteDOT was called with a nil Solution.
var ErrNilSolution = errors.New("routeexport: solution is nil")

// RouteRecord is one flattened row of a Solution's routes, suitable for a
// table or CSV row.
type RouteRecord struct {
	SourceID int
	DepotID  int
	NodeIDs  []int
	Cost     float64
	Revenue  float64
}

// Flatten converts every route across every source into RouteRecords, in
// source order.
func Flatten(sol *model.Solution) ([]RouteRecord, error) {
	if sol == nil {
		return nil, ErrNilSolution
	}

	var out []RouteRecord
	for _, r := range sol.Routes() {
		out = append(out, RouteRecord{
			SourceID: r.SourceID,
			DepotID:  r.DepotID,
			NodeIDs:  append([]int(nil), r.NodeIDs...),
			Cost:     r.Cost,
			Revenue:  r.Revenue,
		})
	}
	return out, nil
}

// WriteDOT renders sol as a Graphviz DOT directed graph: one node per
// customer/source/depot touched by a route, one edge per consecutive hop
// (source -> first customer -> ... -> last customer -> depot), labeled
// with the route's source id for readability.
func WriteDOT(w io.Writer, sol *model.Solution) error {
	if sol == nil {
		return ErrNilSolution
	}

	var b strings.Builder
	b.WriteString("digraph mstop {\n")
	b.WriteString("  rankdir=LR;\n")

	for _, r := range sol.Routes() {
		prev := fmt.Sprintf("s%d", r.SourceID)
		for _, n := range r.NodeIDs {
			cur := fmt.Sprintf("n%d", n)
			fmt.Fprintf(&b, "  %s -> %s [label=\"src=%d\"];\n", prev, cur, r.SourceID)
			prev = cur
		}
		depot := fmt.Sprintf("d%d", r.DepotID)
		fmt.Fprintf(&b, "  %s -> %s [label=\"src=%d\"];\n", prev, depot, r.SourceID)
	}

	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

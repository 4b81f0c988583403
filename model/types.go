// Package model defines the immutable MS-TOP problem instance (Problem,
// Node, Edge) and the structures a solve pass produces (Route, Mapping,
// PJSSolution, Solution).
//
// Nodes and Edges are records held in a contiguous arena indexed by dense
// integer id; after construction only each Edge's Savings map changes
// (savings.Set rewrites it). There are no pointers between Node and Route, and no
// node->route back-reference lives on Node itself. Ephemeral per-pass
// routing state lives in a side table (see scratch.go), keyed by node id,
// so a Problem can be solved repeatedly — or, with one Scratch per
// goroutine, concurrently — without mutating shared storage.
package model

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrInvalidNode indicates a Node record failed a structural precondition
	// (ID not equal to its position, negative revenue, a source with a
	// negative NVehicles, or a Role outside the three defined values).
	ErrInvalidNode = errors.New("model: invalid node")

	// ErrInvalidTmax indicates Tmax was non-positive.
	ErrInvalidTmax = errors.New("model: Tmax must be > 0")

	// ErrNoSources indicates a Problem was built with zero source nodes.
	ErrNoSources = errors.New("model: at least one source is required")

	// ErrNoDepot indicates a Problem was built without exactly one depot.
	ErrNoDepot = errors.New("model: exactly one depot is required")

	// ErrIndexOutOfRange indicates a node/source id outside the Problem's arena.
	ErrIndexOutOfRange = errors.New("model: index out of range")
)

// Role classifies a Node as mutually exclusive: customer, source, or depot.
type Role uint8

const (
	// RoleCustomer is a node that may be visited by exactly one route.
	RoleCustomer Role = iota
	// RoleSource is a start-of-route depot with a fixed fleet (NVehicles).
	RoleSource
	// RoleDepot is the unique end-of-route point shared by every source.
	RoleDepot
)

// Node is an immutable point in the instance: identity, coordinates,
// revenue, role, and (for sources only) a vehicle fleet size.
//
// Node carries no routing state: from_source/to_depot/link_source/
// link_depot/route are ephemeral and live in a Scratch instead.
type Node struct {
	// ID is the dense integer identity assigned at parse time, in raw file
	// line order. Sources and customers may interleave arbitrarily; only
	// the depot is pinned to the last line.
	ID int

	// X, Y are the node's 2D coordinates.
	X, Y float64

	// Revenue is the customer's collected value if visited; non-negative.
	Revenue float64

	// Role is one of RoleCustomer, RoleSource, RoleDepot.
	Role Role

	// NVehicles is the source's fleet size. Meaningful only when Role ==
	// RoleSource; zero otherwise.
	NVehicles int
}

// Edge is a directed candidate link between two customers (i, j); the
// reverse direction (j, i) is a separate Edge since its savings value is
// not symmetric. The depot and sources participate in no edges. Cost is
// the Euclidean distance; Savings maps a source id to that source's
// blended savings value for this edge (populated by the savings engine).
type Edge struct {
	INode, JNode int
	Cost         float64
	Savings      map[int]float64
}

// Route is an ordered bag of customers bound to exactly one source and the
// depot, implicitly sequenced source -> NodeIDs[0] -> ... -> NodeIDs[k-1]
// -> depot. NodeIDs are non-owning back-references into the Problem's node
// arena.
type Route struct {
	SourceID int
	DepotID  int
	NodeIDs  []int
	Cost     float64
	Revenue  float64
}

// First returns the route's head customer id (the one linked to the source).
func (r *Route) First() int { return r.NodeIDs[0] }

// Last returns the route's tail customer id (the one linked to the depot).
func (r *Route) Last() int { return r.NodeIDs[len(r.NodeIDs)-1] }

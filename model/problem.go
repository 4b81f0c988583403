package model

import "mstop/distmat"

// Problem is the immutable MS-TOP instance: nodes, sources, depot, the
// dense distance matrix, and the candidate customer-customer edges.
//
// Problem exclusively owns Nodes, Edges, and Dist for its lifetime. After
// NewProblem returns, the only mutation is savings.Set rewriting each Edge's
// Savings map.
type Problem struct {
	// Tmax bounds every route's cost.
	Tmax float64

	// Nodes holds every node indexed by its dense id, assigned in raw file
	// line order: sources and customers may interleave arbitrarily:
	// id does not imply role. Only the depot's id is constrained to be
	// the last line of the file.
	Nodes []Node

	// SourceIDs lists node ids with Role == RoleSource, in file order.
	SourceIDs []int

	// CustomerIDs lists node ids with Role == RoleCustomer, in file order.
	CustomerIDs []int

	// DepotID is the single node id with Role == RoleDepot.
	DepotID int

	// Dist is the dense (S+N+1) x (S+N+1) Euclidean distance matrix,
	// indexed by node id.
	Dist *distmat.Matrix

	// Edges holds one directed candidate link per ordered customer pair
	// (i,j) and (j,i) both present; sources and the depot participate in
	// no edges. Both directions are needed because savings is not
	// symmetric: a source's savings for linking i's tail to j's head
	// depends on dist(i, depot) and dist(source, j), which differ from
	// the (j,i) values even though Cost itself is symmetric.
	Edges []Edge
}

// NewProblem validates nodes and builds the distance matrix and the
// customer-customer edge set.
//
// Contract: nodes must be indexed by position == Node.ID (i.e. nodes[k].ID
// == k), covering exactly one contiguous id space with >=1 source, >=1
// customer is not required (an all-source, zero-customer instance is
// degenerate but not invalid), and exactly one depot.
//
// Complexity: O(n^2) for the distance matrix and edge construction, where
// n = len(nodes).
func NewProblem(tmax float64, nodes []Node) (*Problem, error) {
	if tmax <= 0 {
		return nil, ErrInvalidTmax
	}

	var sourceIDs, customerIDs []int
	depotID := -1

	for i, nd := range nodes {
		if nd.ID != i {
			return nil, ErrInvalidNode
		}
		if nd.Revenue < 0 {
			return nil, ErrInvalidNode
		}
		switch nd.Role {
		case RoleSource:
			if nd.NVehicles < 0 {
				return nil, ErrInvalidNode
			}
			sourceIDs = append(sourceIDs, nd.ID)
		case RoleCustomer:
			customerIDs = append(customerIDs, nd.ID)
		case RoleDepot:
			if depotID != -1 {
				return nil, ErrNoDepot
			}
			depotID = nd.ID
		default:
			return nil, ErrInvalidNode
		}
	}
	if len(sourceIDs) == 0 {
		return nil, ErrNoSources
	}
	if depotID == -1 {
		return nil, ErrNoDepot
	}

	pts := make([]distmat.Point, len(nodes))
	for i, nd := range nodes {
		pts[i] = distmat.Point{X: nd.X, Y: nd.Y}
	}
	dist, err := distmat.FromCoordinates(pts)
	if err != nil {
		return nil, err
	}

	edges := buildCustomerEdges(customerIDs, dist)

	return &Problem{
		Tmax:        tmax,
		Nodes:       nodes,
		SourceIDs:   sourceIDs,
		CustomerIDs: customerIDs,
		DepotID:     depotID,
		Dist:        dist,
		Edges:       edges,
	}, nil
}

// buildCustomerEdges creates one Edge per ordered pair of distinct customer
// ids (both (i,j) and (j,i)), using the already-computed distance matrix
// for cost. Self-pairs
// are skipped: a self-edge can never join two distinct routes, so omitting
// it changes no outcome; n customers yield n*(n-1) edges instead of the
// n*n of a full i,j double loop.
func buildCustomerEdges(customerIDs []int, dist *distmat.Matrix) []Edge {
	n := len(customerIDs)
	edges := make([]Edge, 0, n*(n-1))
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if a == b {
				continue
			}
			i, j := customerIDs[a], customerIDs[b]
			cost, _ := dist.At(i, j)
			edges = append(edges, Edge{INode: i, JNode: j, Cost: cost})
		}
	}
	return edges
}

// NSources returns the number of source nodes.
func (p *Problem) NSources() int { return len(p.SourceIDs) }

// NCustomers returns the number of customer nodes.
func (p *Problem) NCustomers() int { return len(p.CustomerIDs) }

// Node returns the node record for id, or an error if id is out of range.
func (p *Problem) Node(id int) (Node, error) {
	if id < 0 || id >= len(p.Nodes) {
		return Node{}, ErrIndexOutOfRange
	}
	return p.Nodes[id], nil
}

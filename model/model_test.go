package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mstop/model"
)

// square is a tiny 1-source, 3-customer, 1-depot instance used across these
// tests: source at origin, customers spread out, depot past them.
func square(t *testing.T) []model.Node {
	t.Helper()
	return []model.Node{
		{ID: 0, X: 0, Y: 0, Role: model.RoleSource, NVehicles: 2},
		{ID: 1, X: 1, Y: 0, Role: model.RoleCustomer, Revenue: 10},
		{ID: 2, X: 2, Y: 0, Role: model.RoleCustomer, Revenue: 20},
		{ID: 3, X: 3, Y: 0, Role: model.RoleCustomer, Revenue: 30},
		{ID: 4, X: 4, Y: 0, Role: model.RoleDepot},
	}
}

func TestNewProblem_BuildsDistanceMatrixAndEdges(t *testing.T) {
	p, err := model.NewProblem(100, square(t))
	require.NoError(t, err)

	assert.Equal(t, 1, p.NSources())
	assert.Equal(t, 3, p.NCustomers())
	assert.Equal(t, 4, p.DepotID)

	// Customer edges only, both directions: 3*2 = 6 ordered pairs.
	assert.Len(t, p.Edges, 6)
	for _, e := range p.Edges {
		assert.NotEqual(t, p.DepotID, e.INode)
		assert.NotEqual(t, p.DepotID, e.JNode)
		for _, src := range p.SourceIDs {
			assert.NotEqual(t, src, e.INode)
			assert.NotEqual(t, src, e.JNode)
		}
	}

	d, err := p.Dist.At(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-9)
}

func TestNewProblem_RejectsNonPositiveTmax(t *testing.T) {
	_, err := model.NewProblem(0, square(t))
	assert.ErrorIs(t, err, model.ErrInvalidTmax)
}

func TestNewProblem_RejectsMisindexedNodes(t *testing.T) {
	nodes := square(t)
	nodes[2].ID = 99
	_, err := model.NewProblem(100, nodes)
	assert.ErrorIs(t, err, model.ErrInvalidNode)
}

func TestNewProblem_RequiresSourceAndDepot(t *testing.T) {
	nodes := square(t)
	nodes[0].Role = model.RoleCustomer // no sources left
	_, err := model.NewProblem(100, nodes)
	assert.ErrorIs(t, err, model.ErrNoSources)

	nodes = square(t)
	nodes[4].Role = model.RoleCustomer // no depot left
	_, err = model.NewProblem(100, nodes)
	assert.ErrorIs(t, err, model.ErrNoDepot)
}

func TestMapping_SetGetCustomersOf(t *testing.T) {
	m := model.NewMapping(2, 5)

	require.NoError(t, m.Set(0, 1))
	require.NoError(t, m.Set(0, 2))
	require.NoError(t, m.Set(1, 3))

	ok, err := m.Get(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Get(1, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	cust0, err := m.CustomersOf(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, cust0)

	cust1, err := m.CustomersOf(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, cust1)
}

func TestMapping_SetReassignsExclusively(t *testing.T) {
	m := model.NewMapping(2, 5)
	require.NoError(t, m.Set(0, 1))
	require.NoError(t, m.Set(1, 1)) // reassign customer 1 to source 1

	ok, _ := m.Get(0, 1)
	assert.False(t, ok)
	ok, _ = m.Get(1, 1)
	assert.True(t, ok)
}

func TestMapping_RejectsOutOfRange(t *testing.T) {
	m := model.NewMapping(2, 5)
	assert.ErrorIs(t, m.Set(2, 0), model.ErrIndexOutOfRange)
	assert.ErrorIs(t, m.Set(0, 5), model.ErrIndexOutOfRange)
	_, err := m.Get(-1, 0)
	assert.ErrorIs(t, err, model.ErrIndexOutOfRange)
}

func TestScratch_InitializesRouteOfToUnrouted(t *testing.T) {
	p, err := model.NewProblem(100, square(t))
	require.NoError(t, err)

	s := model.NewScratch(p)
	for _, r := range s.RouteOf {
		assert.Equal(t, -1, r)
	}
}

func TestScratch_ResetClearsState(t *testing.T) {
	p, err := model.NewProblem(100, square(t))
	require.NoError(t, err)

	s := model.NewScratch(p)
	s.RouteOf[1] = 0
	s.LinkSource[1] = true
	s.Assigned[1] = true

	s.Reset()

	assert.Equal(t, -1, s.RouteOf[1])
	assert.False(t, s.LinkSource[1])
	assert.False(t, s.Assigned[1])
}

func TestSolution_RollupAndRoutes(t *testing.T) {
	r1 := &model.Route{SourceID: 0, DepotID: 4, NodeIDs: []int{1}, Cost: 2, Revenue: 10}
	r2 := &model.Route{SourceID: 0, DepotID: 4, NodeIDs: []int{2, 3}, Cost: 5, Revenue: 50}

	sol := &model.Solution{
		PerSource: []model.PJSSolution{
			{SourceID: 0, Routes: []*model.Route{r1, r2}, Cost: 7, Revenue: 60},
		},
	}
	sol.Rollup()

	assert.Equal(t, 7.0, sol.TotalCost)
	assert.Equal(t, 60.0, sol.TotalRevenue)
	assert.Len(t, sol.Routes(), 2)
}

func TestRoute_FirstAndLast(t *testing.T) {
	r := &model.Route{NodeIDs: []int{3, 7, 9}}
	assert.Equal(t, 3, r.First())
	assert.Equal(t, 9, r.Last())
}

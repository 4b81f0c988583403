package pjs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mstop/bra"
	"mstop/model"
	"mstop/pjs"
	"mstop/savings"
)

// lineProblem places one source, three customers, and the depot on a line,
// close enough together that a single vehicle can cover all three within
// Tmax.
func lineProblem(t *testing.T, tmax float64, nVehicles int) *model.Problem {
	t.Helper()
	nodes := []model.Node{
		{ID: 0, X: 0, Y: 0, Role: model.RoleSource, NVehicles: nVehicles},
		{ID: 1, X: 1, Y: 0, Role: model.RoleCustomer, Revenue: 10},
		{ID: 2, X: 2, Y: 0, Role: model.RoleCustomer, Revenue: 20},
		{ID: 3, X: 3, Y: 0, Role: model.RoleCustomer, Revenue: 30},
		{ID: 4, X: 4, Y: 0, Role: model.RoleDepot},
	}
	p, err := model.NewProblem(tmax, nodes)
	require.NoError(t, err)
	return p
}

func TestBuild_SingleVehicleMergesAllWithinTmax(t *testing.T) {
	p := lineProblem(t, 100, 1)
	require.NoError(t, savings.Set(p, 0.0))

	sol, err := pjs.Build(p, 0, []int{1, 2, 3}, bra.New(1), bra.GreedyBeta)
	require.NoError(t, err)

	require.Len(t, sol.Routes, 1)
	assert.ElementsMatch(t, []int{1, 2, 3}, sol.Routes[0].NodeIDs)
	assert.InDelta(t, 60.0, sol.Revenue, 1e-9)
	assert.LessOrEqual(t, sol.Routes[0].Cost, p.Tmax)
}

func TestBuild_RespectsVehicleCapWhenMergesCantSurvive(t *testing.T) {
	// Source and depot nearly coincide; three customers spread radially so
	// each singleton round trip fits Tmax but any merge between them
	// (crossing back through the cluster) doesn't. With one vehicle
	// available, PJS must drop all but the single best-revenue route.
	nodes := []model.Node{
		{ID: 0, X: 0, Y: 0, Role: model.RoleSource, NVehicles: 1},
		{ID: 1, X: 1, Y: 0, Role: model.RoleCustomer, Revenue: 10},
		{ID: 2, X: -1, Y: 0, Role: model.RoleCustomer, Revenue: 50},
		{ID: 3, X: 0, Y: 1, Role: model.RoleCustomer, Revenue: 20},
		{ID: 4, X: 0, Y: 0.0001, Role: model.RoleDepot},
	}
	p, err := model.NewProblem(2.2, nodes)
	require.NoError(t, err)
	require.NoError(t, savings.Set(p, 0.0))

	sol, err := pjs.Build(p, 0, []int{1, 2, 3}, bra.New(2), bra.GreedyBeta)
	require.NoError(t, err)

	require.Len(t, sol.Routes, 1)
	assert.Equal(t, []int{2}, sol.Routes[0].NodeIDs) // customer 2 has the highest revenue
}

func TestBuild_NeverExceedsTmax(t *testing.T) {
	p := lineProblem(t, 6, 1)
	require.NoError(t, savings.Set(p, 0.3))

	sol, err := pjs.Build(p, 0, []int{1, 2, 3}, bra.New(5), 0.5)
	require.NoError(t, err)

	for _, r := range sol.Routes {
		assert.LessOrEqual(t, r.Cost, p.Tmax+1e-9)
	}
}

func TestBuild_RejectsUnknownSource(t *testing.T) {
	p := lineProblem(t, 100, 1)
	require.NoError(t, savings.Set(p, 0.0))

	_, err := pjs.Build(p, 1, []int{2, 3}, bra.New(1), bra.GreedyBeta)
	assert.ErrorIs(t, err, pjs.ErrUnknownSource)
}

func TestMultiStart_NeverWorseThanGreedyBaseline(t *testing.T) {
	p := lineProblem(t, 6, 1)
	require.NoError(t, savings.Set(p, 0.3))

	greedy, err := pjs.Build(p, 0, []int{1, 2, 3}, bra.New(9), bra.GreedyBeta)
	require.NoError(t, err)

	best, err := pjs.MultiStart(p, 0, []int{1, 2, 3}, bra.New(9), 0.1, 0.5, 20)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, best.Revenue, greedy.Revenue)
}

package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mstop/bra"
	"mstop/mapper"
	"mstop/model"
)

func twoSourceProblem(t *testing.T) *model.Problem {
	t.Helper()
	nodes := []model.Node{
		{ID: 0, X: 0, Y: 0, Role: model.RoleSource, NVehicles: 1},
		{ID: 1, X: 10, Y: 0, Role: model.RoleSource, NVehicles: 1},
		{ID: 2, X: 1, Y: 0, Role: model.RoleCustomer, Revenue: 5},
		{ID: 3, X: 2, Y: 0, Role: model.RoleCustomer, Revenue: 5},
		{ID: 4, X: 9, Y: 0, Role: model.RoleCustomer, Revenue: 5},
		{ID: 5, X: 8, Y: 0, Role: model.RoleCustomer, Revenue: 5},
		{ID: 6, X: 20, Y: 0, Role: model.RoleDepot},
	}
	p, err := model.NewProblem(100, nodes)
	require.NoError(t, err)
	return p
}

func TestMap_AssignsEveryCustomerExactlyOnce(t *testing.T) {
	p := twoSourceProblem(t)
	rng := bra.New(1)

	mapping, err := mapper.Map(p, rng, bra.GreedyBeta)
	require.NoError(t, err)

	for _, c := range p.CustomerIDs {
		count := 0
		for si := 0; si < p.NSources(); si++ {
			ok, err := mapping.Get(si, c)
			require.NoError(t, err)
			if ok {
				count++
			}
		}
		assert.Equal(t, 1, count, "customer %d must be assigned exactly once", c)
	}
}

func TestMap_GreedyBetaPrefersClosestSource(t *testing.T) {
	p := twoSourceProblem(t)
	rng := bra.New(7)

	mapping, err := mapper.Map(p, rng, bra.GreedyBeta)
	require.NoError(t, err)

	// Customers 2,3 sit near source 0; customers 4,5 sit near source 1.
	ok, err := mapping.Get(0, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = mapping.Get(1, 4)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMap_DeterministicUnderFixedSeed(t *testing.T) {
	p := twoSourceProblem(t)

	m1, err := mapper.Map(p, bra.New(42), bra.GreedyBeta)
	require.NoError(t, err)
	m2, err := mapper.Map(p, bra.New(42), bra.GreedyBeta)
	require.NoError(t, err)

	for _, c := range p.CustomerIDs {
		for si := 0; si < p.NSources(); si++ {
			a, _ := m1.Get(si, c)
			b, _ := m2.Get(si, c)
			assert.Equal(t, a, b)
		}
	}
}

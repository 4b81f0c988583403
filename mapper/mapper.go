// Package mapper assigns customers to sources using a preference-list
// round-robin process biased by BRA.
package mapper

import (
	"math/rand"
	"sort"

	"mstop/bra"
	"mstop/model"
)

type preference struct {
	key    float64
	nodeID int
}

// Map builds a Mapping by running the round-robin assignment process once:
// each source ranks every customer by how uniquely close it is relative to
// the next-best alternative source, then sources take turns drawing from
// their own ranked list (BRA-biased toward the top) up to their vehicle
// count, until every customer is assigned.
//
// Complexity: O(S*N*log(N)) for the preference sort, O(N) assignment draws.
func Map(p *model.Problem, rng *rand.Rand, beta float64) (*model.Mapping, error) {
	s := p.NSources()
	n := p.NCustomers()
	width := s + n

	prefs := buildPreferences(p)

	mapping := model.NewMapping(s, width)
	scratch := model.NewScratch(p)

	totalAssigned := 0
	currentSource := 0

	for totalAssigned < n {
		sourceIdx := currentSource
		sourceID := p.SourceIDs[sourceIdx]
		node, err := p.Node(sourceID)
		if err != nil {
			return nil, err
		}

		list := prefs[sourceIdx]
		nAssigned := 0

		for nAssigned < node.NVehicles && totalAssigned < n && len(list) > 0 {
			idx, err := bra.Sample(rng, len(list), beta)
			if err != nil {
				return nil, err
			}
			picked := list[idx]
			list = append(list[:idx], list[idx+1:]...)

			if !scratch.Assigned[picked.nodeID] {
				scratch.Assigned[picked.nodeID] = true
				nAssigned++
				totalAssigned++
				if err := mapping.Set(sourceIdx, picked.nodeID); err != nil {
					return nil, err
				}
			}
		}
		prefs[sourceIdx] = list

		currentSource++
		if currentSource == s {
			currentSource = 0
		}
	}

	return mapping, nil
}

// buildPreferences computes, for every source, a list of (key, customer)
// pairs sorted ascending by key. key is the customer's distance to this
// source minus its distance to the closest other source: a small (even
// negative) key means this source is the relatively best option for that
// customer.
func buildPreferences(p *model.Problem) [][]preference {
	sources := p.SourceIDs
	customers := p.CustomerIDs

	prefs := make([][]preference, len(sources))
	for si, sourceID := range sources {
		list := make([]preference, 0, len(customers))
		for _, nodeID := range customers {
			absolute, _ := p.Dist.At(sourceID, nodeID)

			best := 0.0
			first := true
			for _, otherID := range sources {
				if otherID == sourceID {
					continue
				}
				d, _ := p.Dist.At(otherID, nodeID)
				if first || d < best {
					best = d
					first = false
				}
			}
			if first {
				// Only one source total: nothing to compare against.
				best = absolute
			}

			list = append(list, preference{key: absolute - best, nodeID: nodeID})
		}
		sort.Slice(list, func(i, j int) bool { return list[i].key < list[j].key })
		prefs[si] = list
	}

	return prefs
}

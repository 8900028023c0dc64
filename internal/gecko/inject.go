package gecko

import (
	"math"
	"sort"
)

// injectProteins appends the protein accounting scaffold to the model. Both
// modes get one protein pool metabolite and one open pool exchange reaction
// supplying it (lower bound 0, no upper bound). Full mode additionally gets,
// per resolved enzyme in identifier order, a protein pseudometabolite and an
// irreversible usage reaction converting one pool unit into one unit of that
// pseudometabolite.
func injectProteins(m *Model, ec *EnzymeConstraints, poolUB float64) {
	if poolUB <= 0 {
		poolUB = math.Inf(1)
	}

	pool := m.addMet(PoolMet)

	if ec.Mode == ModeFull {
		order := make([]int, len(ec.Enzymes))
		for e := range order {
			order[e] = e
		}
		sort.SliceStable(order, func(a, b int) bool {
			return ec.Enzymes[order[a]] < ec.Enzymes[order[b]]
		})

		seen := make(map[string]bool, len(order))
		for _, e := range order {
			// several genes can resolve to the same enzyme; one
			// pseudometabolite and usage reaction per enzyme
			if seen[ec.Enzymes[e]] {
				continue
			}
			seen[ec.Enzymes[e]] = true

			prot := m.addMet(ProtPrefix + ec.Enzymes[e])
			m.addRxn(UsagePrefix+ec.Enzymes[e],
				map[int]float64{pool: -1, prot: 1},
				0, math.Inf(1), false, "")
		}
	}

	m.addRxn(PoolRxn, map[int]float64{pool: 1}, 0, poolUB, false, "")
}

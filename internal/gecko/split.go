package gecko

// splitReversible converts every reversible non-exchange reaction into a pair
// of irreversible reactions: the forward reaction keeps its identifier with
// bounds [0, ub] and a backward twin (identifier + "_REV") carries the negated
// stoichiometric column with bounds [0, -lb]. Exchange reactions stay
// reversible as-is. Twins are placed directly after their originals. Returns
// the number of reactions split.
func splitReversible(m *Model) int {
	n := len(m.Rxns)
	twin := make(map[int]int, n)

	for j := 0; j < n; j++ {
		if !m.Rev[j] || m.isExchange(j) {
			continue
		}

		k := m.dupRxn(j, m.Rxns[j]+RevSuffix)
		m.S.ScaleCol(k, -1)
		m.LB[k], m.UB[k] = 0, -m.LB[j]
		m.LB[j] = 0
		m.Rev[j], m.Rev[k] = false, false
		twin[j] = k
	}

	if len(twin) == 0 {
		return 0
	}

	// interleave so each twin follows its original
	perm := make([]int, 0, len(m.Rxns))
	for j := 0; j < n; j++ {
		perm = append(perm, j)
		if k, ok := twin[j]; ok {
			perm = append(perm, k)
		}
	}
	m.permuteRxns(perm)

	return len(twin)
}

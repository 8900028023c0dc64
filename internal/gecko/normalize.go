package gecko

// normalizeDirections rewrites reactions whose flux range is exclusively
// negative (lb < 0, ub == 0) to run in the positive direction, negating their
// stoichiometric column and mirroring their bounds. It then recomputes every
// reversibility flag: a reaction is reversible if its bounds span zero or if
// it is an exchange reaction (single non-zero coefficient).
func normalizeDirections(m *Model) {
	for j := range m.Rxns {
		if m.LB[j] < 0 && m.UB[j] == 0 {
			m.S.ScaleCol(j, -1)
			m.LB[j], m.UB[j] = 0, -m.LB[j]
		}
	}

	for j := range m.Rxns {
		m.Rev[j] = (m.LB[j] < 0 && m.UB[j] > 0) || m.isExchange(j)
	}
}

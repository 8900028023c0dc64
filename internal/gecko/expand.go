package gecko

import (
	"fmt"
	"sort"
)

// expandIsozymes duplicates every reaction whose GPR has a top-level OR, one
// physical copy per isoenzyme alternative. The original reaction slot becomes
// the first copy; copies are named identifier + "_EXP_<n>" (1-based) and each
// carries only its own alternative's AND clause as its GPR. Returns the
// number of reactions expanded. Full mode only; GPRs are assumed parseable
// (Check ran first).
func expandIsozymes(m *Model) int {
	n := len(m.Rxns)
	geneIdx := m.geneIndex()
	expanded := 0

	for j := 0; j < n; j++ {
		tree, err := parseGPR(m.GPRs[j])
		if err != nil || tree == nil {
			continue
		}
		alts := tree.alternatives()
		if len(alts) < 2 {
			continue
		}

		id := m.Rxns[j]
		for i, alt := range alts {
			name := fmt.Sprintf("%s%s%d", id, ExpSuffix, i+1)
			if i == 0 {
				m.Rxns[j] = name
				m.GPRs[j] = alt.ruleString()
				m.RxnGeneMat[j] = geneRow(alt, geneIdx)
				continue
			}
			k := m.dupRxn(j, name)
			m.GPRs[k] = alt.ruleString()
			m.RxnGeneMat[k] = geneRow(alt, geneIdx)
		}
		expanded++
	}

	return expanded
}

// geneRow builds a gene incidence row covering just the alternative's genes,
// so each expansion copy lists only the genes of its own GPR
func geneRow(alt *gprNode, geneIdx map[string]int) map[int]float64 {
	row := map[int]float64{}
	for _, g := range alt.genes() {
		if gi, ok := geneIdx[g]; ok {
			row[gi] = 1
		}
	}
	return row
}

// regroupSiblings stably reorders reactions so that all derivatives of one
// source reaction (isoenzyme copies and reverse twins) sit next to each
// other, at the position their base identifier first appears. Grouping
// convenience only; no downstream step depends on it.
func regroupSiblings(m *Model) {
	rank := make(map[string]int, len(m.Rxns))
	for _, id := range m.Rxns {
		base := baseRxnID(id)
		if _, ok := rank[base]; !ok {
			rank[base] = len(rank)
		}
	}

	perm := make([]int, len(m.Rxns))
	for j := range perm {
		perm[j] = j
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return rank[baseRxnID(m.Rxns[perm[a]])] < rank[baseRxnID(m.Rxns[perm[b]])]
	})

	m.permuteRxns(perm)
}

// Package gecko rebuilds a genome-scale metabolic model into an
// enzyme-constrained one: reaction directions are normalized, reversible
// reactions are split, isoenzyme-catalyzed reactions are expanded, and the
// model is annotated with an enzyme-constraint structure plus the protein
// pseudometabolites and usage reactions that later kcat/molecular-weight
// constraints attach to.
package gecko

import (
	"fmt"
	"strings"
)

// Reserved identifier grammar. Input models must not use these; see Check.
const (
	// ProtPrefix marks a protein pseudometabolite ("prot_P12345")
	ProtPrefix = "prot_"

	// PoolMet is the single protein pool metabolite
	PoolMet = "prot_pool"

	// UsagePrefix marks a per-enzyme usage reaction ("usage_prot_P12345")
	UsagePrefix = "usage_prot_"

	// PoolRxn is the exchange reaction supplying the protein pool
	PoolRxn = "prot_pool_exchange"

	// RevSuffix marks the backward twin of a split reversible reaction
	RevSuffix = "_REV"

	// ExpSuffix plus a 1-based index marks an isoenzyme expansion copy
	ExpSuffix = "_EXP_"
)

// Model is a stoichiometric genome-scale metabolic model. Slices indexed by
// reaction all have the same length, which equals the column count of S.
type Model struct {
	Rxns  []string
	Mets  []string
	Genes []string

	// S is the stoichiometric matrix, metabolites x reactions
	S *SpMat

	// LB and UB are the per-reaction flux bounds
	LB []float64
	UB []float64

	// Rev flags reversible reactions; recomputed during normalization
	Rev []bool

	// RxnGeneMat maps each reaction to the indices of its associated genes
	// with non-zero incidence
	RxnGeneMat []map[int]float64

	// GPRs holds the gene-protein-reaction boolean expression per reaction,
	// e.g. "G1 and G2 or G3"
	GPRs []string

	// Rules holds numeric-index gene rules ("x(1) | x(2)") as written by the
	// incompatible import path. Only populated by foreign model files; its
	// presence without GPRs is rejected by Check.
	Rules []string

	// EC is the enzyme-constraint structure, attached by MakeECModel
	EC *EnzymeConstraints
}

// check verifies that the model's parallel slices and matrix dimensions agree
// and that identifiers are unique.
func (m *Model) check() error {
	if m.S == nil {
		return fmt.Errorf("model has no stoichiometric matrix")
	}
	rows, cols := m.S.Dims()
	if rows != len(m.Mets) {
		return fmt.Errorf("S has %d rows but model has %d metabolites", rows, len(m.Mets))
	}
	if cols != len(m.Rxns) {
		return fmt.Errorf("S has %d columns but model has %d reactions", cols, len(m.Rxns))
	}
	if len(m.LB) != len(m.Rxns) || len(m.UB) != len(m.Rxns) {
		return fmt.Errorf("bounds length (%d, %d) does not match reaction count %d", len(m.LB), len(m.UB), len(m.Rxns))
	}
	if len(m.Rev) != len(m.Rxns) {
		return fmt.Errorf("reversibility flag length %d does not match reaction count %d", len(m.Rev), len(m.Rxns))
	}
	if len(m.GPRs) != len(m.Rxns) {
		return fmt.Errorf("GPR length %d does not match reaction count %d", len(m.GPRs), len(m.Rxns))
	}
	if len(m.RxnGeneMat) != len(m.Rxns) {
		return fmt.Errorf("gene incidence length %d does not match reaction count %d", len(m.RxnGeneMat), len(m.Rxns))
	}

	for name, ids := range map[string][]string{"reaction": m.Rxns, "metabolite": m.Mets, "gene": m.Genes} {
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if seen[id] {
				return fmt.Errorf("duplicate %s identifier %q", name, id)
			}
			seen[id] = true
		}
	}

	return nil
}

// isExchange reports whether reaction j has exactly one non-zero
// stoichiometric coefficient
func (m *Model) isExchange(j int) bool {
	return m.S.NonZeros(j) == 1
}

// geneAssociated reports whether reaction j carries a GPR
func (m *Model) geneAssociated(j int) bool {
	return strings.TrimSpace(m.GPRs[j]) != ""
}

// addMet appends a metabolite, growing S by one row, and returns its index
func (m *Model) addMet(id string) int {
	m.Mets = append(m.Mets, id)
	return m.S.AppendRow()
}

// addRxn appends a reaction with the given stoichiometric column and returns
// its index
func (m *Model) addRxn(id string, col map[int]float64, lb, ub float64, rev bool, gpr string) int {
	j := m.S.AppendCol(col)
	m.Rxns = append(m.Rxns, id)
	m.LB = append(m.LB, lb)
	m.UB = append(m.UB, ub)
	m.Rev = append(m.Rev, rev)
	m.GPRs = append(m.GPRs, gpr)
	m.RxnGeneMat = append(m.RxnGeneMat, map[int]float64{})
	if m.Rules != nil {
		m.Rules = append(m.Rules, "")
	}
	return j
}

// dupRxn appends a copy of reaction j under a new identifier and returns the
// copy's index. The stoichiometric column, bounds, flags, GPR, and gene
// incidence are all duplicated.
func (m *Model) dupRxn(j int, id string) int {
	k := m.addRxn(id, m.S.Col(j), m.LB[j], m.UB[j], m.Rev[j], m.GPRs[j])
	genes := make(map[int]float64, len(m.RxnGeneMat[j]))
	for g, v := range m.RxnGeneMat[j] {
		genes[g] = v
	}
	m.RxnGeneMat[k] = genes
	return k
}

// permuteRxns reorders reactions so that position k holds what was at
// perm[k]. perm must be a permutation of the reaction indices.
func (m *Model) permuteRxns(perm []int) {
	m.Rxns = permuteStrings(m.Rxns, perm)
	m.GPRs = permuteStrings(m.GPRs, perm)
	if len(m.Rules) == len(perm) {
		m.Rules = permuteStrings(m.Rules, perm)
	}
	m.LB = permuteFloats(m.LB, perm)
	m.UB = permuteFloats(m.UB, perm)

	rev := make([]bool, len(perm))
	genes := make([]map[int]float64, len(perm))
	for k, p := range perm {
		rev[k] = m.Rev[p]
		genes[k] = m.RxnGeneMat[p]
	}
	m.Rev = rev
	m.RxnGeneMat = genes

	m.S.PermuteCols(perm)
}

func permuteStrings(s []string, perm []int) []string {
	out := make([]string, len(perm))
	for k, p := range perm {
		out[k] = s[p]
	}
	return out
}

func permuteFloats(s []float64, perm []int) []float64 {
	out := make([]float64, len(perm))
	for k, p := range perm {
		out[k] = s[p]
	}
	return out
}

// geneIndex returns a map from gene identifier to index
func (m *Model) geneIndex() map[string]int {
	idx := make(map[string]int, len(m.Genes))
	for i, id := range m.Genes {
		idx[id] = i
	}
	return idx
}

// baseRxnID strips the expansion and reverse suffixes so that all reactions
// derived from one source reaction share a base identifier
func baseRxnID(id string) string {
	if i := strings.Index(id, ExpSuffix); i >= 0 {
		id = id[:i]
	}
	return strings.TrimSuffix(id, RevSuffix)
}

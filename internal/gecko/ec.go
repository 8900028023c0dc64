package gecko

import (
	"fmt"
	"math"
)

// Mode selects the structural variant of the enzyme-constraint rebuild
type Mode int

const (
	// ModeFull physically expands isoenzyme reactions and creates one
	// pseudometabolite and usage reaction per enzyme
	ModeFull Mode = iota

	// ModeLight keeps the original reactions and fans the enzyme-constraint
	// metadata out per isoenzyme instead
	ModeLight
)

func (m Mode) String() string {
	if m == ModeLight {
		return "light"
	}
	return "full"
}

// EnzymeConstraints is the enzyme-constraint structure attached to a rebuilt
// model. The first block of slices is indexed by ec-entry (one reaction/
// isoenzyme pairing), the second by enzyme. All branching on the variant goes
// through Mode, never through field presence.
type EnzymeConstraints struct {
	Mode Mode

	// per ec-entry; equal lengths
	Rxns    []string  // source reaction id; light mode prefixes "%03d_"
	Kcats   []float64 // zero until assigned downstream
	Sources []string
	Notes   []string
	ECCodes []string
	Concs   []float64 // NaN until measured

	// per enzyme; equal lengths
	Genes     []string
	Enzymes   []string
	MWs       []float64
	Sequences []string
	EnzConcs  []float64 // NaN until measured

	// RxnEnzMat maps each ec-entry to enzyme index -> subunit stoichiometry
	RxnEnzMat []map[int]int

	refs []ecRef
}

// ecRef ties an ec-entry back to its reaction and isoenzyme ordinal
type ecRef struct {
	rxn int
	alt int
}

// Entries returns the ec-entry count
func (ec *EnzymeConstraints) Entries() int {
	return len(ec.Rxns)
}

// buildEC creates the enzyme-constraint record for every gene-associated
// reaction. Full mode emits one entry per (already expanded) reaction. Light
// mode emits one entry per isoenzyme alternative of the unexpanded reaction,
// each named with a zero-padded ordinal prefix ("001_R1"); the ordinal widens
// past three digits, so entry names stay unique at any isozyme count.
func buildEC(m *Model, mode Mode) *EnzymeConstraints {
	var refs []ecRef
	for j := range m.Rxns {
		if !m.geneAssociated(j) {
			continue
		}
		if mode == ModeFull {
			refs = append(refs, ecRef{rxn: j})
			continue
		}
		tree, err := parseGPR(m.GPRs[j])
		if err != nil || tree == nil {
			continue
		}
		for i := range tree.alternatives() {
			refs = append(refs, ecRef{rxn: j, alt: i})
		}
	}

	n := len(refs)
	ec := &EnzymeConstraints{
		Mode:      mode,
		Rxns:      make([]string, n),
		Kcats:     make([]float64, n),
		Sources:   make([]string, n),
		Notes:     make([]string, n),
		ECCodes:   make([]string, n),
		Concs:     make([]float64, n),
		RxnEnzMat: make([]map[int]int, n),
		refs:      refs,
	}
	for i, ref := range refs {
		if mode == ModeFull {
			ec.Rxns[i] = m.Rxns[ref.rxn]
		} else {
			ec.Rxns[i] = fmt.Sprintf("%03d_%s", ref.alt+1, m.Rxns[ref.rxn])
		}
		ec.Concs[i] = math.NaN()
		ec.RxnEnzMat[i] = map[int]int{}
	}

	return ec
}

// populateIncidence fills the reaction x enzyme incidence matrix: for each
// ec-entry, the genes of its governing AND clause get unit subunit
// stoichiometry at their enzyme's column. Genes without a resolved enzyme
// stay zero.
func populateIncidence(m *Model, ec *EnzymeConstraints) {
	enzOf := make(map[string]int, len(ec.Genes))
	for e, g := range ec.Genes {
		enzOf[g] = e
	}

	for i, ref := range ec.refs {
		tree, err := parseGPR(m.GPRs[ref.rxn])
		if err != nil || tree == nil {
			continue
		}
		alts := tree.alternatives()
		if ref.alt >= len(alts) {
			continue
		}
		for _, gene := range alts[ref.alt].genes() {
			if e, ok := enzOf[gene]; ok {
				ec.RxnEnzMat[i][e] = 1
			}
		}
	}
}

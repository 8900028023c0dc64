package gecko

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
)

// jsonModel is the on-disk model layout: COBRA-style JSON with an optional
// enzyme_constraints section appended by WriteModel
type jsonModel struct {
	Reactions   []jsonReaction   `json:"reactions"`
	Metabolites []jsonMetabolite `json:"metabolites"`
	Genes       []jsonGene       `json:"genes"`
	EC          *jsonEC          `json:"enzyme_constraints,omitempty"`
}

type jsonReaction struct {
	ID          string             `json:"id"`
	Metabolites map[string]float64 `json:"metabolites"`

	// nil bounds mean unbounded in that direction
	LowerBound *float64 `json:"lower_bound,omitempty"`
	UpperBound *float64 `json:"upper_bound,omitempty"`

	GPR string `json:"gene_reaction_rule,omitempty"`

	// Rule is the numeric-index gene rule ("x(1) | x(2)") written by the
	// incompatible import path; Check rejects models that carry it
	Rule string `json:"rule,omitempty"`
}

type jsonMetabolite struct {
	ID string `json:"id"`
}

type jsonGene struct {
	ID string `json:"id"`
}

type jsonEC struct {
	Mode      string           `json:"mode"`
	Rxns      []string         `json:"rxns"`
	Kcats     []float64        `json:"kcats"`
	Sources   []string         `json:"sources"`
	Notes     []string         `json:"notes"`
	ECCodes   []string         `json:"eccodes"`
	Concs     []*float64       `json:"concs"`
	Genes     []string         `json:"genes"`
	Enzymes   []string         `json:"enzymes"`
	MWs       []float64        `json:"mws"`
	Sequences []string         `json:"sequences"`
	EnzConcs  []*float64       `json:"enzConcs"`
	RxnEnzMat []map[string]int `json:"rxnEnzMat"`
}

// ReadModel loads a model from a JSON file
func ReadModel(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := decodeModel(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return m, nil
}

// decodeModel builds a Model from JSON model data
func decodeModel(r io.Reader) (*Model, error) {
	var jm jsonModel
	if err := json.NewDecoder(r).Decode(&jm); err != nil {
		return nil, err
	}

	m := &Model{
		Mets:  make([]string, len(jm.Metabolites)),
		Genes: make([]string, len(jm.Genes)),
	}
	metIdx := make(map[string]int, len(jm.Metabolites))
	for i, met := range jm.Metabolites {
		m.Mets[i] = met.ID
		metIdx[met.ID] = i
	}
	for i, g := range jm.Genes {
		m.Genes[i] = g.ID
	}
	geneIdx := m.geneIndex()

	m.S = NewSpMat(len(m.Mets), 0)
	hasRules := false
	for _, rxn := range jm.Reactions {
		col := make(map[int]float64, len(rxn.Metabolites))
		for id, coeff := range rxn.Metabolites {
			i, ok := metIdx[id]
			if !ok {
				return nil, fmt.Errorf("reaction %s references unknown metabolite %q", rxn.ID, id)
			}
			col[i] = coeff
		}

		lb, ub := math.Inf(-1), math.Inf(1)
		if rxn.LowerBound != nil {
			lb = *rxn.LowerBound
		}
		if rxn.UpperBound != nil {
			ub = *rxn.UpperBound
		}

		j := m.addRxn(rxn.ID, col, lb, ub, lb < 0 && ub > 0, rxn.GPR)

		if tree, err := parseGPR(rxn.GPR); err == nil {
			for _, gene := range tree.genes() {
				if g, ok := geneIdx[gene]; ok {
					m.RxnGeneMat[j][g] = 1
				}
			}
		}
		if rxn.Rule != "" {
			hasRules = true
		}
	}
	if hasRules {
		m.Rules = make([]string, len(jm.Reactions))
		for j, rxn := range jm.Reactions {
			m.Rules[j] = rxn.Rule
		}
	}

	return m, nil
}

// WriteModel writes a model, including its enzyme-constraint structure if
// present, to a JSON file
func WriteModel(path string, m *Model) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return encodeModel(f, m)
}

// encodeModel writes a model as JSON model data
func encodeModel(w io.Writer, m *Model) error {
	jm := jsonModel{
		Reactions:   make([]jsonReaction, len(m.Rxns)),
		Metabolites: make([]jsonMetabolite, len(m.Mets)),
		Genes:       make([]jsonGene, len(m.Genes)),
	}
	for i, id := range m.Mets {
		jm.Metabolites[i] = jsonMetabolite{ID: id}
	}
	for i, id := range m.Genes {
		jm.Genes[i] = jsonGene{ID: id}
	}
	for j, id := range m.Rxns {
		mets := make(map[string]float64, m.S.NonZeros(j))
		for i, v := range m.S.Col(j) {
			mets[m.Mets[i]] = v
		}
		rxn := jsonReaction{ID: id, Metabolites: mets, GPR: m.GPRs[j]}
		if !math.IsInf(m.LB[j], -1) {
			lb := m.LB[j]
			rxn.LowerBound = &lb
		}
		if !math.IsInf(m.UB[j], 1) {
			ub := m.UB[j]
			rxn.UpperBound = &ub
		}
		jm.Reactions[j] = rxn
	}

	if ec := m.EC; ec != nil {
		jec := &jsonEC{
			Mode:      ec.Mode.String(),
			Rxns:      ec.Rxns,
			Kcats:     ec.Kcats,
			Sources:   ec.Sources,
			Notes:     ec.Notes,
			ECCodes:   ec.ECCodes,
			Concs:     floatsOrNull(ec.Concs),
			Genes:     ec.Genes,
			Enzymes:   ec.Enzymes,
			MWs:       ec.MWs,
			Sequences: ec.Sequences,
			EnzConcs:  floatsOrNull(ec.EnzConcs),
			RxnEnzMat: make([]map[string]int, len(ec.RxnEnzMat)),
		}
		for i, row := range ec.RxnEnzMat {
			named := make(map[string]int, len(row))
			for e, coeff := range row {
				named[ec.Enzymes[e]] = coeff
			}
			jec.RxnEnzMat[i] = named
		}
		jm.EC = jec
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jm)
}

// floatsOrNull maps NaN (unset) values to JSON null
func floatsOrNull(vals []float64) []*float64 {
	out := make([]*float64, len(vals))
	for i := range vals {
		if !math.IsNaN(vals[i]) {
			v := vals[i]
			out[i] = &v
		}
	}
	return out
}

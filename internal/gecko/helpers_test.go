package gecko

// test fixtures shared across the package's tests

// rxnSpec is a compact reaction description for building test models
type rxnSpec struct {
	id   string
	mets map[string]float64
	lb   float64
	ub   float64
	gpr  string
}

// buildTestModel assembles a Model from identifier lists and reaction specs.
// Reversibility flags start as lb < 0 && ub > 0, the way the JSON reader
// leaves them before normalization.
func buildTestModel(mets, genes []string, rxns []rxnSpec) *Model {
	m := &Model{
		Mets:  append([]string{}, mets...),
		Genes: append([]string{}, genes...),
		S:     NewSpMat(len(mets), 0),
	}

	metIdx := make(map[string]int, len(mets))
	for i, id := range mets {
		metIdx[id] = i
	}
	geneIdx := m.geneIndex()

	for _, r := range rxns {
		col := make(map[int]float64, len(r.mets))
		for id, v := range r.mets {
			col[metIdx[id]] = v
		}
		j := m.addRxn(r.id, col, r.lb, r.ub, r.lb < 0 && r.ub > 0, r.gpr)
		if tree, err := parseGPR(r.gpr); err == nil {
			for _, g := range tree.genes() {
				if gi, ok := geneIdx[g]; ok {
					m.RxnGeneMat[j][gi] = 1
				}
			}
		}
	}

	return m
}

// testProteinDB returns a table resolving G1..G3 to P1..P3
func testProteinDB() *ProteinDB {
	db := NewProteinDB()
	db.Set("G1", ProteinRecord{Enzyme: "P1", MW: 45000, Sequence: "MKT"})
	db.Set("G2", ProteinRecord{Enzyme: "P2", MW: 52000, Sequence: "MEN"})
	db.Set("G3", ProteinRecord{Enzyme: "P3", MW: 38000, Sequence: "MAD"})
	return db
}

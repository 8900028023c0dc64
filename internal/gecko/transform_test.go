package gecko

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioModel is the reference network: R1 catalyzed by either of two
// isoenzymes, R2 with no gene association
func scenarioModel() *Model {
	return buildTestModel(
		[]string{"A", "B"},
		[]string{"G1", "G2"},
		[]rxnSpec{
			{id: "R1", mets: map[string]float64{"A": -1, "B": 1}, lb: 0, ub: 10, gpr: "G1 or G2"},
			{id: "R2", mets: map[string]float64{"A": -1, "B": 1}, lb: 0, ub: 10},
		},
	)
}

func TestMakeECModel_full(t *testing.T) {
	m := scenarioModel()

	report, err := MakeECModel(m, Options{Mode: ModeFull, DB: testProteinDB()})
	require.NoError(t, err)

	// two physical copies derived from R1, none from R2, plus the injected
	// usage and pool reactions
	assert.Equal(t, []string{
		"R1_EXP_1", "R1_EXP_2", "R2",
		"usage_prot_P1", "usage_prot_P2", PoolRxn,
	}, m.Rxns)
	assert.Equal(t, []string{"A", "B", PoolMet, "prot_P1", "prot_P2"}, m.Mets)

	require.NotNil(t, m.EC)
	assert.Equal(t, ModeFull, m.EC.Mode)
	assert.Equal(t, []string{"R1_EXP_1", "R1_EXP_2"}, m.EC.Rxns)
	assert.Equal(t, []string{"P1", "P2"}, m.EC.Enzymes)

	// incidence is identity-like: G1 -> entry 1, G2 -> entry 2
	require.Len(t, m.EC.RxnEnzMat, 2)
	assert.Equal(t, map[int]int{0: 1}, m.EC.RxnEnzMat[0])
	assert.Equal(t, map[int]int{1: 1}, m.EC.RxnEnzMat[1])

	assert.Equal(t, 1, report.Expanded)
	assert.Equal(t, 2, report.ECEntries)
	assert.Equal(t, 2, report.Enzymes)
	assert.Zero(t, report.MissingGenes)
}

func TestMakeECModel_light(t *testing.T) {
	m := scenarioModel()

	report, err := MakeECModel(m, Options{Mode: ModeLight, DB: testProteinDB()})
	require.NoError(t, err)

	// R1 stays one physical reaction; the ec metadata fans out instead
	assert.Equal(t, []string{"R1", "R2", PoolRxn}, m.Rxns)
	assert.Equal(t, []string{"A", "B", PoolMet}, m.Mets)

	require.NotNil(t, m.EC)
	assert.Equal(t, ModeLight, m.EC.Mode)
	assert.Equal(t, []string{"001_R1", "002_R1"}, m.EC.Rxns)
	assert.Equal(t, map[int]int{0: 1}, m.EC.RxnEnzMat[0])
	assert.Equal(t, map[int]int{1: 1}, m.EC.RxnEnzMat[1])

	assert.Zero(t, report.Expanded)
	assert.Equal(t, 2, report.ECEntries)
}

func TestMakeECModel_secondRunRejected(t *testing.T) {
	m := scenarioModel()

	_, err := MakeECModel(m, Options{Mode: ModeFull, DB: testProteinDB()})
	require.NoError(t, err)

	_, err = MakeECModel(m, Options{Mode: ModeFull, DB: testProteinDB()})
	assert.True(t, errors.Is(err, ErrPrecondition), "second run error = %v", err)
}

func TestMakeECModel_missingGenes(t *testing.T) {
	m := scenarioModel()
	db := NewProteinDB()
	db.Set("G1", ProteinRecord{Enzyme: "P1", MW: 45000})

	report, err := MakeECModel(m, Options{Mode: ModeFull, DB: db})
	require.NoError(t, err)

	// G2 is dropped from the enzyme arrays but stays in the model
	assert.Equal(t, 1, report.MissingGenes)
	assert.Equal(t, []string{"P1"}, m.EC.Enzymes)
	assert.Equal(t, []string{"G1", "G2"}, m.Genes)

	// the unresolved isoenzyme's entry has an all-zero incidence row
	assert.Equal(t, map[int]int{0: 1}, m.EC.RxnEnzMat[0])
	assert.Empty(t, m.EC.RxnEnzMat[1])
}

func TestMakeECModel_keyTransform(t *testing.T) {
	m := buildTestModel(
		[]string{"A", "B"},
		[]string{"G1.1"},
		[]rxnSpec{
			{id: "R1", mets: map[string]float64{"A": -1, "B": 1}, lb: 0, ub: 10, gpr: "G1.1"},
		},
	)

	report, err := MakeECModel(m, Options{
		Mode:    ModeFull,
		DB:      testProteinDB(),
		Adapter: Adapter{KeyFunc: TrimSuffixKey(".")},
	})
	require.NoError(t, err)

	assert.Zero(t, report.MissingGenes)
	// the model gene id, not the database key, lands in the enzyme arrays
	assert.Equal(t, []string{"G1.1"}, m.EC.Genes)
	assert.Equal(t, []string{"P1"}, m.EC.Enzymes)
}

func TestMakeECModel_requiresDB(t *testing.T) {
	m := scenarioModel()

	_, err := MakeECModel(m, Options{Mode: ModeFull})
	assert.True(t, errors.Is(err, ErrPrecondition))
}

func TestMakeECModel_fatalLeavesModelUntouched(t *testing.T) {
	m := buildTestModel(
		[]string{"A", "B"},
		nil,
		[]rxnSpec{
			{id: "R1_REV", mets: map[string]float64{"A": -1, "B": 1}, lb: -5, ub: 5},
		},
	)

	_, err := MakeECModel(m, Options{Mode: ModeFull, DB: testProteinDB()})
	require.Error(t, err)

	// nothing was normalized, split, or injected
	assert.Equal(t, []string{"R1_REV"}, m.Rxns)
	assert.Equal(t, []string{"A", "B"}, m.Mets)
	assert.Equal(t, -5.0, m.LB[0])
	assert.Nil(t, m.EC)
}

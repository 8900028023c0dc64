package gecko

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modelJSON = `{
	"metabolites": [{"id": "A"}, {"id": "B"}],
	"genes": [{"id": "G1"}, {"id": "G2"}],
	"reactions": [
		{
			"id": "R1",
			"metabolites": {"A": -1, "B": 1},
			"lower_bound": -10,
			"upper_bound": 10,
			"gene_reaction_rule": "G1 or G2"
		},
		{
			"id": "EX_B",
			"metabolites": {"B": -1},
			"lower_bound": 0
		}
	]
}`

func Test_decodeModel(t *testing.T) {
	m, err := decodeModel(strings.NewReader(modelJSON))
	require.NoError(t, err)

	assert.Equal(t, []string{"R1", "EX_B"}, m.Rxns)
	assert.Equal(t, []string{"A", "B"}, m.Mets)
	assert.Equal(t, []string{"G1", "G2"}, m.Genes)

	assert.Equal(t, -1.0, m.S.At(0, 0))
	assert.Equal(t, 1.0, m.S.At(1, 0))
	assert.Equal(t, -10.0, m.LB[0])
	assert.True(t, m.Rev[0])
	assert.Equal(t, "G1 or G2", m.GPRs[0])

	// gene incidence comes from the parsed rule
	assert.Equal(t, map[int]float64{0: 1, 1: 1}, m.RxnGeneMat[0])

	// an omitted upper bound is open
	assert.Equal(t, 0.0, m.LB[1])
	assert.True(t, math.IsInf(m.UB[1], 1))

	assert.Nil(t, m.Rules)
}

func Test_decodeModel_unknownMetabolite(t *testing.T) {
	bad := `{"metabolites": [{"id": "A"}], "genes": [],
		"reactions": [{"id": "R1", "metabolites": {"Z": -1}}]}`

	_, err := decodeModel(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown metabolite")
}

func Test_decodeModel_foreignRules(t *testing.T) {
	foreign := `{"metabolites": [{"id": "A"}], "genes": [{"id": "G1"}],
		"reactions": [{"id": "R1", "metabolites": {"A": -1}, "rule": "x(1) | x(2)"}]}`

	m, err := decodeModel(strings.NewReader(foreign))
	require.NoError(t, err)
	require.NotNil(t, m.Rules)
	assert.Equal(t, "x(1) | x(2)", m.Rules[0])

	// the incompatible import path is caught by validation, not the reader
	assert.Error(t, Check(m, nil))
}

func Test_encodeModel_roundTrip(t *testing.T) {
	m, err := decodeModel(strings.NewReader(modelJSON))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, encodeModel(&buf, m))

	back, err := decodeModel(&buf)
	require.NoError(t, err)

	assert.Equal(t, m.Rxns, back.Rxns)
	assert.Equal(t, m.Mets, back.Mets)
	assert.Equal(t, m.Genes, back.Genes)
	assert.Equal(t, m.LB, back.LB)
	assert.Equal(t, m.UB, back.UB)
	assert.Equal(t, m.GPRs, back.GPRs)
	for j := range m.Rxns {
		assert.Equal(t, m.S.Col(j), back.S.Col(j), "column %d", j)
	}
}

func Test_encodeModel_enzymeConstraints(t *testing.T) {
	m := scenarioModel()
	_, err := MakeECModel(m, Options{Mode: ModeFull, DB: testProteinDB()})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, encodeModel(&buf, m))

	// unset concentrations encode as null, incidence rows carry enzyme ids
	var out struct {
		EC struct {
			Mode      string           `json:"mode"`
			Rxns      []string         `json:"rxns"`
			Concs     []*float64       `json:"concs"`
			RxnEnzMat []map[string]int `json:"rxnEnzMat"`
		} `json:"enzyme_constraints"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "full", out.EC.Mode)
	assert.Equal(t, []string{"R1_EXP_1", "R1_EXP_2"}, out.EC.Rxns)
	require.Len(t, out.EC.Concs, 2)
	assert.Nil(t, out.EC.Concs[0])
	assert.Equal(t, map[string]int{"P1": 1}, out.EC.RxnEnzMat[0])
	assert.Equal(t, map[string]int{"P2": 1}, out.EC.RxnEnzMat[1])
}

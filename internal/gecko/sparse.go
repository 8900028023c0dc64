package gecko

// SpMat is a column-major sparse matrix. Genome-scale stoichiometric matrices
// are under 1% filled and the transformation grows them one reaction column
// (or metabolite row) at a time, so each column is its own map from row index
// to coefficient.
type SpMat struct {
	rows int
	cols []map[int]float64
}

// NewSpMat returns an empty rows x cols matrix
func NewSpMat(rows, cols int) *SpMat {
	m := &SpMat{rows: rows, cols: make([]map[int]float64, cols)}
	for j := range m.cols {
		m.cols[j] = map[int]float64{}
	}
	return m
}

// Dims returns the row and column counts
func (m *SpMat) Dims() (rows, cols int) {
	return m.rows, len(m.cols)
}

// At returns the coefficient at row i, column j
func (m *SpMat) At(i, j int) float64 {
	return m.cols[j][i]
}

// Set stores v at row i, column j, deleting the entry when v is zero
func (m *SpMat) Set(i, j int, v float64) {
	if i < 0 || i >= m.rows {
		panic("gecko: sparse matrix row out of range")
	}
	if v == 0 {
		delete(m.cols[j], i)
		return
	}
	m.cols[j][i] = v
}

// NonZeros returns the number of non-zero entries in column j
func (m *SpMat) NonZeros(j int) int {
	return len(m.cols[j])
}

// Col returns a copy of column j's non-zero entries
func (m *SpMat) Col(j int) map[int]float64 {
	col := make(map[int]float64, len(m.cols[j]))
	for i, v := range m.cols[j] {
		col[i] = v
	}
	return col
}

// ScaleCol multiplies every entry of column j by f
func (m *SpMat) ScaleCol(j int, f float64) {
	if f == 0 {
		m.cols[j] = map[int]float64{}
		return
	}
	for i, v := range m.cols[j] {
		m.cols[j][i] = v * f
	}
}

// AppendCol adds a column holding the given entries and returns its index.
// A nil col appends an empty column.
func (m *SpMat) AppendCol(col map[int]float64) int {
	c := make(map[int]float64, len(col))
	for i, v := range col {
		if i < 0 || i >= m.rows {
			panic("gecko: sparse matrix row out of range")
		}
		if v != 0 {
			c[i] = v
		}
	}
	m.cols = append(m.cols, c)
	return len(m.cols) - 1
}

// AppendRow grows the matrix by one empty row and returns the new row index
func (m *SpMat) AppendRow() int {
	m.rows++
	return m.rows - 1
}

// PermuteCols reorders columns so that position k holds what was at perm[k]
func (m *SpMat) PermuteCols(perm []int) {
	cols := make([]map[int]float64, len(perm))
	for k, p := range perm {
		cols[k] = m.cols[p]
	}
	m.cols = cols
}

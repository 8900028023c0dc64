package gecko

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadProteinDB(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "proteins.tsv")
	data := "# key\tenzyme\tmw\tsequence\n" +
		"G1\tP12345\t45120.5\tMKTAYIAKQR\n" +
		"G2\tP67890\t52010\n" +
		"\n" +
		"G3\tQ00001\t38000\tMADEUP\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	db, err := LoadProteinDB(path)
	require.NoError(t, err)

	assert.Equal(t, 3, db.Len())
	assert.Equal(t, []string{"G1", "G2", "G3"}, db.Keys())

	rec, ok := db.Get("G1")
	require.True(t, ok)
	assert.Equal(t, "P12345", rec.Enzyme)
	assert.Equal(t, 45120.5, rec.MW)
	assert.Equal(t, "MKTAYIAKQR", rec.Sequence)

	rec, _ = db.Get("G2")
	assert.Empty(t, rec.Sequence)
}

func Test_LoadProteinDB_badRow(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data string
		want string
	}{
		{
			"too few columns",
			"G1\tP12345\n",
			"3 tab-separated columns",
		},
		{
			"unparseable molecular weight",
			"G1\tP12345\theavy\n",
			"bad molecular weight",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".tsv")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))

			_, err := LoadProteinDB(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestProteinDB_LoadFasta(t *testing.T) {
	db := NewProteinDB()
	db.Set("G1", ProteinRecord{Enzyme: "P1", MW: 45000})
	db.Set("G2", ProteinRecord{Enzyme: "P2", MW: 52000})

	fasta := ">G1 some description\nMKTAYI\nAKQR\n>G9 unknown key\nMMMM\n"
	merged, err := db.LoadFasta(strings.NewReader(fasta))
	require.NoError(t, err)

	assert.Equal(t, 1, merged)
	rec, _ := db.Get("G1")
	assert.Equal(t, "MKTAYIAKQR", rec.Sequence)
	rec, _ = db.Get("G2")
	assert.Empty(t, rec.Sequence)
}

func TestProteinDB_LoadFasta_emptyHeader(t *testing.T) {
	tests := []struct {
		name  string
		fasta string
	}{
		{
			"bare header marker",
			">\nMKTAYI\n>G1 ok\nAKQR\n",
		},
		{
			"whitespace-only header",
			">   \nMKTAYI\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := NewProteinDB()
			db.Set("G1", ProteinRecord{Enzyme: "P1", MW: 45000})

			_, err := db.LoadFasta(strings.NewReader(tt.fasta))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "header has no identifier")
		})
	}
}

func TestProteinDB_Lookup(t *testing.T) {
	db := testProteinDB()

	matches := db.Lookup([]string{"G2", "G9", "G1"})
	require.Len(t, matches, 3)

	assert.True(t, matches[0].Found)
	assert.Equal(t, "P2", matches[0].Enzyme)
	assert.Equal(t, 52000.0, matches[0].MW)

	assert.False(t, matches[1].Found)

	assert.True(t, matches[2].Found)
	assert.Equal(t, "P1", matches[2].Enzyme)
}

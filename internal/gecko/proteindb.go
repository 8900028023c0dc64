package gecko

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ProteinMatch is one lookup result: whether the key was found and, if so,
// the enzyme identifier, molecular weight, and amino-acid sequence
type ProteinMatch struct {
	Found    bool
	Enzyme   string
	MW       float64
	Sequence string
}

// ProteinLookup resolves gene-derived keys against a protein database. The
// slice returned is parallel to keys.
type ProteinLookup interface {
	Lookup(keys []string) []ProteinMatch
}

// ProteinRecord is one protein database row
type ProteinRecord struct {
	Enzyme   string
	MW       float64
	Sequence string
}

// ProteinDB is an in-memory, exact-match protein table keyed by
// database-compatible gene keys
type ProteinDB struct {
	records map[string]ProteinRecord
}

// NewProteinDB returns an empty protein table
func NewProteinDB() *ProteinDB {
	return &ProteinDB{records: make(map[string]ProteinRecord)}
}

// LoadProteinDB reads a tab-separated protein table:
//
//	<key>	<enzyme>	<molecular weight>[	<sequence>]
//
// Blank lines and lines starting with '#' are skipped.
func LoadProteinDB(path string) (*ProteinDB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	db := NewProteinDB()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024) // sequences can be long
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) < 3 {
			return nil, fmt.Errorf("%s:%d: expected at least 3 tab-separated columns, got %d", path, lineNo, len(cols))
		}
		mw, err := strconv.ParseFloat(cols[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad molecular weight %q: %v", path, lineNo, cols[2], err)
		}

		rec := ProteinRecord{Enzyme: cols[1], MW: mw}
		if len(cols) > 3 {
			rec.Sequence = cols[3]
		}
		db.records[cols[0]] = rec
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return db, nil
}

// LoadFasta merges amino-acid sequences from FASTA data into existing
// records, matching the first word of each header against the table keys.
// Returns the number of records that gained a sequence.
func (db *ProteinDB) LoadFasta(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	merged := 0
	key := ""
	var seq strings.Builder
	flush := func() {
		if key == "" || seq.Len() == 0 {
			return
		}
		if rec, ok := db.records[key]; ok {
			rec.Sequence = seq.String()
			db.records[key] = rec
			merged++
		}
	}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return merged, fmt.Errorf("fasta line %d: header has no identifier", lineNo)
			}
			flush()
			key = fields[0]
			seq.Reset()
			continue
		}
		seq.WriteString(line)
	}
	flush()
	if err := scanner.Err(); err != nil {
		return merged, err
	}

	return merged, nil
}

// Set adds or replaces a record
func (db *ProteinDB) Set(key string, rec ProteinRecord) {
	db.records[key] = rec
}

// Get returns the record for a key
func (db *ProteinDB) Get(key string) (ProteinRecord, bool) {
	rec, ok := db.records[key]
	return rec, ok
}

// Len returns the number of records
func (db *ProteinDB) Len() int {
	return len(db.records)
}

// Keys returns the table's keys in sorted order
func (db *ProteinDB) Keys() []string {
	keys := make([]string, 0, len(db.records))
	for k := range db.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup resolves each key by exact match
func (db *ProteinDB) Lookup(keys []string) []ProteinMatch {
	out := make([]ProteinMatch, len(keys))
	for i, k := range keys {
		if rec, ok := db.records[k]; ok {
			out[i] = ProteinMatch{Found: true, Enzyme: rec.Enzyme, MW: rec.MW, Sequence: rec.Sequence}
		}
	}
	return out
}

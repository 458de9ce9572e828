// Package gctable provides genetic code tables describing codon
// degeneracy: for every amino acid (and the stop signal) the ordered
// list of codons encoding it.
//
// Tables are immutable once constructed and may be shared between
// goroutines. They are obtained from a Provider keyed by the NCBI
// genetic code id.
package gctable

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/op/go-logging"

	"github.com/codonmark/codonmark/bio"
	"github.com/codonmark/codonmark/errs"
)

// log is the global logging variable.
var log = logging.MustGetLogger("gctable")

const (
	// MetKey is the amino acid key of methionine.
	MetKey = "met"
	// StopKey is the key of the stop signal.
	StopKey = "stop"
)

// AminoAcid is a table entry.
type AminoAcid struct {
	// Key is the three letter lower case code, e.g. "ala" or "stop".
	Key    string   `json:"-"`
	Name   string   `json:"name"`
	Symbol string   `json:"symbol"`
	Codons []string `json:"codons"`
}

// Degeneracy is the number of codons encoding the amino acid.
func (aa *AminoAcid) Degeneracy() int {
	return len(aa.Codons)
}

// IsMet tests if the entry is methionine.
func (aa *AminoAcid) IsMet() bool {
	return aa.Key == MetKey
}

// IsStop tests if the entry is the stop signal.
func (aa *AminoAcid) IsStop() bool {
	return aa.Key == StopKey
}

// Table is a genetic code table.
type Table struct {
	ID   int
	Name string

	aas     []*AminoAcid
	byKey   map[string]*AminoAcid
	byCodon [bio.NCodons]*AminoAcid
}

// NewTable creates a table from amino acid entries. Codons are upper
// cased, their order within every entry is kept. The codon lists must
// partition the 64 codons, otherwise an Unresolvable error is
// returned.
func NewTable(id int, name string, aas []AminoAcid) (*Table, error) {
	const op = "gctable.NewTable"
	t := &Table{
		ID:    id,
		Name:  name,
		aas:   make([]*AminoAcid, 0, len(aas)),
		byKey: make(map[string]*AminoAcid, len(aas)),
	}
	assigned := 0
	for i := range aas {
		aa := &AminoAcid{
			Key:    strings.ToLower(aas[i].Key),
			Name:   aas[i].Name,
			Symbol: aas[i].Symbol,
			Codons: make([]string, len(aas[i].Codons)),
		}
		if aa.Key == "" {
			return nil, errs.New(errs.Unresolvable, op, "table %d: entry without a key", id)
		}
		if _, dup := t.byKey[aa.Key]; dup {
			return nil, errs.New(errs.Unresolvable, op, "table %d: duplicate entry %q", id, aa.Key)
		}
		if len(aa.Codons) == 0 {
			return nil, errs.New(errs.Unresolvable, op, "table %d: entry %q has no codons", id, aa.Key)
		}
		for j, c := range aas[i].Codons {
			c = strings.ToUpper(c)
			ci := bio.CodonIndex(c)
			if ci < 0 || strings.ContainsRune(c, 'U') {
				return nil, errs.New(errs.Unresolvable, op, "table %d: entry %q has a bad codon %q", id, aa.Key, c)
			}
			if other := t.byCodon[ci]; other != nil {
				return nil, errs.New(errs.Unresolvable, op, "table %d: codon %s is assigned to both %q and %q",
					id, c, other.Key, aa.Key)
			}
			t.byCodon[ci] = aa
			aa.Codons[j] = c
			assigned++
		}
		t.aas = append(t.aas, aa)
		t.byKey[aa.Key] = aa
	}
	if assigned != bio.NCodons {
		return nil, errs.New(errs.Unresolvable, op, "table %d: %d codons assigned, expected %d",
			id, assigned, bio.NCodons)
	}
	return t, nil
}

// AminoAcid returns the entry encoded by a codon (any case).
func (t *Table) AminoAcid(codon string) (*AminoAcid, error) {
	i := bio.CodonIndex(codon)
	if i < 0 || strings.ContainsAny(codon, "Uu") {
		return nil, errs.New(errs.NotFound, "gctable.AminoAcid", "codon %q is not in table %d", codon, t.ID)
	}
	return t.byCodon[i], nil
}

// ByKey returns the entry with the given key (e.g. "leu").
func (t *Table) ByKey(key string) (*AminoAcid, bool) {
	aa, ok := t.byKey[strings.ToLower(key)]
	return aa, ok
}

// AminoAcids returns the entries in table order. The entries must
// not be modified.
func (t *Table) AminoAcids() []*AminoAcid {
	return t.aas
}

// MarshalJSON writes the table in the gc_files format: an object
// mapping amino acid keys to name, symbol and codons.
func (t *Table) MarshalJSON() ([]byte, error) {
	m := make(map[string]*AminoAcid, len(t.aas))
	for _, aa := range t.aas {
		m[aa.Key] = aa
	}
	return json.Marshal(m)
}

// ParseTable reads a table in the gc_files JSON format. Since JSON
// objects are unordered, entries are sorted by key; codon order
// within an entry is preserved.
func ParseTable(id int, name string, data []byte) (*Table, error) {
	var m map[string]AminoAcid
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errs.Wrap(errs.Unresolvable, "gctable.ParseTable", err, "table %d", id)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	aas := make([]AminoAcid, 0, len(m))
	for _, k := range keys {
		aa := m[k]
		aa.Key = k
		aas = append(aas, aa)
	}
	return NewTable(id, name, aas)
}

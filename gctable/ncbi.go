package gctable

import (
	"sort"

	"github.com/codonmark/codonmark/bio"
	"github.com/codonmark/codonmark/errs"
)

// residue describes an NCBI one-letter amino acid code.
type residue struct {
	key  string
	name string
}

var residues = map[byte]residue{
	'A': {"ala", "Alanine"},
	'R': {"arg", "Arginine"},
	'N': {"asn", "Asparagine"},
	'D': {"asp", "Aspartic acid"},
	'C': {"cys", "Cysteine"},
	'Q': {"gln", "Glutamine"},
	'E': {"glu", "Glutamic acid"},
	'G': {"gly", "Glycine"},
	'H': {"his", "Histidine"},
	'I': {"ile", "Isoleucine"},
	'L': {"leu", "Leucine"},
	'K': {"lys", "Lysine"},
	'M': {"met", "Methionine"},
	'F': {"phe", "Phenylalanine"},
	'P': {"pro", "Proline"},
	'S': {"ser", "Serine"},
	'T': {"thr", "Threonine"},
	'W': {"trp", "Tryptophan"},
	'Y': {"tyr", "Tyrosine"},
	'V': {"val", "Valine"},
	'U': {"sec", "Selenocysteine"},
	'O': {"pyl", "Pyrrolysine"},
	'*': {"stop", "Stop"},
}

// FromGeneticCode converts an NCBI genetic code into a table. Codons
// of every entry are listed in the NCBI TCAG order, entries in the
// order of their first codon.
func FromGeneticCode(gc *bio.GeneticCode) (*Table, error) {
	const op = "gctable.FromGeneticCode"
	if len(gc.Ncbieaa) != bio.NCodons {
		return nil, errs.New(errs.Unresolvable, op, "genetic code %d: ncbieaa has %d letters",
			gc.ID, len(gc.Ncbieaa))
	}
	index := make(map[byte]int)
	var aas []AminoAcid
	for i := 0; i < bio.NCodons; i++ {
		letter := gc.Ncbieaa[i]
		j, ok := index[letter]
		if !ok {
			r, known := residues[letter]
			if !known {
				return nil, errs.New(errs.Unresolvable, op, "genetic code %d: unknown residue %q",
					gc.ID, letter)
			}
			j = len(aas)
			index[letter] = j
			aas = append(aas, AminoAcid{Key: r.key, Name: r.name, Symbol: string(letter)})
		}
		aas[j].Codons = append(aas[j].Codons, bio.Codon(i))
	}
	return NewTable(gc.ID, gc.Name, aas)
}

type ncbi struct {
	codes map[int]*bio.GeneticCode
}

// NCBI returns a provider of the built-in NCBI genetic codes
// (bio.GeneticCodes). Tables are built on every Load; wrap the
// provider with NewCache to build each one once.
func NCBI() Provider {
	return ncbi{codes: bio.GeneticCodes}
}

func (p ncbi) Load(id int) (*Table, error) {
	gc, ok := p.codes[id]
	if !ok {
		return nil, errs.New(errs.NotFound, "gctable.Load", "no genetic code with id=%d", id)
	}
	return FromGeneticCode(gc)
}

func (p ncbi) IDs() []int {
	ids := make([]int, 0, len(p.codes))
	for id := range p.codes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

package codon

import (
	"strings"

	"github.com/codonmark/codonmark/bio"
	"github.com/codonmark/codonmark/errs"
	"github.com/codonmark/codonmark/gctable"
)

// nucleotides maps two bits to the third codon position.
const nucleotides = "acgt"

// BitsToNucleotide returns the nucleotide for a pair of bits:
// 00 -> a, 01 -> c, 10 -> g, 11 -> t.
func BitsToNucleotide(hi, lo byte) byte {
	return nucleotides[(hi&1)<<1|lo&1]
}

// NucleotideToBits is the inverse of BitsToNucleotide. It accepts
// either case.
func NucleotideToBits(n byte) (hi, lo byte, ok bool) {
	switch n {
	case 'a', 'A':
		return 0, 0, true
	case 'c', 'C':
		return 0, 1, true
	case 'g', 'G':
		return 1, 0, true
	case 't', 'T':
		return 1, 1, true
	}
	return 0, 0, false
}

// PopularPrefix returns the most frequent two letter prefix among
// codons and its count. Ties go to the prefix which occurs first.
func PopularPrefix(codons []string) (string, int) {
	best, bestN := "", 0
	counts := make(map[string]int, len(codons))
	for _, c := range codons {
		if len(c) < 2 {
			continue
		}
		counts[c[:2]]++
	}
	for _, c := range codons {
		if len(c) < 2 {
			continue
		}
		if n := counts[c[:2]]; n > bestN {
			best, bestN = c[:2], n
		}
	}
	return best, bestN
}

// Family is the synonymous family of an amino acid, it tells how many
// bits a codon of this amino acid carries and how they are written.
//
// A 2-bit family has a complete four codon box Prefix+{A,C,G,T}; the
// third position holds the bits. A 1-bit family writes bit 0 as Zero
// and bit 1 as One, the first two listed codons. Amino acids with more
// than three codons but without a full box use the 1-bit rule, as any
// third position outside the box would change the amino acid.
type Family struct {
	Bits   int
	Prefix string
	Zero   string
	One    string
}

// NewFamily computes the family of an amino acid.
func NewFamily(aa *gctable.AminoAcid) Family {
	n := aa.Degeneracy()
	if n > 3 {
		if p, count := PopularPrefix(aa.Codons); count == 4 {
			return Family{Bits: 2, Prefix: strings.ToLower(p)}
		}
	}
	if n > 1 {
		return Family{
			Bits: 1,
			Zero: strings.ToLower(aa.Codons[0]),
			One:  strings.ToLower(aa.Codons[1]),
		}
	}
	return Family{}
}

// Write returns the lower case codon carrying bits, which must hold
// f.Bits values (each 0 or 1).
func (f Family) Write(bits []byte) string {
	switch f.Bits {
	case 2:
		return f.Prefix + string(BitsToNucleotide(bits[0], bits[1]))
	case 1:
		if bits[0] == 0 {
			return f.Zero
		}
		return f.One
	}
	return ""
}

// Read appends the bits carried by a codon of this family to bits.
func (f Family) Read(codon string, bits []byte) []byte {
	switch f.Bits {
	case 2:
		hi, lo, _ := NucleotideToBits(codon[2])
		return append(bits, hi, lo)
	case 1:
		if strings.EqualFold(codon, f.Zero) {
			return append(bits, 0)
		}
		return append(bits, 1)
	}
	return bits
}

// Rules holds the family of every codon of a genetic code table.
type Rules struct {
	Table  *gctable.Table
	family [bio.NCodons]Family
	aa     [bio.NCodons]*gctable.AminoAcid
}

// NewRules computes families for all the codons of t.
func NewRules(t *gctable.Table) *Rules {
	r := &Rules{Table: t}
	for _, aa := range t.AminoAcids() {
		f := NewFamily(aa)
		for _, c := range aa.Codons {
			i := bio.CodonIndex(c)
			r.family[i] = f
			r.aa[i] = aa
		}
	}
	return r
}

// Lookup returns the amino acid and the family of a codon.
func (r *Rules) Lookup(codon string) (*gctable.AminoAcid, Family, error) {
	i := bio.CodonIndex(codon)
	if i < 0 || r.aa[i] == nil {
		return nil, Family{}, errs.New(errs.NotFound, "codon.Lookup", "codon %q is not in table %d", codon, r.Table.ID)
	}
	return r.aa[i], r.family[i], nil
}

package bio

import "fmt"

// Bases lists nucleotides in the NCBI order used for the ncbieaa and
// sncbieaa strings (TTT, TTC, TTA, TTG, TCT, ...).
const Bases = "TCAG"

// NCodons is the number of codons in every genetic code.
const NCodons = 64

// GeneticCode is an NCBI genetic code. Ncbieaa holds the amino acid
// for each of the 64 codons in the NCBI order, Sncbieaa marks start
// ('M') and stop ('*') codons.
type GeneticCode struct {
	ID        int
	Name      string
	ShortName string
	Ncbieaa   string
	Sncbieaa  string
}

// NewGeneticCode creates a genetic code from the NCBI strings.
func NewGeneticCode(id int, name, shortName, ncbieaa, sncbieaa string) *GeneticCode {
	return &GeneticCode{
		ID:        id,
		Name:      name,
		ShortName: shortName,
		Ncbieaa:   ncbieaa,
		Sncbieaa:  sncbieaa,
	}
}

func baseIndex(b byte) int {
	switch b {
	case 'T', 't', 'U', 'u':
		return 0
	case 'C', 'c':
		return 1
	case 'A', 'a':
		return 2
	case 'G', 'g':
		return 3
	}
	return -1
}

// CodonIndex returns the NCBI index of a codon (0..63), or -1.
func CodonIndex(codon string) int {
	if len(codon) != 3 {
		return -1
	}
	i := 0
	for k := 0; k < 3; k++ {
		b := baseIndex(codon[k])
		if b < 0 {
			return -1
		}
		i = i*4 + b
	}
	return i
}

// Codon returns the upper case codon with the NCBI index i.
func Codon(i int) string {
	return string([]byte{Bases[i/16], Bases[(i/4)%4], Bases[i%4]})
}

// Residue returns the one-letter amino acid for a codon.
func (gc *GeneticCode) Residue(codon string) (byte, bool) {
	i := CodonIndex(codon)
	if i < 0 || i >= len(gc.Ncbieaa) {
		return 0, false
	}
	return gc.Ncbieaa[i], true
}

// IsStopCodon tests if the codon is a stop-codon in this code.
func (gc *GeneticCode) IsStopCodon(codon string) bool {
	aa, ok := gc.Residue(codon)
	return ok && aa == '*'
}

// IsStartCodon tests if the codon may initiate translation.
func (gc *GeneticCode) IsStartCodon(codon string) bool {
	i := CodonIndex(codon)
	return i >= 0 && i < len(gc.Sncbieaa) && gc.Sncbieaa[i] == 'M'
}

func (gc *GeneticCode) String() string {
	return fmt.Sprintf("<GC: Name=\"%s\", ShortName=\"%s\", Id=%d, A=\"%s\", S=\"%s\">",
		gc.Name, gc.ShortName, gc.ID, gc.Ncbieaa, gc.Sncbieaa)
}

// GoString returns the constructor call used in the generated
// GeneticCodes table.
func (gc *GeneticCode) GoString() string {
	return fmt.Sprintf("NewGeneticCode(%d,\n%q,\n%q,\n%q,\n%q)",
		gc.ID, gc.Name, gc.ShortName, gc.Ncbieaa, gc.Sncbieaa)
}

package codon

import (
	"testing"

	"github.com/codonmark/codonmark/errs"
	"github.com/codonmark/codonmark/gctable"
)

func TestSplitFrame(tst *testing.T) {
	seq := "aaaatgttat"
	cases := []struct {
		frame                int
		prefix, body, suffix string
	}{
		{1, "", "aaaatgtta", "t"},
		{2, "a", "aaatgttat", ""},
		{3, "aa", "aatgtt", "at"},
	}
	for _, c := range cases {
		f, err := SplitFrame(seq, c.frame)
		if err != nil {
			tst.Error("Error splitting frame", c.frame, err)
			continue
		}
		if f.Prefix != c.prefix || f.Body != c.body || f.Suffix != c.suffix {
			tst.Errorf("Frame %d: got %q %q %q", c.frame, f.Prefix, f.Body, f.Suffix)
		}
		if f.Join(f.Body) != seq {
			tst.Error("Join doesn't restore the sequence for frame", c.frame)
		}
	}

	f, err := SplitFrame("a", 3)
	if err != nil || f.Prefix != "a" || f.Body != "" || f.NCodons() != 0 {
		tst.Error("Wrong split of a short sequence:", f, err)
	}

	for _, frame := range []int{0, 4, -1} {
		if _, err := SplitFrame(seq, frame); !errs.IsKind(err, errs.InvalidArgument) {
			tst.Error("Expected InvalidArgument for frame", frame, "got", err)
		}
	}
}

func TestNucleotideBits(tst *testing.T) {
	for hi := byte(0); hi < 2; hi++ {
		for lo := byte(0); lo < 2; lo++ {
			n := BitsToNucleotide(hi, lo)
			h, l, ok := NucleotideToBits(n)
			if !ok || h != hi || l != lo {
				tst.Error("Round trip failed for", hi, lo)
			}
		}
	}
	if BitsToNucleotide(0, 1) != 'c' || BitsToNucleotide(1, 0) != 'g' {
		tst.Error("Wrong bit table")
	}
	if _, _, ok := NucleotideToBits('n'); ok {
		tst.Error("n has bits")
	}
}

func TestPopularPrefix(tst *testing.T) {
	p, n := PopularPrefix([]string{"TTA", "TTG", "CTT", "CTC", "CTA", "CTG"})
	if p != "CT" || n != 4 {
		tst.Error("Expected CT 4, got", p, n)
	}
	// Tie: the first occurring prefix wins.
	p, n = PopularPrefix([]string{"TAA", "TAG", "AGA", "AGG"})
	if p != "TA" || n != 2 {
		tst.Error("Expected TA 2, got", p, n)
	}
	p, n = PopularPrefix([]string{"TCT", "TCC", "TCA", "TCG", "AGT", "AGC", "AGA", "AGG"})
	if p != "TC" || n != 4 {
		tst.Error("Expected TC 4, got", p, n)
	}
}

func TestFamilies(tst *testing.T) {
	t, err := gctable.NCBI().Load(1)
	if err != nil {
		tst.Fatal(err)
	}
	r := NewRules(t)
	cases := []struct {
		codon string
		bits  int
	}{
		{"atg", 0}, {"tgg", 0},
		{"ttt", 1}, {"taa", 1}, {"ata", 1},
		{"tta", 2}, {"gct", 2}, {"agc", 2}, {"cga", 2},
	}
	for _, c := range cases {
		_, f, err := r.Lookup(c.codon)
		if err != nil {
			tst.Error("Error looking up", c.codon, err)
			continue
		}
		if f.Bits != c.bits {
			tst.Error("Expected", c.bits, "bits for", c.codon, "got", f.Bits)
		}
	}
	_, leu, _ := r.Lookup("tta")
	if leu.Prefix != "ct" || leu.Write([]byte{0, 1}) != "ctc" {
		tst.Error("Wrong leucine family:", leu)
	}
	_, phe, _ := r.Lookup("ttc")
	if phe.Write([]byte{0}) != "ttt" || phe.Write([]byte{1}) != "ttc" {
		tst.Error("Wrong phenylalanine family:", phe)
	}
	if _, _, err = r.Lookup("nnn"); !errs.IsKind(err, errs.NotFound) {
		tst.Error("Expected NotFound, got", err)
	}
}

func TestIncompleteBox(tst *testing.T) {
	// Stop codons of the vertebrate mitochondrial code: TAA TAG AGA AGG.
	t, err := gctable.NCBI().Load(2)
	if err != nil {
		tst.Fatal(err)
	}
	aa, f, err := NewRules(t).Lookup("aga")
	if err != nil {
		tst.Fatal(err)
	}
	if !aa.IsStop() || aa.Degeneracy() != 4 {
		tst.Fatal("Unexpected stop entry:", aa)
	}
	if f.Bits != 1 || f.Zero != "taa" || f.One != "tag" {
		tst.Error("Expected a 1-bit fallback, got", f)
	}
}

func TestReadWrite(tst *testing.T) {
	for _, id := range gctable.IDs(gctable.NCBI()) {
		t, err := gctable.NCBI().Load(id)
		if err != nil {
			tst.Fatal(err)
		}
		r := NewRules(t)
		for _, aa := range t.AminoAcids() {
			f := NewFamily(aa)
			patterns := [][]byte{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
			for _, bits := range patterns {
				bits = bits[:f.Bits]
				c := f.Write(bits)
				if f.Bits == 0 {
					continue
				}
				got, _, err := r.Lookup(c)
				if err != nil || got != aa {
					tst.Error("Non synonymous codon", c, "for", aa.Key, "in table", id)
				}
				back := f.Read(c, nil)
				if string(back) != string(bits) {
					tst.Error("Read mismatch for", c, back, bits)
				}
			}
		}
	}
}

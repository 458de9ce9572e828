package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/codonmark/codonmark/bio"
	"github.com/codonmark/codonmark/errs"
	"github.com/codonmark/codonmark/gctable"
)

func parseFile(tst *testing.T, fn string) ([]*bio.GeneticCode, error) {
	f, err := os.Open(fn)
	if err != nil {
		tst.Fatal(err)
	}
	defer f.Close()
	return ParseAsn1(f)
}

func TestParseAsn1(tst *testing.T) {
	gcodes, err := parseFile(tst, "testdata/gc.prt")
	if err != nil {
		tst.Fatal("Error parsing:", err)
	}
	if len(gcodes) != 2 {
		tst.Fatal("Expected 2 codes, got", len(gcodes))
	}
	for _, gc := range gcodes {
		ref := bio.GeneticCodes[gc.ID]
		if gc.Ncbieaa != ref.Ncbieaa || gc.Sncbieaa != ref.Sncbieaa || gc.Name != ref.Name {
			tst.Errorf("Code %d differs: %v != %v", gc.ID, gc, ref)
		}
	}
	if gcodes[0].ShortName != "SGC0" {
		tst.Error("Unexpected short name:", gcodes[0].ShortName)
	}
}

func TestParseErrors(tst *testing.T) {
	if _, err := parseFile(tst, "testdata/short.prt"); !errs.IsKind(err, errs.Unresolvable) {
		tst.Error("Expected Unresolvable, got", err)
	}
	for _, s := range []string{
		"",
		"Genetic-code-table {",
		"Genetic-code-table ::= { { id x } }",
		"Genetic-code-table ::= { } }",
	} {
		if _, err := ParseAsn1(strings.NewReader(s)); err == nil {
			tst.Errorf("Expected error for %q", s)
		}
	}
}

func TestWriteGo(tst *testing.T) {
	gcodes, err := parseFile(tst, "testdata/gc.prt")
	if err != nil {
		tst.Fatal("Error parsing:", err)
	}
	var b bytes.Buffer
	if err = writeGo(&b, gcodes); err != nil {
		tst.Fatal("Error writing go source:", err)
	}
	src := b.String()
	if !strings.HasPrefix(src, "package bio\n") || !strings.Contains(src, "\t1: NewGeneticCode(1,\n") {
		tst.Error("Unexpected go source:", src)
	}
}

func TestWriteJSON(tst *testing.T) {
	gcodes, err := parseFile(tst, "testdata/gc.prt")
	if err != nil {
		tst.Fatal("Error parsing:", err)
	}
	dir := tst.TempDir()
	if err = writeJSON(dir, gcodes); err != nil {
		tst.Fatal("Error writing tables:", err)
	}
	p, err := gctable.Dir(dir)
	if err != nil {
		tst.Fatal("Error opening tables:", err)
	}
	t, err := p.Load(2)
	if err != nil {
		tst.Fatal("Error loading table:", err)
	}
	if aa, err := t.AminoAcid("AGA"); err != nil || !aa.IsStop() {
		tst.Error("AGA should be a stop codon in code 2:", aa, err)
	}
}

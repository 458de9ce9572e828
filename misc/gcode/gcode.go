// gcode is a tool to generate the genetic code table of package bio
// or a JSON table directory from the NCBI genetic codes file in the
// asn1 format.
//
// More information is available here:
// - https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi
// - ftp://ftp.ncbi.nih.gov/entrez/misc/data/gc.prt
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"

	"github.com/op/go-logging"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/codonmark/codonmark/bio"
	"github.com/codonmark/codonmark/gctable"
)

var log = logging.MustGetLogger("gcode")

var (
	app     = kingpin.New("gcode", "convert NCBI genetic codes (gc.prt)")
	gcFile  = app.Arg("gc", "genetic codes file in asn1 format").Required().ExistingFile()
	jsonDir = app.Flag("json", "write JSON genetic code tables to a directory instead of go source").String()
	outF    = app.Flag("out", "write go source to a file").Short('o').String()
)

// writeGo writes go source of the GeneticCodes map.
func writeGo(w io.Writer, gcodes []*bio.GeneticCode) error {
	var b bytes.Buffer
	fmt.Fprintln(&b, "package bio")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "// GeneticCodes is a map holding genetic codes.")
	fmt.Fprintln(&b, "// This file was generated using gcode program from NCBI genetic codes file.")
	fmt.Fprintln(&b, "var GeneticCodes = map[int]*GeneticCode{")
	for _, gc := range gcodes {
		fmt.Fprintf(&b, "%d: %#v,\n", gc.ID, gc)
	}
	fmt.Fprintln(&b, "}")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// writeJSON writes the codes as a table directory.
func writeJSON(dir string, gcodes []*bio.GeneticCode) error {
	tables := make([]*gctable.Table, 0, len(gcodes))
	for _, gc := range gcodes {
		t, err := gctable.FromGeneticCode(gc)
		if err != nil {
			return err
		}
		tables = append(tables, t)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return gctable.WriteDir(dir, tables)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	logging.SetBackend(logging.NewLogBackend(os.Stderr, "", 0))
	logging.SetFormatter(logging.MustStringFormatter(`%{message}`))

	f, err := os.Open(*gcFile)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	gcodes, err := ParseAsn1(f)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("Read %d genetic codes", len(gcodes))

	if *jsonDir != "" {
		if err := writeJSON(*jsonDir, gcodes); err != nil {
			log.Fatal(err)
		}
		return
	}

	w := os.Stdout
	if *outF != "" {
		w, err = os.Create(*outF)
		if err != nil {
			log.Fatal(err)
		}
		defer w.Close()
	}
	if err := writeGo(w, gcodes); err != nil {
		log.Fatal(err)
	}
}

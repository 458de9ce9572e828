package main

import (
	"fmt"
	"io"

	"github.com/codonmark/codonmark/bio"
	"github.com/codonmark/codonmark/codon"
	"github.com/codonmark/codonmark/gctable"
	"github.com/codonmark/codonmark/watermark"
)

// record finds the regions of seq and starts a record summary.
func (s *runSettings) record(name, seq string) (*RecordSummary, error) {
	nseq := bio.Normalize(seq)
	rs, err := s.codec.FindCodingRegions(nseq, s.frame, s.gcodeID)
	if err != nil {
		return nil, err
	}
	c, err := s.codec.CapacityForRegions(nseq, rs, s.frame, s.gcodeID)
	if err != nil {
		return nil, err
	}
	id, err := sequenceCID(nseq)
	if err != nil {
		return nil, err
	}
	log.Infof("%s: %d nucleotides, %d coding regions, capacity %d bits", name, len(nseq), rs.Len(), c)
	return &RecordSummary{
		Name:     name,
		Length:   len(nseq),
		Regions:  rs,
		Capacity: c,
		InputCID: id,
	}, nil
}

// regions prints coding regions, one per line.
func (s *runSettings) regions(name, seq string, w io.Writer) (*RecordSummary, error) {
	rec, err := s.record(name, seq)
	if err != nil {
		return nil, err
	}
	for _, r := range rec.Regions.Regions() {
		fmt.Fprintf(w, "%s\t%d\t%d\n", name, r.Start, r.Stop)
	}
	return rec, nil
}

// capacity prints the capacity in bits and the longest message in
// bytes.
func (s *runSettings) capacity(name, seq string, w io.Writer) (*RecordSummary, error) {
	rec, err := s.record(name, seq)
	if err != nil {
		return nil, err
	}
	whole, err := s.codec.Capacity(seq, s.frame, s.gcodeID)
	if err != nil {
		return nil, err
	}
	if whole != rec.Capacity {
		log.Warningf("%s: whole frame capacity %d differs from region capacity %d", name, whole, rec.Capacity)
	}
	fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", name, rec.Regions.Len(), rec.Capacity, maxMessage(rec.Capacity, s.unframed))
	return rec, nil
}

// maxMessage returns the longest message in bytes fitting into
// capacity bits.
func maxMessage(capacity int, unframed bool) int {
	if !unframed {
		capacity -= watermark.HeaderBits
	}
	if capacity < 0 {
		return 0
	}
	return capacity / 8
}

// embed writes the watermarked sequence in FASTA format.
func (s *runSettings) embed(name, seq string, w io.Writer) (*RecordSummary, error) {
	rec, err := s.record(name, seq)
	if err != nil {
		return nil, err
	}
	var out string
	if s.unframed {
		out, err = s.codec.EmbedUnframed(seq, s.message, s.frame, rec.Regions, s.gcodeID)
	} else {
		out, err = s.codec.Embed(seq, s.message, s.frame, rec.Regions, s.gcodeID)
	}
	if err != nil {
		return nil, err
	}
	rec.MessageLength = len(s.message)
	if rec.OutputCID, err = sequenceCID(out); err != nil {
		return nil, err
	}
	log.Infof("%s: embedded %d bytes", name, len(s.message))
	_, err = io.WriteString(w, bio.Sequence{Name: name, Sequence: out}.String())
	return rec, err
}

// extract prints the recovered message.
func (s *runSettings) extract(name, seq string, w io.Writer) (*RecordSummary, error) {
	rec, err := s.record(name, seq)
	if err != nil {
		return nil, err
	}
	var msg []byte
	if s.unframed {
		msg, err = s.codec.ExtractUnframed(seq, s.length, s.frame, rec.Regions, s.gcodeID)
	} else {
		msg, err = s.codec.Extract(seq, s.frame, rec.Regions, s.gcodeID)
	}
	if err != nil {
		return nil, err
	}
	rec.MessageLength = len(msg)
	fmt.Fprintf(w, "%s\t%s\n", name, msg)
	return rec, nil
}

// tables lists the genetic codes known to the provider.
func (s *runSettings) tables(w io.Writer) error {
	ids := s.codec.IDs()
	if len(ids) == 0 {
		ids = []int{s.gcodeID}
	}
	for _, id := range ids {
		t, err := s.codec.Table(id)
		if err != nil {
			log.Warningf("Genetic code %d: %v", id, err)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID, t.Name, describe(t))
	}
	return nil
}

// describe counts the amino acids of a table by the number of bits
// their codons carry.
func describe(t *gctable.Table) string {
	var bits [3]int
	for _, aa := range t.AminoAcids() {
		bits[codon.NewFamily(aa).Bits]++
	}
	return fmt.Sprintf("2 bits: %d, 1 bit: %d, 0 bits: %d", bits[2], bits[1], bits[0])
}

// Package orf finds coding regions (start to stop codon spans) in a
// reading frame of a nucleotide sequence.
package orf

import (
	"fmt"

	"github.com/codonmark/codonmark/bio"
	"github.com/codonmark/codonmark/codon"
	"github.com/codonmark/codonmark/errs"
	"github.com/codonmark/codonmark/gctable"
)

// Region is a coding region in a frame body. Start is the index of
// the methionine codon, Stop the index just past the stop codon (or
// the body length for an unterminated region).
type Region struct {
	Start int
	Stop  int
}

// NCodons returns the number of codons in the region.
func (r Region) NCodons() int {
	return (r.Stop - r.Start) / 3
}

func (r Region) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.Stop)
}

// RegionSet holds coding regions as two ordered index lists. Stop
// may be one element shorter than Start when the last region is not
// terminated; Close fixes that.
type RegionSet struct {
	Start []int `json:"start"`
	Stop  []int `json:"stop"`
}

// Len returns the number of regions.
func (rs RegionSet) Len() int {
	return len(rs.Start)
}

// Open tests if the last region has no stop index.
func (rs RegionSet) Open() bool {
	return len(rs.Stop) < len(rs.Start)
}

// Close returns a copy of the region set where an open trailing region
// is closed at n, the frame body length. This is the only place where
// regions get closed; every caller goes through it so that embedding
// and extraction see identical boundaries. Closing a closed set is a
// no-op.
func (rs RegionSet) Close(n int) RegionSet {
	c := RegionSet{
		Start: append([]int{}, rs.Start...),
		Stop:  append([]int{}, rs.Stop...),
	}
	if c.Open() {
		c.Stop = append(c.Stop, n)
	}
	return c
}

// Validate checks that the set is closed (or has a single open
// trailing region) and that its regions are codon aligned, non-empty,
// ordered, non-overlapping and within a body of length n.
func (rs RegionSet) Validate(n int) error {
	const op = "orf.Validate"
	if len(rs.Stop) > len(rs.Start) {
		return errs.New(errs.InvalidArgument, op, "%d stop indexes for %d start indexes", len(rs.Stop), len(rs.Start))
	}
	if len(rs.Start)-len(rs.Stop) > 1 {
		return errs.New(errs.InvalidArgument, op, "%d open regions", len(rs.Start)-len(rs.Stop))
	}
	prev := 0
	for i, start := range rs.Start {
		stop := n
		if i < len(rs.Stop) {
			stop = rs.Stop[i]
		}
		switch {
		case start%3 != 0 || stop%3 != 0:
			return errs.New(errs.InvalidArgument, op, "region %d [%d,%d) is not codon aligned", i, start, stop)
		case stop <= start:
			return errs.New(errs.InvalidArgument, op, "region %d stops at %d before its start %d", i, stop, start)
		case start < prev:
			return errs.New(errs.InvalidArgument, op, "region %d starts at %d inside the previous region", i, start)
		case stop > n:
			return errs.New(errs.InvalidArgument, op, "region %d ends at %d past the frame length %d", i, stop, n)
		}
		prev = stop
	}
	return nil
}

// Regions returns the regions of a closed set.
func (rs RegionSet) Regions() []Region {
	r := make([]Region, 0, len(rs.Stop))
	for i := 0; i < len(rs.Start) && i < len(rs.Stop); i++ {
		r = append(r, Region{Start: rs.Start[i], Stop: rs.Stop[i]})
	}
	return r
}

// Resolve closes rs at the body length n and validates it.
func Resolve(rs RegionSet, n int) ([]Region, error) {
	if err := rs.Validate(n); err != nil {
		return nil, err
	}
	return rs.Close(n).Regions(), nil
}

// Scan finds coding regions in a frame body. A methionine codon
// outside a region opens one (nested starts are ignored), a stop
// codon inside a region closes it; the stop index is just past the
// stop codon. The returned set is not closed.
func Scan(body string, t *gctable.Table) (RegionSet, error) {
	rs := RegionSet{Start: []int{}, Stop: []int{}}
	inside := false
	for i := 0; i+3 <= len(body); i += 3 {
		aa, err := t.AminoAcid(body[i : i+3])
		if err != nil {
			return RegionSet{}, err
		}
		switch {
		case aa.IsMet() && !inside:
			rs.Start = append(rs.Start, i)
			inside = true
		case aa.IsStop() && inside:
			rs.Stop = append(rs.Stop, i+3)
			inside = false
		}
	}
	return rs, nil
}

// Find normalizes seq and returns the closed set of coding regions in
// the given reading frame.
func Find(seq string, frame int, t *gctable.Table) (RegionSet, error) {
	f, err := codon.SplitFrame(bio.Normalize(seq), frame)
	if err != nil {
		return RegionSet{}, err
	}
	rs, err := Scan(f.Body, t)
	if err != nil {
		return RegionSet{}, err
	}
	return rs.Close(len(f.Body)), nil
}

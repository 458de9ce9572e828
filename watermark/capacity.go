package watermark

import (
	"golang.org/x/sync/errgroup"

	"github.com/codonmark/codonmark/codon"
	"github.com/codonmark/codonmark/orf"
)

// Capacity returns the number of bits which fit into the coding
// regions of seq. The regions are found while scanning the frame; the
// start and the stop codon both count.
func (c *Codec) Capacity(seq string, frame, gcID int) (int, error) {
	f, r, err := c.prepare("watermark.Capacity", seq, frame, gcID)
	if err != nil {
		return 0, err
	}
	bits := 0
	inside := false
	for i := 0; i+3 <= len(f.Body); i += 3 {
		aa, fam, err := r.Lookup(f.Body[i : i+3])
		if err != nil {
			return 0, err
		}
		switch {
		case !inside && aa.IsMet():
			inside = true
			bits += fam.Bits
		case inside:
			bits += fam.Bits
			if aa.IsStop() {
				inside = false
			}
		}
	}
	return bits, nil
}

// CapacityForRegions returns the number of bits which fit into the
// given regions. An open last region extends to the end of the frame.
func (c *Codec) CapacityForRegions(seq string, rs orf.RegionSet, frame, gcID int) (int, error) {
	f, r, err := c.prepare("watermark.CapacityForRegions", seq, frame, gcID)
	if err != nil {
		return 0, err
	}
	regions, err := orf.Resolve(rs, len(f.Body))
	if err != nil {
		return 0, err
	}
	caps, err := c.regionCapacities(f.Body, regions, r)
	if err != nil {
		return 0, err
	}
	return sum(caps), nil
}

// Profile returns the number of bits carried by every codon of the
// frame, zero for codons outside coding regions.
func (c *Codec) Profile(seq string, frame, gcID int) ([]int, error) {
	f, r, err := c.prepare("watermark.Profile", seq, frame, gcID)
	if err != nil {
		return nil, err
	}
	rs, err := orf.Scan(f.Body, r.Table)
	if err != nil {
		return nil, err
	}
	profile := make([]int, f.NCodons())
	for _, reg := range rs.Close(len(f.Body)).Regions() {
		for i := reg.Start; i < reg.Stop; i += 3 {
			_, fam, err := r.Lookup(f.Body[i : i+3])
			if err != nil {
				return nil, err
			}
			profile[i/3] = fam.Bits
		}
	}
	return profile, nil
}

// regionCapacities computes the capacity of every region concurrently.
func (c *Codec) regionCapacities(body string, regions []orf.Region, r *codon.Rules) ([]int, error) {
	caps := make([]int, len(regions))
	var g errgroup.Group
	g.SetLimit(c.limit())
	for i, reg := range regions {
		g.Go(func() error {
			n, err := regionCapacity(body[reg.Start:reg.Stop], r)
			caps[i] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return caps, nil
}

// regionCapacity sums the family bits of the codons of a region.
func regionCapacity(region string, r *codon.Rules) (int, error) {
	bits := 0
	for i := 0; i+3 <= len(region); i += 3 {
		_, fam, err := r.Lookup(region[i : i+3])
		if err != nil {
			return 0, err
		}
		bits += fam.Bits
	}
	return bits, nil
}

func sum(xs []int) (s int) {
	for _, x := range xs {
		s += x
	}
	return
}

package watermark

import (
	"golang.org/x/sync/errgroup"

	"github.com/codonmark/codonmark/codon"
	"github.com/codonmark/codonmark/errs"
	"github.com/codonmark/codonmark/orf"
)

// Embed hides a framed message in the coding regions of seq. The
// result is lower case and has the length of the normalized seq;
// codons outside the regions, the frame offset and the incomplete
// last codon are copied unchanged. If the message doesn't fit,
// CapacityExceeded is returned.
func (c *Codec) Embed(seq string, msg []byte, frame int, rs orf.RegionSet, gcID int) (string, error) {
	bits, err := Frame(msg)
	if err != nil {
		return "", err
	}
	return c.embed("watermark.Embed", seq, bits, frame, rs, gcID)
}

// EmbedUnframed hides msg without the length header. The reader has to
// know the message length (see ExtractUnframed).
func (c *Codec) EmbedUnframed(seq string, msg []byte, frame int, rs orf.RegionSet, gcID int) (string, error) {
	return c.embed("watermark.EmbedUnframed", seq, BytesToBits(msg), frame, rs, gcID)
}

func (c *Codec) embed(op, seq string, bits []byte, frame int, rs orf.RegionSet, gcID int) (string, error) {
	f, r, err := c.prepare(op, seq, frame, gcID)
	if err != nil {
		return "", err
	}
	regions, err := orf.Resolve(rs, len(f.Body))
	if err != nil {
		return "", err
	}
	caps, err := c.regionCapacities(f.Body, regions, r)
	if err != nil {
		return "", err
	}
	total := sum(caps)
	if len(bits) > total {
		return "", errs.New(errs.CapacityExceeded, op,
			"payload of %d bits does not fit into %d bits of %d regions", len(bits), total, len(regions))
	}
	log.Debugf("Embedding %d bits into %d regions (capacity %d bits)", len(bits), len(regions), total)

	// Every region gets the slice of the payload which sequential
	// embedding would write into it, so regions are independent.
	out := []byte(f.Body)
	var g errgroup.Group
	g.SetLimit(c.limit())
	off := 0
	for i, reg := range regions {
		if off >= len(bits) {
			break
		}
		lo, hi := off, off+caps[i]
		if hi > len(bits) {
			hi = len(bits)
		}
		off += caps[i]
		g.Go(func() error {
			return embedRegion(out[reg.Start:reg.Stop], f.Body[reg.Start:reg.Stop], bits[lo:hi], r)
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return f.Join(string(out)), nil
}

// embedRegion writes bits into dst, the copy of the region src. A lone
// last bit on a 2-bit codon is paired with an implicit 0.
func embedRegion(dst []byte, src string, bits []byte, r *codon.Rules) error {
	k := 0
	for i := 0; i+3 <= len(src) && k < len(bits); i += 3 {
		_, fam, err := r.Lookup(src[i : i+3])
		if err != nil {
			return err
		}
		switch fam.Bits {
		case 2:
			pair := []byte{bits[k], 0}
			if k+1 < len(bits) {
				pair[1] = bits[k+1]
			}
			k += 2
			copy(dst[i:i+3], fam.Write(pair))
		case 1:
			copy(dst[i:i+3], fam.Write(bits[k:k+1]))
			k++
		}
	}
	return nil
}

package watermark

import (
	"golang.org/x/sync/errgroup"

	"github.com/codonmark/codonmark/codon"
	"github.com/codonmark/codonmark/errs"
	"github.com/codonmark/codonmark/orf"
)

// Extract recovers a framed message from the coding regions of seq.
// TruncatedPayload is returned if the regions hold fewer bits than the
// length header or the declared message.
func (c *Codec) Extract(seq string, frame int, rs orf.RegionSet, gcID int) ([]byte, error) {
	bits, err := c.collect("watermark.Extract", seq, frame, rs, gcID)
	if err != nil {
		return nil, err
	}
	return Unframe(bits)
}

// ExtractUnframed recovers a message of n bytes embedded with
// EmbedUnframed.
func (c *Codec) ExtractUnframed(seq string, n int, frame int, rs orf.RegionSet, gcID int) ([]byte, error) {
	const op = "watermark.ExtractUnframed"
	if n < 0 {
		return nil, errs.New(errs.InvalidArgument, op, "negative message length %d", n)
	}
	bits, err := c.collect(op, seq, frame, rs, gcID)
	if err != nil {
		return nil, err
	}
	if len(bits) < 8*n {
		return nil, errs.New(errs.TruncatedPayload, op, "%d bytes requested, only %d bits collected", n, len(bits))
	}
	return readBytes(pack(bits[:8*n]), 0, n), nil
}

// Bits returns all the bits carried by the regions of seq, in order.
func (c *Codec) Bits(seq string, frame int, rs orf.RegionSet, gcID int) ([]byte, error) {
	return c.collect("watermark.Bits", seq, frame, rs, gcID)
}

func (c *Codec) collect(op, seq string, frame int, rs orf.RegionSet, gcID int) ([]byte, error) {
	f, r, err := c.prepare(op, seq, frame, gcID)
	if err != nil {
		return nil, err
	}
	regions, err := orf.Resolve(rs, len(f.Body))
	if err != nil {
		return nil, err
	}
	parts := make([][]byte, len(regions))
	var g errgroup.Group
	g.SetLimit(c.limit())
	for i, reg := range regions {
		g.Go(func() error {
			bits, err := extractRegion(f.Body[reg.Start:reg.Stop], r)
			parts[i] = bits
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var bits []byte
	for _, p := range parts {
		bits = append(bits, p...)
	}
	log.Debugf("Collected %d bits from %d regions", len(bits), len(regions))
	return bits, nil
}

func extractRegion(region string, r *codon.Rules) ([]byte, error) {
	var bits []byte
	for i := 0; i+3 <= len(region); i += 3 {
		_, fam, err := r.Lookup(region[i : i+3])
		if err != nil {
			return nil, err
		}
		bits = fam.Read(region[i:i+3], bits)
	}
	return bits, nil
}

// Package watermark hides messages in nucleotide sequences by
// synonymous codon substitution.
//
// Only codons inside coding regions (see package orf) carry bits. A
// codon of an amino acid with a complete four codon box carries two
// bits in its third position, a codon of a 2- or 3-fold amino acid
// carries one bit (the first or the second listed codon), other
// codons carry nothing. The translated protein never changes.
//
// The message is framed with a 16-bit big-endian byte length, so
// Extract doesn't need to know the message length. The unframed
// variant (EmbedUnframed, ExtractUnframed) leaves the length to the
// caller.
package watermark

import (
	"runtime"
	"sync/atomic"

	"github.com/op/go-logging"

	"github.com/codonmark/codonmark/bio"
	"github.com/codonmark/codonmark/codon"
	"github.com/codonmark/codonmark/errs"
	"github.com/codonmark/codonmark/gctable"
	"github.com/codonmark/codonmark/orf"
)

// log is the global logging variable.
var log = logging.MustGetLogger("watermark")

// Codec runs the watermark operations against tables from a provider.
// It is safe for concurrent use.
type Codec struct {
	tables  gctable.Provider
	workers atomic.Int32
}

// New creates a codec. Tables are loaded through a read-through cache
// unless p already is one.
func New(p gctable.Provider) *Codec {
	if _, ok := p.(*gctable.Cache); !ok {
		p = gctable.NewCache(p)
	}
	c := &Codec{tables: p}
	c.workers.Store(int32(runtime.GOMAXPROCS(0)))
	return c
}

// SetWorkers sets the number of regions processed concurrently
// (GOMAXPROCS by default). n < 1 means 1. Calls already running keep
// their limit.
func (c *Codec) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	c.workers.Store(int32(n))
}

// limit returns the current number of concurrent regions.
func (c *Codec) limit() int {
	return int(c.workers.Load())
}

// Table returns the genetic code table for gcID.
func (c *Codec) Table(gcID int) (*gctable.Table, error) {
	return c.tables.Load(gcID)
}

// IDs lists the genetic code ids known to the provider, nil if it
// can't list them.
func (c *Codec) IDs() []int {
	return gctable.IDs(c.tables)
}

// prepare normalizes seq, splits the reading frame and loads the
// codon rules for gcID.
func (c *Codec) prepare(op string, seq string, frame, gcID int) (codon.Frame, *codon.Rules, error) {
	f, err := codon.SplitFrame(bio.Normalize(seq), frame)
	if err != nil {
		return codon.Frame{}, nil, errs.Wrap(errs.KindOf(err), op, err, "reading frame %d", frame)
	}
	t, err := c.tables.Load(gcID)
	if err != nil {
		return codon.Frame{}, nil, errs.Wrap(errs.KindOf(err), op, err, "genetic code %d", gcID)
	}
	return f, codon.NewRules(t), nil
}

// FindCodingRegions returns the closed set of coding regions of seq
// in the given frame.
func (c *Codec) FindCodingRegions(seq string, frame, gcID int) (orf.RegionSet, error) {
	if frame < 1 || frame > 3 {
		return orf.RegionSet{}, errs.New(errs.InvalidArgument, "watermark.FindCodingRegions",
			"reading frame %d is not in 1..3", frame)
	}
	t, err := c.tables.Load(gcID)
	if err != nil {
		return orf.RegionSet{}, errs.Wrap(errs.KindOf(err), "watermark.FindCodingRegions", err, "genetic code %d", gcID)
	}
	return orf.Find(seq, frame, t)
}

// Package codon implements codon level operations used by the
// watermark codec: reading frame slicing, synonymous codon families
// and the bit <-> nucleotide tables.
package codon

import (
	"github.com/codonmark/codonmark/errs"
)

// Frame is a normalized sequence split for a reading frame. Prefix is
// the frame offset (frame-1 nucleotides), Body holds whole codons and
// Suffix the remaining sub-codon tail. All the codon indexes used by
// the scanner and the codec are offsets in Body.
type Frame struct {
	Number int
	Prefix string
	Body   string
	Suffix string
}

// SplitFrame splits seq for reading frame 1, 2 or 3.
func SplitFrame(seq string, frame int) (Frame, error) {
	if frame < 1 || frame > 3 {
		return Frame{}, errs.New(errs.InvalidArgument, "codon.SplitFrame", "reading frame %d is not in 1..3", frame)
	}
	off := frame - 1
	if off > len(seq) {
		off = len(seq)
	}
	rest := seq[off:]
	n := len(rest) - len(rest)%3
	return Frame{
		Number: frame,
		Prefix: seq[:off],
		Body:   rest[:n],
		Suffix: rest[n:],
	}, nil
}

// NCodons returns the number of codons in the frame.
func (f Frame) NCodons() int {
	return len(f.Body) / 3
}

// Join reassembles a sequence with body in place of the frame body.
func (f Frame) Join(body string) string {
	return f.Prefix + body + f.Suffix
}

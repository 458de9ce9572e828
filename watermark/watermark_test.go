package watermark

import (
	"bytes"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/op/go-logging"

	"github.com/codonmark/codonmark/bio"
	"github.com/codonmark/codonmark/codon"
	"github.com/codonmark/codonmark/errs"
	"github.com/codonmark/codonmark/gctable"
	"github.com/codonmark/codonmark/orf"
)

const example = "aaaatgttattttaacatcacatgtatgcttagaat"

func init() {
	logging.SetLevel(logging.ERROR, "watermark")
	logging.SetLevel(logging.ERROR, "gctable")
}

var codec = New(gctable.NCBI())

func randomSequence(rnd *rand.Rand, n int) string {
	const letters = "acgt"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rnd.Intn(len(letters))]
	}
	return string(b)
}

func translate(tst *testing.T, seq string, frame, gcID int) string {
	f, err := codon.SplitFrame(seq, frame)
	if err != nil {
		tst.Fatal("Error splitting frame:", err)
	}
	p, err := bio.Translate(f.Body, bio.GeneticCodes[gcID])
	if err != nil {
		tst.Fatal("Error translating:", err)
	}
	return p
}

func TestExampleCapacity(tst *testing.T) {
	rs, err := codec.FindCodingRegions(example, 1, 1)
	if err != nil {
		tst.Fatal("Error finding regions:", err)
	}
	c, err := codec.CapacityForRegions(example, rs, 1, 1)
	if err != nil {
		tst.Fatal("Error computing capacity:", err)
	}
	if c != 8 {
		tst.Error("Expected capacity 8, got", c)
	}
	w, err := codec.Capacity(example, 1, 1)
	if err != nil {
		tst.Fatal("Error computing capacity:", err)
	}
	if w != c {
		tst.Errorf("Whole frame capacity %d != region capacity %d", w, c)
	}
}

func TestEmbedExampleFramed(tst *testing.T) {
	rs, _ := codec.FindCodingRegions(example, 1, 1)
	_, err := codec.Embed(example, []byte("a"), 1, rs, 1)
	if !errs.IsKind(err, errs.CapacityExceeded) {
		tst.Error("Expected CapacityExceeded, got", err)
	}
}

func TestEmbedExampleUnframed(tst *testing.T) {
	rs, _ := codec.FindCodingRegions(example, 1, 1)
	out, err := codec.EmbedUnframed(example, []byte("a"), 1, rs, 1)
	if err != nil {
		tst.Fatal("Error embedding:", err)
	}
	if out != "aaaatgctcttctaacatcacatgtatgcatagaat" {
		tst.Error("Unexpected watermarked sequence:", out)
	}
	if translate(tst, out, 1, 1) != translate(tst, example, 1, 1) {
		tst.Error("Translation changed")
	}
	msg, err := codec.ExtractUnframed(out, 1, 1, rs, 1)
	if err != nil {
		tst.Fatal("Error extracting:", err)
	}
	if string(msg) != "a" {
		tst.Errorf("Expected \"a\", got %q", msg)
	}
	if _, err := codec.ExtractUnframed(out, 2, 1, rs, 1); !errs.IsKind(err, errs.TruncatedPayload) {
		tst.Error("Expected TruncatedPayload, got", err)
	}
}

func TestRoundTrip(tst *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	ids := gctable.IDs(gctable.NCBI())
	runs := 0
	for iter := 0; iter < 200; iter++ {
		seq := randomSequence(rnd, 300+rnd.Intn(900))
		if rnd.Intn(2) == 0 {
			seq = strings.ToUpper(seq)
		}
		frame := 1 + rnd.Intn(3)
		gcID := ids[rnd.Intn(len(ids))]

		rs, err := codec.FindCodingRegions(seq, frame, gcID)
		if err != nil {
			tst.Fatal("Error finding regions:", err)
		}
		c, err := codec.CapacityForRegions(seq, rs, frame, gcID)
		if err != nil {
			tst.Fatal("Error computing capacity:", err)
		}
		if c < HeaderBits {
			continue
		}
		msg := make([]byte, rnd.Intn((c-HeaderBits)/8+1))
		rnd.Read(msg)

		out, err := codec.Embed(seq, msg, frame, rs, gcID)
		if err != nil {
			tst.Fatalf("Error embedding %d bytes into %d bits: %v", len(msg), c, err)
		}
		if len(out) != len(seq) {
			tst.Errorf("Output length %d != input length %d", len(out), len(seq))
		}
		if out != strings.ToLower(out) {
			tst.Error("Output is not lower case")
		}
		if translate(tst, out, frame, gcID) != translate(tst, bio.Normalize(seq), frame, gcID) {
			tst.Errorf("Translation changed (frame=%d, gc=%d)", frame, gcID)
		}
		got, err := codec.Extract(out, frame, rs, gcID)
		if err != nil {
			tst.Fatal("Error extracting:", err)
		}
		if !bytes.Equal(got, msg) {
			tst.Errorf("Round trip failed (frame=%d, gc=%d): %x != %x", frame, gcID, got, msg)
		}
		runs++
	}
	if runs == 0 {
		tst.Error("No sequence had enough capacity")
	}
}

func TestCapacityProperties(tst *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for iter := 0; iter < 100; iter++ {
		seq := randomSequence(rnd, rnd.Intn(1000))
		frame := 1 + rnd.Intn(3)
		gcID := 1 + rnd.Intn(6)
		rs, err := codec.FindCodingRegions(seq, frame, gcID)
		if err != nil {
			tst.Fatal("Error finding regions:", err)
		}
		w, err := codec.Capacity(seq, frame, gcID)
		if err != nil {
			tst.Fatal("Error computing capacity:", err)
		}
		c, err := codec.CapacityForRegions(seq, rs, frame, gcID)
		if err != nil {
			tst.Fatal("Error computing capacity:", err)
		}
		if w != c {
			tst.Errorf("Whole frame capacity %d != region capacity %d", w, c)
		}
		profile, err := codec.Profile(seq, frame, gcID)
		if err != nil {
			tst.Fatal("Error computing profile:", err)
		}
		s := 0
		for _, b := range profile {
			if b < 0 || b > 2 {
				tst.Error("Codon capacity out of range:", b)
			}
			s += b
		}
		if s != c {
			tst.Errorf("Profile sum %d != capacity %d", s, c)
		}
		ncodons := 0
		for _, r := range rs.Regions() {
			ncodons += r.NCodons()
		}
		if c > 2*ncodons {
			tst.Errorf("Capacity %d exceeds two bits per codon (%d codons)", c, ncodons)
		}
		// Additivity over regions.
		parts := 0
		for _, r := range rs.Regions() {
			one := orf.RegionSet{Start: []int{r.Start}, Stop: []int{r.Stop}}
			p, err := codec.CapacityForRegions(seq, one, frame, gcID)
			if err != nil {
				tst.Fatal("Error computing capacity:", err)
			}
			parts += p
		}
		if parts != c {
			tst.Errorf("Sum of region capacities %d != capacity %d", parts, c)
		}
	}
}

func TestEmbedBoundary(tst *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for iter := 0; iter < 50; iter++ {
		seq := randomSequence(rnd, 600)
		rs, _ := codec.FindCodingRegions(seq, 1, 1)
		c, err := codec.CapacityForRegions(seq, rs, 1, 1)
		if err != nil {
			tst.Fatal("Error computing capacity:", err)
		}
		if c%8 != 0 || c == 0 {
			continue
		}
		// Exactly the capacity fits, one byte more doesn't.
		msg := make([]byte, c/8)
		rnd.Read(msg)
		out, err := codec.EmbedUnframed(seq, msg, 1, rs, 1)
		if err != nil {
			tst.Fatal("Error embedding at capacity:", err)
		}
		got, err := codec.ExtractUnframed(out, len(msg), 1, rs, 1)
		if err != nil || !bytes.Equal(got, msg) {
			tst.Error("Round trip at capacity failed:", err)
		}
		if _, err := codec.EmbedUnframed(seq, append(msg, 0), 1, rs, 1); !errs.IsKind(err, errs.CapacityExceeded) {
			tst.Error("Expected CapacityExceeded, got", err)
		}
		return
	}
	tst.Log("No sequence with capacity divisible by 8")
}

func TestEmbedFramedBoundary(tst *testing.T) {
	// atg, 15 x gct (2 bits), ttt (1 bit), taa (1 bit): 32 bits, room
	// for the header and exactly two bytes.
	seq := "atg" + strings.Repeat("gct", 15) + "ttttaa"
	rs, err := codec.FindCodingRegions(seq, 1, 1)
	if err != nil {
		tst.Fatal("Error finding regions:", err)
	}
	c, err := codec.CapacityForRegions(seq, rs, 1, 1)
	if err != nil {
		tst.Fatal("Error computing capacity:", err)
	}
	if c != FramedBits(2) {
		tst.Fatalf("Expected capacity %d, got %d", FramedBits(2), c)
	}
	out, err := codec.Embed(seq, []byte("ok"), 1, rs, 1)
	if err != nil {
		tst.Fatal("Error embedding at capacity:", err)
	}
	if translate(tst, out, 1, 1) != translate(tst, seq, 1, 1) {
		tst.Error("Translation changed")
	}
	msg, err := codec.Extract(out, 1, rs, 1)
	if err != nil {
		tst.Fatal("Error extracting:", err)
	}
	if string(msg) != "ok" {
		tst.Errorf("Expected \"ok\", got %q", msg)
	}
	if _, err := codec.Embed(seq, []byte("ok!"), 1, rs, 1); !errs.IsKind(err, errs.CapacityExceeded) {
		tst.Error("Expected CapacityExceeded, got", err)
	}
	// An empty framed message is just the header.
	out, err = codec.Embed(seq, nil, 1, rs, 1)
	if err != nil {
		tst.Fatal("Error embedding empty message:", err)
	}
	if msg, err = codec.Extract(out, 1, rs, 1); err != nil || len(msg) != 0 {
		tst.Errorf("Expected empty message, got %q (%v)", msg, err)
	}
}

func TestLoneLastBit(tst *testing.T) {
	// atg gct taa: two bits in gct, one in taa; an odd payload ends on
	// a 2-bit codon when only one bit is left.
	seq := "atggcttaa"
	rs, _ := codec.FindCodingRegions(seq, 1, 1)
	out, err := codec.embed("test", seq, []byte{1}, 1, rs, 1)
	if err != nil {
		tst.Fatal("Error embedding:", err)
	}
	if out != "atggcgtaa" {
		tst.Error("Expected atggcgtaa, got", out)
	}
}

func TestExtractTruncated(tst *testing.T) {
	rs, _ := codec.FindCodingRegions(example, 1, 1)
	// 8 bits, no room for the header.
	if _, err := codec.Extract(example, 1, rs, 1); !errs.IsKind(err, errs.TruncatedPayload) {
		tst.Error("Expected TruncatedPayload, got", err)
	}
	// Header declaring more bytes than available.
	bits := append(BytesToBits([]byte{0, 5}), 1, 0, 1)
	if _, err := Unframe(bits); !errs.IsKind(err, errs.TruncatedPayload) {
		tst.Error("Expected TruncatedPayload, got", err)
	}
}

func TestPayload(tst *testing.T) {
	bits, err := Frame([]byte("hi"))
	if err != nil {
		tst.Fatal("Error framing:", err)
	}
	if len(bits) != FramedBits(2) {
		tst.Error("Unexpected payload length:", len(bits))
	}
	if !bytes.Equal(BitsToBytes(bits[:HeaderBits]), []byte{0, 2}) {
		tst.Error("Wrong header:", bits[:HeaderBits])
	}
	msg, err := Unframe(append(bits, 1, 1, 0))
	if err != nil || string(msg) != "hi" {
		tst.Errorf("Expected \"hi\", got %q (%v)", msg, err)
	}
	if _, err := Frame(make([]byte, MaxMessageLen+1)); !errs.IsKind(err, errs.CapacityExceeded) {
		tst.Error("Expected CapacityExceeded, got", err)
	}
	if !bytes.Equal(BytesToBits([]byte{0x61}), []byte{0, 1, 1, 0, 0, 0, 0, 1}) {
		tst.Error("Wrong bits for 0x61")
	}
	if b := BitsToBytes([]byte{0, 1, 1, 0, 0, 0, 0, 1, 1, 1}); !bytes.Equal(b, []byte{0x61}) {
		tst.Errorf("Expected 61, got %x", b)
	}
	if len(BytesToBits(nil)) != 0 || len(BitsToBytes(nil)) != 0 {
		tst.Error("Expected no bits for an empty input")
	}
	// Header is big-endian: 258 bytes -> 00000001 00000010.
	bits, err = Frame(make([]byte, 258))
	if err != nil {
		tst.Fatal("Error framing:", err)
	}
	if !bytes.Equal(bits[:HeaderBits], []byte{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0}) {
		tst.Error("Wrong header for 258 bytes:", bits[:HeaderBits])
	}
}

func TestErrorOp(tst *testing.T) {
	rs, _ := codec.FindCodingRegions(example, 1, 1)
	_, err := codec.Embed(example, []byte("a"), 4, rs, 1)
	if !errs.IsKind(err, errs.InvalidArgument) || !strings.HasPrefix(err.Error(), "watermark.Embed: ") {
		tst.Error("Expected InvalidArgument from watermark.Embed, got", err)
	}
	_, err = codec.Extract(example, 1, rs, 7)
	if !errs.IsKind(err, errs.NotFound) || !strings.HasPrefix(err.Error(), "watermark.Extract: ") {
		tst.Error("Expected NotFound from watermark.Extract, got", err)
	}
	if errs.KindOf(err) != errs.NotFound {
		tst.Error("Expected outer kind NotFound, got", errs.KindOf(err))
	}
}

func TestSetWorkersConcurrent(tst *testing.T) {
	c := New(gctable.NCBI())
	rnd := rand.New(rand.NewSource(5))
	seq := randomSequence(rnd, 2000)
	rs, _ := c.FindCodingRegions(seq, 1, 1)
	want, err := c.CapacityForRegions(seq, rs, 1, 1)
	if err != nil {
		tst.Fatal("Error computing capacity:", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.SetWorkers(i)
			got, err := c.CapacityForRegions(seq, rs, 1, 1)
			if err != nil || got != want {
				tst.Errorf("Capacity %d != %d with %d workers (%v)", got, want, i, err)
			}
		}()
	}
	wg.Wait()
}

func TestEmptySequence(tst *testing.T) {
	rs, err := codec.FindCodingRegions("", 1, 1)
	if err != nil || rs.Len() != 0 {
		tst.Error("Expected no regions, got", rs, err)
	}
	c, err := codec.Capacity("", 2, 1)
	if err != nil || c != 0 {
		tst.Error("Expected zero capacity, got", c, err)
	}
	out, err := codec.Embed("", nil, 1, rs, 1)
	if !errs.IsKind(err, errs.CapacityExceeded) {
		tst.Error("Expected CapacityExceeded for the header, got", out, err)
	}
}

func TestErrors(tst *testing.T) {
	rs, _ := codec.FindCodingRegions(example, 1, 1)
	if _, err := codec.Capacity(example, 4, 1); !errs.IsKind(err, errs.InvalidArgument) {
		tst.Error("Expected InvalidArgument for frame 4, got", err)
	}
	if _, err := codec.FindCodingRegions(example, 0, 1); !errs.IsKind(err, errs.InvalidArgument) {
		tst.Error("Expected InvalidArgument for frame 0, got", err)
	}
	if _, err := codec.Capacity(example, 1, 7); !errs.IsKind(err, errs.NotFound) {
		tst.Error("Expected NotFound for code 7, got", err)
	}
	bad := orf.RegionSet{Start: []int{4}, Stop: []int{16}}
	if _, err := codec.CapacityForRegions(example, bad, 1, 1); !errs.IsKind(err, errs.InvalidArgument) {
		tst.Error("Expected InvalidArgument for unaligned regions, got", err)
	}
	if _, err := codec.Embed(example, []byte("a"), 1, bad, 1); !errs.IsKind(err, errs.InvalidArgument) {
		tst.Error("Expected InvalidArgument for unaligned regions, got", err)
	}
	if _, err := codec.ExtractUnframed(example, -1, 1, rs, 1); !errs.IsKind(err, errs.InvalidArgument) {
		tst.Error("Expected InvalidArgument for negative length, got", err)
	}
}

func TestParallelMatchesSequential(tst *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	seq := randomSequence(rnd, 3000)
	rs, _ := codec.FindCodingRegions(seq, 1, 1)
	c, _ := codec.CapacityForRegions(seq, rs, 1, 1)
	if c < HeaderBits {
		tst.Fatal("Not enough capacity:", c)
	}
	msg := make([]byte, (c-HeaderBits)/8)
	rnd.Read(msg)

	seqc := New(gctable.NCBI())
	seqc.SetWorkers(1)
	a, err := codec.Embed(seq, msg, 1, rs, 1)
	if err != nil {
		tst.Fatal("Error embedding:", err)
	}
	b, err := seqc.Embed(seq, msg, 1, rs, 1)
	if err != nil {
		tst.Fatal("Error embedding:", err)
	}
	if a != b {
		tst.Error("Parallel and sequential embedding differ")
	}
}

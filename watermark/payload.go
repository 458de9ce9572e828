package watermark

import (
	"github.com/yyyoichi/bitstream-go"

	"github.com/codonmark/codonmark/errs"
)

const (
	// HeaderBits is the size of the message length header.
	HeaderBits = 16
	// MaxMessageLen is the longest message which can be framed.
	MaxMessageLen = 1<<HeaderBits - 1
)

// FramedBits returns the number of bits needed to embed a framed
// message of n bytes.
func FramedBits(n int) int {
	return HeaderBits + 8*n
}

// unpack reads all the bits of r as 0/1 values.
func unpack(r *bitstream.BitReader[uint8]) []byte {
	bits := make([]byte, 0, r.Bits())
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return bits
		}
		if bit {
			bits = append(bits, 1)
		} else {
			bits = append(bits, 0)
		}
	}
}

// pack returns a reader over 0/1 values.
func pack(bits []byte) *bitstream.BitReader[uint8] {
	w := bitstream.NewBitWriter[uint8](0, 0)
	for _, bit := range bits {
		w.WriteBool(bit&1 == 1)
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(w.Bits())
	return r
}

// readBytes reads n bytes starting at byte block off.
func readBytes(r *bitstream.BitReader[uint8], off, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = r.Read8R(8, off+i)
	}
	return b
}

// BytesToBits unpacks bytes into bits (one 0/1 value per byte),
// most significant bit first.
func BytesToBits(b []byte) []byte {
	return unpack(bitstream.NewBitReader(b, 0, 0))
}

// BitsToBytes packs bits, most significant bit first. A trailing
// incomplete byte is dropped.
func BitsToBytes(bits []byte) []byte {
	return readBytes(pack(bits), 0, len(bits)/8)
}

// Frame returns the payload bits of msg: the 16-bit big-endian byte
// length followed by the message bits.
func Frame(msg []byte) ([]byte, error) {
	if len(msg) > MaxMessageLen {
		return nil, errs.New(errs.CapacityExceeded, "watermark.Frame",
			"message of %d bytes is longer than %d bytes", len(msg), MaxMessageLen)
	}
	w := bitstream.NewBitWriter[uint8](0, 0)
	w.Write16(0, HeaderBits, uint16(len(msg)))
	for _, c := range msg {
		w.Write8(0, 8, c)
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(w.Bits())
	return unpack(r), nil
}

// Unframe decodes a framed payload from collected bits. Bits past the
// declared length are ignored.
func Unframe(bits []byte) ([]byte, error) {
	const op = "watermark.Unframe"
	if len(bits) < HeaderBits {
		return nil, errs.New(errs.TruncatedPayload, op, "%d bits collected, no room for the length header", len(bits))
	}
	r := pack(bits)
	n := int(r.Read16R(HeaderBits, 0))
	if need := FramedBits(n); need > len(bits) {
		return nil, errs.New(errs.TruncatedPayload, op,
			"header declares %d bytes (%d bits), only %d bits collected", n, need, len(bits))
	}
	// The message starts right after the header, at byte block 2.
	return readBytes(r, HeaderBits/8, n), nil
}

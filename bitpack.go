package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// bitPacker accumulates Codes into a byte slice, most significant bit first.
// It counts every bit written so that the padding added by finish can be
// told apart from data.
type bitPacker struct {
	buf     bytes.Buffer
	w       *bitio.Writer
	numBits uint64
}

func newBitPacker(expectBits uint64) *bitPacker {
	p := &bitPacker{}
	p.buf.Grow(int(payloadLen(expectBits)))
	p.w = bitio.NewWriter(&p.buf)
	return p
}

func (p *bitPacker) writeCode(hc Code) error {
	if err := p.w.WriteBits(hc.Bits, hc.Size); err != nil {
		return err
	}
	p.numBits += uint64(hc.Size)
	return nil
}

// finish zero-pads the final partial byte and returns the packed bytes along
// with the number of significant bits in them.
func (p *bitPacker) finish() ([]byte, uint64, error) {
	if err := p.w.Close(); err != nil {
		return nil, 0, err
	}
	out := p.buf.Bytes()
	if got, want := uint64(len(out)), payloadLen(p.numBits); got != want {
		return nil, 0, fmt.Errorf("huffman: packed %d bits into %d bytes, expected %d", p.numBits, got, want)
	}
	return out, p.numBits, nil
}

// bitUnpacker yields exactly numBits bits from a packed payload and then
// stops, regardless of any padding that follows.
type bitUnpacker struct {
	r         *bitio.Reader
	remaining uint64
}

func newBitUnpacker(payload []byte, numBits uint64) *bitUnpacker {
	return &bitUnpacker{
		r:         bitio.NewReader(bytes.NewReader(payload)),
		remaining: numBits,
	}
}

// next returns the next bit.  ok is false once all significant bits have been
// consumed.
func (u *bitUnpacker) next() (bit uint64, ok bool, err error) {
	if u.remaining == 0 {
		return 0, false, nil
	}
	b, err := u.r.ReadBool()
	if err != nil {
		return 0, false, fmt.Errorf("%w: %d bits missing from payload", ErrTruncatedStream, u.remaining)
	}
	u.remaining--
	if b {
		return 1, true, nil
	}
	return 0, true, nil
}

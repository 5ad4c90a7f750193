package huffman

import (
	"fmt"
	"math"
)

// Compress Huffman-codes input and returns the binary Container.  The whole
// input is scanned for frequencies before anything is encoded.
//
// Compress fails with ErrEmptyInput if input is empty, and with
// ErrInputTooLarge if a count or the encoded bit length exceeds 32 bits.
func Compress(input []byte) ([]byte, error) {
	c, _, err := compress(input)
	if err != nil {
		return nil, err
	}
	return c.MarshalBinary()
}

// Decompress reverses Compress.  Malformed containers are reported with
// ErrEmptyTable, ErrTruncatedStream or ErrCorruptStream; no partial output is
// ever returned.
func Decompress(data []byte) ([]byte, error) {
	c, err := ParseContainer(data)
	if err != nil {
		return nil, err
	}

	var d Decoder
	if err := d.Init(c.Table); err != nil {
		return nil, err
	}
	log.Debugf("decompress: %d symbols, %d bits, tree depth %d", len(c.Table), c.NumBits, d.Tree().Depth())

	return d.Decode(c.Payload, uint64(c.NumBits))
}

// Stats summarizes what Compress does to one input.
type Stats struct {
	InputBytes     int
	NumSymbols     int
	EncodedBits    uint64
	ContainerBytes int
	MinCodeSize    byte
	MaxCodeSize    byte
}

// Ratio returns the container size as a fraction of the input size.
func (s Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.ContainerBytes) / float64(s.InputBytes)
}

// String returns a one-line human-readable summary.
func (s Stats) String() string {
	return fmt.Sprintf("%d -> %d bytes (%.1f%%), %d symbols, codes of %d .. %d bits",
		s.InputBytes, s.ContainerBytes, 100*s.Ratio(), s.NumSymbols, s.MinCodeSize, s.MaxCodeSize)
}

// Analyze compresses input and reports statistics about the result.
func Analyze(input []byte) (Stats, error) {
	c, e, err := compress(input)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		InputBytes:     len(input),
		NumSymbols:     e.NumSymbols(),
		EncodedBits:    uint64(c.NumBits),
		ContainerBytes: c.Size(),
		MinCodeSize:    e.MinSize(),
		MaxCodeSize:    e.MaxSize(),
	}, nil
}

func compress(input []byte) (Container, *Encoder, error) {
	ft, err := CountFrequencies(input)
	if err != nil {
		return Container{}, nil, err
	}

	var e Encoder
	if err := e.Init(ft); err != nil {
		return Container{}, nil, err
	}

	numBits, err := e.EncodedBits(input)
	if err != nil {
		return Container{}, nil, err
	}
	if numBits > math.MaxUint32 {
		return Container{}, nil, fmt.Errorf("%w: %d encoded bits, max %d", ErrInputTooLarge, numBits, uint64(math.MaxUint32))
	}

	payload, numBits, err := e.EncodeBytes(input)
	if err != nil {
		return Container{}, nil, err
	}
	log.Debugf("compress: %d bytes, %d symbols, %d bits", len(input), len(ft), numBits)

	return Container{
		Table:   ft,
		NumBits: uint32(numBits),
		Payload: payload,
	}, &e, nil
}

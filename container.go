package huffman

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Container is the compressed artifact: the frequency table needed to rebuild
// the Huffman tree, followed by the packed bitstream.
//
// The binary form, with every integer big-endian, is:
//
//     entryCount    uint32
//     entries       entryCount × (symbol uint8, count uint32)
//     numberOfBits  uint32
//     payload       ceil(numberOfBits / 8) bytes, MSB first, zero-padded
//
type Container struct {
	Table   FrequencyTable
	NumBits uint32
	Payload []byte
}

const (
	headerSize = 4
	entrySize  = 1 + 4
)

// ParseContainer decodes the binary form of a Container.
func ParseContainer(data []byte) (Container, error) {
	var c Container
	err := c.UnmarshalBinary(data)
	return c, err
}

// Size returns the length of the binary form.
func (c Container) Size() int {
	return headerSize + entrySize*len(c.Table) + headerSize + len(c.Payload)
}

// MarshalBinary encodes the Container.
func (c Container) MarshalBinary() ([]byte, error) {
	if len(c.Table) == 0 {
		return nil, ErrEmptyTable
	}
	if len(c.Table) > NumSymbols {
		return nil, fmt.Errorf("huffman: %d table entries, max %d", len(c.Table), NumSymbols)
	}
	if want := payloadLen(uint64(c.NumBits)); uint64(len(c.Payload)) != want {
		return nil, fmt.Errorf("huffman: payload holds %d bytes, %d bits need %d", len(c.Payload), c.NumBits, want)
	}

	out := make([]byte, 0, c.Size())
	out = binary.BigEndian.AppendUint32(out, uint32(len(c.Table)))
	for _, entry := range c.Table {
		out = append(out, byte(entry.Symbol))
		out = binary.BigEndian.AppendUint32(out, entry.Count)
	}
	out = binary.BigEndian.AppendUint32(out, c.NumBits)
	out = append(out, c.Payload...)
	return out, nil
}

// UnmarshalBinary decodes the binary form of a Container.  It fails with
// ErrEmptyTable if no entries are declared, ErrTruncatedStream if data ends
// before the header says it should, and ErrCorruptStream if data is
// self-inconsistent (repeated symbols, zero counts, non-zero padding, or
// bytes following the payload).
func (c *Container) UnmarshalBinary(data []byte) error {
	r := containerReader{data: data}

	entryCount, err := r.uint32("entry count")
	if err != nil {
		return err
	}
	if entryCount == 0 {
		return ErrEmptyTable
	}
	if entryCount > NumSymbols {
		return fmt.Errorf("%w: %d table entries, max %d", ErrCorruptStream, entryCount, NumSymbols)
	}

	table := make(FrequencyTable, entryCount)
	for i := range table {
		symbol, err := r.bytes(1, "table entry")
		if err != nil {
			return err
		}
		count, err := r.uint32("table entry")
		if err != nil {
			return err
		}
		table[i] = Entry{Symbol(symbol[0]), count}
	}
	if err := table.Validate(); err != nil {
		return err
	}
	if total := table.Total(); total > math.MaxUint32 {
		return fmt.Errorf("%w: counts sum to %d, max %d", ErrCorruptStream, total, uint64(math.MaxUint32))
	}

	numBits, err := r.uint32("bit count")
	if err != nil {
		return err
	}

	n := payloadLen(uint64(numBits))
	if uint64(r.remaining()) < n {
		return fmt.Errorf("%w: payload of %d bits needs %d bytes, have %d", ErrTruncatedStream, numBits, n, r.remaining())
	}
	payload, _ := r.bytes(int(n), "payload")
	if r.remaining() != 0 {
		return fmt.Errorf("%w: %d unexpected bytes after payload", ErrCorruptStream, r.remaining())
	}
	if n != 0 && payload[n-1]&padMask(uint64(numBits)) != 0 {
		return fmt.Errorf("%w: non-zero padding bits", ErrCorruptStream)
	}

	*c = Container{
		Table:   table,
		NumBits: numBits,
		Payload: payload,
	}
	return nil
}

type containerReader struct {
	data []byte
	off  int
}

func (r *containerReader) remaining() int {
	return len(r.data) - r.off
}

func (r *containerReader) bytes(n int, what string) ([]byte, error) {
	if r.remaining() < n {
		return nil, fmt.Errorf("%w: %s at offset %d needs %d bytes, have %d", ErrTruncatedStream, what, r.off, n, r.remaining())
	}
	out := r.data[r.off : r.off+n]
	r.off += n
	return out, nil
}

func (r *containerReader) uint32(what string) (uint32, error) {
	raw, err := r.bytes(4, what)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(raw), nil
}

package huffman

import (
	"fmt"
	"math"
	"sort"
)

// Symbol represents one byte of input.  The alphabet is always the 256 byte
// values; multi-byte characters are coded as their constituent bytes.
type Symbol byte

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// Entry is one row of a FrequencyTable.
type Entry struct {
	Symbol Symbol
	Count  uint32
}

// FrequencyTable lists the number of occurrences of each Symbol that appears
// in some input.  Symbols that never occur are omitted.  The order of the
// entries is preserved by the container format but carries no meaning: the
// Huffman tree built from a table depends only on its (Symbol, Count) pairs.
type FrequencyTable []Entry

// CountFrequencies scans input and returns its frequency table, with entries
// in ascending Symbol order.
func CountFrequencies(input []byte) (FrequencyTable, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}
	if uint64(len(input)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes of input, max %d", ErrInputTooLarge, len(input), uint64(math.MaxUint32))
	}

	var counts [NumSymbols]uint32
	for _, b := range input {
		counts[b]++
	}

	ft := make(FrequencyTable, 0, NumSymbols)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if counts[symbol] != 0 {
			ft = append(ft, Entry{Symbol(symbol), counts[symbol]})
		}
	}
	return ft, nil
}

// Total returns the sum of all counts, i.e. the length of the input the table
// describes.
func (ft FrequencyTable) Total() uint64 {
	var sum uint64
	for _, entry := range ft {
		sum += uint64(entry.Count)
	}
	return sum
}

// Validate checks that the table can describe some non-empty input: it must
// have at least one entry, no zero counts, and no repeated symbols.
func (ft FrequencyTable) Validate() error {
	if len(ft) == 0 {
		return ErrEmptyTable
	}
	if len(ft) > NumSymbols {
		return fmt.Errorf("%w: %d table entries, max %d", ErrCorruptStream, len(ft), NumSymbols)
	}

	var seen [NumSymbols]bool
	for _, entry := range ft {
		if entry.Count == 0 {
			return fmt.Errorf("%w: symbol 0x%02x has a count of zero", ErrCorruptStream, byte(entry.Symbol))
		}
		if seen[entry.Symbol] {
			return fmt.Errorf("%w: symbol 0x%02x appears more than once", ErrCorruptStream, byte(entry.Symbol))
		}
		seen[entry.Symbol] = true
	}
	return nil
}

// sorted returns a copy of the table in ascending Symbol order.
func (ft FrequencyTable) sorted() FrequencyTable {
	out := make(bySymbol, len(ft))
	copy(out, ft)
	out.Sort()
	return FrequencyTable(out)
}

// type bySymbol {{{

type bySymbol []Entry

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i].Symbol < list[j].Symbol
}

var _ sort.Interface = bySymbol(nil)

// }}}

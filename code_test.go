package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode_String(t *testing.T) {
	require.Equal(t, `""`, Code{}.String())
	require.Equal(t, `"0"`, MakeCode(1, 0).String())
	require.Equal(t, `"0110"`, MakeCode(4, 6).String())
	require.Equal(t, `"111"`, MakeCode(3, 7).String())
}

func TestParseCode(t *testing.T) {
	hc, err := ParseCode("0110")
	require.NoError(t, err)
	require.Equal(t, MakeCode(4, 6), hc)
	require.Equal(t, uint64(0), hc.Bit(0))
	require.Equal(t, uint64(1), hc.Bit(1))
	require.Equal(t, uint64(1), hc.Bit(2))
	require.Equal(t, uint64(0), hc.Bit(3))

	hc, err = ParseCode("")
	require.NoError(t, err)
	require.Equal(t, Code{}, hc)

	_, err = ParseCode("01x")
	require.ErrorIs(t, err, ErrInvalidBit)

	_, err = ParseCode(string(make([]byte, 65)))
	require.Error(t, err)
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MakeCode(4, 0xb) // "1011"

	require.True(t, hc.HasPrefix(Code{}))
	require.True(t, hc.HasPrefix(MakeCode(1, 1)))
	require.True(t, hc.HasPrefix(MakeCode(3, 5)))
	require.True(t, hc.HasPrefix(hc))
	require.False(t, hc.HasPrefix(MakeCode(1, 0)))
	require.False(t, hc.HasPrefix(MakeCode(3, 4)))
	require.False(t, hc.HasPrefix(MakeCode(5, 0x16)))
}

func TestCodeTable_String(t *testing.T) {
	table := CodeTable{'b': MakeCode(2, 2), 'a': MakeCode(1, 0)}
	require.Equal(t, `{0x61:"0" 0x62:"10"}`, table.String())
}

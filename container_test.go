package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func scenarioContainer() []byte {
	return []byte{
		0x00, 0x00, 0x00, 0x04,
		'a', 0x00, 0x00, 0x00, 0x04,
		'b', 0x00, 0x00, 0x00, 0x03,
		'c', 0x00, 0x00, 0x00, 0x02,
		'd', 0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x13,
		0x0a, 0xbf, 0xc0,
	}
}

func TestContainer_MarshalBinary(t *testing.T) {
	c := Container{
		Table:   FrequencyTable{{'a', 4}, {'b', 3}, {'c', 2}, {'d', 1}},
		NumBits: 19,
		Payload: []byte{0x0a, 0xbf, 0xc0},
	}
	raw, err := c.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, scenarioContainer(), raw)
	require.Equal(t, len(raw), c.Size())

	_, err = Container{}.MarshalBinary()
	require.ErrorIs(t, err, ErrEmptyTable)

	c.NumBits = 25
	_, err = c.MarshalBinary()
	require.Error(t, err)
}

func TestContainer_UnmarshalBinary(t *testing.T) {
	c, err := ParseContainer(scenarioContainer())
	require.NoError(t, err)
	require.Equal(t, FrequencyTable{{'a', 4}, {'b', 3}, {'c', 2}, {'d', 1}}, c.Table)
	require.Equal(t, uint32(19), c.NumBits)
	require.Equal(t, []byte{0x0a, 0xbf, 0xc0}, c.Payload)
}

func TestContainer_EntryOrderRoundTrips(t *testing.T) {
	in := Container{
		Table:   FrequencyTable{{'z', 1}, {'a', 7}, {'m', 2}},
		NumBits: 13,
		Payload: []byte{0x00, 0x00},
	}
	raw, err := in.MarshalBinary()
	require.NoError(t, err)

	out, err := ParseContainer(raw)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestContainer_Truncated(t *testing.T) {
	raw := scenarioContainer()
	for n := 0; n < len(raw); n++ {
		_, err := ParseContainer(raw[:n])
		require.ErrorIs(t, err, ErrTruncatedStream, "prefix of %d bytes", n)
	}
}

func TestContainer_Corrupt(t *testing.T) {
	type testRow struct {
		name   string
		mutate func(raw []byte) []byte
		err    error
	}

	testData := [...]testRow{
		{
			name:   "zero entries",
			mutate: func(raw []byte) []byte { return []byte{0, 0, 0, 0, 0, 0, 0, 0} },
			err:    ErrEmptyTable,
		},
		{
			name:   "too many entries",
			mutate: func(raw []byte) []byte { raw[2] = 0x01; raw[3] = 0x01; return raw },
			err:    ErrCorruptStream,
		},
		{
			name:   "repeated symbol",
			mutate: func(raw []byte) []byte { raw[9] = 'a'; return raw },
			err:    ErrCorruptStream,
		},
		{
			name:   "zero count",
			mutate: func(raw []byte) []byte { raw[13] = 0; return raw },
			err:    ErrCorruptStream,
		},
		{
			name:   "trailing byte",
			mutate: func(raw []byte) []byte { return append(raw, 0) },
			err:    ErrCorruptStream,
		},
		{
			name:   "non-zero padding",
			mutate: func(raw []byte) []byte { raw[len(raw)-1] |= 0x01; return raw },
			err:    ErrCorruptStream,
		},
		{
			name:   "bit count too large",
			mutate: func(raw []byte) []byte { raw[27] = 0x20; return raw },
			err:    ErrTruncatedStream,
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := ParseContainer(row.mutate(scenarioContainer()))
			require.ErrorIs(t, err, row.err)
		})
	}
}

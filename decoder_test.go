package huffman

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"
)

func makeTestDecoder() Decoder {
	var d Decoder
	err := d.Init(FrequencyTable{{0, 5}, {1, 9}, {2, 12}, {3, 13}, {4, 16}, {5, 45}})
	if err != nil {
		panic(err)
	}
	return d
}

func TestDecoder_Dump(t *testing.T) {
	d := makeTestDecoder()

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tWeight() = 100\n",
		"\tDepth() = 4\n",
		"\tRoot() = 10\n",
		"\tnode[0] = leaf(0x00, 5)\n",
		"\tnode[1] = leaf(0x01, 9)\n",
		"\tnode[2] = leaf(0x02, 12)\n",
		"\tnode[3] = leaf(0x03, 13)\n",
		"\tnode[4] = leaf(0x04, 16)\n",
		"\tnode[5] = leaf(0x05, 45)\n",
		"\tnode[6] = internal(14, 0, 1)\n",
		"\tnode[7] = internal(25, 2, 3)\n",
		"\tnode[8] = internal(30, 6, 4)\n",
		"\tnode[9] = internal(55, 7, 8)\n",
		"\tnode[10] = internal(100, 5, 9)\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestDecoder_DecodeString(t *testing.T) {
	d := makeTestDecoder()

	type testRow struct {
		bits   string
		expect []byte
		err    error
	}

	testData := [...]testRow{
		{bits: "", expect: []byte{}},
		{bits: "0", expect: []byte{5}},
		{bits: "1100", expect: []byte{0}},
		{bits: "1101", expect: []byte{1}},
		{bits: "0100101", expect: []byte{5, 2, 3}},
		{bits: "111000", expect: []byte{4, 5, 5, 5}},
		{bits: "11", err: ErrCorruptStream},
		{bits: "0102", err: ErrInvalidBit},
		{bits: "0 1", err: ErrInvalidBit},
	}
	for _, row := range testData {
		t.Run(strconv.Quote(row.bits), func(t *testing.T) {
			out, err := d.DecodeString(row.bits)
			if row.err != nil {
				if !errors.Is(err, row.err) {
					t.Errorf("expected error %v, got %v", row.err, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !bytes.Equal(row.expect, out) {
				t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", row.expect, out)
			}
		})
	}
}

func TestDecoder_Decode(t *testing.T) {
	var d Decoder
	if err := d.Init(FrequencyTable{{'d', 1}, {'c', 2}, {'b', 3}, {'a', 4}}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	payload := []byte{0x0a, 0xbf, 0xc0}

	out, err := d.Decode(payload, 19)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(out) != "aaaabbbccd" {
		t.Errorf("expected %q, got %q", "aaaabbbccd", out)
	}

	// Stops inside the code for 'd'.
	if _, err := d.Decode(payload, 18); !errors.Is(err, ErrCorruptStream) {
		t.Errorf("18 bits: expected ErrCorruptStream, got %v", err)
	}

	// Ends on a code boundary, but one symbol short of the table's total.
	if _, err := d.Decode(payload, 16); !errors.Is(err, ErrCorruptStream) {
		t.Errorf("16 bits: expected ErrCorruptStream, got %v", err)
	}

	// The padding holds no codes, so reading into it must be refused.
	if _, err := d.Decode(payload[:2], 19); !errors.Is(err, ErrTruncatedStream) {
		t.Errorf("short payload: expected ErrTruncatedStream, got %v", err)
	}
}

func TestDecoder_SingleSymbol(t *testing.T) {
	var d Decoder
	if err := d.Init(FrequencyTable{{0x41, 3}}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tWeight() = 3\n",
		"\tDepth() = 0\n",
		"\tRoot() = 0\n",
		"\tnode[0] = leaf(0x41, 3)\n",
		"}\n",
	}, "")
	var buf strings.Builder
	_, _ = d.Dump(&buf)
	if actualDump := buf.String(); expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	out, err := d.Decode([]byte{0x00}, 3)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(out) != "AAA" {
		t.Errorf("expected %q, got %q", "AAA", out)
	}

	// With no branches, every bit is one occurrence, whatever its value.
	out, err = d.DecodeString("010")
	if err != nil {
		t.Fatalf("DecodeString failed: %v", err)
	}
	if string(out) != "AAA" {
		t.Errorf("expected %q, got %q", "AAA", out)
	}

	if _, err := d.Decode([]byte{0x00}, 4); !errors.Is(err, ErrCorruptStream) {
		t.Errorf("expected ErrCorruptStream for 4 bits, got %v", err)
	}
}

package usage

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

const imageSize = 0x8000

func TestParse(t *testing.T) {
	input := `00:0100..00:0103: Data
00:0150..00:0152: Code
01:4000..01:4001: Addr
01:4010..01:4011: Pointer
`
	m, err := Parse(strings.NewReader(input), imageSize)
	assert.NoError(t, err)
	assert.Equal(t, imageSize, len(m))

	assert.Equal(t, Unknown, m.At(0x00FF))
	for loc := 0x100; loc <= 0x103; loc++ {
		assert.Equal(t, Data, m.At(loc))
	}
	assert.Equal(t, Unknown, m.At(0x104))
	assert.Equal(t, Code, m.At(0x152))
	assert.Equal(t, Pointer, m.At(0x4000))
	assert.Equal(t, Pointer, m.At(0x4001))
	assert.Equal(t, Pointer, m.At(0x4011))
	assert.Equal(t, Unknown, m.At(imageSize+10))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{"malformed line", "00:0100-00:0103: Data\n", "invalid line"},
		{"short address", "00:100..00:0103: Data\n", "invalid line"},
		{"invalid kind", "00:0100..00:0103: Graphics\n", "invalid kind 'Graphics'"},
		{"blank line", "\n", "invalid line ''"},
		{"kind with trailing space", "00:0100..00:0103: Data \n", "invalid kind 'Data '"},
		{"inverted range", "01:4010..01:4000: Code\n", "invalid range 01:4010..01:4000"},
		{"inverted across banks", "01:4000..00:3fff: Code\n", "invalid range"},
		{"outside of image", "02:4000..02:4001: Code\n", "outside of the image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(strings.NewReader("00:0000..00:0001: Code\n"+tt.input), imageSize)
			assert.True(t, m == nil)
			assert.True(t, errors.Is(err, ErrFormat))
			assert.ErrorContains(t, err, tt.reason)

			var formatErr *FormatError
			assert.True(t, errors.As(err, &formatErr))
			assert.Equal(t, 2, formatErr.Line)
		})
	}
}

func TestSummarize(t *testing.T) {
	dump := make([]byte, 0x4004)
	dump[0x0001] = dumpData
	dump[0x0002] = dumpData
	dump[0x0003] = dumpCode | dumpData
	dump[0x3FFF] = dumpCode
	dump[0x4000] = dumpCode
	dump[0x4001] = dumpCode | 0x04

	ranges, counts := Summarize(dump)
	assert.Equal(t, Counts{Unknown: len(dump) - 6, Data: 2, Code: 4}, counts)

	var buf bytes.Buffer
	assert.NoError(t, WriteRanges(&buf, ranges))

	expected := `00:0000..00:0000: Unknown
00:0001..00:0002: Data
00:0003..00:0003: Code
00:0004..00:3ffe: Unknown
00:3fff..01:4001: Code
01:4002..01:4003: Unknown
`
	assert.Equal(t, expected, buf.String())

	// the summary must be readable as usage file again
	m, err := Parse(&buf, len(dump))
	assert.NoError(t, err)
	assert.Equal(t, Code, m.At(0x4001))
	assert.Equal(t, Data, m.At(0x0002))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Addr", Pointer.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

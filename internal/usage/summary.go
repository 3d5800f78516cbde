package usage

import (
	"fmt"
	"io"

	"github.com/retroenv/gbdisasm/internal/banking"
)

// emulator usage dump flags.
const (
	dumpCode = 1 << 0
	dumpData = 1 << 1
)

// Range is an inclusive run of locations that share the same kind.
type Range struct {
	Start int
	End   int
	Kind  Kind
}

// String returns the range in the format that Parse reads.
func (r Range) String() string {
	return fmt.Sprintf("%s..%s: %s", banking.Format(r.Start), banking.Format(r.End), r.Kind)
}

// Counts contains the number of bytes per kind of a usage dump.
type Counts struct {
	Unknown int
	Data    int
	Code    int
}

// Summarize converts a raw usage dump as written by the emulator, one flag
// byte per ROM byte, into ranges of equal kind. A byte that was executed is
// code even if it was also read as data.
func Summarize(dump []byte) ([]Range, Counts) {
	var ranges []Range
	var counts Counts

	for loc, flags := range dump {
		var kind Kind
		switch {
		case flags&dumpCode != 0:
			kind = Code
			counts.Code++
		case flags&dumpData != 0:
			kind = Data
			counts.Data++
		default:
			kind = Unknown
			counts.Unknown++
		}

		if n := len(ranges); n > 0 && ranges[n-1].Kind == kind {
			ranges[n-1].End = loc
			continue
		}
		ranges = append(ranges, Range{Start: loc, End: loc, Kind: kind})
	}
	return ranges, counts
}

// WriteRanges writes all ranges in the usage file format.
func WriteRanges(writer io.Writer, ranges []Range) error {
	for _, r := range ranges {
		if _, err := fmt.Fprintln(writer, r.String()); err != nil {
			return fmt.Errorf("writing usage range: %w", err)
		}
	}
	return nil
}

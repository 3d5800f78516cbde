// Package usage handles the per byte code/data classification hints of a ROM.
package usage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/retroenv/gbdisasm/internal/banking"
)

// ErrFormat is returned for usage input that can not be parsed.
var ErrFormat = errors.New("invalid usage format")

// Kind defines the usage of a single ROM byte.
type Kind uint8

// usage kinds, the values match the ones written by the emulator.
const (
	Unknown Kind = 0
	Data    Kind = 2
	Code    Kind = 3
	Pointer Kind = 4
)

var kindNames = map[string]Kind{
	"Unknown": Unknown,
	"Data":    Data,
	"Code":    Code,
	"Addr":    Pointer,
	"Pointer": Pointer,
}

// String returns the name of the kind as used in usage files.
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case Data:
		return "Data"
	case Code:
		return "Code"
	case Pointer:
		return "Addr"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// FormatError describes an invalid line of a usage file.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: line %d: %s", ErrFormat, e.Line, e.Reason)
}

// Unwrap makes the error match ErrFormat.
func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// Map contains the usage kind of every byte of a ROM image.
type Map []Kind

// New returns a usage map for an image of the given length with all bytes unknown.
func New(length int) Map {
	return make(Map, length)
}

// At returns the kind of the byte at the given location, locations outside
// of the map are unknown.
func (m Map) At(location int) Kind {
	if location < 0 || location >= len(m) {
		return Unknown
	}
	return m[location]
}

// Fill sets the kind for all locations of the inclusive range.
func (m Map) Fill(start, end int, kind Kind) {
	for loc := start; loc <= end; loc++ {
		m[loc] = kind
	}
}

var lineRe = regexp.MustCompile(`^([[:xdigit:]]{2}):([[:xdigit:]]{4})\.\.([[:xdigit:]]{2}):([[:xdigit:]]{4}):\s+(.*)$`)

// Parse reads a usage listing of bb:aaaa..bb:aaaa: Kind lines for an image of
// the given length. Any line that can not be applied, including a blank one,
// aborts the parsing.
func Parse(reader io.Reader, length int) (Map, error) {
	m := New(length)

	scanner := bufio.NewScanner(reader)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if err := m.applyLine(line, lineNumber); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading usage: %w", err)
	}
	return m, nil
}

func (m Map) applyLine(line string, lineNumber int) error {
	matches := lineRe.FindStringSubmatch(line)
	if matches == nil {
		return &FormatError{Line: lineNumber, Reason: fmt.Sprintf("invalid line '%s'", line)}
	}

	start := parseLocation(matches[1], matches[2])
	end := parseLocation(matches[3], matches[4])
	if start > end {
		return &FormatError{Line: lineNumber, Reason: fmt.Sprintf("invalid range %s:%s..%s:%s",
			matches[1], matches[2], matches[3], matches[4])}
	}
	if end >= len(m) {
		return &FormatError{Line: lineNumber, Reason: fmt.Sprintf("range end %s:%s is outside of the image",
			matches[3], matches[4])}
	}

	name := matches[5]
	kind, ok := kindNames[name]
	if !ok {
		return &FormatError{Line: lineNumber, Reason: fmt.Sprintf("invalid kind '%s'", name)}
	}

	m.Fill(start, end, kind)
	return nil
}

// parseLocation converts the hex bank and address strings, the caller
// guarantees that both only contain hex digits.
func parseLocation(bankHex, addressHex string) int {
	bank, _ := strconv.ParseUint(bankHex, 16, 8)
	address, _ := strconv.ParseUint(addressHex, 16, 16)
	return banking.LocationOf(banking.Bank(bank), uint16(address))
}

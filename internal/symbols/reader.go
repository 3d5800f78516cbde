package symbols

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

// ErrFormat is returned when a symbol file can not be read.
var ErrFormat = errors.New("invalid symbol file")

var lineRe = regexp.MustCompile(`^([[:xdigit:]]{2}|xx):([[:xdigit:]]{4})\s+(.*)$`)

// Read parses bb:aaaa name lines, where bb is a hex bank number or xx for a
// bank independent label. The name is the rest of the line as written. Lines
// in any other form, like comments, and lines without a name are skipped and
// returned as count.
func Read(reader io.Reader) ([]Entry, int, error) {
	var entries []Entry
	var skipped int

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		entry, ok := parseLine(strings.TrimSuffix(scanner.Text(), "\r"))
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return entries, skipped, nil
}

func parseLine(line string) (Entry, bool) {
	matches := lineRe.FindStringSubmatch(line)
	if matches == nil {
		return Entry{}, false
	}

	name := matches[3]
	if name == "" {
		return Entry{}, false
	}

	bank := banking.AnyBank
	if matches[1] != "xx" {
		b, _ := strconv.ParseUint(matches[1], 16, 8)
		bank = banking.Bank(b)
	}
	address, _ := strconv.ParseUint(matches[2], 16, 16)

	return Entry{
		Bank:    bank,
		Address: uint16(address),
		Name:    name,
	}, true
}

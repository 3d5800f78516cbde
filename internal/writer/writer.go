// Package writer implements the rgbds compatible assembly line output.
package writer

import (
	"fmt"
	"io"
	"strings"
)

const (
	dataBytesPerLine = 16
	codeColumnWidth  = 36
)

// Writer writes assembly lines to an output.
type Writer struct {
	writer io.Writer
}

// New creates a new writer.
func New(writer io.Writer) *Writer {
	return &Writer{
		writer: writer,
	}
}

// Section writes the section header of a ROM bank.
func (w Writer) Section(bank int) error {
	var err error
	if bank == 0 {
		_, err = fmt.Fprintf(w.writer, "SECTION \"Bank%d\", ROM0[$0000]\n\n", bank)
	} else {
		_, err = fmt.Fprintf(w.writer, "SECTION \"Bank%d\", ROMX[$4000], BANK[%d]\n\n", bank, bank)
	}
	if err != nil {
		return fmt.Errorf("writing section: %w", err)
	}
	return nil
}

// Label writes a label line.
func (w Writer) Label(name string) error {
	if _, err := fmt.Fprintf(w.writer, "%s:\n", name); err != nil {
		return fmt.Errorf("writing label: %w", err)
	}
	return nil
}

// UnlabeledEntry writes a marker for code that follows a terminating
// instruction without any known reference to it.
func (w Writer) UnlabeledEntry(position string) error {
	if _, err := fmt.Fprintf(w.writer, "; ?? %s:\n", position); err != nil {
		return fmt.Errorf("writing entry marker: %w", err)
	}
	return nil
}

// Code writes an instruction with an optional comment aligned to a column.
func (w Writer) Code(code, comment string) error {
	var err error
	if comment == "" {
		_, err = fmt.Fprintf(w.writer, "  %s\n", code)
	} else {
		_, err = fmt.Fprintf(w.writer, "  %-*s; %s\n", codeColumnWidth, code, comment)
	}
	if err != nil {
		return fmt.Errorf("writing code line: %w", err)
	}
	return nil
}

// Word writes a 16 bit value directive.
func (w Writer) Word(value string) error {
	if _, err := fmt.Fprintf(w.writer, "  dw %s\n", value); err != nil {
		return fmt.Errorf("writing word: %w", err)
	}
	return nil
}

// Line writes an empty line.
func (w Writer) Line() error {
	if _, err := fmt.Fprintln(w.writer); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// BundleDataWrites writes the data bytes as db directives with at most
// dataBytesPerLine values per line.
func (w Writer) BundleDataWrites(data []byte) error {
	for len(data) > 0 {
		toWrite := min(len(data), dataBytesPerLine)
		if _, err := fmt.Fprintf(w.writer, "  db %s\n", ByteList(data[:toWrite])); err != nil {
			return fmt.Errorf("writing data line: %w", err)
		}
		data = data[toWrite:]
	}
	return nil
}

// ByteList returns the bytes in $xx notation separated by commas.
func ByteList(data []byte) string {
	buf := &strings.Builder{}
	for i, b := range data {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "$%02x", b)
	}
	return buf.String()
}

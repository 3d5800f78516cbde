// Package symbols provides the bank aware label table of a disassembled ROM.
package symbols

import (
	"fmt"

	"github.com/retroenv/gbdisasm/internal/banking"
)

// Entry is a label assigned to an address by a symbol file.
type Entry struct {
	Bank    banking.Bank // AnyBank for labels that apply to every bank
	Address uint16
	Name    string
}

// Targets collects the discovered branch and pointer destinations.
type Targets map[uint16]map[banking.Bank]string

// Add records a destination and generates its label, an existing label for
// the same address and bank is kept.
func (t Targets) Add(address uint16, bank banking.Bank) {
	banks, ok := t[address]
	if !ok {
		banks = map[banking.Bank]string{}
		t[address] = banks
	}
	if _, ok := banks[bank]; ok {
		return
	}
	banks[bank] = GeneratedName(bank, address)
}

// GeneratedName returns the label name used for a discovered destination.
func GeneratedName(bank banking.Bank, address uint16) string {
	if bank == banking.AnyBank {
		return fmt.Sprintf("Bxx_%04x", address)
	}
	return fmt.Sprintf("B%02d_%04x", int(bank), address)
}

// Table maps addresses to labels per bank. It is immutable once built.
type Table struct {
	labels map[uint16]map[banking.Bank]string
}

// Build merges the label sources into a table. Later sources take precedence:
// hardware names replace the bank independent label of a discovered target
// and user entries replace the label of their bank.
func Build(discovered Targets, hardware map[uint16]string, user []Entry) *Table {
	t := &Table{
		labels: make(map[uint16]map[banking.Bank]string, len(discovered)+len(hardware)+len(user)),
	}

	for address, banks := range discovered {
		for bank, name := range banks {
			t.set(bank, address, name)
		}
	}
	for address, name := range hardware {
		t.set(banking.AnyBank, address, name)
	}
	for _, entry := range user {
		t.set(entry.Bank, entry.Address, entry.Name)
	}
	return t
}

func (t *Table) set(bank banking.Bank, address uint16, name string) {
	banks, ok := t.labels[address]
	if !ok {
		banks = map[banking.Bank]string{}
		t.labels[address] = banks
	}
	banks[bank] = name
}

// Resolve returns the label of an address as seen from the given bank. A label
// of the bank itself is preferred over a bank independent one.
func (t *Table) Resolve(bank banking.Bank, address uint16) (string, bool) {
	banks, ok := t.labels[address]
	if !ok {
		return "", false
	}
	if name, ok := banks[bank]; ok {
		return name, true
	}
	name, ok := banks[banking.AnyBank]
	return name, ok
}

// Text returns the label of an address or its hex notation if it has none.
func (t *Table) Text(bank banking.Bank, address uint16) string {
	if name, ok := t.Resolve(bank, address); ok {
		return name
	}
	return fmt.Sprintf("$%04x", address)
}

// Len returns the number of labeled addresses.
func (t *Table) Len() int {
	return len(t.labels)
}

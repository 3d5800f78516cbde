// Package banking converts between linear ROM locations and banked CPU addresses.
package banking

import "fmt"

const (
	// Size is the size of a single ROM bank in bytes.
	Size = 0x4000
	// Shift converts between a location and its bank number.
	Shift = 14

	// SwitchableStart is the first address of the switchable bank window.
	SwitchableStart = 0x4000
	// SwitchableEnd is the first address after the switchable bank window.
	SwitchableEnd = 0x8000
)

// Bank is a ROM bank number.
type Bank int

// AnyBank marks an address whose bank can not be determined statically.
const AnyBank Bank = -1

// String returns the bank as two digit hex number or xx for AnyBank, the
// notation used by usage and symbol files.
func (b Bank) String() string {
	if b == AnyBank {
		return "xx"
	}
	return fmt.Sprintf("%02x", int(b))
}

// BankAddress returns the bank and the CPU address that a location is mapped to.
func BankAddress(location int) (Bank, uint16) {
	bank := Bank(location >> Shift)
	if bank == 0 {
		return 0, uint16(location)
	}
	return bank, uint16(location&(Size-1)) + SwitchableStart
}

// LocationOf returns the location of an address in the given bank.
func LocationOf(bank Bank, address uint16) int {
	if bank == 0 {
		return int(address)
	}
	return int(bank)<<Shift + int(address) - SwitchableStart
}

// Resolve returns the bank that an address refers to when referenced from
// code or data inside the source bank.
func Resolve(address uint16, source Bank) Bank {
	switch {
	case address < SwitchableStart:
		return 0
	case source > 0 && address < SwitchableEnd:
		return source
	default:
		return AnyBank
	}
}

// Format returns the bank:address notation for a location.
func Format(location int) string {
	bank, address := BankAddress(location)
	return fmt.Sprintf("%s:%04x", bank, address)
}

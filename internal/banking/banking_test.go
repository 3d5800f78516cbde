package banking

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestBankAddress(t *testing.T) {
	tests := []struct {
		location int
		bank     Bank
		address  uint16
	}{
		{0x0000, 0, 0x0000},
		{0x0150, 0, 0x0150},
		{0x3FFF, 0, 0x3FFF},
		{0x4000, 1, 0x4000},
		{0x4020, 1, 0x4020},
		{0x7FFF, 1, 0x7FFF},
		{0x8000, 2, 0x4000},
		{0x1FFFFF, 0x7F, 0x7FFF},
	}

	for _, tt := range tests {
		bank, address := BankAddress(tt.location)
		assert.Equal(t, tt.bank, bank)
		assert.Equal(t, tt.address, address)
		assert.Equal(t, tt.location, LocationOf(bank, address))
	}
}

func TestLocationRoundTrip(t *testing.T) {
	for location := 0; location < 8*Size; location++ {
		bank, address := BankAddress(location)
		if bank == 0 {
			assert.True(t, address < SwitchableStart)
		} else {
			assert.True(t, address >= SwitchableStart && address < SwitchableEnd)
		}
		if LocationOf(bank, address) != location {
			t.Fatalf("location %x did not round trip via %s:%04x", location, bank, address)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		address  uint16
		source   Bank
		expected Bank
	}{
		{"fixed bank from bank 0", 0x0150, 0, 0},
		{"fixed bank from bank 3", 0x3FFF, 3, 0},
		{"switchable from bank 0", 0x4000, 0, AnyBank},
		{"switchable from bank 3", 0x4000, 3, 3},
		{"switchable end from bank 3", 0x7FFF, 3, 3},
		{"vram from bank 3", 0x8000, 3, AnyBank},
		{"io from bank 0", 0xFF40, 0, AnyBank},
		{"unknown source", 0x5000, AnyBank, AnyBank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.address, tt.source))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "00:0150", Format(0x150))
	assert.Equal(t, "01:4020", Format(0x4020))
	assert.Equal(t, "1a:7fff", Format(0x1A<<Shift+0x3FFF))
	assert.Equal(t, "xx", AnyBank.String())
}

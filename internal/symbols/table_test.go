package symbols

import (
	"testing"

	"github.com/retroenv/gbdisasm/internal/banking"
	"github.com/retroenv/retrogolib/assert"
)

func TestTargetsAdd(t *testing.T) {
	targets := Targets{}
	targets.Add(0x0150, 0)
	targets.Add(0x4020, 1)
	targets.Add(0x4020, banking.AnyBank)
	targets.Add(0x4020, 1)

	assert.Equal(t, 2, len(targets))
	assert.Equal(t, "B00_0150", targets[0x0150][0])
	assert.Equal(t, "B01_4020", targets[0x4020][1])
	assert.Equal(t, "Bxx_4020", targets[0x4020][banking.AnyBank])
}

func TestGeneratedName(t *testing.T) {
	assert.Equal(t, "B12_7ffe", GeneratedName(12, 0x7FFE))
	assert.Equal(t, "Bxx_c000", GeneratedName(banking.AnyBank, 0xC000))
}

func TestBuildPrecedence(t *testing.T) {
	discovered := Targets{}
	discovered.Add(0x0150, 0)
	discovered.Add(0x4020, 1)
	discovered.Add(0x4020, 2)
	discovered.Add(0x8000, banking.AnyBank)
	discovered.Add(0xFF40, banking.AnyBank)

	hardware := map[uint16]string{
		0x8000: "_VRAM",
		0xFF40: "rLCDC",
	}

	user := []Entry{
		{Bank: 1, Address: 0x4020, Name: "MyRoutine"},
		{Bank: banking.AnyBank, Address: 0x8000, Name: "Foo"},
		{Bank: 3, Address: 0x8000, Name: "Bank3Vram"},
		{Bank: 0, Address: 0x0200, Name: "First"},
		{Bank: 0, Address: 0x0200, Name: "Second"},
	}

	table := Build(discovered, hardware, user)

	tests := []struct {
		name     string
		bank     banking.Bank
		address  uint16
		expected string
		found    bool
	}{
		{"discovered only", 0, 0x0150, "B00_0150", true},
		{"user overrides its bank", 1, 0x4020, "MyRoutine", true},
		{"other bank keeps discovered", 2, 0x4020, "B02_4020", true},
		{"bank without label", 5, 0x4020, "", false},
		{"user any bank replaces hardware", 0, 0x8000, "Foo", true},
		{"bank specific user entry wins", 3, 0x8000, "Bank3Vram", true},
		{"hardware replaces discovered", 1, 0xFF40, "rLCDC", true},
		{"any bank lookup", banking.AnyBank, 0xFF40, "rLCDC", true},
		{"last user entry wins", 0, 0x0200, "Second", true},
		{"unknown address", 0, 0x1234, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := table.Resolve(tt.bank, tt.address)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, name)
		})
	}

	assert.Equal(t, 5, table.Len())
}

func TestTableText(t *testing.T) {
	table := Build(Targets{}, map[uint16]string{0xFF44: "rLY"}, nil)
	assert.Equal(t, "rLY", table.Text(0, 0xFF44))
	assert.Equal(t, "$ff45", table.Text(0, 0xFF45))
	assert.Equal(t, "$0000", table.Text(banking.AnyBank, 0))
}

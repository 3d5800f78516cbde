// Package consts contains the names of the Game Boy memory regions and hardware registers.
package consts

// Constant names a fixed address of the Game Boy memory map.
type Constant struct {
	Address uint16
	Name    string
}

// Hardware lists the memory regions and I/O registers, sorted by address.
// The names follow the hardware.inc convention used by rgbds projects.
var Hardware = []Constant{
	{0x8000, "_VRAM"},
	{0x9800, "_SCRN0"},
	{0x9C00, "_SCRN1"},
	{0xC000, "_RAM"},
	{0xFE00, "_OAMRAM"},
	{0xFF00, "rP1"},
	{0xFF01, "rSB"},
	{0xFF02, "rSC"},
	{0xFF04, "rDIV"},
	{0xFF05, "rTIMA"},
	{0xFF06, "rTMA"},
	{0xFF07, "rTAC"},
	{0xFF0F, "rIF"},
	{0xFF10, "NR10"},
	{0xFF11, "NR11"},
	{0xFF12, "NR12"},
	{0xFF13, "NR13"},
	{0xFF14, "NR14"},
	{0xFF16, "NR21"},
	{0xFF17, "NR22"},
	{0xFF18, "NR23"},
	{0xFF19, "NR24"},
	{0xFF1A, "NR30"},
	{0xFF1B, "NR31"},
	{0xFF1C, "NR32"},
	{0xFF1D, "NR33"},
	{0xFF1E, "NR34"},
	{0xFF20, "NR41"},
	{0xFF21, "NR42"},
	{0xFF22, "NR43"},
	{0xFF23, "NR44"},
	{0xFF24, "NR50"},
	{0xFF25, "NR51"},
	{0xFF26, "NR52"},
	{0xFF30, "_AUD3WAVERAM"},
	{0xFF40, "rLCDC"},
	{0xFF41, "rSTAT"},
	{0xFF42, "rSCY"},
	{0xFF43, "rSCX"},
	{0xFF44, "rLY"},
	{0xFF45, "rLYC"},
	{0xFF46, "rDMA"},
	{0xFF47, "rBGP"},
	{0xFF48, "rOBP0"},
	{0xFF49, "rOBP1"},
	{0xFF4A, "rWY"},
	{0xFF4B, "rWX"},
	{0xFF80, "_HRAM"},
	{0xFFFF, "rIE"},
}

// HardwareMap returns the hardware names keyed by address.
func HardwareMap() map[uint16]string {
	m := make(map[uint16]string, len(Hardware))
	for _, c := range Hardware {
		m[c.Address] = c.Name
	}
	return m
}

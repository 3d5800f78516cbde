package cartridge

import (
	"bytes"
	"fmt"
)

const (
	logoStart     = 0x0104
	logoEnd       = 0x0134
	titleStart    = 0x0134
	titleEnd      = 0x0144
	cgbFlagOffset = 0x0143
	sgbFlagOffset = 0x0146
	typeOffset    = 0x0147
	romSizeOffset = 0x0148
	ramSizeOffset = 0x0149

	// HeaderStart is the first byte of the cartridge header after the entry point.
	HeaderStart = logoStart
	// HeaderEnd is the first byte after the cartridge header.
	HeaderEnd = 0x0150

	logoChecksum = 0xE06C8834

	// multi game carts place further headers at these boundaries
	headerAlignment = 0x8000
)

var cgbFlags = map[byte]string{
	0x00: "none",
	0x80: "supported",
	0xC0: "required",
}

var sgbFlags = map[byte]string{
	0x00: "none",
	0x03: "supported",
}

var cartridgeTypes = map[byte]string{
	0x00: "rom_only",
	0x01: "mbc1",
	0x02: "mbc1_ram",
	0x03: "mbc1_ram_battery",
	0x05: "mbc2",
	0x06: "mbc2_battery",
	0x08: "rom_ram",
	0x09: "rom_ram_battery",
	0x0B: "mmm01",
	0x0C: "mmm01_ram",
	0x0D: "mmm01_ram_battery",
	0x0F: "mbc3_timer_battery",
	0x10: "mbc3_timer_ram_battery",
	0x11: "mbc3",
	0x12: "mbc3_ram",
	0x13: "mbc3_ram_battery",
	0x15: "mbc4",
	0x16: "mbc4_ram",
	0x17: "mbc4_ram_battery",
	0x19: "mbc5",
	0x1A: "mbc5_ram",
	0x1B: "mbc5_ram_battery",
	0x1C: "mbc5_rumble",
	0x1D: "mbc5_rumble_ram",
	0x1E: "mbc5_rumble_ram_battery",
	0xFC: "pocket_camera",
	0xFD: "bandai_tama5",
	0xFE: "huc3",
	0xFF: "huc1_ram_battery",
}

var extRAMSizes = map[byte]int{
	0: 0,
	1: 2 << 10,
	2: 8 << 10,
	3: 32 << 10,
	4: 128 << 10,
	5: 64 << 10,
}

// Header contains the cartridge header fields of a game inside an image.
type Header struct {
	Start         int // location of the game inside the image
	Title         string
	CGB           string
	SGB           string
	CartridgeType string
	ROMSize       int // -1 if the size code is unknown
	ExtRAMSize    int // -1 if the size code is unknown
}

// String returns a one line description of the header.
func (h Header) String() string {
	return fmt.Sprintf("%q type=%s rom=%d ram=%d cgb=%s sgb=%s start=0x%x",
		h.Title, h.CartridgeType, h.ROMSize, h.ExtRAMSize, h.CGB, h.SGB, h.Start)
}

// Headers returns all valid headers of the image. Multi game cartridges
// contain one header per game at 32 KiB aligned offsets.
func (img *Image) Headers() []Header {
	var headers []Header
	for start := 0; start+HeaderEnd <= len(img.data); start += headerAlignment {
		if LogoChecksum(img.data[start+logoStart:start+logoEnd]) != logoChecksum {
			continue
		}
		headers = append(headers, parseHeader(img.data[start:], start))
	}
	return headers
}

// LogoChecksum returns the checksum used to detect the Nintendo logo.
func LogoChecksum(data []byte) uint32 {
	var result uint32
	for _, b := range data {
		result = result<<1 ^ uint32(b)
	}
	return result
}

func parseHeader(data []byte, start int) Header {
	title := data[titleStart:titleEnd]
	if i := bytes.IndexByte(title, 0); i >= 0 {
		title = title[:i]
	}

	return Header{
		Start:         start,
		Title:         string(bytes.ToValidUTF8(title, []byte("?"))),
		CGB:           lookupName(cgbFlags, data[cgbFlagOffset]),
		SGB:           lookupName(sgbFlags, data[sgbFlagOffset]),
		CartridgeType: lookupName(cartridgeTypes, data[typeOffset]),
		ROMSize:       romSize(data[romSizeOffset]),
		ExtRAMSize:    lookupSize(extRAMSizes, data[ramSizeOffset]),
	}
}

func romSize(code byte) int {
	if code > 8 {
		return -1
	}
	return 32 << 10 << code
}

func lookupName(names map[byte]string, value byte) string {
	if name, ok := names[value]; ok {
		return name
	}
	return "unknown"
}

func lookupSize(sizes map[byte]int, value byte) int {
	if size, ok := sizes[value]; ok {
		return size
	}
	return -1
}

package disasm

import (
	"github.com/retroenv/gbdisasm/internal/arch/sm83"
	"github.com/retroenv/gbdisasm/internal/cartridge"
	"github.com/retroenv/gbdisasm/internal/usage"
)

// The classification functions expect a location inside the image. Every
// location is exactly one of pointer, data or code.

// IsPointer returns whether the location starts a 16 bit pointer.
func (dis *Disasm) IsPointer(location int) bool {
	return dis.usage.At(location) == usage.Pointer && dis.usage.At(location+1) == usage.Pointer
}

// IsData returns whether the location has to be output as data byte.
func (dis *Disasm) IsData(location int) bool {
	if dis.IsPointer(location) {
		return false
	}

	opcode := dis.image.Data()[location]
	size := sm83.Opcodes[opcode].Size
	if size == 0 {
		return true
	}

	switch dis.usage.At(location) {
	case usage.Data:
		return true

	case usage.Unknown:
		// an instruction can not overlap bytes with a known usage
		for i := 1; i < size; i++ {
			if dis.usage.At(location+i) != usage.Unknown {
				return true
			}
		}
	}

	return location >= cartridge.HeaderStart && location < cartridge.HeaderEnd
}

// IsCode returns whether the location is decoded as instruction.
func (dis *Disasm) IsCode(location int) bool {
	return !dis.IsPointer(location) && !dis.IsData(location)
}

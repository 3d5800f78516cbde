package disasm

import (
	"github.com/retroenv/gbdisasm/internal/arch/sm83"
	"github.com/retroenv/gbdisasm/internal/banking"
	"github.com/retroenv/gbdisasm/internal/symbols"
)

// findTargets scans the whole image once and collects the destinations of
// all control flow instructions and pointers. Destination $0000 is not
// labeled.
func (dis *Disasm) findTargets() (symbols.Targets, error) {
	targets := symbols.Targets{}

	for location := 0; location < dis.image.Len(); {
		switch {
		case dis.IsCode(location):
			address, bank, ok, err := dis.branchTarget(location)
			if err != nil {
				return nil, err
			}
			if ok && address != 0 {
				targets.Add(address, bank)
			}
			location += sm83.Opcodes[dis.image.Data()[location]].Size

		case dis.IsPointer(location):
			address, bank, err := dis.pointerTarget(location)
			if err != nil {
				return nil, err
			}
			if address != 0 {
				targets.Add(address, bank)
			}
			location += 2

		default:
			location++
		}
	}

	return targets, nil
}

// branchTarget returns the destination of the control flow instruction at the
// location and the bank that it resolves to. It returns false if the
// instruction does not encode a destination.
func (dis *Disasm) branchTarget(location int) (uint16, banking.Bank, bool, error) {
	opcode, err := dis.image.ReadU8(location)
	if err != nil {
		return 0, 0, false, err
	}
	if !sm83.ControlFlow.Contains(opcode) {
		return 0, 0, false, nil
	}

	bank, address := banking.BankAddress(location)
	info := sm83.Opcodes[opcode]

	var target uint16
	switch info.Operand {
	case sm83.Relative:
		displacement, err := dis.image.ReadU8(location + 1)
		if err != nil {
			return 0, 0, false, err
		}
		target = address + uint16(info.Size) + uint16(int8(displacement))

	case sm83.Absolute:
		target, err = dis.image.ReadU16(location + 1)
		if err != nil {
			return 0, 0, false, err
		}

	case sm83.Restart:
		target = sm83.RestartVector(opcode)

	default:
		return 0, 0, false, nil
	}

	return target, banking.Resolve(target, bank), true, nil
}

// pointerTarget returns the address stored at the location and its bank.
func (dis *Disasm) pointerTarget(location int) (uint16, banking.Bank, error) {
	target, err := dis.image.ReadU16(location)
	if err != nil {
		return 0, 0, err
	}
	bank, _ := banking.BankAddress(location)
	return target, banking.Resolve(target, bank), nil
}

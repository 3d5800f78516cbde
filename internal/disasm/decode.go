package disasm

import (
	"fmt"
	"strconv"

	"github.com/retroenv/gbdisasm/internal/arch/sm83"
	"github.com/retroenv/gbdisasm/internal/banking"
)

const highPage = 0xFF00

// Instruction is a decoded instruction.
type Instruction struct {
	Text   string
	Opcode byte
	Size   int // encoded size, 0 for invalid opcodes
}

// Decode renders the instruction at the location. Address operands are
// replaced by their label if one is known.
func (dis *Disasm) Decode(location int) (Instruction, error) {
	opcode, err := dis.image.ReadU8(location)
	if err != nil {
		return Instruction{}, err
	}

	info := sm83.Opcodes[opcode]
	ins := Instruction{
		Opcode: opcode,
		Size:   info.Size,
	}

	switch info.Size {
	case 0:
		ins.Text = fmt.Sprintf("db $%02x", opcode)
	case 1:
		ins.Text = info.Mnemonic
	case 2:
		ins.Text, err = dis.decodeByteOperand(location, info)
	default:
		ins.Text, err = dis.decodeWordOperand(location, opcode, info)
	}
	if err != nil {
		return Instruction{}, err
	}
	return ins, nil
}

func (dis *Disasm) decodeByteOperand(location int, info sm83.Opcode) (string, error) {
	value, err := dis.image.ReadU8(location + 1)
	if err != nil {
		return "", err
	}

	var operand string
	switch info.Operand {
	case sm83.Prefix:
		return sm83.CBMnemonics[value], nil

	case sm83.Relative:
		target, bank, _, err := dis.branchTarget(location)
		if err != nil {
			return "", err
		}
		operand = dis.symbols.Text(bank, target)

	case sm83.HighPage:
		operand = dis.symbols.Text(banking.AnyBank, highPage+uint16(value))

	case sm83.StackOffset:
		operand = "+" + strconv.Itoa(int(value))

	default:
		operand = strconv.Itoa(int(value))
	}

	return info.Format(operand), nil
}

func (dis *Disasm) decodeWordOperand(location int, opcode byte, info sm83.Opcode) (string, error) {
	value, err := dis.image.ReadU16(location + 1)
	if err != nil {
		return "", err
	}

	if !sm83.AddressReferencing.Contains(opcode) {
		return info.Format(fmt.Sprintf("$%04x", value)), nil
	}

	bank, _ := banking.BankAddress(location)
	return info.Format(dis.symbols.Text(banking.Resolve(value, bank), value)), nil
}

// Package sm83 contains the opcode tables of the Sharp SM83 CPU used in the Game Boy.
package sm83

import (
	"fmt"

	"github.com/retroenv/retrogolib/set"
)

// CBPrefix is the opcode that selects the extended CB opcode table.
const CBPrefix = 0xCB

// OperandKind defines how the operand bytes of an opcode are interpreted.
type OperandKind uint8

// operand kinds.
const (
	NoOperand   OperandKind = iota
	Immediate8              // unsigned byte, rendered as decimal
	StackOffset             // unsigned byte, rendered as decimal with a leading plus
	Relative                // signed jump displacement from the following instruction
	Absolute                // little endian 16 bit address
	HighPage                // byte offset into the $ff00 I/O page
	Restart                 // call vector encoded in the opcode itself
	Prefix                  // extended opcode in the following byte
)

// Opcode describes a single primary opcode.
type Opcode struct {
	Size     int    // encoded size in bytes, 0 for invalid opcodes
	Mnemonic string // instruction text, %s marks the operand position
	Operand  OperandKind
}

// Valid returns whether the opcode is an official instruction.
func (o Opcode) Valid() bool {
	return o.Size != 0
}

// Format renders the mnemonic with the given operand text.
func (o Opcode) Format(operand string) string {
	if o.Operand == NoOperand || o.Operand == Restart || o.Operand == Prefix {
		return o.Mnemonic
	}
	return fmt.Sprintf(o.Mnemonic, operand)
}

var (
	// ControlFlow contains all opcodes that transfer control to an address encoded in the instruction.
	ControlFlow = newOpcodeSet(
		0x18, 0x20, 0x28, 0x30, 0x38, // jr
		0xC2, 0xC3, 0xCA, 0xD2, 0xDA, // jp
		0xC4, 0xCC, 0xCD, 0xD4, 0xDC, // call
		0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF, // rst
	)

	// AddressReferencing contains all opcodes whose operand is a memory address.
	AddressReferencing = newOpcodeSet(
		0x01, 0x08, 0x11, 0x21, 0x31, 0xEA, 0xFA, // 16 bit loads and stores
		0xE0, 0xF0, // ldh
		0x18, 0x20, 0x28, 0x30, 0x38, // jr
		0xC2, 0xC3, 0xCA, 0xD2, 0xDA, // jp
		0xC4, 0xCC, 0xCD, 0xD4, 0xDC, // call
	)

	// Terminators contains all opcodes after which execution never falls through.
	Terminators = newOpcodeSet(
		0x18, // jr
		0xC3, // jp
		0xC9, // ret
		0xD9, // reti
		0xE9, // jp hl
	)

	// Uncommon contains valid opcodes that rarely appear in real code and are
	// a strong hint that data is being decoded as code.
	Uncommon = newOpcodeSet(
		0x00, // nop
		0x10, // stop
		0x27, // daa
		0x40, // ld b,b
		0x49, // ld c,c
		0x52, // ld d,d
		0x5B, // ld e,e
		0x64, // ld h,h
		0x6D, // ld l,l
		0x7F, // ld a,a
		0xC7, // rst $00
		0xD9, // reti
		0xF7, // rst $30
		0xFF, // rst $38
	)
)

// RestartVector returns the call target of a rst opcode.
func RestartVector(opcode byte) uint16 {
	return uint16(opcode - 0xC7)
}

func newOpcodeSet(opcodes ...byte) set.Set[byte] {
	s := set.New[byte]()
	for _, op := range opcodes {
		s.Add(op)
	}
	return s
}

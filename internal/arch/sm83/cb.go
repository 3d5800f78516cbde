package sm83

import "fmt"

// CBMnemonics maps the byte following the CB prefix to the instruction text.
var CBMnemonics = buildCBMnemonics()

var cbRegisters = [8]string{"b", "c", "d", "e", "h", "l", "[hl]", "a"}

// buildCBMnemonics generates the extended table. The opcode is laid out as
// oo bbb rrr: the top two bits select rotate/bit/res/set, the middle three
// the rotate operation or the bit number and the lower three the register.
func buildCBMnemonics() [256]string {
	rotates := [8]string{"rlc", "rrc", "rl", "rr", "sla", "sra", "swap", "srl"}
	bitOps := [4]string{"", "bit", "res", "set"}

	var table [256]string
	for op := range 256 {
		group := op >> 6
		selector := (op >> 3) & 7
		reg := cbRegisters[op&7]

		if group == 0 {
			table[op] = rotates[selector] + " " + reg
		} else {
			table[op] = fmt.Sprintf("%s %d,%s", bitOps[group], selector, reg)
		}
	}
	return table
}

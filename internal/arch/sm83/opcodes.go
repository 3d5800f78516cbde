package sm83

// Opcodes maps every primary opcode byte to its descriptor. Entries with a
// zero Size are not valid instructions on the CPU.
var Opcodes = [256]Opcode{
	0x00: {Size: 1, Mnemonic: "nop", Operand: NoOperand},
	0x01: {Size: 3, Mnemonic: "ld bc,%s", Operand: Absolute},
	0x02: {Size: 1, Mnemonic: "ld [bc],a", Operand: NoOperand},
	0x03: {Size: 1, Mnemonic: "inc bc", Operand: NoOperand},
	0x04: {Size: 1, Mnemonic: "inc b", Operand: NoOperand},
	0x05: {Size: 1, Mnemonic: "dec b", Operand: NoOperand},
	0x06: {Size: 2, Mnemonic: "ld b,%s", Operand: Immediate8},
	0x07: {Size: 1, Mnemonic: "rlca", Operand: NoOperand},
	0x08: {Size: 3, Mnemonic: "ld [%s],sp", Operand: Absolute},
	0x09: {Size: 1, Mnemonic: "add hl,bc", Operand: NoOperand},
	0x0A: {Size: 1, Mnemonic: "ld a,[bc]", Operand: NoOperand},
	0x0B: {Size: 1, Mnemonic: "dec bc", Operand: NoOperand},
	0x0C: {Size: 1, Mnemonic: "inc c", Operand: NoOperand},
	0x0D: {Size: 1, Mnemonic: "dec c", Operand: NoOperand},
	0x0E: {Size: 2, Mnemonic: "ld c,%s", Operand: Immediate8},
	0x0F: {Size: 1, Mnemonic: "rrca", Operand: NoOperand},
	0x10: {Size: 1, Mnemonic: "stop", Operand: NoOperand},
	0x11: {Size: 3, Mnemonic: "ld de,%s", Operand: Absolute},
	0x12: {Size: 1, Mnemonic: "ld [de],a", Operand: NoOperand},
	0x13: {Size: 1, Mnemonic: "inc de", Operand: NoOperand},
	0x14: {Size: 1, Mnemonic: "inc d", Operand: NoOperand},
	0x15: {Size: 1, Mnemonic: "dec d", Operand: NoOperand},
	0x16: {Size: 2, Mnemonic: "ld d,%s", Operand: Immediate8},
	0x17: {Size: 1, Mnemonic: "rla", Operand: NoOperand},
	0x18: {Size: 2, Mnemonic: "jr %s", Operand: Relative},
	0x19: {Size: 1, Mnemonic: "add hl,de", Operand: NoOperand},
	0x1A: {Size: 1, Mnemonic: "ld a,[de]", Operand: NoOperand},
	0x1B: {Size: 1, Mnemonic: "dec de", Operand: NoOperand},
	0x1C: {Size: 1, Mnemonic: "inc e", Operand: NoOperand},
	0x1D: {Size: 1, Mnemonic: "dec e", Operand: NoOperand},
	0x1E: {Size: 2, Mnemonic: "ld e,%s", Operand: Immediate8},
	0x1F: {Size: 1, Mnemonic: "rra", Operand: NoOperand},
	0x20: {Size: 2, Mnemonic: "jr nz,%s", Operand: Relative},
	0x21: {Size: 3, Mnemonic: "ld hl,%s", Operand: Absolute},
	0x22: {Size: 1, Mnemonic: "ld [hl+],a", Operand: NoOperand},
	0x23: {Size: 1, Mnemonic: "inc hl", Operand: NoOperand},
	0x24: {Size: 1, Mnemonic: "inc h", Operand: NoOperand},
	0x25: {Size: 1, Mnemonic: "dec h", Operand: NoOperand},
	0x26: {Size: 2, Mnemonic: "ld h,%s", Operand: Immediate8},
	0x27: {Size: 1, Mnemonic: "daa", Operand: NoOperand},
	0x28: {Size: 2, Mnemonic: "jr z,%s", Operand: Relative},
	0x29: {Size: 1, Mnemonic: "add hl,hl", Operand: NoOperand},
	0x2A: {Size: 1, Mnemonic: "ld a,[hl+]", Operand: NoOperand},
	0x2B: {Size: 1, Mnemonic: "dec hl", Operand: NoOperand},
	0x2C: {Size: 1, Mnemonic: "inc l", Operand: NoOperand},
	0x2D: {Size: 1, Mnemonic: "dec l", Operand: NoOperand},
	0x2E: {Size: 2, Mnemonic: "ld l,%s", Operand: Immediate8},
	0x2F: {Size: 1, Mnemonic: "cpl", Operand: NoOperand},
	0x30: {Size: 2, Mnemonic: "jr nc,%s", Operand: Relative},
	0x31: {Size: 3, Mnemonic: "ld sp,%s", Operand: Absolute},
	0x32: {Size: 1, Mnemonic: "ld [hl-],a", Operand: NoOperand},
	0x33: {Size: 1, Mnemonic: "inc sp", Operand: NoOperand},
	0x34: {Size: 1, Mnemonic: "inc [hl]", Operand: NoOperand},
	0x35: {Size: 1, Mnemonic: "dec [hl]", Operand: NoOperand},
	0x36: {Size: 2, Mnemonic: "ld [hl],%s", Operand: Immediate8},
	0x37: {Size: 1, Mnemonic: "scf", Operand: NoOperand},
	0x38: {Size: 2, Mnemonic: "jr c,%s", Operand: Relative},
	0x39: {Size: 1, Mnemonic: "add hl,sp", Operand: NoOperand},
	0x3A: {Size: 1, Mnemonic: "ld a,[hl-]", Operand: NoOperand},
	0x3B: {Size: 1, Mnemonic: "dec sp", Operand: NoOperand},
	0x3C: {Size: 1, Mnemonic: "inc a", Operand: NoOperand},
	0x3D: {Size: 1, Mnemonic: "dec a", Operand: NoOperand},
	0x3E: {Size: 2, Mnemonic: "ld a,%s", Operand: Immediate8},
	0x3F: {Size: 1, Mnemonic: "ccf", Operand: NoOperand},
	0x40: {Size: 1, Mnemonic: "ld b,b", Operand: NoOperand},
	0x41: {Size: 1, Mnemonic: "ld b,c", Operand: NoOperand},
	0x42: {Size: 1, Mnemonic: "ld b,d", Operand: NoOperand},
	0x43: {Size: 1, Mnemonic: "ld b,e", Operand: NoOperand},
	0x44: {Size: 1, Mnemonic: "ld b,h", Operand: NoOperand},
	0x45: {Size: 1, Mnemonic: "ld b,l", Operand: NoOperand},
	0x46: {Size: 1, Mnemonic: "ld b,[hl]", Operand: NoOperand},
	0x47: {Size: 1, Mnemonic: "ld b,a", Operand: NoOperand},
	0x48: {Size: 1, Mnemonic: "ld c,b", Operand: NoOperand},
	0x49: {Size: 1, Mnemonic: "ld c,c", Operand: NoOperand},
	0x4A: {Size: 1, Mnemonic: "ld c,d", Operand: NoOperand},
	0x4B: {Size: 1, Mnemonic: "ld c,e", Operand: NoOperand},
	0x4C: {Size: 1, Mnemonic: "ld c,h", Operand: NoOperand},
	0x4D: {Size: 1, Mnemonic: "ld c,l", Operand: NoOperand},
	0x4E: {Size: 1, Mnemonic: "ld c,[hl]", Operand: NoOperand},
	0x4F: {Size: 1, Mnemonic: "ld c,a", Operand: NoOperand},
	0x50: {Size: 1, Mnemonic: "ld d,b", Operand: NoOperand},
	0x51: {Size: 1, Mnemonic: "ld d,c", Operand: NoOperand},
	0x52: {Size: 1, Mnemonic: "ld d,d", Operand: NoOperand},
	0x53: {Size: 1, Mnemonic: "ld d,e", Operand: NoOperand},
	0x54: {Size: 1, Mnemonic: "ld d,h", Operand: NoOperand},
	0x55: {Size: 1, Mnemonic: "ld d,l", Operand: NoOperand},
	0x56: {Size: 1, Mnemonic: "ld d,[hl]", Operand: NoOperand},
	0x57: {Size: 1, Mnemonic: "ld d,a", Operand: NoOperand},
	0x58: {Size: 1, Mnemonic: "ld e,b", Operand: NoOperand},
	0x59: {Size: 1, Mnemonic: "ld e,c", Operand: NoOperand},
	0x5A: {Size: 1, Mnemonic: "ld e,d", Operand: NoOperand},
	0x5B: {Size: 1, Mnemonic: "ld e,e", Operand: NoOperand},
	0x5C: {Size: 1, Mnemonic: "ld e,h", Operand: NoOperand},
	0x5D: {Size: 1, Mnemonic: "ld e,l", Operand: NoOperand},
	0x5E: {Size: 1, Mnemonic: "ld e,[hl]", Operand: NoOperand},
	0x5F: {Size: 1, Mnemonic: "ld e,a", Operand: NoOperand},
	0x60: {Size: 1, Mnemonic: "ld h,b", Operand: NoOperand},
	0x61: {Size: 1, Mnemonic: "ld h,c", Operand: NoOperand},
	0x62: {Size: 1, Mnemonic: "ld h,d", Operand: NoOperand},
	0x63: {Size: 1, Mnemonic: "ld h,e", Operand: NoOperand},
	0x64: {Size: 1, Mnemonic: "ld h,h", Operand: NoOperand},
	0x65: {Size: 1, Mnemonic: "ld h,l", Operand: NoOperand},
	0x66: {Size: 1, Mnemonic: "ld h,[hl]", Operand: NoOperand},
	0x67: {Size: 1, Mnemonic: "ld h,a", Operand: NoOperand},
	0x68: {Size: 1, Mnemonic: "ld l,b", Operand: NoOperand},
	0x69: {Size: 1, Mnemonic: "ld l,c", Operand: NoOperand},
	0x6A: {Size: 1, Mnemonic: "ld l,d", Operand: NoOperand},
	0x6B: {Size: 1, Mnemonic: "ld l,e", Operand: NoOperand},
	0x6C: {Size: 1, Mnemonic: "ld l,h", Operand: NoOperand},
	0x6D: {Size: 1, Mnemonic: "ld l,l", Operand: NoOperand},
	0x6E: {Size: 1, Mnemonic: "ld l,[hl]", Operand: NoOperand},
	0x6F: {Size: 1, Mnemonic: "ld l,a", Operand: NoOperand},
	0x70: {Size: 1, Mnemonic: "ld [hl],b", Operand: NoOperand},
	0x71: {Size: 1, Mnemonic: "ld [hl],c", Operand: NoOperand},
	0x72: {Size: 1, Mnemonic: "ld [hl],d", Operand: NoOperand},
	0x73: {Size: 1, Mnemonic: "ld [hl],e", Operand: NoOperand},
	0x74: {Size: 1, Mnemonic: "ld [hl],h", Operand: NoOperand},
	0x75: {Size: 1, Mnemonic: "ld [hl],l", Operand: NoOperand},
	0x76: {Size: 1, Mnemonic: "halt", Operand: NoOperand},
	0x77: {Size: 1, Mnemonic: "ld [hl],a", Operand: NoOperand},
	0x78: {Size: 1, Mnemonic: "ld a,b", Operand: NoOperand},
	0x79: {Size: 1, Mnemonic: "ld a,c", Operand: NoOperand},
	0x7A: {Size: 1, Mnemonic: "ld a,d", Operand: NoOperand},
	0x7B: {Size: 1, Mnemonic: "ld a,e", Operand: NoOperand},
	0x7C: {Size: 1, Mnemonic: "ld a,h", Operand: NoOperand},
	0x7D: {Size: 1, Mnemonic: "ld a,l", Operand: NoOperand},
	0x7E: {Size: 1, Mnemonic: "ld a,[hl]", Operand: NoOperand},
	0x7F: {Size: 1, Mnemonic: "ld a,a", Operand: NoOperand},
	0x80: {Size: 1, Mnemonic: "add a,b", Operand: NoOperand},
	0x81: {Size: 1, Mnemonic: "add a,c", Operand: NoOperand},
	0x82: {Size: 1, Mnemonic: "add a,d", Operand: NoOperand},
	0x83: {Size: 1, Mnemonic: "add a,e", Operand: NoOperand},
	0x84: {Size: 1, Mnemonic: "add a,h", Operand: NoOperand},
	0x85: {Size: 1, Mnemonic: "add a,l", Operand: NoOperand},
	0x86: {Size: 1, Mnemonic: "add a,[hl]", Operand: NoOperand},
	0x87: {Size: 1, Mnemonic: "add a,a", Operand: NoOperand},
	0x88: {Size: 1, Mnemonic: "adc a,b", Operand: NoOperand},
	0x89: {Size: 1, Mnemonic: "adc a,c", Operand: NoOperand},
	0x8A: {Size: 1, Mnemonic: "adc a,d", Operand: NoOperand},
	0x8B: {Size: 1, Mnemonic: "adc a,e", Operand: NoOperand},
	0x8C: {Size: 1, Mnemonic: "adc a,h", Operand: NoOperand},
	0x8D: {Size: 1, Mnemonic: "adc a,l", Operand: NoOperand},
	0x8E: {Size: 1, Mnemonic: "adc a,[hl]", Operand: NoOperand},
	0x8F: {Size: 1, Mnemonic: "adc a,a", Operand: NoOperand},
	0x90: {Size: 1, Mnemonic: "sub a,b", Operand: NoOperand},
	0x91: {Size: 1, Mnemonic: "sub a,c", Operand: NoOperand},
	0x92: {Size: 1, Mnemonic: "sub a,d", Operand: NoOperand},
	0x93: {Size: 1, Mnemonic: "sub a,e", Operand: NoOperand},
	0x94: {Size: 1, Mnemonic: "sub a,h", Operand: NoOperand},
	0x95: {Size: 1, Mnemonic: "sub a,l", Operand: NoOperand},
	0x96: {Size: 1, Mnemonic: "sub a,[hl]", Operand: NoOperand},
	0x97: {Size: 1, Mnemonic: "sub a,a", Operand: NoOperand},
	0x98: {Size: 1, Mnemonic: "sbc a,b", Operand: NoOperand},
	0x99: {Size: 1, Mnemonic: "sbc a,c", Operand: NoOperand},
	0x9A: {Size: 1, Mnemonic: "sbc a,d", Operand: NoOperand},
	0x9B: {Size: 1, Mnemonic: "sbc a,e", Operand: NoOperand},
	0x9C: {Size: 1, Mnemonic: "sbc a,h", Operand: NoOperand},
	0x9D: {Size: 1, Mnemonic: "sbc a,l", Operand: NoOperand},
	0x9E: {Size: 1, Mnemonic: "sbc a,[hl]", Operand: NoOperand},
	0x9F: {Size: 1, Mnemonic: "sbc a,a", Operand: NoOperand},
	0xA0: {Size: 1, Mnemonic: "and a,b", Operand: NoOperand},
	0xA1: {Size: 1, Mnemonic: "and a,c", Operand: NoOperand},
	0xA2: {Size: 1, Mnemonic: "and a,d", Operand: NoOperand},
	0xA3: {Size: 1, Mnemonic: "and a,e", Operand: NoOperand},
	0xA4: {Size: 1, Mnemonic: "and a,h", Operand: NoOperand},
	0xA5: {Size: 1, Mnemonic: "and a,l", Operand: NoOperand},
	0xA6: {Size: 1, Mnemonic: "and a,[hl]", Operand: NoOperand},
	0xA7: {Size: 1, Mnemonic: "and a,a", Operand: NoOperand},
	0xA8: {Size: 1, Mnemonic: "xor a,b", Operand: NoOperand},
	0xA9: {Size: 1, Mnemonic: "xor a,c", Operand: NoOperand},
	0xAA: {Size: 1, Mnemonic: "xor a,d", Operand: NoOperand},
	0xAB: {Size: 1, Mnemonic: "xor a,e", Operand: NoOperand},
	0xAC: {Size: 1, Mnemonic: "xor a,h", Operand: NoOperand},
	0xAD: {Size: 1, Mnemonic: "xor a,l", Operand: NoOperand},
	0xAE: {Size: 1, Mnemonic: "xor a,[hl]", Operand: NoOperand},
	0xAF: {Size: 1, Mnemonic: "xor a,a", Operand: NoOperand},
	0xB0: {Size: 1, Mnemonic: "or a,b", Operand: NoOperand},
	0xB1: {Size: 1, Mnemonic: "or a,c", Operand: NoOperand},
	0xB2: {Size: 1, Mnemonic: "or a,d", Operand: NoOperand},
	0xB3: {Size: 1, Mnemonic: "or a,e", Operand: NoOperand},
	0xB4: {Size: 1, Mnemonic: "or a,h", Operand: NoOperand},
	0xB5: {Size: 1, Mnemonic: "or a,l", Operand: NoOperand},
	0xB6: {Size: 1, Mnemonic: "or a,[hl]", Operand: NoOperand},
	0xB7: {Size: 1, Mnemonic: "or a,a", Operand: NoOperand},
	0xB8: {Size: 1, Mnemonic: "cp a,b", Operand: NoOperand},
	0xB9: {Size: 1, Mnemonic: "cp a,c", Operand: NoOperand},
	0xBA: {Size: 1, Mnemonic: "cp a,d", Operand: NoOperand},
	0xBB: {Size: 1, Mnemonic: "cp a,e", Operand: NoOperand},
	0xBC: {Size: 1, Mnemonic: "cp a,h", Operand: NoOperand},
	0xBD: {Size: 1, Mnemonic: "cp a,l", Operand: NoOperand},
	0xBE: {Size: 1, Mnemonic: "cp a,[hl]", Operand: NoOperand},
	0xBF: {Size: 1, Mnemonic: "cp a,a", Operand: NoOperand},
	0xC0: {Size: 1, Mnemonic: "ret nz", Operand: NoOperand},
	0xC1: {Size: 1, Mnemonic: "pop bc", Operand: NoOperand},
	0xC2: {Size: 3, Mnemonic: "jp nz,%s", Operand: Absolute},
	0xC3: {Size: 3, Mnemonic: "jp %s", Operand: Absolute},
	0xC4: {Size: 3, Mnemonic: "call nz,%s", Operand: Absolute},
	0xC5: {Size: 1, Mnemonic: "push bc", Operand: NoOperand},
	0xC6: {Size: 2, Mnemonic: "add a,%s", Operand: Immediate8},
	0xC7: {Size: 1, Mnemonic: "rst $00", Operand: Restart},
	0xC8: {Size: 1, Mnemonic: "ret z", Operand: NoOperand},
	0xC9: {Size: 1, Mnemonic: "ret", Operand: NoOperand},
	0xCA: {Size: 3, Mnemonic: "jp z,%s", Operand: Absolute},
	0xCB: {Size: 2, Mnemonic: "prefix cb", Operand: Prefix},
	0xCC: {Size: 3, Mnemonic: "call z,%s", Operand: Absolute},
	0xCD: {Size: 3, Mnemonic: "call %s", Operand: Absolute},
	0xCE: {Size: 2, Mnemonic: "adc a,%s", Operand: Immediate8},
	0xCF: {Size: 1, Mnemonic: "rst $08", Operand: Restart},
	0xD0: {Size: 1, Mnemonic: "ret nc", Operand: NoOperand},
	0xD1: {Size: 1, Mnemonic: "pop de", Operand: NoOperand},
	0xD2: {Size: 3, Mnemonic: "jp nc,%s", Operand: Absolute},
	0xD3: {},
	0xD4: {Size: 3, Mnemonic: "call nc,%s", Operand: Absolute},
	0xD5: {Size: 1, Mnemonic: "push de", Operand: NoOperand},
	0xD6: {Size: 2, Mnemonic: "sub a,%s", Operand: Immediate8},
	0xD7: {Size: 1, Mnemonic: "rst $10", Operand: Restart},
	0xD8: {Size: 1, Mnemonic: "ret c", Operand: NoOperand},
	0xD9: {Size: 1, Mnemonic: "reti", Operand: NoOperand},
	0xDA: {Size: 3, Mnemonic: "jp c,%s", Operand: Absolute},
	0xDB: {},
	0xDC: {Size: 3, Mnemonic: "call c,%s", Operand: Absolute},
	0xDD: {},
	0xDE: {Size: 2, Mnemonic: "sbc a,%s", Operand: Immediate8},
	0xDF: {Size: 1, Mnemonic: "rst $18", Operand: Restart},
	0xE0: {Size: 2, Mnemonic: "ldh [%s],a", Operand: HighPage},
	0xE1: {Size: 1, Mnemonic: "pop hl", Operand: NoOperand},
	0xE2: {Size: 1, Mnemonic: "ld [$ff00+c],a", Operand: NoOperand},
	0xE3: {},
	0xE4: {},
	0xE5: {Size: 1, Mnemonic: "push hl", Operand: NoOperand},
	0xE6: {Size: 2, Mnemonic: "and a,%s", Operand: Immediate8},
	0xE7: {Size: 1, Mnemonic: "rst $20", Operand: Restart},
	0xE8: {Size: 2, Mnemonic: "add sp,%s", Operand: Immediate8},
	0xE9: {Size: 1, Mnemonic: "jp hl", Operand: NoOperand},
	0xEA: {Size: 3, Mnemonic: "ld [%s],a", Operand: Absolute},
	0xEB: {},
	0xEC: {},
	0xED: {},
	0xEE: {Size: 2, Mnemonic: "xor a,%s", Operand: Immediate8},
	0xEF: {Size: 1, Mnemonic: "rst $28", Operand: Restart},
	0xF0: {Size: 2, Mnemonic: "ldh a,[%s]", Operand: HighPage},
	0xF1: {Size: 1, Mnemonic: "pop af", Operand: NoOperand},
	0xF2: {Size: 1, Mnemonic: "ld a,[$ff00+c]", Operand: NoOperand},
	0xF3: {Size: 1, Mnemonic: "di", Operand: NoOperand},
	0xF4: {},
	0xF5: {Size: 1, Mnemonic: "push af", Operand: NoOperand},
	0xF6: {Size: 2, Mnemonic: "or a,%s", Operand: Immediate8},
	0xF7: {Size: 1, Mnemonic: "rst $30", Operand: Restart},
	0xF8: {Size: 2, Mnemonic: "ld hl,sp%s", Operand: StackOffset},
	0xF9: {Size: 1, Mnemonic: "ld sp,hl", Operand: NoOperand},
	0xFA: {Size: 3, Mnemonic: "ld a,[%s]", Operand: Absolute},
	0xFB: {Size: 1, Mnemonic: "ei", Operand: NoOperand},
	0xFC: {},
	0xFD: {},
	0xFE: {Size: 2, Mnemonic: "cp a,%s", Operand: Immediate8},
	0xFF: {Size: 1, Mnemonic: "rst $38", Operand: Restart},
}

package vm

// This file implements component B: mapping an opcode to one of the six
// instruction formats.

// Format identifies the bit-layout template of a decoded instruction.
type Format int

// The defined instruction formats, plus Invalid for any opcode the
// classifier does not recognize.
const (
	FormatInvalid Format = iota
	FormatU
	FormatJ
	FormatR
	FormatI
	FormatS
	FormatB
)

// String renders a Format for diagnostics.
func (f Format) String() string {
	switch f {
	case FormatU:
		return "U"
	case FormatJ:
		return "J"
	case FormatR:
		return "R"
	case FormatI:
		return "I"
	case FormatS:
		return "S"
	case FormatB:
		return "B"
	default:
		return "INVALID"
	}
}

// The opcode values recognized by the classifier (bits [6:0] of the word).
const (
	opLUI    = 0b0110111
	opAUIPC  = 0b0010111
	opJAL    = 0b1101111
	opJALR   = 0b1100111
	opBranch = 0b1100011
	opLoad   = 0b0000011
	opStore  = 0b0100011
	opALUImm = 0b0010011
	opALUReg = 0b0110011
	opSystem = 0b1110011
)

// Classify maps an opcode to its instruction format, or FormatInvalid if
// the opcode is not one of the defined RV32I opcodes.
func Classify(opcode uint32) Format {
	switch opcode {
	case opLUI, opAUIPC:
		return FormatU
	case opJAL:
		return FormatJ
	case opJALR, opLoad, opALUImm, opSystem:
		return FormatI
	case opBranch:
		return FormatB
	case opStore:
		return FormatS
	case opALUReg:
		return FormatR
	default:
		return FormatInvalid
	}
}

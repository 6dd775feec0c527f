package vm

// This file implements component C: resolving the exact mnemonic of an
// instruction from its format, opcode, funct3, funct7, and (for the SYSTEM
// opcode) immediate.

// Op is the resolved operation mnemonic, one of a closed enum of RV32I
// operations (plus the recognized-but-unimplemented CSR* instructions).
type Op int

// The defined operations. OpInvalid is never produced by a successful
// decode; it exists only as the zero value.
const (
	OpInvalid Op = iota

	OpLUI
	OpAUIPC
	OpJAL
	OpJALR

	OpBEQ
	OpBNE
	OpBLT
	OpBGE
	OpBLTU
	OpBGEU

	OpLB
	OpLH
	OpLW
	OpLBU
	OpLHU

	OpSB
	OpSH
	OpSW

	OpADDI
	OpSLTI
	OpSLTIU
	OpXORI
	OpORI
	OpANDI
	OpSLLI
	OpSRLI
	OpSRAI

	OpADD
	OpSUB
	OpSLL
	OpSLT
	OpSLTU
	OpXOR
	OpSRL
	OpSRA
	OpOR
	OpAND

	OpECALL
	OpEBREAK

	OpCSRRW
	OpCSRRS
	OpCSRRC
	OpCSRRWI
	OpCSRRSI
	OpCSRRCI
)

var opNames = map[Op]string{
	OpLUI: "LUI", OpAUIPC: "AUIPC", OpJAL: "JAL", OpJALR: "JALR",
	OpBEQ: "BEQ", OpBNE: "BNE", OpBLT: "BLT", OpBGE: "BGE", OpBLTU: "BLTU", OpBGEU: "BGEU",
	OpLB: "LB", OpLH: "LH", OpLW: "LW", OpLBU: "LBU", OpLHU: "LHU",
	OpSB: "SB", OpSH: "SH", OpSW: "SW",
	OpADDI: "ADDI", OpSLTI: "SLTI", OpSLTIU: "SLTIU", OpXORI: "XORI", OpORI: "ORI",
	OpANDI: "ANDI", OpSLLI: "SLLI", OpSRLI: "SRLI", OpSRAI: "SRAI",
	OpADD: "ADD", OpSUB: "SUB", OpSLL: "SLL", OpSLT: "SLT", OpSLTU: "SLTU",
	OpXOR: "XOR", OpSRL: "SRL", OpSRA: "SRA", OpOR: "OR", OpAND: "AND",
	OpECALL: "ECALL", OpEBREAK: "EBREAK",
	OpCSRRW: "CSRRW", OpCSRRS: "CSRRS", OpCSRRC: "CSRRC",
	OpCSRRWI: "CSRRWI", OpCSRRSI: "CSRRSI", OpCSRRCI: "CSRRCI",
}

// String renders an Op mnemonic for diagnostics; unresolved or unknown
// values render as "?".
func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "?"
}

// resolve selects the operation mnemonic for a decoded word, given its
// format, opcode, funct3, funct7, and (SYSTEM-only) immediate. It returns
// OpInvalid, false for any combination not in the closed table of §4.2.
func resolve(format Format, opcode, funct3, funct7 uint32, imm uint32) (Op, bool) {
	switch format {
	case FormatU:
		switch opcode {
		case opLUI:
			return OpLUI, true
		case opAUIPC:
			return OpAUIPC, true
		}
	case FormatJ:
		return OpJAL, true
	case FormatB:
		switch funct3 {
		case 0b000:
			return OpBEQ, true
		case 0b001:
			return OpBNE, true
		case 0b100:
			return OpBLT, true
		case 0b101:
			return OpBGE, true
		case 0b110:
			return OpBLTU, true
		case 0b111:
			return OpBGEU, true
		}
	case FormatS:
		switch funct3 {
		case 0b000:
			return OpSB, true
		case 0b001:
			return OpSH, true
		case 0b010:
			return OpSW, true
		}
	case FormatR:
		switch funct3 {
		case 0b000:
			switch funct7 {
			case 0b0000000:
				return OpADD, true
			case 0b0100000:
				return OpSUB, true
			}
		case 0b001:
			return OpSLL, true
		case 0b010:
			return OpSLT, true
		case 0b011:
			return OpSLTU, true
		case 0b100:
			return OpXOR, true
		case 0b101:
			switch funct7 {
			case 0b0000000:
				return OpSRL, true
			case 0b0100000:
				return OpSRA, true
			}
		case 0b110:
			return OpOR, true
		case 0b111:
			return OpAND, true
		}
	case FormatI:
		switch opcode {
		case opLoad:
			switch funct3 {
			case 0b000:
				return OpLB, true
			case 0b001:
				return OpLH, true
			case 0b010:
				return OpLW, true
			case 0b100:
				return OpLBU, true
			case 0b101:
				return OpLHU, true
			}
		case opALUImm:
			switch funct3 {
			case 0b000:
				return OpADDI, true
			case 0b010:
				return OpSLTI, true
			case 0b011:
				return OpSLTIU, true
			case 0b100:
				return OpXORI, true
			case 0b110:
				return OpORI, true
			case 0b111:
				return OpANDI, true
			case 0b001:
				return OpSLLI, true
			case 0b101:
				switch funct7 {
				case 0b0000000:
					return OpSRLI, true
				case 0b0100000:
					return OpSRAI, true
				}
			}
		case opJALR:
			if funct3 == 0b000 {
				return OpJALR, true
			}
		case opSystem:
			switch funct3 {
			case 0b000:
				switch imm {
				case 0:
					return OpECALL, true
				case 1:
					return OpEBREAK, true
				}
			case 0b001:
				return OpCSRRW, true
			case 0b010:
				return OpCSRRS, true
			case 0b011:
				return OpCSRRC, true
			case 0b101:
				return OpCSRRWI, true
			case 0b110:
				return OpCSRRSI, true
			case 0b111:
				return OpCSRRCI, true
			}
		}
	}
	return OpInvalid, false
}

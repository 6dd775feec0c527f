package vm

import "fmt"

// Disassemble renders a decoded instruction as a single line of assembly
// text, used by debug tracing (pkg/trace) and the disasm CLI subcommand.
// It is a diagnostic convenience, not part of the core decode/execute
// contract.
func Disassemble(inst Instruction) string {
	switch inst.Op {
	case OpLUI:
		return fmt.Sprintf("lui x%d, 0x%x", inst.RD, inst.Imm>>12)
	case OpAUIPC:
		return fmt.Sprintf("auipc x%d, 0x%x", inst.RD, inst.Imm>>12)
	case OpJAL:
		return fmt.Sprintf("jal x%d, %d", inst.RD, int32(inst.Imm))
	case OpJALR:
		return fmt.Sprintf("jalr x%d, x%d, %d", inst.RD, inst.RS1, int32(inst.Imm))
	case OpBEQ, OpBNE, OpBLT, OpBGE, OpBLTU, OpBGEU:
		return fmt.Sprintf("%s x%d, x%d, %d", lower(inst.Op), inst.RS1, inst.RS2, int32(inst.Imm))
	case OpLB, OpLH, OpLW, OpLBU, OpLHU:
		return fmt.Sprintf("%s x%d, %d(x%d)", lower(inst.Op), inst.RD, int32(inst.Imm), inst.RS1)
	case OpSB, OpSH, OpSW:
		return fmt.Sprintf("%s x%d, %d(x%d)", lower(inst.Op), inst.RS2, int32(inst.Imm), inst.RS1)
	case OpSLLI, OpSRLI, OpSRAI:
		return fmt.Sprintf("%s x%d, x%d, %d", lower(inst.Op), inst.RD, inst.RS1, inst.Shamt)
	case OpADDI, OpSLTI, OpSLTIU, OpXORI, OpORI, OpANDI:
		return fmt.Sprintf("%s x%d, x%d, %d", lower(inst.Op), inst.RD, inst.RS1, int32(inst.Imm))
	case OpADD, OpSUB, OpSLL, OpSLT, OpSLTU, OpXOR, OpSRL, OpSRA, OpOR, OpAND:
		return fmt.Sprintf("%s x%d, x%d, x%d", lower(inst.Op), inst.RD, inst.RS1, inst.RS2)
	case OpECALL:
		return "ecall"
	case OpEBREAK:
		return "ebreak"
	case OpCSRRW, OpCSRRS, OpCSRRC, OpCSRRWI, OpCSRRSI, OpCSRRCI:
		return fmt.Sprintf("%s (unimplemented)", lower(inst.Op))
	default:
		return fmt.Sprintf("<invalid: 0x%08x>", inst.Raw)
	}
}

func lower(op Op) string {
	s := op.String()
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

package vm

// This file implements component F: the step engine. Step fetches the
// instruction at PC, drives decode (components A-D) to obtain an
// operation, applies its semantics to the architectural state (component
// E), and advances PC.

// handler applies the semantic effect of one decoded instruction to the
// VM. Handlers are responsible for advancing PC themselves, since most
// instructions advance by +4 but branches, jumps, and ECALL/EBREAK do not.
type handler func(m *VM, inst Instruction) error

var opTable = map[Op]handler{
	OpLUI:   execLUI,
	OpAUIPC: execAUIPC,
	OpJAL:   execJAL,
	OpJALR:  execJALR,

	OpBEQ:  execBranch,
	OpBNE:  execBranch,
	OpBLT:  execBranch,
	OpBGE:  execBranch,
	OpBLTU: execBranch,
	OpBGEU: execBranch,

	OpLB:  execLoad,
	OpLH:  execLoad,
	OpLW:  execLoad,
	OpLBU: execLoad,
	OpLHU: execLoad,

	OpSB: execStore,
	OpSH: execStore,
	OpSW: execStore,

	OpADDI:  execALUImm,
	OpSLTI:  execALUImm,
	OpSLTIU: execALUImm,
	OpXORI:  execALUImm,
	OpORI:   execALUImm,
	OpANDI:  execALUImm,
	OpSLLI:  execALUImm,
	OpSRLI:  execALUImm,
	OpSRAI:  execALUImm,

	OpADD:  execALUReg,
	OpSUB:  execALUReg,
	OpSLL:  execALUReg,
	OpSLT:  execALUReg,
	OpSLTU: execALUReg,
	OpXOR:  execALUReg,
	OpSRL:  execALUReg,
	OpSRA:  execALUReg,
	OpOR:   execALUReg,
	OpAND:  execALUReg,

	OpECALL:  execHalt,
	OpEBREAK: execHalt,

	OpCSRRW:  execUnimplemented,
	OpCSRRS:  execUnimplemented,
	OpCSRRC:  execUnimplemented,
	OpCSRRWI: execUnimplemented,
	OpCSRRSI: execUnimplemented,
	OpCSRRCI: execUnimplemented,
}

// Step advances the VM by exactly one instruction. If the VM is already
// halted, Step is a no-op and returns true. Otherwise it fetches, decodes,
// and executes the instruction at PC, then returns whether the VM is now
// halted. Any fatal condition from §7 is returned as a non-nil error and
// leaves the VM state as of the point of failure.
func (m *VM) Step() (bool, error) {
	if m.Halted {
		return true, nil
	}

	word, err := m.InstMem.ReadWord(m.PC)
	if err != nil {
		return false, &MemoryError{PC: m.PC, Address: m.PC, Detail: err}
	}

	inst := Decode(word)
	if inst.Format == FormatInvalid {
		return false, &DecodeError{PC: m.PC, Raw: word}
	}

	exec, ok := opTable[inst.Op]
	if !ok {
		return false, &UnimplementedError{PC: m.PC, Raw: word, Op: inst.Op}
	}

	if err := exec(m, inst); err != nil {
		if ue, ok := err.(*UnimplementedError); ok {
			ue.PC, ue.Raw = m.PC, word
			return false, ue
		}
		if me, ok := err.(*MemoryError); ok {
			me.PC = m.PC
			return false, me
		}
		return false, err
	}

	m.Regs[0] = 0
	return m.Halted, nil
}

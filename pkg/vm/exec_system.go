package vm

// This file implements the SYSTEM instructions: ECALL and EBREAK latch
// the halted flag (a clean halt, not an error); the CSR* mnemonics are
// recognized at decode but fail at execute time, per §7.2 and §9.

func execHalt(m *VM, inst Instruction) error {
	m.Halted = true
	return nil
}

func execUnimplemented(m *VM, inst Instruction) error {
	return &UnimplementedError{Op: inst.Op}
}

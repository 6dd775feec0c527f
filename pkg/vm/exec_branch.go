package vm

// This file implements LUI, AUIPC, JAL, JALR, and the conditional
// branches: the instructions that compute against PC or redirect it.

func execLUI(m *VM, inst Instruction) error {
	m.setReg(inst.RD, inst.Imm)
	m.PC += 4
	return nil
}

func execAUIPC(m *VM, inst Instruction) error {
	m.setReg(inst.RD, m.PC+inst.Imm)
	m.PC += 4
	return nil
}

func execJAL(m *VM, inst Instruction) error {
	m.setReg(inst.RD, m.PC+4)
	m.PC += inst.Imm
	return nil
}

func execJALR(m *VM, inst Instruction) error {
	target := (m.reg(inst.RS1) + inst.Imm) &^ 1
	m.setReg(inst.RD, m.PC+4)
	m.PC = target
	return nil
}

func execBranch(m *VM, inst Instruction) error {
	rs1, rs2 := m.reg(inst.RS1), m.reg(inst.RS2)
	var taken bool
	switch inst.Op {
	case OpBEQ:
		taken = rs1 == rs2
	case OpBNE:
		taken = rs1 != rs2
	case OpBLT:
		taken = int32(rs1) < int32(rs2)
	case OpBGE:
		taken = int32(rs1) >= int32(rs2)
	case OpBLTU:
		taken = rs1 < rs2
	case OpBGEU:
		taken = rs1 >= rs2
	}
	if taken {
		m.PC += inst.Imm
	} else {
		m.PC += 4
	}
	return nil
}

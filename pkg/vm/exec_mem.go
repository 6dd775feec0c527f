package vm

// This file implements the load and store instructions. Address
// arithmetic (rs1 + imm) is computed modulo 2^32 via ordinary uint32
// wraparound and used as an unsigned byte offset into data memory.

func execLoad(m *VM, inst Instruction) error {
	addr := m.reg(inst.RS1) + inst.Imm
	var value uint32
	switch inst.Op {
	case OpLB:
		b, err := m.DataMem.ReadByte(addr)
		if err != nil {
			return &MemoryError{Address: addr, Detail: err}
		}
		value = signExtend(uint32(b), 8)
	case OpLBU:
		b, err := m.DataMem.ReadByte(addr)
		if err != nil {
			return &MemoryError{Address: addr, Detail: err}
		}
		value = uint32(b)
	case OpLH:
		h, err := m.DataMem.ReadHalf(addr)
		if err != nil {
			return &MemoryError{Address: addr, Detail: err}
		}
		value = signExtend(uint32(h), 16)
	case OpLHU:
		h, err := m.DataMem.ReadHalf(addr)
		if err != nil {
			return &MemoryError{Address: addr, Detail: err}
		}
		value = uint32(h)
	case OpLW:
		w, err := m.DataMem.ReadWord(addr)
		if err != nil {
			return &MemoryError{Address: addr, Detail: err}
		}
		value = w
	}
	m.setReg(inst.RD, value)
	m.PC += 4
	return nil
}

func execStore(m *VM, inst Instruction) error {
	addr := m.reg(inst.RS1) + inst.Imm
	rs2 := m.reg(inst.RS2)
	var err error
	switch inst.Op {
	case OpSB:
		err = m.DataMem.WriteByte(addr, byte(rs2))
	case OpSH:
		err = m.DataMem.WriteHalf(addr, uint16(rs2))
	case OpSW:
		err = m.DataMem.WriteWord(addr, rs2)
	}
	if err != nil {
		return &MemoryError{Address: addr, Detail: err}
	}
	m.PC += 4
	return nil
}

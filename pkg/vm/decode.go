package vm

// This file implements component D: the immutable decoded-instruction
// value produced by Decode, aggregating the fields extracted by component A
// with the format and operation resolved by components B and C.

// Instruction is the decoded form of one fetched 32-bit word. It is
// produced fresh for each Step and never mutated afterwards.
type Instruction struct {
	Raw uint32

	Opcode uint32
	RD     uint32
	RS1    uint32
	RS2    uint32
	Funct3 uint32
	Funct7 uint32
	Shamt  uint32

	Format Format
	// Imm is the sign-extended immediate for this instruction's format.
	// It is meaningless (and not read) for FormatR.
	Imm uint32

	Op Op
}

// Decode decodes the 32-bit word w into an Instruction. Decode is a pure
// function: its result depends only on w.
func Decode(w uint32) Instruction {
	opcode := Opcode(w)
	format := Classify(opcode)

	inst := Instruction{
		Raw:    w,
		Opcode: opcode,
		RD:     RD(w),
		RS1:    RS1(w),
		RS2:    RS2(w),
		Funct3: Funct3(w),
		Funct7: Funct7(w),
		Shamt:  Shamt(w),
		Format: format,
	}

	switch format {
	case FormatU:
		inst.Imm = ImmU(w)
	case FormatJ:
		inst.Imm = ImmJ(w)
	case FormatI:
		if opcode == opALUImm && (inst.Funct3 == 0b001 || inst.Funct3 == 0b101) {
			// SLLI/SRLI/SRAI consume Shamt, not Imm.
		} else {
			inst.Imm = ImmI(w)
		}
	case FormatS:
		inst.Imm = ImmS(w)
	case FormatB:
		inst.Imm = ImmB(w)
	}

	if format == FormatInvalid {
		inst.Op = OpInvalid
		return inst
	}

	op, ok := resolve(format, opcode, inst.Funct3, inst.Funct7, inst.Imm)
	if !ok {
		inst.Format = FormatInvalid
		inst.Op = OpInvalid
		return inst
	}
	inst.Op = op
	return inst
}

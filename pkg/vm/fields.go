package vm

// This file implements component A of the interpreter: pure functions that
// pick fields out of a raw 32-bit instruction word by shift-and-mask, plus
// the sign-extension rules for each of the five immediate encodings. None of
// these functions touch VM state; they operate purely on the word.

// Opcode extracts bits [6:0] of w.
func Opcode(w uint32) uint32 {
	return w & 0x7f
}

// RD extracts bits [11:7] of w.
func RD(w uint32) uint32 {
	return (w >> 7) & 0x1f
}

// Funct3 extracts bits [14:12] of w.
func Funct3(w uint32) uint32 {
	return (w >> 12) & 0x7
}

// RS1 extracts bits [19:15] of w.
func RS1(w uint32) uint32 {
	return (w >> 15) & 0x1f
}

// RS2 extracts bits [24:20] of w.
func RS2(w uint32) uint32 {
	return (w >> 20) & 0x1f
}

// Funct7 extracts bits [31:25] of w.
func Funct7(w uint32) uint32 {
	return (w >> 25) & 0x7f
}

// Shamt extracts the 5-bit shift amount, bits [24:20] (the same bits as RS2).
func Shamt(w uint32) uint32 {
	return (w >> 20) & 0x1f
}

// signExtend sign-extends the low (bits) bits of v to a full 32-bit signed
// value, expressed as arithmetic-right-shift on a two's-complement value
// rather than relying on any native wide-shift behaviour.
func signExtend(v uint32, bits uint) uint32 {
	shift := 32 - bits
	return uint32(int32(v<<shift) >> shift)
}

// ImmU extracts and sign-extends (trivially, since it is zero in the low
// bits) the U-format immediate: imm = w & 0xFFFFF000.
func ImmU(w uint32) uint32 {
	return w & 0xfffff000
}

// ImmJ extracts and sign-extends the J-format immediate: bit 20 from
// w[31], bits [10:1] from w[30:21], bit 11 from w[20], bits [19:12] from
// w[19:12], bit 0 is always zero.
func ImmJ(w uint32) uint32 {
	imm := (w & 0x000ff000) |
		((w >> 9) & 0x00000800) |
		((w >> 20) & 0x000007fe) |
		((w >> 11) & 0x00100000)
	return signExtend(imm, 21)
}

// ImmI extracts and sign-extends the I-format immediate used by loads,
// ALU-immediate non-shift ops, JALR, and SYSTEM: imm[11:0] = w[31:20].
func ImmI(w uint32) uint32 {
	return signExtend((w>>20)&0xfff, 12)
}

// ImmS extracts and sign-extends the S-format immediate: imm[4:0] =
// w[11:7], imm[11:5] = w[31:25].
func ImmS(w uint32) uint32 {
	imm := ((w >> 7) & 0x1f) | ((w >> 20) & 0xfe0)
	return signExtend(imm, 12)
}

// ImmB extracts and sign-extends the B-format immediate: imm[12] = w[31],
// imm[10:5] = w[30:25], imm[4:1] = w[11:8], imm[11] = w[7], bit 0 is
// always zero.
func ImmB(w uint32) uint32 {
	imm := ((w >> 7) & 0x1e) |
		((w >> 20) & 0x7e0) |
		((w << 4) & 0x800) |
		((w >> 19) & 0x1000)
	return signExtend(imm, 13)
}

// Package vm contains the RV32I functional interpreter.
//
// This is a C-model of the base 32-bit integer RISC-V instruction set: it
// fetches a 32-bit instruction from instruction memory, decodes it into its
// architectural fields, executes it against a register file and a separate
// data memory, and advances a program counter until the program signals
// termination via ECALL or EBREAK.
//
// Instruction formats
//
// Every instruction is 32 bits wide and belongs to one of six formats:
//
//	U: <imm[31:12]><rd><opcode>
//	J: <imm[20|10:1|11|19:12]><rd><opcode>
//	R: <funct7><rs2><rs1><funct3><rd><opcode>
//	I: <imm[11:0] or funct7|shamt><rs1><funct3><rd><opcode>
//	S: <imm[11:5]><rs2><rs1><funct3><imm[4:0]><opcode>
//	B: <imm[12|10:5]><rs2><rs1><funct3><imm[4:1|11]><opcode>
//
// Decoding an instruction proceeds opcode -> format (Classify) -> operation
// (resolve), with immediates always sign-extended to 32 bits except for the
// U format, where the low 12 bits are zero.
//
// Architectural state
//
// A VM owns a register file of 32 words (register 0 is hardwired to read as
// zero), a program counter, a halted latch, and two independent
// byte-addressable memories: instruction memory and data memory. Both are
// little-endian. The VM is not goroutine safe; a single goroutine should
// drive Step.
//
// Non-goals
//
// Privileged/supervisor modes, the CSR instructions (recognized at decode,
// fail at execute), the M/A/F/C extensions, interrupts and exceptions beyond
// the halt latch, alignment faults, caching, pipelining, and concurrency are
// all out of scope for this model.
package vm

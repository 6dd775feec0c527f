package vm

import (
	"errors"
	"fmt"
)

// The following sentinel errors categorize the fatal conditions of §7.
// Concrete errors wrap ErrDecode, ErrUnimplemented or ErrMemory so callers
// can use errors.Is to distinguish the category without caring about the
// formatted detail.
var (
	// ErrHalted names the halted state. Step does not return it: on a
	// halted VM, Step is a no-op that returns (true, nil).
	ErrHalted = errors.New("vm: halted")

	// ErrDecode indicates an opcode outside the classifier table, or a
	// funct3/funct7 combination not in the resolver's table.
	ErrDecode = errors.New("vm: decode error")

	// ErrUnimplemented indicates a recognized-but-unimplemented
	// operation (the CSR* mnemonics).
	ErrUnimplemented = errors.New("vm: unimplemented operation")

	// ErrMemory indicates a load/store or fetch whose byte range exits
	// the target memory.
	ErrMemory = errors.New("vm: memory range error")
)

// DecodeError reports a decode failure together with the PC and raw word
// involved, per §7.1's "report the raw 32-bit instruction and the PC".
type DecodeError struct {
	PC  uint32
	Raw uint32
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("vm: decode error: pc=0x%08x raw=0x%08x", e.PC, e.Raw)
}

// Unwrap lets errors.Is(err, ErrDecode) succeed.
func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

// UnimplementedError reports an execute-time failure for a recognized but
// unimplemented operation (CSR*), per §7.2.
type UnimplementedError struct {
	PC  uint32
	Raw uint32
	Op  Op
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("vm: unimplemented operation %s: pc=0x%08x raw=0x%08x", e.Op, e.PC, e.Raw)
}

// Unwrap lets errors.Is(err, ErrUnimplemented) succeed.
func (e *UnimplementedError) Unwrap() error {
	return ErrUnimplemented
}

// MemoryError reports an out-of-range memory access, per §7.3.
type MemoryError struct {
	PC      uint32
	Address uint32
	Detail  error
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("vm: memory error: pc=0x%08x addr=0x%08x: %s", e.PC, e.Address, e.Detail)
}

// Unwrap lets errors.Is(err, ErrMemory) succeed (Detail already wraps
// ErrMemory).
func (e *MemoryError) Unwrap() error {
	return e.Detail
}

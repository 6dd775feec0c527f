// Package trace implements optional step-by-step debug tracing of a
// running VM, in the style of the teacher's -v/-d command-line flags:
// one line per step naming the PC, the raw instruction word and its
// disassembly, followed by one line per register that changed.
package trace

import (
	"log"

	"github.com/gorv32i/rv32i/pkg/vm"
)

// Tracer logs each VM step: a line for the instruction, plus lines for
// changed registers and for an error or halt. A zero-value Tracer with a nil
// Logger is valid and silently does nothing, so tracing can be wired in
// unconditionally and only become active when enabled.
type Tracer struct {
	Logger *log.Logger
}

// New returns a Tracer that writes through logger. Passing nil disables
// tracing.
func New(logger *log.Logger) *Tracer {
	return &Tracer{Logger: logger}
}

// Step runs exactly one VM.Step and, if tracing is enabled, logs the PC
// before the step, the raw word fetched, its disassembly, and the
// resulting register file delta.
func (t *Tracer) Step(m *vm.VM) (bool, error) {
	if t == nil || t.Logger == nil {
		return m.Step()
	}

	pc := m.PC
	before := m.Regs
	word, ferr := m.InstMem.ReadWord(pc)

	halted, err := m.Step()

	if ferr != nil {
		t.Logger.Printf("pc=0x%08x <fetch error>", pc)
		return halted, err
	}

	inst := vm.Decode(word)
	t.Logger.Printf("pc=0x%08x raw=0x%08x %s", pc, word, vm.Disassemble(inst))
	for i, v := range m.Regs {
		if v != before[i] {
			t.Logger.Printf("  x%d <- 0x%08x", i, v)
		}
	}
	if err != nil {
		t.Logger.Printf("  error: %s", err)
	} else if halted {
		t.Logger.Printf("  halted")
	}
	return halted, err
}

// Run drives the VM with Step until it halts, an error occurs, or
// maxSteps steps have run (0 means unbounded). It returns the number of
// steps actually executed and any error from the final step.
func (t *Tracer) Run(m *vm.VM, maxSteps int) (int, error) {
	steps := 0
	for maxSteps == 0 || steps < maxSteps {
		halted, err := t.Step(m)
		steps++
		if err != nil {
			return steps, err
		}
		if halted {
			return steps, nil
		}
	}
	return steps, nil
}

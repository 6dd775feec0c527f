package loader

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gorv32i/rv32i/pkg/vm"
)

// DumpData writes the entire contents of mem to w, one zero-padded
// 32-bit hex word per line, mirroring the original model's dumpData.
func DumpData(w io.Writer, mem *vm.Memory) error {
	bw := bufio.NewWriter(w)
	for off := uint32(0); off < mem.Size(); off += 4 {
		word, err := mem.ReadWord(off)
		if err != nil {
			return fmt.Errorf("loader: dump: %w", err)
		}
		if _, err := fmt.Fprintf(bw, "0x%08x\n", word); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DumpRegs writes the VM's 32 registers to w in the same format,
// mirroring the original model's dumpRegs.
func DumpRegs(w io.Writer, m *vm.VM) error {
	bw := bufio.NewWriter(w)
	for _, r := range m.Regs {
		if _, err := fmt.Fprintf(bw, "0x%08x\n", r); err != nil {
			return err
		}
	}
	return bw.Flush()
}

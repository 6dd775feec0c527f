package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorv32i/rv32i/pkg/loader"
	"github.com/gorv32i/rv32i/pkg/vm"
)

func newDisasmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disasm <program.hex>",
		Short: "Disassemble a hex-text instruction stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("%s", loader.OpenError(args[0]))
			}
			defer f.Close()

			mem := vm.NewMemory(vm.DefaultMemorySize)
			if err := loader.LoadWords(f, mem); err != nil {
				return err
			}

			for off := uint32(0); off < mem.Size(); off += 4 {
				word, err := mem.ReadWord(off)
				if err != nil {
					return err
				}
				if word == 0 {
					continue
				}
				inst := vm.Decode(word)
				fmt.Printf("0x%08x: %s\n", off, vm.Disassemble(inst))
			}
			return nil
		},
	}
	return cmd
}

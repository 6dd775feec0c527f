package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorv32i/rv32i/pkg/config"
	"github.com/gorv32i/rv32i/pkg/loader"
	"github.com/gorv32i/rv32i/pkg/trace"
	"github.com/gorv32i/rv32i/pkg/vm"
)

func newRunCmd() *cobra.Command {
	var (
		program    string
		data       string
		dumpData   string
		dumpRegs   string
		cfgPath    string
		verbose    bool
		maxSteps   uint64
		memorySize uint32
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a program and data image and run it to completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			if program == "" {
				return fmt.Errorf("usage: rv32i run -p <program.hex> [-D <data.hex>]")
			}

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if memorySize != 0 {
				cfg.Execution.MemorySize = memorySize
			}
			if maxSteps != 0 {
				cfg.Execution.MaxSteps = maxSteps
			}

			m := vm.New(cfg.Execution.MemorySize)

			pf, err := os.Open(program)
			if err != nil {
				return fmt.Errorf("%s", loader.OpenError(program))
			}
			defer pf.Close()
			if err := loader.LoadProgram(pf, m); err != nil {
				return err
			}

			if data != "" {
				df, err := os.Open(data)
				if err != nil {
					return fmt.Errorf("%s", loader.OpenError(data))
				}
				defer df.Close()
				if err := loader.LoadData(df, m); err != nil {
					return err
				}
			}

			var tracer *trace.Tracer
			if verbose || cfg.Trace.Enabled {
				tracer = trace.New(log.New(os.Stderr, "", 0))
			} else {
				tracer = trace.New(nil)
			}

			steps, runErr := tracer.Run(m, int(cfg.Execution.MaxSteps))
			if runErr != nil {
				return fmt.Errorf("stopped after %d steps: %w", steps, runErr)
			}

			if dumpData != "" {
				if err := dumpTo(dumpData, func(f *os.File) error {
					return loader.DumpData(f, m.DataMem)
				}); err != nil {
					return err
				}
			}
			if dumpRegs != "" {
				if err := dumpTo(dumpRegs, func(f *os.File) error {
					return loader.DumpRegs(f, m)
				}); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&program, "program", "p", "", "instruction hex-text file")
	cmd.Flags().StringVarP(&data, "data", "D", "", "data hex-text file")
	cmd.Flags().StringVar(&dumpData, "dump-data", "", "write data memory to this hex-text file after halting")
	cmd.Flags().StringVar(&dumpRegs, "dump-regs", "", "write registers to this hex-text file after halting")
	cmd.Flags().StringVar(&cfgPath, "config", "rv32i.toml", "configuration file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace every step to stderr")
	cmd.Flags().Uint64Var(&maxSteps, "max-steps", 0, "stop after this many steps (0 = use the configured max_steps; 0 there means unbounded)")
	cmd.Flags().Uint32Var(&memorySize, "memory-size", 0, "override configured memory size in bytes")

	return cmd
}

func dumpTo(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s", loader.OpenError(path))
	}
	defer f.Close()
	return write(f)
}

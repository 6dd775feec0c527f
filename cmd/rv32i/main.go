package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)

	rootCmd := &cobra.Command{
		Use:   "rv32i",
		Short: "rv32i — a functional interpreter for base RV32I",
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newDisasmCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

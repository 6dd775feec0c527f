// Package config loads the interpreter's TOML configuration file:
// memory size, step budget, and trace routing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gorv32i/rv32i/pkg/vm"
)

// Config holds the knobs the rv32i CLI exposes beyond its flags.
type Config struct {
	// Execution settings.
	Execution struct {
		MemorySize uint32 `toml:"memory_size"`
		MaxSteps   uint64 `toml:"max_steps"`
	} `toml:"execution"`

	// Trace settings. The rv32i run command reads Enabled and writes trace
	// lines to stderr; it does not read OutputFile.
	Trace struct {
		Enabled    bool   `toml:"enabled"`
		OutputFile string `toml:"output_file"`
	} `toml:"trace"`
}

// Default returns a Config with the interpreter's baked-in defaults:
// the original model's 4000-byte memories and an unbounded step budget.
func Default() *Config {
	cfg := &Config{}
	cfg.Execution.MemorySize = vm.DefaultMemorySize
	cfg.Execution.MaxSteps = 0
	cfg.Trace.Enabled = false
	cfg.Trace.OutputFile = ""
	return cfg
}

// Load reads config from path, merged over Default(). A missing file is
// not an error: Load returns the defaults unchanged. A malformed file
// is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if cfg.Execution.MemorySize == 0 {
		return nil, fmt.Errorf("config: execution.memory_size must be nonzero")
	}
	return cfg, nil
}

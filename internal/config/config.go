// Package config holds the dump-phdrs command configuration.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the effective command configuration after merging environment
// defaults and command-line flags (flags win).
type Config struct {
	// Filter is an optional expression selecting which objects to print.
	// Empty means print everything.
	Filter string
	// Format is FormatText or FormatJSON.
	Format string
}

// envConfig carries defaults from the environment, for contexts where
// flags are awkward (wrapper scripts, CI).
type envConfig struct {
	Filter string `env:"PHDRS_FILTER" envDefault:""`
	Format string `env:"PHDRS_FORMAT" envDefault:"text"`
}

// ParseArgs parses the command line on top of environment defaults.
// Expected form: dump-phdrs [--filter <expr>] [--json|--text]
func ParseArgs(args []string) (*Config, error) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	cfg := &Config{
		Filter: ec.Filter,
		Format: ec.Format,
	}

	programName := "dump-phdrs"
	if len(args) > 0 {
		programName = args[0]
	}

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--filter", "-f":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a value", args[i])
			}
			cfg.Filter = args[i+1]
			i++
		case "--json":
			cfg.Format = FormatJSON
		case "--text":
			cfg.Format = FormatText
		case "--help", "-h":
			return nil, fmt.Errorf("Usage: %s [--filter <expr>] [--json|--text]\nExample: %s --filter 'path contains \"libc\"'",
				programName, programName)
		default:
			return nil, fmt.Errorf("unknown argument %q", args[i])
		}
	}

	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		return nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}

	return cfg, nil
}

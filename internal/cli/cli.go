// Package cli parses ersweep command-line arguments into a run configuration
// and builds the process logger.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/percolate/internal/runfile"
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. Values from -config are loaded
// first; flags given explicitly override them. It returns the resolved
// configuration, whether the program should exit cleanly (help), or an
// *ExitError.
func Parse(args []string, output io.Writer) (*runfile.Config, bool, error) {
	fs := flag.NewFlagSet("ersweep", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
ersweep - Erdős–Rényi percolation sweep around the critical probability 1/n.

Usage:
  ersweep [options]
  ersweep -config run.hcl [options]

Options:
`)
		fs.PrintDefaults()
	}

	def := runfile.Defaults()
	configFlag := fs.String("config", "", "Path to an HCL run file.")
	nFlag := fs.Int("n", 0, "Number of nodes per graph.")
	mFlag := fs.Int("m", 0, "Number of ensemble instances (sweep points).")
	seedFlag := fs.Int64("seed", def.Seed, "Seed for the per-instance random streams.")
	workersFlag := fs.Int("workers", def.Workers, "Number of instances processed concurrently.")
	maxNodesFlag := fs.Int("max-nodes", def.MaxNodes, "Node budget; 0 disables the check.")
	retainFlag := fs.Bool("retain", false, "Keep sampled graphs and include giant components in the output.")
	nanFlag := fs.Bool("nan-on-failure", false, "Record NaN for failed instances instead of aborting.")
	logLevelFlag := fs.String("log-level", def.LogLevel, "Logging level: debug, info, warn, error.")
	logFormatFlag := fs.String("log-format", def.LogFormat, "Log output format: text or json.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", fs.Args())}
	}

	cfg := def
	if *configFlag != "" {
		loaded, err := runfile.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.N = *nFlag
		case "m":
			cfg.M = *mFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "workers":
			cfg.Workers = *workersFlag
		case "max-nodes":
			cfg.MaxNodes = *maxNodesFlag
		case "retain":
			cfg.Retain = *retainFlag
		case "nan-on-failure":
			if *nanFlag {
				cfg.OnFailure = runfile.OnFailureNaN
			} else {
				cfg.OnFailure = runfile.OnFailureFail
			}
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		}
	})

	if cfg.N == 0 && cfg.M == 0 && *configFlag == "" {
		fs.Usage()
		return nil, true, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &cfg, false, nil
}

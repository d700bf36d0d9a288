package runfile

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/percolate/core"
)

// Failure modes accepted by on_failure.
const (
	OnFailureFail = "fail"
	OnFailureNaN  = "nan"
)

// ErrInvalidRunFile indicates a syntax, decode or validation problem.
var ErrInvalidRunFile = errors.New("runfile: invalid run file")

// Config is the resolved run configuration.
type Config struct {
	N         int
	M         int
	Seed      int64
	Workers   int
	MaxNodes  int
	Retain    bool
	OnFailure string
	LogLevel  string
	LogFormat string
}

// Defaults returns the settings used when neither file nor flags set a value.
func Defaults() Config {
	return Config{
		Seed:      1,
		Workers:   runtime.NumCPU(),
		MaxNodes:  core.DefaultMaxNodes,
		OnFailure: OnFailureFail,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// hclRunFile is the decoding target for a whole run file.
type hclRunFile struct {
	Sweep     hclSweep `hcl:"sweep,block"`
	Seed      *int64   `hcl:"seed,optional"`
	Workers   *int     `hcl:"workers,optional"`
	MaxNodes  *int     `hcl:"max_nodes,optional"`
	Retain    *bool    `hcl:"retain,optional"`
	OnFailure *string  `hcl:"on_failure,optional"`
	Log       *hclLog  `hcl:"log,block"`
}

type hclSweep struct {
	Nodes  int `hcl:"nodes"`
	Copies int `hcl:"copies"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// evalContext exposes the variables run files may reference.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cpus": cty.NumberIntVal(int64(runtime.NumCPU())),
		},
	}
}

// Load parses and validates the run file at path.
func Load(path string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidRunFile, path, diags)
	}
	return decode(file, path)
}

// Parse parses and validates run file source; filename is used in diagnostics.
func Parse(src []byte, filename string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidRunFile, filename, diags)
	}
	return decode(file, filename)
}

func decode(file *hcl.File, name string) (Config, error) {
	var raw hclRunFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &raw); diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: failed to decode %s: %w", ErrInvalidRunFile, name, diags)
	}

	cfg := Defaults()
	cfg.N = raw.Sweep.Nodes
	cfg.M = raw.Sweep.Copies
	if raw.Seed != nil {
		cfg.Seed = *raw.Seed
	}
	if raw.Workers != nil {
		cfg.Workers = *raw.Workers
	}
	if raw.MaxNodes != nil {
		cfg.MaxNodes = *raw.MaxNodes
	}
	if raw.Retain != nil {
		cfg.Retain = *raw.Retain
	}
	if raw.OnFailure != nil {
		cfg.OnFailure = *raw.OnFailure
	}
	if raw.Log != nil {
		if raw.Log.Level != nil {
			cfg.LogLevel = *raw.Log.Level
		}
		if raw.Log.Format != nil {
			cfg.LogFormat = *raw.Log.Format
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations. Sweep sizes are checked again by
// the pipeline; they are checked here so errors point at the file.
func (c Config) Validate() error {
	switch {
	case c.N <= 0:
		return fmt.Errorf("%w: nodes=%d must be positive", ErrInvalidRunFile, c.N)
	case c.M <= 0:
		return fmt.Errorf("%w: copies=%d must be positive", ErrInvalidRunFile, c.M)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers=%d must be at least 1", ErrInvalidRunFile, c.Workers)
	case c.MaxNodes < 0:
		return fmt.Errorf("%w: max_nodes=%d must not be negative", ErrInvalidRunFile, c.MaxNodes)
	}
	switch c.OnFailure {
	case OnFailureFail, OnFailureNaN:
	default:
		return fmt.Errorf("%w: on_failure=%q must be %q or %q", ErrInvalidRunFile, c.OnFailure, OnFailureFail, OnFailureNaN)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q must be debug, info, warn or error", ErrInvalidRunFile, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q must be text or json", ErrInvalidRunFile, c.LogFormat)
	}
	return nil
}

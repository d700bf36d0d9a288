// Command ersweep runs an Erdős–Rényi percolation sweep and writes the
// metric series as JSON to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/percolate/internal/cli"
	"github.com/katalvlaran/percolate/internal/runfile"
	"github.com/katalvlaran/percolate/pipeline"
	"github.com/katalvlaran/percolate/summary"
)

func main() {
	// Minimal logger until the configured one exists.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run parses arguments, executes the sweep and encodes the report.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	opts := []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithSeed(cfg.Seed),
		pipeline.WithWorkers(cfg.Workers),
		pipeline.WithMaxNodes(cfg.MaxNodes),
	}
	if cfg.Retain {
		opts = append(opts, pipeline.WithRetainGraphs())
	}
	if cfg.OnFailure == runfile.OnFailureNaN {
		opts = append(opts, pipeline.WithFailurePolicy(pipeline.SubstituteNaN))
	}

	res, err := pipeline.Run(ctx, cfg.N, cfg.M, opts...)
	if err != nil {
		return err
	}
	sum, err := summary.Summarize(res.Probabilities(), res.Series)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(newReport(res, sum))
}

// report is the JSON document written by ersweep. NaN sentinels become null.
type report struct {
	Nodes               int           `json:"n"`
	Copies              int           `json:"m"`
	CriticalProbability float64       `json:"critical_probability"`
	Threshold           float64       `json:"threshold"`
	Probabilities       []float64     `json:"probabilities"`
	LinkCount           []int         `json:"link_count"`
	NodesWithLinks      []int         `json:"node_with_link_count"`
	AverageDegree       []*float64    `json:"average_degree"`
	GiantFraction       []*float64    `json:"giant_component_fraction"`
	GiantDiameter       []int         `json:"giant_component_diameter"`
	AveragePathLength   []*float64    `json:"average_path_length"`
	Failed              []bool        `json:"failed"`
	GiantComponents     [][]int       `json:"giant_components,omitempty"`
	Summary             summaryReport `json:"summary"`
}

type summaryReport struct {
	summary.Summary
	SteepestGrowth *float64 `json:"steepest_growth_probability"`
}

func newReport(res *pipeline.Result, sum summary.Summary) report {
	s := res.Series
	r := report{
		Nodes:               res.Sweep.N,
		Copies:              res.Sweep.M,
		CriticalProbability: res.CriticalProbability(),
		Threshold:           res.Threshold(),
		Probabilities:       res.Probabilities(),
		LinkCount:           s.LinkCount,
		NodesWithLinks:      s.NodesWithLinks,
		AverageDegree:       nullable(s.AverageDegree),
		GiantFraction:       nullable(s.GiantFraction),
		GiantDiameter:       s.GiantDiameter,
		AveragePathLength:   nullable(s.AveragePathLength),
		Failed:              s.Failed,
		Summary:             summaryReport{Summary: sum},
	}
	if !math.IsNaN(sum.SteepestGrowth) {
		v := sum.SteepestGrowth
		r.Summary.SteepestGrowth = &v
	}
	for _, giant := range res.Giants {
		r.GiantComponents = append(r.GiantComponents, giant.Nodes)
	}

	return r
}

func nullable(x []float64) []*float64 {
	out := make([]*float64, len(x))
	for i := range x {
		if !math.IsNaN(x[i]) {
			out[i] = &x[i]
		}
	}
	return out
}

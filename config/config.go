package config

import (
	"fmt"

	"github.com/alecthomas/kong"
)

// Expressivity is the CLI's own string-keyed expressivity selector;
// cmd/rdflow maps it onto reasoner.Expressivity so this package stays free
// of a dependency on reasoner.
type Expressivity string

const (
	RDFS    Expressivity = "rdfs"
	RDFSPP  Expressivity = "rdfspp"
	OWL2RL  Expressivity = "owl2rl"
)

// cli is the kong-annotated argument/flag surface, kept unexported since
// Config is the public shape the rest of the program consumes.
type cli struct {
	TBoxPath     string       `arg:"" name:"tbox_path" type:"existingfile" help:"Path to the T-Box file."`
	ABoxPath     string       `arg:"" name:"abox_path" type:"existingfile" help:"Path to the A-Box file."`
	Expressivity Expressivity `arg:"" name:"expressivity" enum:"rdfs,rdfspp,owl2rl" help:"Rule fragment to materialize under."`
	Workers      int          `arg:"" name:"workers" help:"Number of worker threads."`
	BatchSize    int          `arg:"" name:"batch_size" help:"A-Box triples per ingested batch."`
	StepCount    uint64       `arg:"" name:"step_count" help:"Logical-time advance applied per flushed batch."`

	Encode      bool   `help:"Interpret tbox_path/abox_path as plain N-Triples (.nt) rather than the pre-encoded .ntenc format." default:"false"`
	MetricsAddr string `help:"Address to serve /metrics on; empty disables the endpoint." default:""`
	LogLevel    string `help:"Logging level." enum:"debug,info,warn,error" default:"info"`
}

// Config is the validated, program-facing configuration cmd/rdflow wires
// into ingest/reasoner/metrics/logging.
type Config struct {
	TBoxPath     string
	ABoxPath     string
	Expressivity Expressivity
	Workers      int
	BatchSize    int
	StepCount    uint64
	Encode       bool
	MetricsAddr  string
	LogLevel     string
}

// Parse parses args (excluding the program name, i.e. os.Args[1:]) into a
// Config, returning a kong usage/validation error on malformed input — spec
// §6's CLI surface exits non-zero on input-file errors, which kong's own
// existingfile type check already enforces before the program ever runs.
func Parse(name string, args []string) (*Config, error) {
	var c cli
	parser, err := kong.New(&c, kong.Name(name), kong.Description("Incremental RDFS/OWL 2 RL materialization engine."))
	if err != nil {
		return nil, fmt.Errorf("config: build parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, err
	}

	if c.Workers < 1 {
		return nil, fmt.Errorf("config: workers must be >= 1, got %d", c.Workers)
	}
	if c.BatchSize < 1 {
		return nil, fmt.Errorf("config: batch_size must be >= 1, got %d", c.BatchSize)
	}
	if c.StepCount < 1 {
		return nil, fmt.Errorf("config: step_count must be >= 1, got %d", c.StepCount)
	}

	return &Config{
		TBoxPath:     c.TBoxPath,
		ABoxPath:     c.ABoxPath,
		Expressivity: c.Expressivity,
		Workers:      c.Workers,
		BatchSize:    c.BatchSize,
		StepCount:    c.StepCount,
		Encode:       c.Encode,
		MetricsAddr:  c.MetricsAddr,
		LogLevel:     c.LogLevel,
	}, nil
}

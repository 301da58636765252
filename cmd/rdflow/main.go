// Command rdflow is the binary entry point of SPEC_FULL.md §6: it parses
// the CLI surface via config, loads the T-Box/A-Box through ingest, drives
// N reasoner.Engine instances (one per worker, spec §5's "N worker threads
// sharing memory") over disjoint A-Box shards, and reports summary lines
// plus an optional Prometheus endpoint.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/arkadyh/rdflow/config"
	"github.com/arkadyh/rdflow/dataflow"
	"github.com/arkadyh/rdflow/ingest"
	"github.com/arkadyh/rdflow/metrics"
	"github.com/arkadyh/rdflow/reasoner"
	"github.com/arkadyh/rdflow/triple"
)

func main() {
	if err := run(filepath.Base(os.Args[0]), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(progName string, args []string) error {
	cfg, err := config.Parse(progName, args)
	if err != nil {
		return err
	}

	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("rdflow: %w", err)
	}
	log.SetLevel(level)

	if folder := os.Getenv("TIMELY_WORKER_ALL_LOG_FOLDER"); folder != "" {
		configureProgressLog(log, folder)
	}

	reg := metrics.New()
	stopMetrics := maybeServeMetrics(cfg.MetricsAddr, reg, log)
	defer stopMetrics()

	start := time.Now()

	tboxTriples, aboxTriples, err := loadInputs(cfg)
	if err != nil {
		return fmt.Errorf("rdflow: %w", err)
	}

	engines, err := buildEngines(cfg, tboxTriples)
	if err != nil {
		return fmt.Errorf("rdflow: %w", err)
	}
	shards := shardByWorker(aboxTriples, cfg.Workers)

	g, ctx := errgroup.WithContext(context.Background())
	for i, shard := range shards {
		i, shard := i, shard
		g.Go(func() error {
			return runWorker(ctx, engines[i], shard, cfg.BatchSize, reg, log, i)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("rdflow: %w", err)
	}

	tboxSize, aboxSize := reportSummary(engines, start)
	reg.TBoxSize.Set(float64(tboxSize))
	reg.ABoxSize.Set(float64(aboxSize))

	return nil
}

func expressivityOf(e config.Expressivity) reasoner.Expressivity {
	switch e {
	case config.RDFSPP:
		return reasoner.RDFSPP
	case config.OWL2RL:
		return reasoner.OWL2RL
	default:
		return reasoner.RDFS
	}
}

func loadInputs(cfg *config.Config) (tboxTriples, aboxTriples triple.Collection, err error) {
	if cfg.Encode {
		in := triple.NewMemInterner()
		tboxTriples, err = ingest.LoadNTriples(cfg.TBoxPath, in, 0)
		if err != nil {
			return nil, nil, err
		}
		aboxTriples, err = ingest.LoadNTriples(cfg.ABoxPath, in, 1)
		if err != nil {
			return nil, nil, err
		}
		return tboxTriples, aboxTriples, nil
	}

	tboxTriples, err = ingest.LoadNTEnc(cfg.TBoxPath, 0)
	if err != nil {
		return nil, nil, err
	}
	aboxTriples, err = ingest.LoadNTEnc(cfg.ABoxPath, 1)
	if err != nil {
		return nil, nil, err
	}
	return tboxTriples, aboxTriples, nil
}

// buildEngines constructs one sealed Engine per worker, each holding the
// full T-Box (cheap relative to the A-Box shard it owns) per spec §5
// "Workers do not share traces; each holds its shard."
func buildEngines(cfg *config.Config, tboxTriples triple.Collection) ([]*reasoner.Engine, error) {
	expr := expressivityOf(cfg.Expressivity)
	engines := make([]*reasoner.Engine, cfg.Workers)
	for i := range engines {
		e := reasoner.NewEngine(expr, cfg.StepCount, reasoner.DefaultMaxPartitions, nil)
		if err := e.InsertTBox(tboxTriples.Triples()); err != nil {
			return nil, err
		}
		if err := e.SealTBox(); err != nil {
			return nil, err
		}
		engines[i] = e
	}
	return engines, nil
}

// shardByWorker partitions ts by dataflow.RouteByHash(t.S, workers), the
// same routing-key hash spec §5 prescribes for inter-worker channels.
func shardByWorker(ts triple.Collection, workers int) [][]triple.Triple {
	shards := make([][]triple.Triple, workers)
	for _, t := range ts.Triples() {
		w := dataflow.RouteByHash(t.S, workers)
		shards[w] = append(shards[w], t)
	}
	return shards
}

func runWorker(ctx context.Context, e *reasoner.Engine, shard []triple.Triple, batchSize int, reg *metrics.Registry, log *logrus.Logger, worker int) error {
	for start := 0; start < len(shard); start += batchSize {
		end := start + batchSize
		if end > len(shard) {
			end = len(shard)
		}
		if err := e.Insert(shard[start:end]); err != nil {
			return err
		}

		flushStart := time.Now()
		if err := e.Flush(); err != nil {
			return err
		}
		reg.FlushLatency.Observe(time.Since(flushStart).Seconds())

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	if err := e.CloseABox(); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"worker": worker, "shard_size": len(shard)}).Info("worker drained")
	return nil
}

func reportSummary(engines []*reasoner.Engine, start time.Time) (tboxSize, aboxSize int) {
	for _, e := range engines {
		cur := e.Cursor()
		tboxSize += len(cur.TBoxTriples())
		aboxSize += len(cur.ABoxTriples())
	}
	fmt.Printf("tbox size %s\nabox size %s\nelapsed %s\n",
		humanize.Comma(int64(tboxSize)), humanize.Comma(int64(aboxSize)), time.Since(start))
	return tboxSize, aboxSize
}

func maybeServeMetrics(addr string, reg *metrics.Registry, log *logrus.Logger) func() {
	if addr == "" {
		return func() {}
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("rdflow: metrics server failed")
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func configureProgressLog(log *logrus.Logger, folder string) {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		log.WithError(err).Warn("rdflow: could not create progress log folder, logging to stderr only")
		return
	}
	path := fmt.Sprintf("%s/rdflow-progress.log", folder)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.WithError(err).Warn("rdflow: could not open progress log file")
		return
	}
	log.SetOutput(f)
	log.SetFormatter(&logrus.JSONFormatter{})
}

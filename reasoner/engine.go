package reasoner

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/arkadyh/rdflow/canon"
	"github.com/arkadyh/rdflow/dataflow"
	"github.com/arkadyh/rdflow/owl2rl"
	"github.com/arkadyh/rdflow/rdfs"
	"github.com/arkadyh/rdflow/tbox"
	"github.com/arkadyh/rdflow/triple"
)

// DefaultMaxPartitions mirrors owl2rl.DefaultMaxPartitions; an Engine
// constructed via NewEngine without an explicit partition cap uses this.
const DefaultMaxPartitions = owl2rl.DefaultMaxPartitions

// Engine is the top-level driver of spec §4.9's two state machines. It owns
// the T-Box index (or, under OWL2RL, the canonicalizing compiler), buffers
// A-Box batches, and exposes a Cursor over the most recently materialized
// closure. One Engine serves one worker's share of the dataflow; spec §5's
// multi-worker model is realized by running N Engines over disjoint
// A-Box shards and merging their cursors, not by this type itself.
type Engine struct {
	mu sync.Mutex

	expressivity  Expressivity
	maxPartitions int
	stepCount     triple.Time
	log           *logrus.Logger

	inputState InputState
	lifecycle  LifecycleState

	tboxPending triple.Collection
	tbox        triple.Collection
	idx         *tbox.Index

	abox    triple.Collection
	pending triple.Collection
	time    triple.Time

	consolidator *dataflow.ConsolidateAggressive[triple.Triple]

	probe *dataflow.Probe

	tboxClosure triple.Collection
	aboxClosure triple.Collection
	disjointSet *canon.DisjointSet
	partitions  owl2rl.PartitionStats
}

// NewEngine constructs an Engine in the Building/Open state. stepCount is
// the logical-time advance applied by each Flush (spec §3 Lifecycle,
// "advances the input frontier by a configurable STEP_COUNT"); it must be
// at least 1. maxPartitions is only consulted under OWL2RL; pass
// DefaultMaxPartitions when the caller has no opinion. A nil log installs a
// logrus.Logger with the package default settings.
func NewEngine(expressivity Expressivity, stepCount uint64, maxPartitions int, log *logrus.Logger) *Engine {
	if stepCount == 0 {
		stepCount = 1
	}
	if log == nil {
		log = logrus.New()
	}
	return &Engine{
		expressivity:  expressivity,
		maxPartitions: maxPartitions,
		stepCount:     stepCount,
		log:           log,
		inputState:    Open,
		lifecycle:     Building,
		probe:         dataflow.NewProbe(),
		consolidator:  dataflow.NewConsolidateAggressive[triple.Triple](0),
	}
}

// InsertTBox stages schema triples while the lifecycle is Building. T-Box
// triples are stamped at time 0 per spec §3 Lifecycle.
func (e *Engine) InsertTBox(triples []triple.Triple) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lifecycle != Building {
		return ErrTBoxAlreadySealed
	}
	e.tboxPending = append(e.tboxPending, triple.FromTriples(triples, 0)...)
	return nil
}

// SealTBox closes the T-Box input stream, advances its probe, and builds
// whatever index the selected expressivity needs up front (Building →
// TBoxSealed, spec §4.9). Under OWL2RL no index is built here: canon
// and tbox construction happen inside owl2rl.Compile on every Flush, since
// canonicalization depends on the full T-Box only and is cheap to redo.
func (e *Engine) SealTBox() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lifecycle != Building {
		return ErrTBoxAlreadySealed
	}
	e.tbox = e.tboxPending
	e.tboxPending = nil
	e.probe.Advance(1)
	e.lifecycle = TBoxSealed
	if e.expressivity != OWL2RL {
		e.idx = tbox.Build(e.tbox)
		e.tboxClosure = e.idx.Closure()
	}
	e.log.WithFields(logrus.Fields{"triples": len(e.tbox), "expressivity": e.expressivity}).Info("tbox sealed")
	return nil
}

// Insert stages additive A-Box triples into the pending batch (diff +1).
func (e *Engine) Insert(triples []triple.Triple) error {
	return e.stage(triples, 1)
}

// Retract stages A-Box triples for removal (diff -1), realizing spec §3
// invariant 4's monotone delete-respecting requirement: whichever derived
// facts no longer have a surviving proof are dropped at the next Flush.
func (e *Engine) Retract(triples []triple.Triple) error {
	return e.stage(triples, -1)
}

func (e *Engine) stage(triples []triple.Triple, diff triple.Diff) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lifecycle == Building {
		return ErrTBoxNotSealed
	}
	if e.inputState == Closed {
		return ErrInputClosed
	}
	for _, t := range triples {
		e.pending = append(e.pending, triple.Update{Triple: t, Time: e.time + e.stepCount, Diff: diff})
	}
	e.inputState = BatchPending
	return nil
}

// Flush commits the pending batch, advances logical time by stepCount,
// and recomputes the materialized closure (BatchPending → Advancing → Open,
// spec §4.9). The Advancing state is not externally observable from this
// synchronous, single-process engine: there is no asynchronous probe delay
// to wait out, so Flush collapses the ADVANCING → OPEN transition into the
// same call rather than requiring a second poll, a deliberate simplification
// over the source's timely-dataflow probe loop (documented in DESIGN.md).
func (e *Engine) Flush() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inputState != BatchPending {
		return ErrNothingToFlush
	}
	e.inputState = Advancing

	e.time += e.stepCount
	if e.lifecycle == TBoxSealed {
		e.lifecycle = Streaming
	}

	batchID := uuid.New().String()
	// Route the growing A-Box through ConsolidateAggressive's dirty/clean
	// buffer (spec §4.8) instead of an unbounded append. The prior
	// consolidated state is first advanced to the current time (logical
	// compaction), so it shares the new batch's timestamp and flushing nets
	// out duplicate inserts and insert/retract cancellations across batches
	// before they pile up.
	prior := toDataflow(e.abox)
	for i := range prior {
		prior[i].Time = e.time
	}
	e.consolidator.Absorb(prior)
	e.consolidator.Absorb(toDataflow(e.pending))
	e.pending = nil
	e.abox = fromDataflow(e.consolidator.FlushAll())

	e.materialize()
	e.probe.Advance(e.time)
	e.inputState = Open

	e.log.WithFields(logrus.Fields{
		"batch_id":  batchID,
		"time":      e.time,
		"abox_size": len(e.abox),
	}).Debug("batch flushed")
	return nil
}

func (e *Engine) materialize() {
	switch e.expressivity {
	case OWL2RL:
		out := owl2rl.Compile(e.tbox, e.abox, e.maxPartitions)
		e.tboxClosure = out.TBox
		e.aboxClosure = out.ABox
		e.disjointSet = out.DisjointSet
		e.partitions = out.Partitions
	default:
		mode := rdfs.RDFS
		if e.expressivity == RDFSPP {
			mode = rdfs.RDFSPP
		}
		tboxOut, aboxOut := rdfs.Materialize(e.idx, e.abox, mode)
		e.tboxClosure = tboxOut
		e.aboxClosure = aboxOut
	}
}

// CloseABox closes the A-Box input stream (→ Closed, spec §4.9) and, once
// the probe has caught up (synchronously true in this engine, see Flush),
// drains the lifecycle to Drained. Any pending, unflushed batch is flushed
// first so no staged insert is silently lost.
func (e *Engine) CloseABox() error {
	e.mu.Lock()
	pending := e.inputState == BatchPending
	closed := e.inputState == Closed
	e.mu.Unlock()
	if closed {
		return ErrAlreadyClosed
	}
	if pending {
		if err := e.Flush(); err != nil {
			return err
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.inputState = Closed
	e.lifecycle = Drained
	e.log.WithField("abox_size", len(e.abox)).Info("abox closed")
	return nil
}

// State returns the engine's current (InputState, LifecycleState) pair.
func (e *Engine) State() (InputState, LifecycleState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inputState, e.lifecycle
}

// Partitions reports the most recent OWL2RL partition routing statistics;
// it is the zero value under RDFS/RDFSPP.
func (e *Engine) Partitions() owl2rl.PartitionStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.partitions
}

// Cursor returns a read-only snapshot of the current materialized closure,
// spec §4.9's "cursor-based query surface".
func (e *Engine) Cursor() *Cursor {
	e.mu.Lock()
	defer e.mu.Unlock()
	return &Cursor{tbox: e.tboxClosure, abox: e.aboxClosure, disjointSet: e.disjointSet}
}

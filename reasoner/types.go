package reasoner

import (
	"errors"

	"github.com/arkadyh/rdflow/dataflow"
	"github.com/arkadyh/rdflow/triple"
)

func toDataflow(c triple.Collection) dataflow.Collection[triple.Triple] {
	out := make(dataflow.Collection[triple.Triple], len(c))
	for i, u := range c {
		out[i] = dataflow.Update[triple.Triple]{Value: u.Triple, Time: u.Time, Diff: u.Diff}
	}
	return out
}

func fromDataflow(c dataflow.Collection[triple.Triple]) triple.Collection {
	out := make(triple.Collection, len(c))
	for i, u := range c {
		out[i] = triple.Update{Triple: u.Value, Time: u.Time, Diff: u.Diff}
	}
	return out
}

// Expressivity selects which rule fragment the engine materializes under,
// per spec §1/§4.4-§4.7.
type Expressivity int

const (
	// RDFS applies subClassOf/subPropertyOf/domain/range propagation only.
	RDFS Expressivity = iota
	// RDFSPP additionally propagates TransitiveProperty and inverseOf.
	RDFSPP
	// OWL2RL runs ahead-of-time canonicalization plus the owl2rl gadget
	// set on top of RDFSPP.
	OWL2RL
)

// InputState is the A-Box input stream's state machine, spec §4.9.
type InputState int

const (
	Open InputState = iota
	BatchPending
	Advancing
	Closed
)

func (s InputState) String() string {
	switch s {
	case Open:
		return "open"
	case BatchPending:
		return "batch_pending"
	case Advancing:
		return "advancing"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// LifecycleState is the dataflow's overall state machine, spec §4.9.
type LifecycleState int

const (
	Building LifecycleState = iota
	TBoxSealed
	Streaming
	Drained
)

func (s LifecycleState) String() string {
	switch s {
	case Building:
		return "building"
	case TBoxSealed:
		return "tbox_sealed"
	case Streaming:
		return "streaming"
	case Drained:
		return "drained"
	default:
		return "unknown"
	}
}

var (
	// ErrTBoxAlreadySealed rejects a T-Box insert or a second SealTBox call
	// once the lifecycle has left Building.
	ErrTBoxAlreadySealed = errors.New("reasoner: tbox already sealed")
	// ErrTBoxNotSealed rejects any A-Box operation before SealTBox.
	ErrTBoxNotSealed = errors.New("reasoner: tbox not sealed")
	// ErrInputClosed rejects Insert/Retract once CloseABox has run.
	ErrInputClosed = errors.New("reasoner: abox input closed")
	// ErrNothingToFlush rejects Flush when no batch is pending, per §4.9's
	// "Only OPEN and BATCH_PENDING accept inserts" (Flush is only
	// meaningful from BatchPending).
	ErrNothingToFlush = errors.New("reasoner: no pending batch to flush")
	// ErrAlreadyClosed rejects a second CloseABox call.
	ErrAlreadyClosed = errors.New("reasoner: abox already closed")
)

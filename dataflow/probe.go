package dataflow

import "sync"

// Probe observes the current output frontier of a dataflow edge: a lower
// bound on timestamps that may still appear at that edge (spec §4.2,
// §4.9). Consumers use Probe to decide when a batch has been fully
// processed (LessThan returns false once the frontier has advanced past
// the batch's time).
type Probe struct {
	mu       sync.Mutex
	frontier Time
}

// NewProbe creates a Probe starting at frontier 0.
func NewProbe() *Probe {
	return &Probe{}
}

// Advance moves the probe's frontier forward. Advancing backward is a
// caller bug (frontiers are monotone) and is silently ignored rather than
// panicking, since a stale notification arriving after a newer one is a
// race the probe should tolerate, not escalate.
func (p *Probe) Advance(t Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if t > p.frontier {
		p.frontier = t
	}
}

// Frontier returns the probe's current frontier.
func (p *Probe) Frontier() Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frontier
}

// LessThan reports whether the probe's frontier is still strictly less
// than t — i.e. whether outputs at time t may still be forthcoming.
func (p *Probe) LessThan(t Time) bool {
	return p.Frontier() < t
}

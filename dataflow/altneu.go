package dataflow

// AltNeu is the "earlier / earlier-and-simultaneous" timestamp pair spec
// §4.2/§9 describes for delta-join extenders: at a fixed Base time, Alt
// orders strictly before Neu. The OWL2RL compiler (C7) tags the two sides
// of its prp-fp/prp-ifp self-joins with it: TagAlt on the round's full
// snapshot, TagNeu on the part new this round. Which updates each side
// holds is set by the collection the caller passes in, not by the tag:
// those joins read at Unbounded, so every tagged update is visible to them.
type AltNeu struct {
	Base Time
	Neu  bool
}

// Less implements the Alt < Neu ordering at the same Base time, and the
// usual ordering across different Base times.
func (t AltNeu) Less(o AltNeu) bool {
	if t.Base != o.Base {
		return t.Base < o.Base
	}
	return !t.Neu && o.Neu
}

// Alt returns the "earlier" half of the pair at base.
func Alt(base Time) AltNeu { return AltNeu{Base: base, Neu: false} }

// Neu returns the "earlier-and-simultaneous" half of the pair at base.
func Neu(base Time) AltNeu { return AltNeu{Base: base, Neu: true} }

// TagAlt stamps every update of c with the Alt half of its own time,
// encoded back into a uint64-compatible Time via AltNeuTime so it can keep
// flowing through the uint64-keyed Collection/Arrangement machinery.
func TagAlt[T any](c Collection[T]) Collection[T] {
	out := make(Collection[T], len(c))
	for i, u := range c {
		out[i] = Update[T]{Value: u.Value, Time: AltNeuTime(Alt(u.Time)), Diff: u.Diff}
	}
	return out
}

// TagNeu is TagAlt's Neu-half counterpart.
func TagNeu[T any](c Collection[T]) Collection[T] {
	out := make(Collection[T], len(c))
	for i, u := range c {
		out[i] = Update[T]{Value: u.Value, Time: AltNeuTime(Neu(u.Time)), Diff: u.Diff}
	}
	return out
}

// AltNeuTime packs an AltNeu pair into a single Time so Alt/Neu-tagged
// Collections can still be arranged and joined with the plain Time-keyed
// machinery: Base occupies the high 63 bits, Neu the low bit. Base is the
// tagged update's own Time, so a Base with its top bit set (such as
// Unbounded, which derived facts carry) loses that bit in the packing.
func AltNeuTime(t AltNeu) Time {
	v := t.Base << 1
	if t.Neu {
		v |= 1
	}
	return v
}

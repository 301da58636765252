package dataflow

// Arrangement is an indexed, shared materialization of a Collection of
// (K, V) pairs by key, per spec §4.2. It exposes a Cursor over the
// accumulated diff for each (key, value) at a given time. Arrangements are
// reference-counted only conceptually here (callers share the *Arrangement
// pointer); there is no explicit refcounting API because Go's GC already
// reclaims an Arrangement once its last reference drops, which is the
// observable behavior spec §5 asks for.
type Arrangement[K comparable, V comparable] struct {
	index map[K][]Update[V]
}

// ArrangeByKey builds an Arrangement over c, keyed by keyOf. It is the Go
// equivalent of differential dataflow's arrange_by_key.
func ArrangeByKey[T any, K comparable, V comparable](c Collection[T], keyOf func(T) (K, V)) *Arrangement[K, V] {
	idx := make(map[K][]Update[V])
	for _, u := range c {
		k, v := keyOf(u.Value)
		idx[k] = append(idx[k], Update[V]{Value: v, Time: u.Time, Diff: u.Diff})
	}
	return &Arrangement[K, V]{index: idx}
}

// ArrangeBySelf arranges a Collection[K] keyed by the value itself, paired
// with the zero-sized struct{} value — the Go equivalent of
// arrange_by_self, used by the OWL2RL Class record (spec §4.7).
func ArrangeBySelf[K comparable](c Collection[K]) *Arrangement[K, struct{}] {
	return ArrangeByKey(c, func(k K) (K, struct{}) { return k, struct{}{} })
}

// Cursor returns the (value, diff) pairs indexed under key, consolidated
// across all times up to and including at.
func (a *Arrangement[K, V]) Cursor(key K, at Time) map[V]Diff {
	out := make(map[V]Diff)
	for _, u := range a.index[key] {
		if u.Time <= at {
			out[u.Value] += u.Diff
		}
	}
	return out
}

// Keys returns every distinct key with at least one update, in no
// particular order.
func (a *Arrangement[K, V]) Keys() []K {
	out := make([]K, 0, len(a.index))
	for k := range a.index {
		out = append(out, k)
	}
	return out
}

// HasKey reports whether key has any arranged updates.
func (a *Arrangement[K, V]) HasKey(key K) bool {
	_, ok := a.index[key]
	return ok
}

// JoinCore performs the streaming hash-merge join of spec §4.2: for every
// key present in both arrangements, every (valueA, valueB) pair (summed
// across times up to "at") is passed to f; f returns the output value plus
// whether to emit it at all (mirroring differential dataflow's join_core
// closures, which can themselves filter via returning no tuples).
func JoinCore[K comparable, A, B comparable, O any](a *Arrangement[K, A], b *Arrangement[K, B], at Time, f func(key K, av A, bv B) (O, bool)) Collection[O] {
	// Iterate whichever arrangement has fewer keys to minimize probe count,
	// matching the teacher's preference for the cheaper traversal direction
	// (core.Graph picks the smaller adjacency set first in several of its
	// algorithms).
	out := Collection[O]{}
	join := func(key K, leftUpdates []Update[A], rightUpdates []Update[B]) {
		leftVals := map[A]Diff{}
		rightVals := map[B]Diff{}
		for _, u := range leftUpdates {
			if u.Time <= at {
				leftVals[u.Value] += u.Diff
			}
		}
		for _, u := range rightUpdates {
			if u.Time <= at {
				rightVals[u.Value] += u.Diff
			}
		}
		for av, ad := range leftVals {
			if ad == 0 {
				continue
			}
			for bv, bd := range rightVals {
				if bd == 0 {
					continue
				}
				o, emit := f(key, av, bv)
				if !emit {
					continue
				}
				out = append(out, Update[O]{Value: o, Time: at, Diff: ad * bd})
			}
		}
	}

	if len(a.index) <= len(b.index) {
		for key, updates := range a.index {
			other, ok := b.index[key]
			if !ok {
				continue
			}
			join(key, updates, other)
		}
	} else {
		for key, updates := range b.index {
			other, ok := a.index[key]
			if !ok {
				continue
			}
			join(key, other, updates)
		}
	}
	return out
}

package dataflow

import "sort"

// Map applies f to every value in c, preserving time and diff. Stateless
// streaming transformer per spec §4.2.
func Map[T, U any](c Collection[T], f func(T) U) Collection[U] {
	out := make(Collection[U], len(c))
	for i, u := range c {
		out[i] = Update[U]{Value: f(u.Value), Time: u.Time, Diff: u.Diff}
	}
	return out
}

// Filter keeps only updates whose value satisfies pred.
func Filter[T any](c Collection[T], pred func(T) bool) Collection[T] {
	out := make(Collection[T], 0, len(c))
	for _, u := range c {
		if pred(u.Value) {
			out = append(out, u)
		}
	}
	return out
}

// FlatMap maps each value to zero or more output values, all carrying the
// input update's time and diff.
func FlatMap[T, U any](c Collection[T], f func(T) []U) Collection[U] {
	out := make(Collection[U], 0, len(c))
	for _, u := range c {
		for _, v := range f(u.Value) {
			out = append(out, Update[U]{Value: v, Time: u.Time, Diff: u.Diff})
		}
	}
	return out
}

// Concat concatenates collections without deduplication, matching spec
// §4.2's stateless concat.
func Concat[T any](cs ...Collection[T]) Collection[T] {
	n := 0
	for _, c := range cs {
		n += len(c)
	}
	out := make(Collection[T], 0, n)
	for _, c := range cs {
		out = append(out, c...)
	}
	return out
}

// Consolidate sums diffs for identical (value, time) pairs and drops
// entries that cancel to zero, per spec §4.2 ("collapse multiplicities ...
// normal-form multiset"). Order of the result is deterministic (sorted by
// time, then insertion order of first sight) so repeated calls on
// equivalent input are comparable.
func Consolidate[T comparable](c Collection[T]) Collection[T] {
	type key struct {
		v T
		t Time
	}
	acc := make(map[key]Diff, len(c))
	order := make([]key, 0, len(c))
	for _, u := range c {
		k := key{u.Value, u.Time}
		if _, seen := acc[k]; !seen {
			order = append(order, k)
		}
		acc[k] += u.Diff
	}
	out := make(Collection[T], 0, len(order))
	for _, k := range order {
		if d := acc[k]; d != 0 {
			out = append(out, Update[T]{Value: k.v, Time: k.t, Diff: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// Distinct collapses c to its set-semantics form: one update per value
// present with strictly positive accumulated diff (summed across every
// time seen so far), stamped with the maximum time at which that value
// was asserted. This is the "distinct at every iterative variable
// boundary" behavior spec §9 resolves the ambiguous distinct/consolidate
// question in favor of.
func Distinct[T comparable](c Collection[T]) Collection[T] {
	type acc struct {
		diff Diff
		time Time
	}
	sums := make(map[T]*acc, len(c))
	order := make([]T, 0, len(c))
	for _, u := range c {
		a, ok := sums[u.Value]
		if !ok {
			a = &acc{}
			sums[u.Value] = a
			order = append(order, u.Value)
		}
		a.diff += u.Diff
		if u.Time > a.time {
			a.time = u.Time
		}
	}
	out := make(Collection[T], 0, len(order))
	for _, v := range order {
		a := sums[v]
		if a.diff > 0 {
			out = append(out, Update[T]{Value: v, Time: a.time, Diff: 1})
		}
	}
	return out
}

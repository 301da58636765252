package dataflow

// Time is the logical timestamp of an Update. It is identical in
// underlying type to triple.Time so the two packages' values are
// interchangeable without conversion.
type Time = uint64

// Diff is a signed multiplicity, forming a commutative semigroup under +
// per spec §4.2 ("(record, timestamp, diff) triples forming a commutative
// semigroup under +").
type Diff = int64

// Unbounded is the "all time seen so far" frontier: passing it to Cursor
// or JoinCore accumulates every update regardless of timestamp, the
// correct choice whenever a caller is computing a full batch closure
// rather than querying a specific logical instant (e.g. joining a T-Box
// arrangement stamped at time 0 against A-Box data stamped at time 1 or
// later — bounding at either side's own time would wrongly drop the
// other's entries).
const Unbounded Time = ^Time(0)

// Update is one (value, time, diff) element of a Collection.
type Update[T any] struct {
	Value T
	Time  Time
	Diff  Diff
}

// Collection is a multiset of timestamped, weighted records. It is the
// fundamental value flowing between dataflow operators.
type Collection[T any] []Update[T]

// At returns every value in c with its accumulated diff at exactly time t,
// without consolidating across other times. Most operators work directly
// on the slice; At is a convenience for tests and cursor-style consumers.
func At[T comparable](c Collection[T], t Time) map[T]Diff {
	out := make(map[T]Diff)
	for _, u := range c {
		if u.Time == t {
			out[u.Value] += u.Diff
		}
	}
	return out
}

// MaxTime returns the greatest timestamp present in c, or 0 for an empty
// Collection.
func MaxTime[T any](c Collection[T]) Time {
	var max Time
	for _, u := range c {
		if u.Time > max {
			max = u.Time
		}
	}
	return max
}

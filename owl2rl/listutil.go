package owl2rl

import "github.com/arkadyh/rdflow/triple"

// listWalker returns a function that walks an rdf:List's first/rest chain
// starting at head and returns its members in order, stopping at rdf:nil
// or at the first node missing an rdf:first (a malformed list is treated
// as ending early rather than panicking, since a partially-ingested T-Box
// batch can observe a list node before its continuation arrives).
func listWalker(first, rest map[uint32]uint32) func(head uint32) []uint32 {
	return func(head uint32) []uint32 {
		var out []uint32
		seen := map[uint32]bool{}
		for head != triple.Nil && !seen[head] {
			v, ok := first[head]
			if !ok {
				break
			}
			out = append(out, v)
			seen[head] = true
			head = rest[head]
		}
		return out
	}
}

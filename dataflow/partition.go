package dataflow

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// RouteByHash maps a routing key (a predicate or class IRI's interned ID)
// to a worker index, implementing spec §5's "workers exchange batches via
// shared in-memory channels keyed by a hash of the routing key". Using a
// real hash function rather than key%workers avoids pathological
// clustering when IRIs were interned in a schema-correlated order (e.g. a
// T-Box that assigns contiguous IDs to every property of a single class).
func RouteByHash(key uint32, workers int) int {
	if workers <= 1 {
		return 0
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], key)
	h := xxhash.Sum64(buf[:])
	return int(h % uint64(workers))
}

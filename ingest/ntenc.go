package ingest

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arkadyh/rdflow/triple"
)

// LoadNTEnc reads the encoded triple format of spec §6: whitespace-separated
// decimal `<s> <p> <o>` per line, blank lines skipped, duplicate lines
// preserved as multiplicity. Every triple is stamped at time at. Ported
// from original_source/src/load_encode_triples.rs's load3enc, which parses
// with the same split-on-whitespace, parse-three-fields shape.
func LoadNTEnc(path string, at triple.Time) (triple.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()

	var out triple.Collection
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		t, err := parseNTEncLine(line)
		if err != nil {
			return nil, fmt.Errorf("ingest: %s:%d: %w", path, lineNo, err)
		}
		out = append(out, triple.Update{Triple: t, Time: at, Diff: 1})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ingest: read %s: %w", path, err)
	}
	return out, nil
}

func parseNTEncLine(line string) (triple.Triple, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return triple.Triple{}, fmt.Errorf("ingest: malformed .ntenc line %q: want 3 fields, got %d", line, len(fields))
	}
	s, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return triple.Triple{}, fmt.Errorf("ingest: subject field %q: %w", fields[0], err)
	}
	p, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return triple.Triple{}, fmt.Errorf("ingest: predicate field %q: %w", fields[1], err)
	}
	o, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return triple.Triple{}, fmt.Errorf("ingest: object field %q: %w", fields[2], err)
	}
	return triple.Triple{S: uint32(s), P: uint32(p), O: uint32(o)}, nil
}

// WriteNTEnc writes ts back out in the .ntenc format, one triple per line,
// in the Collection's natural order (no sorting — callers that want a
// deterministic dump should sort first, e.g. via Collection.Triples()).
func WriteNTEnc(path string, ts []triple.Triple) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ingest: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, t := range ts {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", t.S, t.P, t.O); err != nil {
			return fmt.Errorf("ingest: write %s: %w", path, err)
		}
	}
	return w.Flush()
}

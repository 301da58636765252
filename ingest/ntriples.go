package ingest

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/arkadyh/rdflow/triple"
)

// LoadNTriples reads standard N-Triples, one statement per line, interning
// each component through in. Per spec §6: "the loader strips the trailing
// ` .` and interns each component." Object position may be an IRI
// (`<...>`) or a literal (quoted, optionally with a `^^<datatype>` or
// `@lang` suffix); both intern to a single dense ID via their exact textual
// form, since the core only ever compares encoded IDs.
func LoadNTriples(path string, in triple.Interner, at triple.Time) (triple.Collection, error) {
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
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s, p, o, err := parseNTriplesLine(line)
		if err != nil {
			return nil, fmt.Errorf("ingest: %s:%d: %w", path, lineNo, err)
		}
		t := triple.Triple{S: in.Intern(s), P: in.Intern(p), O: in.Intern(o)}
		out = append(out, triple.Update{Triple: t, Time: at, Diff: 1})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ingest: read %s: %w", path, err)
	}
	return out, nil
}

// parseNTriplesLine splits one N-Triples statement into its three
// whitespace-delimited terms, tolerating a literal object that itself
// contains spaces (everything from the third term up to the trailing
// " ." terminator belongs to the object).
func parseNTriplesLine(line string) (s, p, o string, err error) {
	line = strings.TrimSuffix(strings.TrimSpace(line), ".")
	line = strings.TrimSpace(line)

	rest := line
	s, rest, ok := cutToken(rest)
	if !ok {
		return "", "", "", fmt.Errorf("malformed N-Triples line %q: missing subject", line)
	}
	p, rest, ok = cutToken(rest)
	if !ok {
		return "", "", "", fmt.Errorf("malformed N-Triples line %q: missing predicate", line)
	}
	o = strings.TrimSpace(rest)
	if o == "" {
		return "", "", "", fmt.Errorf("malformed N-Triples line %q: missing object", line)
	}
	return s, p, o, nil
}

// cutToken splits the first whitespace-delimited token off s, returning it
// and the (trimmed) remainder.
func cutToken(s string) (token, rest string, ok bool) {
	s = strings.TrimSpace(s)
	idx := strings.IndexAny(s, " \t")
	if idx < 0 {
		return "", "", false
	}
	return s[:idx], strings.TrimSpace(s[idx+1:]), true
}

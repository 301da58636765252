// Package ingest implements the external triple-loading collaborators spec
// §6 describes but deliberately keeps out of the core (spec §1's "N-Triples
// parsing ... and file I/O for the encoded triple format" are named
// out-of-scope collaborators, not absent features): the `.ntenc`, `.nt`,
// and `.kv` file formats, plus a directory-watch incremental source that
// feeds new batch files into a reasoner.Engine as they land.
//
// Grounded on original_source/src/load_encode_triples.rs's load3enc/loadkvenc
// (the `.ntenc`/`.kv` line formats, ported exactly) and on main.rs's
// single-shot `part1`/`part2`/`part3` batch split (commented out there) as
// the motivation for WatchDir's incremental extension.
package ingest

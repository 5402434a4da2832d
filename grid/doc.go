// Package grid implements the crossword placement and validity engine:
// a sparse, unbounded board of cells keyed by integer coordinates, a word
// table keyed by small integer ids, and the operations used to grow,
// shrink, merge, and interrogate a crossword under construction.
//
// What:
//
//   - Location / Direction: signed 2-D coordinates and the Across/Down axis.
//   - Cell: per-coordinate state (empty, boundary, or letter with owners).
//   - Word: answer text, clue, optional forced direction, optional placement.
//   - CrosswordGrid: placement with full adjacency validation, automatic
//     resizing with a one-cell empty buffer, boundary-cell derivation,
//     rasterization and offset search for merging two grids, and a seeded
//     greedy random placement search.
//
// Invariants:
//
//   - A filled cell belongs to at most one Across and one Down word.
//   - The cells one step before a word's start and after its end are
//     boundary cells; boundary cells are fully re-derived, never patched.
//   - A grid handed to a caller is a single connected component; CheckValid
//     panics otherwise, because a disconnected grid is an engine bug.
//
// Placement failures are expected outcomes of exploratory search and are
// reported as sentinel errors (see errors.go); callers try the next
// candidate. Panics are reserved for broken engine invariants.
package grid

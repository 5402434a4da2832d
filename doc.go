// Package crossweave synthesises crossword grids from a word list.
//
// The pipeline is split across three packages:
//
//	grid/      — the board model: placement, validity rules, black-cell
//	             boundaries, raster overlays for merging, and partition
//	             and merge operations on whole grids
//	wordgraph/ — the word-intersection graph: connectivity, cycle
//	             counting, leaf detection and two-colour partitioning
//	generator/ — the evolutionary search: populations of grid attempts
//	             mutated by placing and pruning words, split into
//	             gametes and recombined, scored and selected for both
//	             quality and structural variety
//
// The cmd/crossweave binary wires the three together: it reads a
// newline-separated word list, runs the generator, and prints the best
// grids as plain text or as cwpuzzle LaTeX.
//
// Every randomised operation takes an explicit seed, so a given word
// list and settings always produce the same grids.
package crossweave

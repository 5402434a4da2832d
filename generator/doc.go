// Package generator evolves crossword grids from a seed word list.
//
// What it does:
//
//   - Maintains two populations per round: ancestors (partially filled
//     grids used as breeding stock) and complete (ancestors greedily
//     filled to a dead end, used for output).
//   - Mutates ancestors with seeded weighted moves (place a random word,
//     prune random leaf words) and splits them into partition pairs.
//   - Recombines partition halves ("gametes") by merging pairs whose
//     rasters overlap without conflict.
//   - Scores grids with a configurable weighted sum over density, shape
//     and connectivity metrics, then selects each population with a
//     diversity-adjusted pick so near-duplicates do not crowd out
//     variety.
//   - Stops once the rendered population repeats itself after a minimum
//     number of rounds, or at the round cap.
//
// Every random choice derives from an explicit seed plus deterministic
// offsets, so two generators built from the same words and settings
// produce identical output.
package generator

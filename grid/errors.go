package grid

import "errors"

// Sentinel errors for grid operations. All of these are recoverable:
// a failed placement is the normal outcome of exploratory search, and the
// grid is left textually unchanged when one is returned.
var (
	// ErrWordNotFound indicates an operation referenced a word id that is
	// not in the word table.
	ErrWordNotFound = errors.New("grid: word not found")

	// ErrCellNotFound indicates an operation referenced a location with no
	// cell entry.
	ErrCellNotFound = errors.New("grid: cell not found")

	// ErrWordAlreadyPlaced indicates an attempt to place a word that
	// already has a placement.
	ErrWordAlreadyPlaced = errors.New("grid: word already placed")

	// ErrWordDirectionNotAllowed indicates a placement direction that
	// conflicts with the word's forced direction.
	ErrWordDirectionNotAllowed = errors.New("grid: word direction not allowed")

	// ErrCellLetterMismatch indicates a cell already holds a different
	// letter than the one being placed.
	ErrCellLetterMismatch = errors.New("grid: cell letter mismatch")

	// ErrCellWordIDMismatch indicates a cell already belongs to a different
	// word of the same orientation.
	ErrCellWordIDMismatch = errors.New("grid: cell word id mismatch")

	// ErrCellIsBoundary indicates an attempt to write a letter into a
	// boundary cell.
	ErrCellIsBoundary = errors.New("grid: cell is a boundary cell")

	// ErrNonEmptyWordBoundary indicates the cell before a word's start or
	// after its end holds a letter, so the word is not boundary-delimited.
	ErrNonEmptyWordBoundary = errors.New("grid: non-empty cell at word boundary")

	// ErrAdjacentCellsNoLinkWord indicates two adjacent letter cells with
	// no shared word along the adjacency axis (an accidental parallel word).
	ErrAdjacentCellsNoLinkWord = errors.New("grid: adjacent cells lack shared link word")

	// ErrAdjacentCellsMismatchedLinkWord indicates two adjacent letter
	// cells owned by different words along the adjacency axis.
	ErrAdjacentCellsMismatchedLinkWord = errors.New("grid: adjacent cells have mismatched link words")
)

func isCellNotFound(err error) bool { return errors.Is(err, ErrCellNotFound) }

package grid

import "fmt"

// Direction is the orientation of a word: Across (left to right) or Down
// (top to bottom). It doubles as a movement axis when stepping through
// cells or expanding the board.
type Direction int

const (
	// Across words run left to right within a row.
	Across Direction = iota
	// Down words run top to bottom within a column.
	Down
)

// Rotate returns the perpendicular direction.
func (d Direction) Rotate() Direction {
	if d == Across {
		return Down
	}
	return Across
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Across {
		return "Across"
	}
	return "Down"
}

// Location is an immutable (row, col) coordinate pair. Coordinates are
// signed: the board grows in every direction from an arbitrary origin.
type Location struct {
	Row, Col int
}

// Offset returns the location moved by moveRows rows and moveCols columns.
func (l Location) Offset(moveRows, moveCols int) Location {
	return Location{Row: l.Row + moveRows, Col: l.Col + moveCols}
}

// Step returns the location moved by in cells along dir. Negative in steps
// backwards.
func (l Location) Step(in int, dir Direction) Location {
	if dir == Across {
		return Location{Row: l.Row, Col: l.Col + in}
	}
	return Location{Row: l.Row + in, Col: l.Col}
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Col)
}

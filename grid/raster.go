package grid

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// Raster-level merge compatibility. A grid is rasterized into a dense
// int matrix (0 empty, 1 boundary, 2+letter-index for letters) and two
// rasters are tested at a relative offset with elementwise arithmetic:
// they must overlap somewhere, agree on every overlapping non-zero cell,
// and their union must contain no 2x2 block of non-zero cells. The square
// rule is a heuristic stand-in for the per-letter adjacency check, so a
// passing configuration is only "probably" compatible; the real placement
// path re-validates during the merge itself.

type gridRaster struct {
	cells    [][]int
	rowShift int
	colShift int
}

func newGridRaster(rows, cols, rowShift, colShift int) *gridRaster {
	cells := make([][]int, rows)
	for i := range cells {
		cells[i] = make([]int, cols)
	}
	return &gridRaster{cells: cells, rowShift: rowShift, colShift: colShift}
}

func (r *gridRaster) rows() int { return len(r.cells) }
func (r *gridRaster) cols() int {
	if len(r.cells) == 0 {
		return 0
	}
	return len(r.cells[0])
}

// setCoord writes a value at board coordinates, translated by the
// raster's shift into matrix indices.
func (r *gridRaster) setCoord(row, col, value int) {
	r.cells[row+r.rowShift][col+r.colShift] = value
}

// shifted returns a copy grown by extraRows/extraCols of zeros at the
// top/left, with the shift adjusted to match.
func (r *gridRaster) shifted(extraRows, extraCols int) *gridRaster {
	out := newGridRaster(r.rows()+extraRows, r.cols()+extraCols, r.rowShift+extraRows, r.colShift+extraCols)
	for i, row := range r.cells {
		copy(out.cells[i+extraRows][extraCols:], row)
	}
	return out
}

// paddedTo returns a copy grown with zeros at the bottom/right to reach
// rows x cols.
func (r *gridRaster) paddedTo(rows, cols int) *gridRaster {
	out := newGridRaster(rows, cols, r.rowShift, r.colShift)
	for i, row := range r.cells {
		copy(out.cells[i], row)
	}
	return out
}

func (r *gridRaster) String() string {
	var b strings.Builder
	for _, row := range r.cells {
		for _, v := range row {
			switch {
			case v == 0:
				b.WriteByte('.')
			case v == 1:
				b.WriteByte('#')
			default:
				b.WriteByte(byte(ValidAnswerChars[v-2]))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// countSquares counts 2x2 all-non-zero blocks in the binarized matrix.
func countSquares(cells [][]int) int {
	count := 0
	for i := 0; i+1 < len(cells); i++ {
		for j := 0; j+1 < len(cells[i]); j++ {
			if cells[i][j] != 0 && cells[i][j+1] != 0 && cells[i+1][j] != 0 && cells[i+1][j+1] != 0 {
				count++
			}
		}
	}
	return count
}

type rasterCompat struct {
	rowShift   int
	colShift   int
	compatible bool
	overlaps   int
}

// assessCompat tests other overlaid on r at matrix offset (rowShift,
// colShift): both rasters are moved into a shared padded frame, then the
// overlap mask (elementwise product), mismatch mask (difference), and
// square rule decide compatibility.
func (r *gridRaster) assessCompat(other *gridRaster, rowShift, colShift int) rasterCompat {
	shifted1 := r.shifted(max(0, -rowShift), max(0, -colShift))
	shifted2 := other.shifted(max(0, rowShift), max(0, colShift))

	maxRows := max(shifted1.rows(), shifted2.rows())
	maxCols := max(shifted1.cols(), shifted2.cols())
	padded1 := shifted1.paddedTo(maxRows, maxCols)
	padded2 := shifted2.paddedTo(maxRows, maxCols)

	overlaps := 0
	mismatched := false
	squares := 0
	for i := 0; i < maxRows; i++ {
		for j := 0; j < maxCols; j++ {
			a, b := padded1.cells[i][j], padded2.cells[i][j]
			product := a * b
			if product > 1 {
				overlaps++
			}
			if product != 0 && a != b {
				mismatched = true
			}
			if i+1 < maxRows && j+1 < maxCols &&
				(padded1.cells[i][j] != 0 || padded2.cells[i][j] != 0) &&
				(padded1.cells[i][j+1] != 0 || padded2.cells[i][j+1] != 0) &&
				(padded1.cells[i+1][j] != 0 || padded2.cells[i+1][j] != 0) &&
				(padded1.cells[i+1][j+1] != 0 || padded2.cells[i+1][j+1] != 0) {
				squares++
			}
		}
	}

	return rasterCompat{
		rowShift:   rowShift,
		colShift:   colShift,
		overlaps:   overlaps,
		compatible: overlaps > 0 && !mismatched && squares == 0,
	}
}

// compatibleAt reports whether other can be overlaid at the given offset.
func (r *gridRaster) compatibleAt(other *gridRaster, rowShift, colShift int) bool {
	return r.assessCompat(other, rowShift, colShift).compatible
}

// findBestCompat scans every offset in the range spanning both rasters
// and keeps the compatible configuration with the most overlapping
// cells; the first found wins ties. ok is false when no offset works.
func (r *gridRaster) findBestCompat(other *gridRaster) (best rasterCompat, ok bool) {
	for rowShift := -other.rows(); rowShift <= r.rows(); rowShift++ {
		for colShift := -other.cols(); colShift <= r.cols(); colShift++ {
			result := r.assessCompat(other, rowShift, colShift)
			if result.compatible && (!ok || result.overlaps > best.overlaps) {
				best = result
				ok = true
			}
		}
	}
	return best, ok
}

// toRaster rasterizes the full bounding box, buffer included.
func (g *CrosswordGrid) toRaster() *gridRaster {
	rows, cols := g.DimensionsWithBuffer()
	r := newGridRaster(rows, cols, -g.topLeft.Row, -g.topLeft.Col)
	for row := g.topLeft.Row; row <= g.bottomRight.Row; row++ {
		for col := g.topLeft.Col; col <= g.bottomRight.Col; col++ {
			cell := g.mustCell(Location{Row: row, Col: col})
			value := 0
			switch {
			case cell.IsBlack():
				value = 1
			case cell.HasLetter():
				value = strings.IndexRune(ValidAnswerChars, cell.Char()) + 2
			}
			r.setCoord(row, col, value)
		}
	}
	return r
}

// findBestCompatForMerge searches for the board-coordinate offset at
// which other overlays this grid compatibly with the most overlaps.
// Known gap, preserved on purpose: two parallel same-axis words one row
// or column apart can pass the square rule and still fail the real
// per-letter adjacency check at merge time; callers tolerate and discard
// such failures.
func (g *CrosswordGrid) findBestCompatForMerge(other *CrosswordGrid) (rowShift, colShift, overlaps int, ok bool) {
	selfRaster := g.toRaster()
	otherRaster := other.toRaster()
	best, ok := selfRaster.findBestCompat(otherRaster)
	if !ok {
		return 0, 0, 0, false
	}
	// Convert the matrix-frame offset back into board coordinates.
	rowShift = best.rowShift - selfRaster.rowShift + otherRaster.rowShift
	colShift = best.colShift - selfRaster.colShift + otherRaster.colShift
	log.Debugf("best merge configuration: shift (%d,%d), %d overlaps", rowShift, colShift, best.overlaps)
	return rowShift, colShift, best.overlaps, true
}

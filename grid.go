package blockfall

// Grid is the playfield. It is (rows+1) x (cols+2) cells: the interior
// playfield plus an immutable Wall border at column 0, column cols+1
// and the bottom row. Coordinates are (x, y) with y growing downward;
// interior columns run 1..cols and interior rows 0..rows-1.
type Grid struct {
	cols, rows int
	cells      [][]Cell
}

func NewGrid(cols, rows int) *Grid {
	g := &Grid{cols: cols, rows: rows}
	g.cells = make([][]Cell, rows+1)
	for y := range g.cells {
		g.cells[y] = make([]Cell, cols+2)
	}
	g.ClearTransient(true)
	return g
}

// Cols returns the interior width.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the interior height.
func (g *Grid) Rows() int { return g.rows }

// Cells exposes the cell matrix, border included, for rendering. The
// returned slices alias the grid's storage and are valid until the next
// engine step.
func (g *Grid) Cells() [][]Cell { return g.cells }

func (g *Grid) Cell(x, y int) Cell {
	return g.cells[y][x]
}

func (g *Grid) SetCell(x, y int, c Cell) {
	g.cells[y][x] = c
}

// blocked treats anything outside the cell matrix as blocking, so
// collision checks stay total without callers guarding indices.
func (g *Grid) blocked(x, y int) bool {
	if y < 0 || y >= len(g.cells) || x < 0 || x >= len(g.cells[y]) {
		return true
	}
	return IsBlocking(g.cells[y][x])
}

// Collides reports whether shape s, placed at (x, y) and displaced by
// (dx, dy), overlaps a blocking cell. Vertical moves pass dy=1, lateral
// moves dx=±1, and rotation previews pass the rotated shape with a zero
// displacement.
func (g *Grid) Collides(s Shape, x, y, dx, dy int) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if s[i][j] == 0 {
				continue
			}
			if g.blocked(x+j+dx, y+i+dy) {
				return true
			}
		}
	}
	return false
}

// ClearTransient resets all Moving cells to Empty; with full it resets
// every cell. Either way the Wall border is repainted, so it can never
// be overwritten for more than one tick.
func (g *Grid) ClearTransient(full bool) {
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] == CellMoving || full {
				g.cells[y][x] = CellEmpty
			}
		}
		g.cells[y][0] = CellWall
		g.cells[y][g.cols+1] = CellWall
	}
	for x := 1; x <= g.cols; x++ {
		g.cells[g.rows][x] = CellWall
	}
}

// ScanCompletedRows finds interior rows whose every cell is Locked,
// marks them Fading and returns their indices in top-to-bottom order.
func (g *Grid) ScanCompletedRows() []int {
	var completed []int
	for y := 0; y < g.rows; y++ {
		locked := 0
		for x := 1; x <= g.cols; x++ {
			if g.cells[y][x] == CellLocked {
				locked++
			}
		}
		if locked == g.cols {
			completed = append(completed, y)
			for x := 1; x <= g.cols; x++ {
				g.cells[y][x] = CellFading
			}
		}
	}
	return completed
}

// CollapseRows removes each marked row by shifting everything above it
// down one row and refilling row 0. Rows are processed in the given
// top-to-bottom order, each shift operating on the grid as mutated by
// the previous one; with indices from ScanCompletedRows this collapses
// adjacent rows correctly.
func (g *Grid) CollapseRows(rows []int) {
	for _, row := range rows {
		for y := row; y > 0; y-- {
			copy(g.cells[y], g.cells[y-1])
		}
		for x := 1; x <= g.cols; x++ {
			g.cells[0][x] = CellEmpty
		}
		g.cells[0][0] = CellWall
		g.cells[0][g.cols+1] = CellWall
	}
}

// Stamp overlays the piece onto the grid, as Locked when lock is set
// and as the transient Moving overlay otherwise. Shape rows below the
// bottom of the cell matrix are skipped; the piece's bounding box may
// extend past the grid even though its occupied cells never do.
func (g *Grid) Stamp(p *Piece, lock bool) {
	state := CellMoving
	if lock {
		state = CellLocked
	}
	for i := 0; i < 4; i++ {
		y := p.Y + i
		if y >= len(g.cells) {
			return
		}
		for j := 0; j < 4; j++ {
			if p.Shape[i][j] == 0 {
				continue
			}
			x := p.X + j
			if x < 0 || x >= len(g.cells[y]) {
				continue
			}
			g.cells[y][x] = state
		}
	}
}

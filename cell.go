// Package blockfall implements the rules of a classic falling-block
// puzzle game: a bordered 10x20 grid, the seven standard tetromino
// shapes, gravity and input driven by tick counters, row clearing with
// a fading phase, and a score table. The package is UI-agnostic and
// deterministic; rendering and input live in the client programs
// (desktop, playtetris).
package blockfall

// Cell is the state of a single grid cell.
type Cell int

const (
	CellEmpty Cell = iota
	// CellMoving marks the falling piece's overlay. It is transient:
	// the engine wipes and re-stamps it every tick.
	CellMoving
	// CellLocked is a settled block.
	CellLocked
	// CellWall is the immutable border: column 0, column cols+1 and the
	// bottom row.
	CellWall
	// CellFading marks a completed row waiting to be collapsed.
	CellFading
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "Empty"
	case CellMoving:
		return "Moving"
	case CellLocked:
		return "Locked"
	case CellWall:
		return "Wall"
	case CellFading:
		return "Fading"
	default:
		return "Unknown"
	}
}

// IsBlocking reports whether a cell stops piece movement. Every
// collision check in the engine goes through this predicate.
func IsBlocking(c Cell) bool {
	return c == CellLocked || c == CellWall
}

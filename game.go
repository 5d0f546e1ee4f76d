package blockfall

import (
	"fmt"
	"time"
)

// Phase is the engine's top-level state.
type Phase int

const (
	// PhasePlaying: a piece is falling (or about to spawn).
	PhasePlaying Phase = iota
	// PhaseRowFading: completed rows are marked Fading and wait out the
	// fade timer; gravity, movement and rotation are suspended.
	PhaseRowFading
	// PhaseGameOver: the stack reached the top; only Restart is honored.
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseRowFading:
		return "RowFading"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Timing holds the tick thresholds driving the engine. All speeds are
// in ticks, so gameplay pace depends only on the client's tick rate.
type Timing struct {
	// Gravity is the number of ticks between one-cell falls (lower is
	// faster).
	Gravity int
	// Lateral is the number of held ticks between one-cell horizontal
	// moves.
	Lateral int
	// Rotation is the number of held ticks between rotations.
	Rotation int
	// SoftDropDelay is the number of ticks after a spawn before the
	// soft-drop key starts accelerating gravity.
	SoftDropDelay int
	// Fade is the number of ticks completed rows stay in the Fading
	// state before they collapse.
	Fade int
}

// DefaultTiming gives the classic game pace at 100 ticks per second.
func DefaultTiming() Timing {
	return Timing{
		Gravity:       30,
		Lateral:       8,
		Rotation:      8,
		SoftDropDelay: 40,
		Fade:          50,
	}
}

// Game is the engine. It owns the grid and the current/next pieces
// exclusively and advances one tick per Step call; it is not safe for
// concurrent use and does not need to be (see the clients: one
// fixed-rate loop each).
type Game struct {
	grid         *Grid
	cols, rows   int
	source       PieceSource
	timing       Timing
	clearHandler func(rows int)

	current, next *Piece
	score         int
	phase         Phase
	rowsToClear   []int

	gravityCount  int
	lateralCount  int
	rotationCount int
	softDropCount int
	fadeCount     int
}

// GameOption configures a Game before its grid is built.
type GameOption func(*Game)

// WithSize sets the interior playfield dimensions. The default is the
// classic 10x20.
func WithSize(cols, rows int) GameOption {
	if cols < 4 || rows < 4 {
		panic(fmt.Errorf("minimal cols x rows is 4x4"))
	}
	return func(g *Game) {
		g.cols = cols
		g.rows = rows
	}
}

// WithSource replaces the default seeded random piece source.
func WithSource(source PieceSource) GameOption {
	return func(g *Game) {
		g.source = source
	}
}

// WithTiming replaces DefaultTiming.
func WithTiming(t Timing) GameOption {
	return func(g *Game) {
		g.timing = t
	}
}

// WithClearHandler registers a callback invoked with the number of rows
// in each clear, at the moment the rows start fading.
func WithClearHandler(handler func(rows int)) GameOption {
	return func(g *Game) {
		g.clearHandler = handler
	}
}

func NewGame(options ...GameOption) *Game {
	g := &Game{
		cols:   10,
		rows:   20,
		source: NewRandomSource(time.Now().UnixNano()),
		timing: DefaultTiming(),
	}
	for _, opt := range options {
		opt(g)
	}
	g.grid = NewGrid(g.cols, g.rows)
	g.initialize()
	return g
}

func (g *Game) initialize() {
	g.grid.ClearTransient(true)
	g.rowsToClear = nil
	g.current = nil
	g.spawn()

	g.score = 0
	g.phase = PhasePlaying
	g.gravityCount = 0
	g.lateralCount = 0
	g.rotationCount = 0
	g.fadeCount = 0
	g.softDropCount = 0
}

// spawn promotes the queued next piece to current (drawing a fresh one
// only at the very first spawn), centers it at the top of the grid and
// queues a new next piece.
func (g *Game) spawn() {
	if g.next == nil {
		g.current = g.source.Next()
	} else {
		g.current = g.next
	}
	g.current.X = g.cols/2 - 2
	g.current.Y = 0

	g.next = g.source.Next()
	g.softDropCount = 0
}

// Step advances the game by one tick with the given input snapshot.
func (g *Game) Step(in Input) {
	switch g.phase {
	case PhaseGameOver:
		if in.Restart {
			g.initialize()
		}
		return

	case PhaseRowFading:
		g.fadeCount++
		if g.fadeCount >= g.timing.Fade {
			g.grid.CollapseRows(g.rowsToClear)
			g.fadeCount = 0
			g.rowsToClear = nil
			g.phase = PhasePlaying
		}
		return
	}

	if g.current == nil {
		g.spawn()
	}

	g.gravityCount++
	g.softDropCount++
	if in.Left || in.Right {
		g.lateralCount++
	}
	if in.Rotate {
		g.rotationCount++
	}
	if in.SoftDrop && g.softDropCount >= g.timing.SoftDropDelay {
		// Holding soft-drop reaches the gravity threshold every tick
		// instead of bypassing it, so the fall stays grid-quantized.
		g.gravityCount += g.timing.Gravity
	}

	locked := false
	if g.gravityCount >= g.timing.Gravity {
		locked = g.resolveGravity()
		g.scanCompletedRows()
		g.gravityCount = 0
	}

	if g.lateralCount >= g.timing.Lateral {
		g.resolveLateral(in)
		g.lateralCount = 0
	}

	if g.rotationCount >= g.timing.Rotation {
		g.resolveRotation()
		g.rotationCount = 0
	}

	g.grid.ClearTransient(false)
	g.grid.Stamp(g.current, locked)

	if locked {
		g.current = nil
	}

	g.checkGameOver()
}

// resolveGravity moves the piece down one cell, or reports a locking
// collision without moving it.
func (g *Game) resolveGravity() bool {
	if g.grid.Collides(g.current.Shape, g.current.X, g.current.Y, 0, 1) {
		return true
	}
	g.current.Translate(0, 1)
	return false
}

func (g *Game) resolveLateral(in Input) {
	dx := 0
	switch {
	case in.Left:
		dx = -1
	case in.Right:
		dx = 1
	default:
		return
	}
	if !g.grid.Collides(g.current.Shape, g.current.X, g.current.Y, dx, 0) {
		g.current.Translate(dx, 0)
	}
}

// resolveRotation commits a rotation only if the rotated shape is
// collision-free in place. No wall kicks: a blocked rotation is simply
// refused.
func (g *Game) resolveRotation() {
	preview := g.current.RotationPreview()
	if !g.grid.Collides(preview, g.current.X, g.current.Y, 0, 0) {
		g.current.Shape = preview
	}
}

func (g *Game) scanCompletedRows() {
	completed := g.grid.ScanCompletedRows()
	if len(completed) == 0 {
		return
	}

	g.rowsToClear = completed
	g.score += scoreForRows(len(completed))
	if g.clearHandler != nil {
		g.clearHandler(len(completed))
	}

	g.fadeCount = 0
	g.phase = PhaseRowFading
}

// scoreForRows is the lump bonus for rows cleared in one gravity step.
// A clear wider than 4 rows cannot happen on a 4-tall shape.
func scoreForRows(rows int) int {
	switch rows {
	case 1:
		return 40
	case 2:
		return 100
	case 3:
		return 300
	case 4:
		return 1200
	}
	return 0
}

// checkGameOver ends the game when the settled stack reaches either of
// the two top interior rows.
func (g *Game) checkGameOver() {
	for y := 0; y < 2; y++ {
		for x := 1; x <= g.cols; x++ {
			if g.grid.Cell(x, y) == CellLocked {
				g.phase = PhaseGameOver
				return
			}
		}
	}
}

// Snapshot is the read-only view a renderer needs for one frame.
type Snapshot struct {
	// Cells aliases the grid's storage, border included; valid until
	// the next Step.
	Cells [][]Cell
	// Next is the queued piece's shape, for the preview box.
	Next  Shape
	Score int
	Over  bool
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Cells: g.grid.Cells(),
		Next:  g.next.Shape,
		Score: g.score,
		Over:  g.phase == PhaseGameOver,
	}
}

// Phase returns the engine's current state.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Grid exposes the playfield.
func (g *Game) Grid() *Grid { return g.grid }

// Current returns the falling piece, or nil between a lock and the
// next spawn.
func (g *Game) Current() *Piece { return g.current }

package blockfall_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blockfall"
)

// fastTiming makes every gravity tick a fall and keeps the fade short,
// so scenarios run in a handful of steps.
func fastTiming() blockfall.Timing {
	return blockfall.Timing{
		Gravity:       1,
		Lateral:       1,
		Rotation:      1,
		SoftDropDelay: 1000,
		Fade:          2,
	}
}

func newTestGame(types ...blockfall.PieceType) *blockfall.Game {
	return blockfall.NewGame(
		blockfall.WithSource(blockfall.NewQueueSource(types...)),
		blockfall.WithTiming(fastTiming()),
	)
}

func repeat(pt blockfall.PieceType, n int) []blockfall.PieceType {
	types := make([]blockfall.PieceType, n)
	for i := range types {
		types[i] = pt
	}
	return types
}

func TestSpawnIsCentered(t *testing.T) {
	g := newTestGame(blockfall.PieceT, blockfall.PieceT)

	p := g.Current()
	require.NotNil(t, p)
	assert.Equal(t, 3, p.X) // floor(10/2) - 2
	assert.Equal(t, 0, p.Y)
}

func TestGravityMovesPieceDown(t *testing.T) {
	g := newTestGame(repeat(blockfall.PieceO, 4)...)

	g.Step(blockfall.Input{})
	assert.Equal(t, 1, g.Current().Y)

	g.Step(blockfall.Input{})
	assert.Equal(t, 2, g.Current().Y)
}

func TestDroppedPieceLocksAndNextSpawns(t *testing.T) {
	g := newTestGame(blockfall.PieceO, blockfall.PieceI, blockfall.PieceO, blockfall.PieceO)

	// The O piece's occupied rows reach the floor after 17 falls; the
	// 18th gravity step detects the collision and locks it.
	for i := 0; i < 18; i++ {
		g.Step(blockfall.Input{})
	}

	grid := g.Grid()
	assert.Equal(t, blockfall.CellLocked, grid.Cell(4, 18))
	assert.Equal(t, blockfall.CellLocked, grid.Cell(5, 18))
	assert.Equal(t, blockfall.CellLocked, grid.Cell(4, 19))
	assert.Equal(t, blockfall.CellLocked, grid.Cell(5, 19))
	assert.Nil(t, g.Current())

	// The queued next piece is promoted on the following tick.
	g.Step(blockfall.Input{})
	require.NotNil(t, g.Current())
	assert.Equal(t, blockfall.PieceI, g.Current().Type)
}

func TestLateralMovementStopsAtWall(t *testing.T) {
	g := newTestGame(repeat(blockfall.PieceO, 4)...)

	for i := 0; i < 3; i++ {
		g.Step(blockfall.Input{Left: true})
	}
	// O occupies shape columns 1-2; at x 0 they rest against the wall.
	assert.Equal(t, 0, g.Current().X)

	for i := 0; i < 10; i++ {
		g.Step(blockfall.Input{Left: true})
	}
	assert.Equal(t, 0, g.Current().X)
}

func TestRotationCommitsWhenFree(t *testing.T) {
	g := newTestGame(blockfall.PieceI, blockfall.PieceI, blockfall.PieceI)

	base := g.Current().Shape
	g.Step(blockfall.Input{Rotate: true})
	assert.NotEqual(t, base, g.Current().Shape)
}

func TestScorePerClear(t *testing.T) {
	tests := []struct {
		rows  int
		score int
	}{
		{1, 40},
		{2, 100},
		{3, 300},
		{4, 1200},
	}

	for _, tt := range tests {
		t.Run(string(rune('0'+tt.rows))+"rows", func(t *testing.T) {
			g := newTestGame(repeat(blockfall.PieceO, 4)...)
			for i := 0; i < tt.rows; i++ {
				fillRow(g.Grid(), 19-i, blockfall.CellLocked)
			}

			g.Step(blockfall.Input{})

			assert.Equal(t, tt.score, g.Score())
			assert.Equal(t, blockfall.PhaseRowFading, g.Phase())
		})
	}
}

func TestSeparateClearsSumIndependently(t *testing.T) {
	g := newTestGame(repeat(blockfall.PieceO, 6)...)

	fillRow(g.Grid(), 19, blockfall.CellLocked)
	g.Step(blockfall.Input{})
	assert.Equal(t, 40, g.Score())

	// Wait out the fade, then complete another single row.
	for g.Phase() == blockfall.PhaseRowFading {
		g.Step(blockfall.Input{})
	}
	fillRow(g.Grid(), 19, blockfall.CellLocked)
	g.Step(blockfall.Input{})

	// Two single clears are 40+40, not the double-clear bonus.
	assert.Equal(t, 80, g.Score())
}

func TestFadeLifecycle(t *testing.T) {
	g := newTestGame(repeat(blockfall.PieceO, 4)...)
	grid := g.Grid()
	grid.SetCell(8, 18, blockfall.CellLocked)
	fillRow(grid, 19, blockfall.CellLocked)

	g.Step(blockfall.Input{})

	require.Equal(t, blockfall.PhaseRowFading, g.Phase())
	for x := 1; x <= 10; x++ {
		assert.Equal(t, blockfall.CellFading, grid.Cell(x, 19))
	}

	// Movement and gravity are suspended while the row fades.
	y := g.Current().Y
	g.Step(blockfall.Input{Left: true})
	assert.Equal(t, y, g.Current().Y)

	g.Step(blockfall.Input{})
	require.Equal(t, blockfall.PhasePlaying, g.Phase())

	// The cell above the cleared row shifted down onto it.
	assert.Equal(t, blockfall.CellLocked, grid.Cell(8, 19))
	assert.Equal(t, blockfall.CellEmpty, grid.Cell(8, 18))
}

func TestGameOverWhenStackReachesTop(t *testing.T) {
	g := newTestGame(repeat(blockfall.PieceO, 15)...)

	steps := 0
	for g.Phase() != blockfall.PhaseGameOver && steps < 1000 {
		g.Step(blockfall.Input{})
		steps++
	}

	require.Equal(t, blockfall.PhaseGameOver, g.Phase())
	assert.True(t, g.Snapshot().Over)
	assert.Equal(t, blockfall.CellLocked, g.Grid().Cell(4, 1))
}

func TestGameOverNeedsLockedCellInTopTwoRows(t *testing.T) {
	g := newTestGame(repeat(blockfall.PieceO, 4)...)

	// Column 8 keeps the probe cells clear of the falling piece.
	g.Grid().SetCell(8, 2, blockfall.CellLocked)
	g.Step(blockfall.Input{})
	assert.Equal(t, blockfall.PhasePlaying, g.Phase())

	g.Grid().SetCell(8, 1, blockfall.CellLocked)
	g.Step(blockfall.Input{})
	assert.Equal(t, blockfall.PhaseGameOver, g.Phase())
}

func TestRestartReinitializes(t *testing.T) {
	g := newTestGame(repeat(blockfall.PieceO, 20)...)

	for steps := 0; g.Phase() != blockfall.PhaseGameOver && steps < 1000; steps++ {
		g.Step(blockfall.Input{})
	}
	require.Equal(t, blockfall.PhaseGameOver, g.Phase())

	// Inputs other than Restart are ignored.
	g.Step(blockfall.Input{Left: true, SoftDrop: true})
	assert.Equal(t, blockfall.PhaseGameOver, g.Phase())

	g.Step(blockfall.Input{Restart: true})

	assert.Equal(t, blockfall.PhasePlaying, g.Phase())
	assert.Equal(t, 0, g.Score())
	grid := g.Grid()
	for y := 0; y < grid.Rows(); y++ {
		for x := 1; x <= grid.Cols(); x++ {
			assert.NotEqual(t, blockfall.CellLocked, grid.Cell(x, y))
		}
	}
}

func TestSoftDropAcceleratesAfterDelay(t *testing.T) {
	g := blockfall.NewGame(
		blockfall.WithSource(blockfall.NewQueueSource(repeat(blockfall.PieceO, 4)...)),
		blockfall.WithTiming(blockfall.Timing{
			Gravity:       5,
			Lateral:       1,
			Rotation:      1,
			SoftDropDelay: 2,
			Fade:          2,
		}),
	)

	// Within the delay window the soft-drop key has no effect.
	g.Step(blockfall.Input{SoftDrop: true})
	assert.Equal(t, 0, g.Current().Y)

	// After it, every held tick reaches the gravity threshold.
	g.Step(blockfall.Input{SoftDrop: true})
	assert.Equal(t, 1, g.Current().Y)
	g.Step(blockfall.Input{SoftDrop: true})
	assert.Equal(t, 2, g.Current().Y)

	// Without the key, normal gravity pacing resumes.
	g.Step(blockfall.Input{})
	assert.Equal(t, 2, g.Current().Y)
}

func TestClearHandler(t *testing.T) {
	var cleared []int
	g := blockfall.NewGame(
		blockfall.WithSource(blockfall.NewQueueSource(repeat(blockfall.PieceO, 4)...)),
		blockfall.WithTiming(fastTiming()),
		blockfall.WithClearHandler(func(rows int) {
			cleared = append(cleared, rows)
		}),
	)

	fillRow(g.Grid(), 19, blockfall.CellLocked)
	fillRow(g.Grid(), 18, blockfall.CellLocked)
	g.Step(blockfall.Input{})

	assert.Equal(t, []int{2}, cleared)
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(blockfall.PieceO, blockfall.PieceI, blockfall.PieceO)

	snap := g.Snapshot()

	assert.Equal(t, blockfall.PieceI.BaseShape(), snap.Next)
	assert.Equal(t, 0, snap.Score)
	assert.False(t, snap.Over)
	require.Len(t, snap.Cells, 21)
	require.Len(t, snap.Cells[0], 12)
	assert.Equal(t, blockfall.CellWall, snap.Cells[20][5])
}

func TestCustomSize(t *testing.T) {
	g := blockfall.NewGame(
		blockfall.WithSize(6, 12),
		blockfall.WithSource(blockfall.NewQueueSource(repeat(blockfall.PieceO, 4)...)),
		blockfall.WithTiming(fastTiming()),
	)

	assert.Equal(t, 6, g.Grid().Cols())
	assert.Equal(t, 12, g.Grid().Rows())
	assert.Equal(t, 1, g.Current().X) // floor(6/2) - 2

	snap := g.Snapshot()
	assert.Len(t, snap.Cells, 13)
	assert.Len(t, snap.Cells[0], 8)
}

func TestWithSizePanicsOnTinyGrid(t *testing.T) {
	assert.Panics(t, func() {
		blockfall.WithSize(2, 2)
	})
}

// Desktop client: renders the game with ebiten and samples the
// keyboard as a per-tick key-held snapshot. All pixel layout lives
// here; the engine only sees Input and produces Snapshots.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"blockfall"
)

const (
	screenWidth  = 600
	screenHeight = 480

	squareSize = 20

	gridPosX = 120
	gridPosY = 30

	// Horizontal gap between the grid and the next-piece preview.
	previewGap = 50
)

var (
	backgroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	emptyColor      = color.NRGBA{R: 225, G: 225, B: 225, A: 255}
	wallColor       = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	blockColor      = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
	fadingColor     = color.NRGBA{R: 0, G: 150, B: 0, A: 255}
)

func cellColor(c blockfall.Cell) color.NRGBA {
	switch c {
	case blockfall.CellWall:
		return wallColor
	case blockfall.CellFading:
		return fadingColor
	default:
		return blockColor
	}
}

type app struct {
	game *blockfall.Game
}

func (a *app) Update() error {
	a.game.Step(blockfall.Input{
		Left:     ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		SoftDrop: ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Rotate:   ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Restart:  ebiten.IsKeyPressed(ebiten.KeyEnter),
	})
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := a.game.Snapshot()

	if snap.Over {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", 100, 100)
		ebitenutil.DebugPrintAt(screen, "Press [enter] to play again", 100, 120)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE: %d", snap.Score), 250, 150)
		return
	}

	for y, row := range snap.Cells {
		for x, cell := range row {
			drawSquare(screen, gridPosX+x*squareSize, gridPosY+y*squareSize, cell)
		}
	}

	gridWidth := squareSize * len(snap.Cells[0])
	previewX := gridPosX + gridWidth + previewGap

	ebitenutil.DebugPrintAt(screen, "NEXT BLOCK", previewX, gridPosY)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			cell := blockfall.CellEmpty
			if snap.Next[i][j] != 0 {
				cell = blockfall.CellMoving
			}
			drawSquare(screen, previewX+j*squareSize, gridPosY+30+i*squareSize, cell)
		}
	}

	previewHeight := 4 * squareSize
	ebitenutil.DebugPrintAt(
		screen,
		fmt.Sprintf("SCORE: %d", snap.Score),
		previewX,
		gridPosY+30+previewHeight+30,
	)
}

func drawSquare(screen *ebiten.Image, x, y int, cell blockfall.Cell) {
	if cell == blockfall.CellEmpty {
		vector.StrokeRect(screen, float32(x), float32(y), squareSize, squareSize, 1, emptyColor, false)
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), squareSize, squareSize, cellColor(cell), false)
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Tetris")
	// The engine's default timing assumes 100 ticks per second.
	ebiten.SetTPS(100)

	if err := ebiten.RunGame(&app{game: blockfall.NewGame()}); err != nil {
		log.Fatalf("failed to run game: %v", err)
	}
}

// Terminal client on termloop. Terminals report key presses as events
// rather than held state, so the entity latches each event into the
// Input snapshot for exactly one engine tick and runs the engine with
// per-event movement timing.
package main

import (
	"fmt"

	"github.com/JoelOtter/termloop"

	"blockfall"
)

const fps = 60

func main() {
	game := termloop.NewGame()
	game.Screen().SetFps(fps)
	level := termloop.NewBaseLevel(termloop.Cell{})
	level.AddEntity(NewBoardPlayer(0, 0))
	game.Screen().SetLevel(level)
	game.Start()
}

type boardPlayer struct {
	game *blockfall.Game
	x, y int
	held blockfall.Input

	scoreText *termloop.Text
	overText  *termloop.Text
}

func NewBoardPlayer(x, y int) *boardPlayer {
	return &boardPlayer{
		game: blockfall.NewGame(blockfall.WithTiming(blockfall.Timing{
			// Half a second per fall at 60 fps; lateral moves and
			// rotations resolve on the tick their key event lands.
			Gravity:       fps / 2,
			Lateral:       1,
			Rotation:      1,
			SoftDropDelay: 1,
			Fade:          fps / 2,
		})),
		x: x,
		y: y,

		scoreText: termloop.NewText(x+17, y+8, "SCORE: 0", termloop.ColorWhite, termloop.ColorDefault),
		overText:  termloop.NewText(x+2, y+10, "GAME OVER - press [enter] to play again", termloop.ColorRed, termloop.ColorDefault),
	}
}

func (b *boardPlayer) Tick(ev termloop.Event) {
	if ev.Type != termloop.EventKey {
		return
	}
	switch ev.Key {
	case termloop.KeyArrowLeft:
		b.held.Left = true
	case termloop.KeyArrowRight:
		b.held.Right = true
	case termloop.KeyArrowUp:
		b.held.Rotate = true
	case termloop.KeyArrowDown:
		b.held.SoftDrop = true
	case termloop.KeyEnter:
		b.held.Restart = true
	}
}

func (b *boardPlayer) Draw(s *termloop.Screen) {
	// One engine tick per frame; latched key events count as held for
	// this tick only.
	b.game.Step(b.held)
	b.held = blockfall.Input{}

	snap := b.game.Snapshot()

	b.scoreText.SetText(fmt.Sprintf("SCORE: %d", snap.Score))
	b.scoreText.Draw(s)

	if snap.Over {
		b.overText.Draw(s)
		return
	}

	for y, row := range snap.Cells {
		for x, cell := range row {
			fg := termloop.ColorWhite
			ch := rune(0)
			switch cell {
			case blockfall.CellWall:
				ch = '+'
			case blockfall.CellLocked:
				ch = '#'
			case blockfall.CellMoving:
				ch = '@'
			case blockfall.CellFading:
				fg = termloop.ColorGreen
				ch = '%'
			}
			s.RenderCell(b.x+x, b.y+y, &termloop.Cell{
				Fg: fg,
				Bg: termloop.ColorBlack,
				Ch: ch,
			})
		}
	}

	b.drawNextPreview(s, snap.Next)
}

func (b *boardPlayer) drawNextPreview(s *termloop.Screen, next blockfall.Shape) {
	previewX := b.x + 14

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			ch := rune(0)
			if next[y][x] != 0 {
				ch = '@'
			}
			s.RenderCell(previewX+x, b.y+2+y, &termloop.Cell{
				Fg: termloop.ColorWhite,
				Bg: termloop.ColorBlack,
				Ch: ch,
			})
		}
	}
}

package blockfall

// PieceType identifies one of the seven tetromino variants.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL

	NumPieceTypes
)

func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "Unknown"
	}
}

// BaseShape returns the variant's canonical orientation.
func (t PieceType) BaseShape() Shape {
	return shapes[t]
}

// Piece is one falling piece: its variant, its shape in the current
// orientation, and the position of the shape's top-left corner in the
// grid's bordered coordinate space.
type Piece struct {
	Type  PieceType
	Shape Shape
	X, Y  int
}

func NewPiece(t PieceType) *Piece {
	return &Piece{Type: t, Shape: t.BaseShape()}
}

// Translate moves the piece without any bounds checking. Callers must
// establish that the move is collision-free first.
func (p *Piece) Translate(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// RotationPreview returns the shape after a clockwise rotation without
// committing it, so callers can collision-check first. The O variant is
// exempt: all of its orientations look identical, so rotating it is a
// no-op.
func (p *Piece) RotationPreview() Shape {
	if p.Type == PieceO {
		return p.Shape
	}
	return RotateShape(p.Shape)
}

// Rotate commits a clockwise rotation.
func (p *Piece) Rotate() {
	p.Shape = p.RotationPreview()
}

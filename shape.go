package blockfall

// Shape is a piece's occupancy matrix in its current orientation.
// Entries are 0 (free) or 1 (occupied). The size is always 4x4, so the
// type is a fixed array rather than nested slices.
type Shape [4][4]int

// Canonical orientations of the seven tetromino variants, indexed by
// PieceType.
var shapes = [NumPieceTypes]Shape{
	PieceI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	PieceO: {
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	},
	PieceT: {
		{0, 0, 0, 0},
		{0, 1, 1, 1},
		{0, 0, 1, 0},
		{0, 0, 0, 0},
	},
	PieceS: {
		{0, 0, 0, 0},
		{0, 0, 1, 1},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	},
	PieceZ: {
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 0},
	},
	PieceJ: {
		{0, 0, 0, 0},
		{0, 1, 1, 1},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	},
	PieceL: {
		{0, 0, 0, 0},
		{0, 1, 1, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	},
}

// RotateShape returns s rotated 90 degrees clockwise.
func RotateShape(s Shape) Shape {
	var rotated Shape
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			rotated[j][3-i] = s[i][j]
		}
	}
	return rotated
}

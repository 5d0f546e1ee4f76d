package blockfall

import "math/rand"

// PieceSource produces the stream of pieces entering the game.
type PieceSource interface {
	Next() *Piece
}

// RandomSource draws uniformly from the seven variants.
type RandomSource struct {
	randomizer *rand.Rand
}

func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{randomizer: rand.New(rand.NewSource(seed))}
}

func (r *RandomSource) Next() *Piece {
	return NewPiece(PieceType(r.randomizer.Intn(int(NumPieceTypes))))
}

// QueueSource replays a fixed sequence of pieces. Useful for tests and
// for scripted games.
type QueueSource struct {
	queue []*Piece
}

func NewQueueSource(types ...PieceType) *QueueSource {
	q := &QueueSource{}
	q.Push(types...)
	return q
}

func (q *QueueSource) Push(types ...PieceType) {
	for _, t := range types {
		q.queue = append(q.queue, NewPiece(t))
	}
}

func (q *QueueSource) Next() *Piece {
	p := q.queue[0]
	q.queue = q.queue[1:]
	return p
}

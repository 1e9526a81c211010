package board

import "fmt"

// Move is a from/to square pair packed in 12 bits:
// bits 0-5:  from square (0-63)
// bits 6-11: to square (0-63)
//
// It carries no promotion or castling information; this package does not
// execute moves.
type Move uint16

// NewMove creates a move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// String returns the move in coordinate notation (e.g., "e2e4").
func (m Move) String() string {
	return m.From().String() + m.To().String()
}

// ParseMove parses coordinate notation such as "e2e4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("move %q: %w", s, ErrInvalidSquareNotation)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return 0, err
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return 0, err
	}
	return NewMove(from, to), nil
}

// MoveList is a growable list of moves.
type MoveList struct {
	moves []Move
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{moves: make([]Move, 0, 64)}
}

// Add appends a move.
func (ml *MoveList) Add(m Move) {
	ml.moves = append(ml.moves, m)
}

// Len returns the number of moves.
func (ml *MoveList) Len() int {
	return len(ml.moves)
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Contains reports whether m is in the list.
func (ml *MoveList) Contains(m Move) bool {
	for _, x := range ml.moves {
		if x == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves
}

// PseudoLegalMoves lists every pseudo-legal move of color c, piece by
// piece from a1 to h8.
func (b *Board) PseudoLegalMoves(c Color) *MoveList {
	ml := NewMoveList()
	pieces := b.Occupied(c)
	for pieces != 0 {
		from := pieces.PopLSB()
		targets := b.Moves(from)
		for targets != 0 {
			ml.Add(NewMove(from, targets.PopLSB()))
		}
	}
	return ml
}

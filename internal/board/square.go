// Package board implements a bitboard chess position: squares, attack
// tables, per-piece move and attack generation, board state and FEN.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// NewSquare creates a square from file and rank (0-indexed). It does not
// validate; use SquareFromFileRank for untrusted input.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// SquareFromFileRank builds a square from a file letter ('a'-'h', either
// case) and a rank number (1-8).
func SquareFromFileRank(file byte, rank int) (Square, error) {
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' {
		return NoSquare, fmt.Errorf("file %q: %w", file, ErrOutOfRange)
	}
	if rank < 1 || rank > 8 {
		return NoSquare, fmt.Errorf("rank %d: %w", rank, ErrOutOfRange)
	}
	return NewSquare(int(file-'a'), rank-1), nil
}

// SquareFromMask returns the square of a single-bit mask.
func SquareFromMask(b Bitboard) (Square, error) {
	if b.PopCount() != 1 {
		return NoSquare, fmt.Errorf("mask %#016x has %d bits set: %w", uint64(b), b.PopCount(), ErrInvalidArgument)
	}
	return b.LSB(), nil
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
// The file letter is case-insensitive.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", s, ErrInvalidSquareNotation)
	}
	sq, err := SquareFromFileRank(s[0], int(s[1])-'0')
	if err != nil {
		return NoSquare, fmt.Errorf("%q: %w", s, ErrInvalidSquareNotation)
	}
	return sq, nil
}

// Mask returns the single-bit bitboard for the square.
func (sq Square) Mask() Bitboard {
	if sq >= NoSquare {
		return Empty
	}
	return 1 << sq
}

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// FileByte returns the file letter 'a'-'h'.
func (sq Square) FileByte() byte {
	return byte('a' + sq.File())
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// TryMove applies a vector to the square. The second result is false when
// the destination is off the board.
func (sq Square) TryMove(v Vector) (Square, bool) {
	if sq >= NoSquare {
		return NoSquare, false
	}
	f := sq.File() + int(v.DFile)
	r := sq.Rank() + int(v.DRank)
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, false
	}
	return NewSquare(f, r), true
}

// Step moves one square in a primitive direction through the guarded
// bitboard shift. Knight directions fall back to TryMove.
func (sq Square) Step(d Direction) (Square, bool) {
	if !d.IsStep() {
		return sq.TryMove(d.Vector())
	}
	to := sq.Mask().Shift(d)
	if to == Empty {
		return NoSquare, false
	}
	return to.LSB(), true
}

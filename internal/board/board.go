package board

import (
	"fmt"
	"strings"
)

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var sb strings.Builder
	for i, c := range "KQkq" {
		if cr&(1<<i) != 0 {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// ParseCastlingRights parses "-" or one to four distinct letters from KQkq.
func ParseCastlingRights(s string) (CastlingRights, error) {
	if s == "-" {
		return NoCastling, nil
	}
	if len(s) == 0 || len(s) > 4 {
		return NoCastling, fmt.Errorf("castling rights %q: %w", s, ErrInvalidArgument)
	}
	var cr CastlingRights
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte("KQkq", s[i])
		if idx < 0 {
			return NoCastling, fmt.Errorf("castling letter %q: %w", s[i], ErrInvalidArgument)
		}
		flag := CastlingRights(1 << idx)
		if cr&flag != 0 {
			return NoCastling, fmt.Errorf("duplicate castling letter %q: %w", s[i], ErrInvalidArgument)
		}
		cr |= flag
	}
	return cr, nil
}

// Board is a position: six masks per color plus side to move, castling
// rights, en passant target and clocks. Derived state (occupancy, attack
// sets, check flags) is recomputed by every mutator before it returns, and
// a mutator that fails leaves the board untouched.
//
// A Board is not safe for concurrent mutation.
type Board struct {
	pieces [2][6]Bitboard // [Color][PieceType]

	active    Color
	castling  CastlingRights
	enPassant Square // NoSquare if none
	halfmove  int
	fullmove  int

	derived Derived
}

// NewBoard returns an empty board with white to move.
func NewBoard() *Board {
	b := &Board{
		active:    White,
		enPassant: NoSquare,
		fullmove:  1,
	}
	b.recompute()
	return b
}

func (b *Board) recompute() {
	b.derived = derive(&b.pieces, b.active)
}

func (b *Board) occupancyFor(c Color) occupancy {
	o := occupancy{
		byColor:   b.derived.Occupied,
		all:       b.derived.All,
		enPassant: NoSquare,
	}
	if c == b.active {
		o.enPassant = b.enPassant
	}
	return o
}

// PlacePiece puts the piece named by a FEN letter on sq, replacing
// whatever stood there.
func (b *Board) PlacePiece(sq Square, letter byte) error {
	if !sq.IsValid() {
		return fmt.Errorf("square %d: %w", sq, ErrOutOfRange)
	}
	piece, err := PieceFromChar(letter)
	if err != nil {
		return err
	}
	b.clear(sq)
	b.pieces[piece.Color()][piece.Type()] |= sq.Mask()
	b.dropStaleEnPassant()
	b.recompute()
	return nil
}

// PlacePieceAt is PlacePiece with algebraic square notation.
func (b *Board) PlacePieceAt(notation string, letter byte) error {
	sq, err := ParseSquare(notation)
	if err != nil {
		return err
	}
	return b.PlacePiece(sq, letter)
}

// PlacePieceFileRank is PlacePiece with a file letter and a 1-based rank.
func (b *Board) PlacePieceFileRank(file byte, rank int, letter byte) error {
	sq, err := SquareFromFileRank(file, rank)
	if err != nil {
		return err
	}
	return b.PlacePiece(sq, letter)
}

// ClearSquare removes any piece from sq.
func (b *Board) ClearSquare(sq Square) error {
	if !sq.IsValid() {
		return fmt.Errorf("square %d: %w", sq, ErrOutOfRange)
	}
	b.clear(sq)
	b.dropStaleEnPassant()
	b.recompute()
	return nil
}

func (b *Board) squareTaken(sq Square) bool {
	mask := sq.Mask()
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			if b.pieces[c][pt]&mask != 0 {
				return true
			}
		}
	}
	return false
}

func (b *Board) clear(sq Square) {
	mask := sq.Mask()
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			b.pieces[c][pt] &^= mask
		}
	}
}

// SetActiveColor sets the side to move from a FEN letter ('w' or 'b').
// Changing sides discards the en passant target.
func (b *Board) SetActiveColor(letter byte) error {
	c, err := ParseColor(letter)
	if err != nil {
		return err
	}
	if c != b.active {
		b.enPassant = NoSquare
	}
	b.active = c
	b.recompute()
	return nil
}

// SetCastlingRights sets the castling rights from their FEN form.
func (b *Board) SetCastlingRights(s string) error {
	cr, err := ParseCastlingRights(s)
	if err != nil {
		return err
	}
	b.castling = cr
	b.recompute()
	return nil
}

// SetEnPassantTarget sets the en passant target from its FEN form ("-" or
// a square). The square must sit on the rank behind a pawn that just made
// a double step, that pawn must be present and the square must be empty.
func (b *Board) SetEnPassantTarget(s string) error {
	if s == "-" {
		b.enPassant = NoSquare
		b.recompute()
		return nil
	}
	sq, err := ParseSquare(s)
	if err != nil {
		return err
	}
	mover := b.active.Other()
	if sq.Rank() != enPassantRank[mover] {
		return fmt.Errorf("en passant square %s with %s to move: %w", sq, b.active, ErrOutOfRange)
	}
	if !b.enPassantPawn(sq, mover) {
		return fmt.Errorf("en passant square %s: %w", sq, ErrNoPawnForEnPassant)
	}
	if b.derived.All.Has(sq) {
		return fmt.Errorf("en passant square %s is occupied: %w", sq, ErrInvalidArgument)
	}
	b.enPassant = sq
	b.recompute()
	return nil
}

// enPassantRank is the rank (0-based) of the target square left behind by
// a double step of the given color.
var enPassantRank = [2]int{White: 2, Black: 5}

// enPassantPawn reports whether a pawn of color mover stands one step past
// the target square in its direction of travel.
func (b *Board) enPassantPawn(target Square, mover Color) bool {
	pawnSq, ok := target.Step(pawnForward[mover])
	return ok && b.pieces[mover][Pawn].Has(pawnSq)
}

// dropStaleEnPassant clears a target whose pushing pawn is gone or whose
// square has been filled.
func (b *Board) dropStaleEnPassant() {
	if b.enPassant == NoSquare {
		return
	}
	if !b.enPassantPawn(b.enPassant, b.active.Other()) || b.squareTaken(b.enPassant) {
		b.enPassant = NoSquare
	}
}

// SetHalfmoveClock sets the halfmove clock, which must lie in [0, 50].
func (b *Board) SetHalfmoveClock(n int) error {
	if n < 0 || n > 50 {
		return fmt.Errorf("halfmove clock %d: %w", n, ErrOutOfRange)
	}
	b.halfmove = n
	b.recompute()
	return nil
}

// SetFullmoveNumber sets the fullmove number, which must be at least 1.
func (b *Board) SetFullmoveNumber(n int) error {
	if n < 1 {
		return fmt.Errorf("fullmove number %d: %w", n, ErrOutOfRange)
	}
	b.fullmove = n
	b.recompute()
	return nil
}

// ApplyMoveBookkeeping advances the turn once the side to move has
// completed a move: the fullmove number grows after black's move, the side
// to move flips and the en passant target expires. With afterMove false it
// does nothing.
func (b *Board) ApplyMoveBookkeeping(afterMove bool) {
	if !afterMove {
		return
	}
	if b.active == Black {
		b.fullmove++
	}
	b.active = b.active.Other()
	b.enPassant = NoSquare
	b.recompute()
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece {
	mask := sq.Mask()
	if b.derived.All&mask == 0 {
		return NoPiece
	}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			if b.pieces[c][pt]&mask != 0 {
				return NewPiece(pt, c)
			}
		}
	}
	return NoPiece
}

// PieceAtFileRank returns the piece at a file letter and 1-based rank.
func (b *Board) PieceAtFileRank(file byte, rank int) (Piece, error) {
	sq, err := SquareFromFileRank(file, rank)
	if err != nil {
		return NoPiece, err
	}
	return b.PieceAt(sq), nil
}

// Pieces returns the mask of pieces of one color and type.
func (b *Board) Pieces(c Color, pt PieceType) Bitboard {
	if c >= NoColor || pt >= NoPieceType {
		return Empty
	}
	return b.pieces[c][pt]
}

// SquaresOf returns the squares holding pieces of one color and type.
func (b *Board) SquaresOf(c Color, pt PieceType) []Square {
	return b.Pieces(c, pt).Squares()
}

// Occupied returns all squares held by color c.
func (b *Board) Occupied(c Color) Bitboard {
	if c >= NoColor {
		return Empty
	}
	return b.derived.Occupied[c]
}

// AllOccupied returns every occupied square.
func (b *Board) AllOccupied() Bitboard {
	return b.derived.All
}

// AttackedBy returns the squares color c threatens.
func (b *Board) AttackedBy(c Color) Bitboard {
	if c >= NoColor {
		return Empty
	}
	return b.derived.Attacks[c]
}

// Moves returns the pseudo-legal destinations of the piece on sq.
func (b *Board) Moves(sq Square) Bitboard {
	p := b.PieceAt(sq)
	if p == NoPiece {
		return Empty
	}
	return MovesOf(p.Type(), p.Color(), sq, b)
}

// Attacks returns the squares the piece on sq threatens.
func (b *Board) Attacks(sq Square) Bitboard {
	p := b.PieceAt(sq)
	if p == NoPiece {
		return Empty
	}
	return AttacksOf(p.Type(), p.Color(), sq, b)
}

// KingSquare returns the square of color c's king, NoSquare if absent.
func (b *Board) KingSquare(c Color) Square {
	return b.Pieces(c, King).LSB()
}

// Check reports whether the side to move is in check.
func (b *Board) Check() bool { return b.derived.Check }

// IllegalCheck reports whether the side to move could capture the enemy king.
func (b *Board) IllegalCheck() bool { return b.derived.IllegalCheck }

// Derived returns a copy of the derived state.
func (b *Board) Derived() Derived { return b.derived }

// ActiveColor returns the side to move.
func (b *Board) ActiveColor() Color { return b.active }

// CastlingRights returns the castling rights.
func (b *Board) CastlingRights() CastlingRights { return b.castling }

// EnPassant returns the en passant target square, NoSquare if none.
func (b *Board) EnPassant() Square { return b.enPassant }

// HalfmoveClock returns the halfmove clock.
func (b *Board) HalfmoveClock() int { return b.halfmove }

// FullmoveNumber returns the fullmove number.
func (b *Board) FullmoveNumber() int { return b.fullmove }

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// Equal reports whether two boards hold the same position and metadata.
func (b *Board) Equal(o *Board) bool {
	return b.pieces == o.pieces &&
		b.active == o.active &&
		b.castling == o.castling &&
		b.enPassant == o.enPassant &&
		b.halfmove == o.halfmove &&
		b.fullmove == o.fullmove
}

// String returns a visual representation of the board.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			p := b.PieceAt(NewSquare(file, rank))
			if p == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(p.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", b.active)
	fmt.Fprintf(&sb, "Castling: %s\n", b.castling)
	fmt.Fprintf(&sb, "En passant: %s\n", b.enPassant)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", b.halfmove)
	fmt.Fprintf(&sb, "Full move: %d\n", b.fullmove)
	return sb.String()
}

package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewStartBoard returns a board set up in the starting position.
func NewStartBoard() *Board {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return b
}

// ParseFEN parses a six-field FEN string into a new Board.
func ParseFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, fmt.Errorf("need 6 fields, got %d: %w", len(parts), ErrMalformedFEN)
	}

	b := NewBoard()

	// Piece placement (field 0)
	if err := parsePiecePlacement(b, parts[0]); err != nil {
		return nil, err
	}
	b.recompute()

	// Side to move (field 1)
	if len(parts[1]) != 1 {
		return nil, fmt.Errorf("side to move %q: %w", parts[1], ErrInvalidArgument)
	}
	if err := b.SetActiveColor(parts[1][0]); err != nil {
		return nil, err
	}

	// Castling rights (field 2)
	if err := b.SetCastlingRights(parts[2]); err != nil {
		return nil, err
	}

	// En passant square (field 3), checked against the side to move
	if err := b.SetEnPassantTarget(parts[3]); err != nil {
		return nil, err
	}

	// Half-move clock (field 4)
	hmc, err := strconv.Atoi(parts[4])
	if err != nil {
		return nil, fmt.Errorf("half-move clock %q: %w", parts[4], ErrMalformedFEN)
	}
	if err := b.SetHalfmoveClock(hmc); err != nil {
		return nil, err
	}

	// Full-move number (field 5)
	fmn, err := strconv.Atoi(parts[5])
	if err != nil {
		return nil, fmt.Errorf("full-move number %q: %w", parts[5], ErrMalformedFEN)
	}
	if err := b.SetFullmoveNumber(fmn); err != nil {
		return nil, err
	}

	return b, nil
}

// parsePiecePlacement fills the piece masks from the first FEN field. The
// caller recomputes derived state afterwards.
func parsePiecePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("need 8 ranks, got %d: %w", len(ranks), ErrMalformedFEN)
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d: %w", rank+1, ErrMalformedFEN)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece, err := PieceFromChar(c)
			if err != nil {
				return fmt.Errorf("rank %d: character %q: %w", rank+1, c, ErrMalformedFEN)
			}
			b.pieces[piece.Color()][piece.Type()] |= NewSquare(file, rank).Mask()
			file++
		}

		if file != 8 {
			return fmt.Errorf("rank %d covers %d squares: %w", rank+1, file, ErrMalformedFEN)
		}
	}

	return nil
}

// FEN returns the FEN representation of the board.
func (b *Board) FEN() string {
	var sb strings.Builder

	// Piece placement
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := b.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteByte(b.active.Char())
	sb.WriteByte(' ')
	sb.WriteString(b.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(b.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmove))

	return sb.String()
}

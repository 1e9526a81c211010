package board

import (
	"errors"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
)

var testFENs = []string{
	StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"8/8/8/8/8/8/6k1/6K1 w - - 50 120",
	"4k3/8/8/8/8/8/8/4K3 b Kq - 3 42",
}

func TestFENRoundTrip(t *testing.T) {
	for _, fen := range testFENs {
		t.Run(fen, func(t *testing.T) {
			b := mustParseFEN(t, fen)
			if got := b.FEN(); got != fen {
				t.Errorf("FEN() = %q, want %q", got, fen)
			}
			again := mustParseFEN(t, b.FEN())
			if !again.Equal(b) {
				t.Error("parse(serialize(parse(fen))) differs from parse(fen)")
			}
			checkConsistent(t, b)
		})
	}
}

func TestParseFENStartPosition(t *testing.T) {
	b := NewStartBoard()
	if b.Pieces(White, Pawn) != Rank2 || b.Pieces(Black, Pawn) != Rank7 {
		t.Error("pawns misplaced")
	}
	if b.Occupied(White) != Rank1|Rank2 || b.Occupied(Black) != Rank7|Rank8 {
		t.Error("occupancy wrong")
	}
	if b.CastlingRights() != AllCastling {
		t.Errorf("castling = %s", b.CastlingRights())
	}
	if b.PieceAt(D1) != WhiteQueen || b.PieceAt(E8) != BlackKing {
		t.Error("royal pieces misplaced")
	}
	// Each side attacks all of its third rank.
	if b.AttackedBy(White)&Rank3 != Rank3 || b.AttackedBy(Black)&Rank6 != Rank6 {
		t.Error("attack sets miss the third rank")
	}
	if b.Check() || b.IllegalCheck() {
		t.Error("start position flagged as check")
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want error
	}{
		{"five fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", ErrMalformedFEN},
		{"seven fields", StartFEN + " 1", ErrMalformedFEN},
		{"empty", "", ErrMalformedFEN},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", ErrMalformedFEN},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", ErrMalformedFEN},
		{"long rank", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", ErrMalformedFEN},
		{"overflow rank", "rnbqkbnr/pppppppp/71p/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", ErrMalformedFEN},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/3X4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", ErrMalformedFEN},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", ErrInvalidArgument},
		{"long side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR white KQkq - 0 1", ErrInvalidArgument},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx - 0 1", ErrInvalidArgument},
		{"ep notation", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e33 0 1", ErrInvalidSquareNotation},
		{"ep wrong rank", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e4 0 1", ErrOutOfRange},
		{"ep rank for wrong side", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e3 0 1", ErrOutOfRange},
		{"ep without pawn", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq e3 0 1", ErrNoPawnForEnPassant},
		{"halfmove not a number", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1", ErrMalformedFEN},
		{"halfmove too big", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 51 1", ErrOutOfRange},
		{"fullmove not a number", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 one", ErrMalformedFEN},
		{"fullmove zero", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", ErrOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseFEN(tc.fen)
			if !errors.Is(err, tc.want) {
				t.Errorf("ParseFEN error = %v, want %v", err, tc.want)
			}
			if b != nil {
				t.Error("ParseFEN returned a board with an error")
			}
		})
	}
}

func TestFENPlacementMatchesDragontooth(t *testing.T) {
	for _, fen := range testFENs {
		b := mustParseFEN(t, fen)
		dt := dragontoothmg.ParseFen(fen)

		sides := [2]dragontoothmg.Bitboards{White: dt.White, Black: dt.Black}
		for c := White; c <= Black; c++ {
			want := [6]uint64{
				Pawn:   sides[c].Pawns,
				Knight: sides[c].Knights,
				Bishop: sides[c].Bishops,
				Rook:   sides[c].Rooks,
				Queen:  sides[c].Queens,
				King:   sides[c].Kings,
			}
			for pt := Pawn; pt <= King; pt++ {
				if uint64(b.Pieces(c, pt)) != want[pt] {
					t.Errorf("%s: %s %s mask %#x, dragontoothmg %#x", fen, c, pt, uint64(b.Pieces(c, pt)), want[pt])
				}
			}
			if uint64(b.Occupied(c)) != sides[c].All {
				t.Errorf("%s: %s occupancy differs from dragontoothmg", fen, c)
			}
		}
		if (b.ActiveColor() == White) != dt.Wtomove {
			t.Errorf("%s: side to move differs from dragontoothmg", fen)
		}
	}
}

// notnilPiece converts a notnil/chess piece to ours.
func notnilPiece(p chess.Piece) Piece {
	var pt PieceType
	switch p.Type() {
	case chess.Pawn:
		pt = Pawn
	case chess.Knight:
		pt = Knight
	case chess.Bishop:
		pt = Bishop
	case chess.Rook:
		pt = Rook
	case chess.Queen:
		pt = Queen
	case chess.King:
		pt = King
	default:
		return NoPiece
	}
	if p.Color() == chess.Black {
		return NewPiece(pt, Black)
	}
	return NewPiece(pt, White)
}

func notnilGame(t *testing.T, fen string) *chess.Game {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("notnil/chess rejected %q: %v", fen, err)
	}
	return chess.NewGame(opt)
}

func TestFENMatchesNotnil(t *testing.T) {
	for _, fen := range testFENs {
		b := mustParseFEN(t, fen)
		if b.IllegalCheck() {
			continue // notnil/chess expects reachable positions
		}
		g := notnilGame(t, b.FEN())
		nb := g.Position().Board()
		for sq := A1; sq <= H8; sq++ {
			if got, want := b.PieceAt(sq), notnilPiece(nb.Piece(chess.Square(sq))); got != want {
				t.Errorf("%s: %s holds %v, notnil/chess has %v", fen, sq, got, want)
			}
		}
	}
}

// In positions without pins, checks or castling rights, every pseudo-legal
// move of a non-king piece is legal, so the two generators must agree.
func TestMovesMatchNotnil(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w - - 2 3",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w - f6 0 3",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - e3 0 1",
		"rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b - e3 0 3",
		"8/P6k/8/8/8/8/6p1/K7 w - - 0 1",
		"8/P6k/8/8/8/8/6p1/K7 b - - 0 1",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			b := mustParseFEN(t, fen)
			us := b.ActiveColor()
			king := b.KingSquare(us)

			ours := make(map[Move]bool)
			for _, m := range b.PseudoLegalMoves(us).Slice() {
				if m.From() != king {
					ours[m] = true
				}
			}

			theirs := make(map[Move]bool)
			for _, m := range notnilGame(t, fen).ValidMoves() {
				mv := NewMove(Square(m.S1()), Square(m.S2()))
				if mv.From() != king {
					theirs[mv] = true
				}
			}

			for m := range ours {
				if !theirs[m] {
					t.Errorf("%s generated but not legal per notnil/chess", m)
				}
			}
			for m := range theirs {
				if !ours[m] {
					t.Errorf("%s legal per notnil/chess but not generated", m)
				}
			}
		})
	}
}

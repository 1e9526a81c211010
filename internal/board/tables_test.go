package board

import "testing"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Each table is checked against a geometric definition over square pairs.
func TestTablesMatchGeometry(t *testing.T) {
	for from := A1; from <= H8; from++ {
		var king, knight, rook, bishop Bitboard
		for to := A1; to <= H8; to++ {
			if to == from {
				continue
			}
			df := abs(to.File() - from.File())
			dr := abs(to.Rank() - from.Rank())
			if df <= 1 && dr <= 1 {
				king |= to.Mask()
			}
			if (df == 1 && dr == 2) || (df == 2 && dr == 1) {
				knight |= to.Mask()
			}
			if df == 0 || dr == 0 {
				rook |= to.Mask()
			}
			if df == dr {
				bishop |= to.Mask()
			}
		}

		if KingPattern(from) != king {
			t.Errorf("KingPattern(%s) =\n%v\nwant\n%v", from, KingPattern(from), king)
		}
		if KnightPattern(from) != knight {
			t.Errorf("KnightPattern(%s) =\n%v\nwant\n%v", from, KnightPattern(from), knight)
		}
		if RookRays(from) != rook {
			t.Errorf("RookRays(%s) =\n%v\nwant\n%v", from, RookRays(from), rook)
		}
		if BishopRays(from) != bishop {
			t.Errorf("BishopRays(%s) =\n%v\nwant\n%v", from, BishopRays(from), bishop)
		}
		if QueenRays(from) != rook|bishop {
			t.Errorf("QueenRays(%s) is not the union of rook and bishop rays", from)
		}
		if KingPattern(from).Has(from) || KnightPattern(from).Has(from) || QueenRays(from).Has(from) {
			t.Errorf("%s: pattern includes its own square", from)
		}
	}
}

func TestPatternCounts(t *testing.T) {
	tests := []struct {
		name string
		bb   Bitboard
		want int
	}{
		{"king a1", KingPattern(A1), 3},
		{"king e4", KingPattern(E4), 8},
		{"king h5", KingPattern(H5), 5},
		{"knight a1", KnightPattern(A1), 2},
		{"knight b1", KnightPattern(B1), 3},
		{"knight d4", KnightPattern(D4), 8},
		{"knight h8", KnightPattern(H8), 2},
		{"rook anywhere", RookRays(D5), 14},
		{"bishop a1", BishopRays(A1), 7},
		{"bishop d4", BishopRays(D4), 13},
		{"queen d4", QueenRays(D4), 27},
	}
	for _, tc := range tests {
		if got := tc.bb.PopCount(); got != tc.want {
			t.Errorf("%s: %d squares, want %d", tc.name, got, tc.want)
		}
	}
}

func TestPawnPatterns(t *testing.T) {
	tests := []struct {
		name string
		got  Bitboard
		want Bitboard
	}{
		{"white push from start rank", PawnPushPattern(E2, White), E3.Mask() | E4.Mask()},
		{"white push elsewhere", PawnPushPattern(E3, White), E4.Mask()},
		{"white push from rank 8", PawnPushPattern(E8, White), Empty},
		{"black push from start rank", PawnPushPattern(D7, Black), D6.Mask() | D5.Mask()},
		{"black push elsewhere", PawnPushPattern(D6, Black), D5.Mask()},
		{"black push from rank 1", PawnPushPattern(D1, Black), Empty},
		{"white capture center", PawnCapturePattern(E4, White), D5.Mask() | F5.Mask()},
		{"white capture a-file", PawnCapturePattern(A2, White), B3.Mask()},
		{"white capture h-file", PawnCapturePattern(H2, White), G3.Mask()},
		{"black capture center", PawnCapturePattern(E5, Black), D4.Mask() | F4.Mask()},
		{"black capture a-file", PawnCapturePattern(A7, Black), B6.Mask()},
		{"black capture h-file", PawnCapturePattern(H7, Black), G6.Mask()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got\n%v\nwant\n%v", tc.got, tc.want)
			}
		})
	}
}

package board

// Precomputed patterns, one entry per square. Built in init() from the
// direction vectors and the guarded TryMove, read-only afterwards.
var (
	kingTable        [64]Bitboard
	knightTable      [64]Bitboard
	pawnPushTable    [2][64]Bitboard // [Color][Square], includes the double step
	pawnCaptureTable [2][64]Bitboard // [Color][Square]

	// Empty-board ray unions for the sliders.
	rookRays   [64]Bitboard
	bishopRays [64]Bitboard
	queenRays  [64]Bitboard
)

// Pawn geometry per color.
var (
	pawnForward    = [2]Direction{White: N, Black: S}
	pawnCaptureDir = [2][2]Direction{White: {NE, NW}, Black: {SE, SW}}
	pawnStartRank  = [2]int{White: 1, Black: 6}
)

func init() {
	for sq := A1; sq <= H8; sq++ {
		kingTable[sq] = jumps(sq, KingDirections)
		knightTable[sq] = jumps(sq, KnightDirections)

		rookRays[sq] = rays(sq, RookDirections)
		bishopRays[sq] = rays(sq, BishopDirections)
		queenRays[sq] = rookRays[sq] | bishopRays[sq]

		for c := White; c <= Black; c++ {
			pawnPushTable[c][sq] = pawnPushes(sq, c)
			pawnCaptureTable[c][sq] = jumps(sq, pawnCaptureDir[c][:])
		}
	}
}

// jumps returns the union of single applications of each direction.
func jumps(sq Square, dirs []Direction) Bitboard {
	var bb Bitboard
	for _, d := range dirs {
		if to, ok := sq.TryMove(d.Vector()); ok {
			bb |= to.Mask()
		}
	}
	return bb
}

// rays returns every square reachable along dirs on an empty board.
func rays(sq Square, dirs []Direction) Bitboard {
	var bb Bitboard
	for _, d := range dirs {
		v := d.Vector()
		for to, ok := sq.TryMove(v); ok; to, ok = to.TryMove(v) {
			bb |= to.Mask()
		}
	}
	return bb
}

func pawnPushes(sq Square, c Color) Bitboard {
	v := pawnForward[c].Vector()
	one, ok := sq.TryMove(v)
	if !ok {
		return Empty
	}
	bb := one.Mask()
	if sq.Rank() == pawnStartRank[c] {
		if two, ok := one.TryMove(v); ok {
			bb |= two.Mask()
		}
	}
	return bb
}

// KingPattern returns the squares a king reaches from sq.
func KingPattern(sq Square) Bitboard {
	return kingTable[sq]
}

// KnightPattern returns the squares a knight reaches from sq.
func KnightPattern(sq Square) Bitboard {
	return knightTable[sq]
}

// PawnPushPattern returns the push targets of a pawn of color c on sq,
// ignoring occupancy. Includes the double step from the start rank.
func PawnPushPattern(sq Square, c Color) Bitboard {
	return pawnPushTable[c][sq]
}

// PawnCapturePattern returns the two forward diagonals of a pawn of color c on sq.
func PawnCapturePattern(sq Square, c Color) Bitboard {
	return pawnCaptureTable[c][sq]
}

// RookRays returns the rook's empty-board reach from sq.
func RookRays(sq Square) Bitboard {
	return rookRays[sq]
}

// BishopRays returns the bishop's empty-board reach from sq.
func BishopRays(sq Square) Bitboard {
	return bishopRays[sq]
}

// QueenRays returns the queen's empty-board reach from sq.
func QueenRays(sq Square) Bitboard {
	return queenRays[sq]
}

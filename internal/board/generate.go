package board

// occupancy is the slice of board state the generators read.
type occupancy struct {
	byColor   [2]Bitboard
	all       Bitboard
	enPassant Square // usable only by the side to move; NoSquare otherwise
}

type generator struct {
	moves   func(c Color, from Square, o *occupancy) Bitboard
	attacks func(c Color, from Square, o *occupancy) Bitboard
}

var generators = [6]generator{
	Pawn:   {pawnMoves, pawnAttacks},
	Knight: {knightMoves, knightAttacks},
	Bishop: {bishopMoves, bishopAttacks},
	Rook:   {rookMoves, rookAttacks},
	Queen:  {queenMoves, queenAttacks},
	King:   {kingMoves, kingAttacks},
}

// MovesOf returns the pseudo-legal destinations of a piece of type pt and
// color c standing on from. Squares holding a friendly piece are never
// included; the enemy king is (see Board.IllegalCheck).
func MovesOf(pt PieceType, c Color, from Square, b *Board) Bitboard {
	if pt >= NoPieceType || c >= NoColor || !from.IsValid() {
		return Empty
	}
	o := b.occupancyFor(c)
	return generators[pt].moves(c, from, &o)
}

// AttacksOf returns the squares a piece threatens, friendly-occupied
// squares included.
func AttacksOf(pt PieceType, c Color, from Square, b *Board) Bitboard {
	if pt >= NoPieceType || c >= NoColor || !from.IsValid() {
		return Empty
	}
	o := b.occupancyFor(c)
	return generators[pt].attacks(c, from, &o)
}

// SliderAttacks ray-walks a bishop, rook or queen on from against a raw
// occupancy. Other piece types yield Empty.
func SliderAttacks(pt PieceType, from Square, occupied Bitboard) Bitboard {
	if !from.IsValid() {
		return Empty
	}
	switch pt {
	case Bishop:
		return walk(from, BishopDirections, bishopRays[from], occupied)
	case Rook:
		return walk(from, RookDirections, rookRays[from], occupied)
	case Queen:
		return walk(from, QueenDirections, queenRays[from], occupied)
	}
	return Empty
}

// walk steps along each direction until it leaves the board or hits an
// occupied square, which is included. When nothing on the empty-board
// reach is occupied the reach itself is the answer.
func walk(from Square, dirs []Direction, reach, occupied Bitboard) Bitboard {
	if reach&occupied == 0 {
		return reach
	}
	var bb Bitboard
	for _, d := range dirs {
		for to, ok := from.Step(d); ok; to, ok = to.Step(d) {
			bb |= to.Mask()
			if occupied.Has(to) {
				break
			}
		}
	}
	return bb
}

func pawnMoves(c Color, from Square, o *occupancy) Bitboard {
	var bb Bitboard
	if one, ok := from.Step(pawnForward[c]); ok && !o.all.Has(one) {
		bb |= one.Mask()
		// The push table holds the double step only from the start rank.
		if two, ok := one.Step(pawnForward[c]); ok && pawnPushTable[c][from].Has(two) && !o.all.Has(two) {
			bb |= two.Mask()
		}
	}
	targets := (o.byColor[c.Other()] | o.enPassant.Mask()) &^ o.byColor[c]
	return bb | pawnCaptureTable[c][from]&targets
}

func pawnAttacks(c Color, from Square, _ *occupancy) Bitboard {
	return pawnCaptureTable[c][from]
}

func knightMoves(c Color, from Square, o *occupancy) Bitboard {
	return knightTable[from] &^ o.byColor[c]
}

func knightAttacks(_ Color, from Square, _ *occupancy) Bitboard {
	return knightTable[from]
}

func kingMoves(c Color, from Square, o *occupancy) Bitboard {
	return kingTable[from] &^ o.byColor[c]
}

func kingAttacks(_ Color, from Square, _ *occupancy) Bitboard {
	return kingTable[from]
}

func bishopAttacks(_ Color, from Square, o *occupancy) Bitboard {
	return walk(from, BishopDirections, bishopRays[from], o.all)
}

func bishopMoves(c Color, from Square, o *occupancy) Bitboard {
	return bishopAttacks(c, from, o) &^ o.byColor[c]
}

func rookAttacks(_ Color, from Square, o *occupancy) Bitboard {
	return walk(from, RookDirections, rookRays[from], o.all)
}

func rookMoves(c Color, from Square, o *occupancy) Bitboard {
	return rookAttacks(c, from, o) &^ o.byColor[c]
}

func queenAttacks(_ Color, from Square, o *occupancy) Bitboard {
	return walk(from, QueenDirections, queenRays[from], o.all)
}

func queenMoves(c Color, from Square, o *occupancy) Bitboard {
	return queenAttacks(c, from, o) &^ o.byColor[c]
}

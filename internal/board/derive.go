package board

// Derived is the state computed from the piece masks. A Board replaces its
// Derived value after every mutation and never edits it field by field.
type Derived struct {
	Occupied [2]Bitboard // per color
	All      Bitboard
	Attacks  [2]Bitboard // squares each color threatens

	// Check is set when the side to move has its king attacked.
	Check bool
	// IllegalCheck is set when the side to move attacks the opposing king,
	// a position that cannot arise from legal play.
	IllegalCheck bool
}

// derive computes the Derived state for a set of piece masks.
func derive(pieces *[2][6]Bitboard, active Color) Derived {
	var d Derived
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			d.Occupied[c] |= pieces[c][pt]
		}
	}
	d.All = d.Occupied[White] | d.Occupied[Black]

	o := occupancy{byColor: d.Occupied, all: d.All, enPassant: NoSquare}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := pieces[c][pt]
			for bb != 0 {
				d.Attacks[c] |= generators[pt].attacks(c, bb.PopLSB(), &o)
			}
		}
	}

	them := active.Other()
	d.Check = pieces[active][King]&d.Attacks[them] != 0
	d.IllegalCheck = pieces[them][King]&d.Attacks[active] != 0
	return d
}

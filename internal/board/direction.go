package board

import "fmt"

// Vector is a signed (file, rank) offset.
type Vector struct {
	DFile int8
	DRank int8
}

// NewVector validates and builds a Vector. Each component must lie in
// [-7, 7] and at least one must be non-zero.
func NewVector(dFile, dRank int) (Vector, error) {
	if dFile < -7 || dFile > 7 || dRank < -7 || dRank > 7 {
		return Vector{}, fmt.Errorf("vector (%d,%d): %w", dFile, dRank, ErrOutOfRange)
	}
	if dFile == 0 && dRank == 0 {
		return Vector{}, fmt.Errorf("zero vector: %w", ErrInvalidArgument)
	}
	return Vector{DFile: int8(dFile), DRank: int8(dRank)}, nil
}

// Direction enumerates the primitive steps and the knight jumps.
type Direction uint8

const (
	N Direction = iota
	S
	E
	W
	NE
	NW
	SE
	SW

	NNE
	NNW
	SSE
	SSW
	ENE
	ESE
	WNW
	WSW

	numDirections
)

var directionVectors = [numDirections]Vector{
	N:  {0, 1},
	S:  {0, -1},
	E:  {1, 0},
	W:  {-1, 0},
	NE: {1, 1},
	NW: {-1, 1},
	SE: {1, -1},
	SW: {-1, -1},

	NNE: {1, 2},
	NNW: {-1, 2},
	SSE: {1, -2},
	SSW: {-1, -2},
	ENE: {2, 1},
	ESE: {2, -1},
	WNW: {-2, 1},
	WSW: {-2, -1},
}

var directionNames = [numDirections]string{
	"N", "S", "E", "W", "NE", "NW", "SE", "SW",
	"NNE", "NNW", "SSE", "SSW", "ENE", "ESE", "WNW", "WSW",
}

// Direction groups.
var (
	RookDirections   = []Direction{N, S, E, W}
	BishopDirections = []Direction{NE, NW, SE, SW}
	QueenDirections  = []Direction{N, S, E, W, NE, NW, SE, SW}
	KingDirections   = QueenDirections
	KnightDirections = []Direction{NNE, NNW, SSE, SSW, ENE, ESE, WNW, WSW}
)

// Vector returns the offset of the direction.
func (d Direction) Vector() Vector {
	if d >= numDirections {
		return Vector{}
	}
	return directionVectors[d]
}

// IsStep reports whether d is one of the eight single-square directions.
func (d Direction) IsStep() bool {
	return d <= SW
}

func (d Direction) String() string {
	if d >= numDirections {
		return "?"
	}
	return directionNames[d]
}

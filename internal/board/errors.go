package board

import "errors"

// Input validation errors. Call sites wrap these with context; test with errors.Is.
var (
	ErrOutOfRange            = errors.New("out of range")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrInvalidSquareNotation = errors.New("invalid square notation")
	ErrMalformedFEN          = errors.New("malformed FEN")
	ErrNoPawnForEnPassant    = errors.New("no pawn for en passant")
)

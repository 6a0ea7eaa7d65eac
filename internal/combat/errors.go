package combat

import "errors"

var (
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidDirection  = errors.New("invalid direction")
	// ErrOutOfBounds means a caller indexed the grid directly with bad
	// coordinates. Moves never produce it.
	ErrOutOfBounds = errors.New("cell out of bounds")
	ErrGameOver    = errors.New("game is over")
)

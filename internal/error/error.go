package error

import (
	"errors"
	"fmt"
)

// Error kinds. Constructors below wrap one of these so callers
// can match with errors.Is.
var (
	ErrDuplicateShip       = errors.New("ship already exists on board")
	ErrInsufficientCells   = errors.New("not enough cells on board to allocate ship")
	ErrPlacementConflict   = errors.New("ship dislocation area is not acceptable")
	ErrOutOfRange          = errors.New("coordinates out of board range")
	ErrAlreadyShot         = errors.New("cell has already been shot")
	ErrInvalidOperation    = errors.New("invalid operation")
	ErrBoardAssemblyFailed = errors.New("failed to assemble board")
	ErrOpponentExhausted   = errors.New("opponent has no coordinates left to shoot")
	ErrInputClosed         = errors.New("input closed")
	ErrGameNotExists       = errors.New("game does not exist")
	ErrInvalidInput        = errors.New("invalid input")
)

func ErrShipExists(x, y, length int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d\tlength: %d", ErrDuplicateShip, x, y, length)
}

func ErrShipAlreadyPlaced(x, y, length int) error {
	return fmt.Errorf("%w: ship is already placed on a board\tx: %d\ty: %d\tlength: %d", ErrInvalidOperation, x, y, length)
}

func ErrCellsAllocation(length, allocated int) error {
	return fmt.Errorf("%w\tlength: %d\tallocated: %d", ErrInsufficientCells, length, allocated)
}

func ErrShipDislocationArea(x, y int) error {
	return fmt.Errorf("%w\tconflict at x: %d\ty: %d", ErrPlacementConflict, x, y)
}

func ErrXorYOutOfGridBound(x, y, min, max int) error {
	return fmt.Errorf("%w, x and y must be from %d to %d\tx: %d\ty: %d", ErrOutOfRange, min, max, x, y)
}

func ErrCellAlreadyShot(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrAlreadyShot, x, y)
}

func ErrInvalidShipLength(length int) error {
	return fmt.Errorf("%w: ship length must be at least 1\tlength: %d", ErrInvalidOperation, length)
}

func ErrInvalidSideLength(side int) error {
	return fmt.Errorf("%w: board side length must be at least 1\tside: %d", ErrInvalidOperation, side)
}

func ErrInvalidGameDifficulty(difficulty uint8) error {
	return fmt.Errorf("%w: invalid game difficulty\tdifficulty: %d", ErrInvalidOperation, difficulty)
}

func ErrEmptyFleet() error {
	return fmt.Errorf("%w: fleet must have at least one ship", ErrInvalidOperation)
}

func ErrInvalidShipCount(length, count int) error {
	return fmt.Errorf("%w: ship count must not be negative\tlength: %d\tcount: %d", ErrInvalidOperation, length, count)
}

func ErrFleetTooLarge(cells, side int) error {
	return fmt.Errorf("%w: fleet needs %d cells but board has %d", ErrInvalidOperation, cells, side*side)
}

func ErrMatchNotSetUp() error {
	return fmt.Errorf("%w: match boards are not set up", ErrInvalidOperation)
}

func ErrShipAttemptsExhausted(length, attempts int) error {
	return fmt.Errorf("%w: could not place ship after %d attempts\tlength: %d", ErrBoardAssemblyFailed, attempts, length)
}

func ErrBoardAssembly(attempts int, last error) error {
	return fmt.Errorf("%w after %d attempts: %v", ErrBoardAssemblyFailed, attempts, last)
}

func ErrNoCoordinatesLeft(min, max int) error {
	return fmt.Errorf("%w\tmin: %d\tmax: %d", ErrOpponentExhausted, min, max)
}

func ErrGameNotFound(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotExists, gameUuid)
}

func ErrTargetSourceMissing() error {
	return fmt.Errorf("%w: match needs a target source for the human side", ErrInvalidOperation)
}

func ErrBoardSizeMismatch(expected, got int) error {
	return fmt.Errorf("%w: board side length mismatch\texpected: %d\tgot: %d", ErrInvalidOperation, expected, got)
}

func ErrInvalidCoordinatesInput(input string) error {
	return fmt.Errorf("%w, enter two numbers separated by a space, e.g. 1 2\tgot: %q", ErrInvalidInput, input)
}

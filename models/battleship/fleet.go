package battleship

import (
	"errors"
	"log"

	cerr "github.com/saeidalz13/battleship-offline/internal/error"
)

const (
	DefaultMaxShipAttempts  int = 1000
	DefaultMaxBuildAttempts int = 3
)

// RandomSource is satisfied by *rand.Rand.
type RandomSource interface {
	Intn(n int) int
}

type ShipSpec struct {
	Count  int
	Length int
}

type Fleet []ShipSpec

// DefaultFleet: one ship of three cells, two of two, four of one.
var DefaultFleet = Fleet{
	{Count: 1, Length: 3},
	{Count: 2, Length: 2},
	{Count: 4, Length: 1},
}

func (f Fleet) ShipCount() int {
	n := 0
	for _, spec := range f {
		n += spec.Count
	}
	return n
}

func (f Fleet) CellCount() int {
	n := 0
	for _, spec := range f {
		n += spec.Count * spec.Length
	}
	return n
}

type FleetBuilder struct {
	rng              RandomSource
	fleet            Fleet
	maxShipAttempts  int
	maxBuildAttempts int
}

type FleetOption func(*FleetBuilder)

func WithFleet(fleet Fleet) FleetOption {
	return func(fb *FleetBuilder) {
		fb.fleet = fleet
	}
}

func WithMaxShipAttempts(attempts int) FleetOption {
	return func(fb *FleetBuilder) {
		if attempts > 0 {
			fb.maxShipAttempts = attempts
		}
	}
}

func WithMaxBuildAttempts(attempts int) FleetOption {
	return func(fb *FleetBuilder) {
		if attempts > 0 {
			fb.maxBuildAttempts = attempts
		}
	}
}

func NewFleetBuilder(rng RandomSource, opts ...FleetOption) *FleetBuilder {
	fb := &FleetBuilder{
		rng:              rng,
		fleet:            DefaultFleet,
		maxShipAttempts:  DefaultMaxShipAttempts,
		maxBuildAttempts: DefaultMaxBuildAttempts,
	}
	for _, opt := range opts {
		opt(fb)
	}
	return fb
}

// Populate places the whole fleet on board, one ship after another.
// A ship that cannot be placed within the attempt budget aborts the
// build, leaving board partially populated.
func (fb *FleetBuilder) Populate(board *Board) error {
	side := board.SideLength()

	for _, spec := range fb.fleet {
		for i := 0; i < spec.Count; i++ {
			if err := fb.placeShip(board, side, spec.Length); err != nil {
				return err
			}
		}
	}
	return nil
}

func (fb *FleetBuilder) placeShip(board *Board, side, length int) error {
	for attempt := 0; attempt < fb.maxShipAttempts; attempt++ {
		bow := NewCoordinates(fb.rng.Intn(side), fb.rng.Intn(side))
		orientation := Orientation(fb.rng.Intn(2))

		ship, err := NewShip(bow, length, orientation)
		if err != nil {
			return err
		}

		err = board.AddShip(ship)
		if err == nil {
			return nil
		}
		if !isPlacementErr(err) {
			return err
		}
	}
	return cerr.ErrShipAttemptsExhausted(length, fb.maxShipAttempts)
}

func isPlacementErr(err error) bool {
	return errors.Is(err, cerr.ErrDuplicateShip) ||
		errors.Is(err, cerr.ErrInsufficientCells) ||
		errors.Is(err, cerr.ErrPlacementConflict)
}

// Build assembles a fresh board for cfg, starting over with an empty
// board whenever a ship runs out of attempts.
func (fb *FleetBuilder) Build(cfg BoardConfig) (*Board, error) {
	var lastErr error

	for attempt := 1; attempt <= fb.maxBuildAttempts; attempt++ {
		board, err := NewBoard(cfg)
		if err != nil {
			return nil, err
		}

		err = fb.Populate(board)
		if err == nil {
			return board, nil
		}
		if !errors.Is(err, cerr.ErrBoardAssemblyFailed) {
			return nil, err
		}

		log.Printf("board assembly attempt %d/%d failed: %v\n", attempt, fb.maxBuildAttempts, err)
		lastErr = err
	}
	return nil, cerr.ErrBoardAssembly(fb.maxBuildAttempts, lastErr)
}

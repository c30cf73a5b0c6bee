package battleship

import (
	cerr "github.com/saeidalz13/battleship-offline/internal/error"
)

const (
	GameDifficultyEasy uint8 = iota
	GameDifficultyNormal
	GameDifficultyHard
)

const (
	GridSizeEasy   int = DefaultSideLength
	GridSizeNormal int = 8
	GridSizeHard   int = 10
)

type Rules struct {
	SideLength int
	Fleet      Fleet
}

func RulesForDifficulty(difficulty uint8) (Rules, error) {
	switch difficulty {
	case GameDifficultyEasy:
		return Rules{SideLength: GridSizeEasy, Fleet: DefaultFleet}, nil

	case GameDifficultyNormal:
		return Rules{SideLength: GridSizeNormal, Fleet: Fleet{
			{Count: 1, Length: 4},
			{Count: 1, Length: 3},
			{Count: 2, Length: 2},
			{Count: 3, Length: 1},
		}}, nil

	case GameDifficultyHard:
		return Rules{SideLength: GridSizeHard, Fleet: Fleet{
			{Count: 1, Length: 4},
			{Count: 2, Length: 3},
			{Count: 3, Length: 2},
			{Count: 4, Length: 1},
		}}, nil

	default:
		return Rules{}, cerr.ErrInvalidGameDifficulty(difficulty)
	}
}

func (r Rules) Validate() error {
	if r.SideLength < 1 {
		return cerr.ErrInvalidSideLength(r.SideLength)
	}
	for _, spec := range r.Fleet {
		if spec.Length < 1 {
			return cerr.ErrInvalidShipLength(spec.Length)
		}
		if spec.Count < 0 {
			return cerr.ErrInvalidShipCount(spec.Length, spec.Count)
		}
	}
	if r.Fleet.ShipCount() < 1 {
		return cerr.ErrEmptyFleet()
	}
	if cells := r.Fleet.CellCount(); cells > r.SideLength*r.SideLength {
		return cerr.ErrFleetTooLarge(cells, r.SideLength)
	}
	return nil
}

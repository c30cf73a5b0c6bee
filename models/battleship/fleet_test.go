package battleship

import (
	"errors"
	"math/rand"
	"testing"

	cerr "github.com/saeidalz13/battleship-offline/internal/error"
)

// constSource answers every draw with zero and counts the draws.
type constSource struct {
	calls int
}

func (s *constSource) Intn(n int) int {
	s.calls++
	return 0
}

// recordingSource wraps a real generator and keeps every bound it was asked for.
type recordingSource struct {
	rng    *rand.Rand
	bounds []int
}

func (s *recordingSource) Intn(n int) int {
	s.bounds = append(s.bounds, n)
	return s.rng.Intn(n)
}

func TestFleetCounts(t *testing.T) {
	if DefaultFleet.ShipCount() != 7 {
		t.Fatalf("expected ships: %d\t got: %d", 7, DefaultFleet.ShipCount())
	}
	if DefaultFleet.CellCount() != 11 {
		t.Fatalf("expected cells: %d\t got: %d", 11, DefaultFleet.CellCount())
	}
}

func assertFleetPlaced(t *testing.T, board *Board, fleet Fleet) {
	t.Helper()

	ships := board.Ships()
	if len(ships) != fleet.ShipCount() {
		t.Fatalf("expected ships: %d\t got: %d", fleet.ShipCount(), len(ships))
	}

	lengths := make(map[int]int)
	for _, ship := range ships {
		lengths[ship.Length()]++
		if ship.HitPoints() != ship.Length() {
			t.Fatalf("fresh ship must be at full hit points, got %d of %d", ship.HitPoints(), ship.Length())
		}
	}
	for _, spec := range fleet {
		if lengths[spec.Length] != spec.Count {
			t.Fatalf("length %d: expected ships: %d\t got: %d", spec.Length, spec.Count, lengths[spec.Length])
		}
	}

	occupied := 0
	for _, row := range board.Rows() {
		for _, cell := range row {
			if cell.IsOccupied() {
				occupied++
			}
		}
	}
	if occupied != fleet.CellCount() {
		t.Fatalf("expected occupied cells: %d\t got: %d", fleet.CellCount(), occupied)
	}

	assertFleetSeparated(t, board)
}

func TestBuildPlacesWholeFleet(t *testing.T) {
	for _, difficulty := range []uint8{GameDifficultyEasy, GameDifficultyNormal, GameDifficultyHard} {
		rules, err := RulesForDifficulty(difficulty)
		if err != nil {
			t.Fatal(err)
		}

		for seed := int64(1); seed <= 30; seed++ {
			builder := NewFleetBuilder(
				rand.New(rand.NewSource(seed)),
				WithFleet(rules.Fleet),
				WithMaxBuildAttempts(60),
			)

			board, err := builder.Build(BoardConfig{SideLength: rules.SideLength, DisplayShips: true})
			if err != nil {
				t.Fatalf("difficulty %d seed %d: %v", difficulty, seed, err)
			}
			assertFleetPlaced(t, board, rules.Fleet)
		}
	}
}

func TestBuildIsDeterministicForSeed(t *testing.T) {
	build := func() []Ship {
		builder := NewFleetBuilder(rand.New(rand.NewSource(42)), WithMaxBuildAttempts(60))
		board, err := builder.Build(BoardConfig{SideLength: DefaultSideLength})
		if err != nil {
			t.Fatal(err)
		}
		return board.Ships()
	}

	first, second := build(), build()
	for i := range first {
		if !first[i].Equal(&second[i]) {
			t.Fatalf("ship %d differs: %v vs %v", i, first[i].Bow(), second[i].Bow())
		}
	}
}

func TestPlaceShipDrawOrder(t *testing.T) {
	src := &recordingSource{rng: rand.New(rand.NewSource(3))}
	builder := NewFleetBuilder(src, WithFleet(Fleet{{Count: 1, Length: 1}}))

	board := mustBoard(t, BoardConfig{SideLength: 9})
	if err := builder.Populate(board); err != nil {
		t.Fatal(err)
	}

	expected := []int{9, 9, 2}
	if len(src.bounds) != len(expected) {
		t.Fatalf("expected draws: %v\t got: %v", expected, src.bounds)
	}
	for i := range expected {
		if src.bounds[i] != expected[i] {
			t.Fatalf("expected draws: %v\t got: %v", expected, src.bounds)
		}
	}
}

func TestBuildGivesUp(t *testing.T) {
	src := &constSource{}
	builder := NewFleetBuilder(src, WithMaxShipAttempts(5), WithMaxBuildAttempts(2))

	board, err := builder.Build(BoardConfig{SideLength: DefaultSideLength})
	if !errors.Is(err, cerr.ErrBoardAssemblyFailed) {
		t.Fatalf("expected error: %v\t got: %v", cerr.ErrBoardAssemblyFailed, err)
	}
	if board != nil {
		t.Fatal("expected no board on failure")
	}

	// per build: 3 draws for the first ship, 5 failed attempts of 3 draws for the second
	if src.calls != 2*(3+5*3) {
		t.Fatalf("expected draws: %d\t got: %d", 2*(3+5*3), src.calls)
	}
}

func TestPopulateLeavesPartialBoard(t *testing.T) {
	builder := NewFleetBuilder(&constSource{}, WithMaxShipAttempts(4))

	board := mustBoard(t, BoardConfig{SideLength: DefaultSideLength})
	err := builder.Populate(board)
	if !errors.Is(err, cerr.ErrBoardAssemblyFailed) {
		t.Fatalf("expected error: %v\t got: %v", cerr.ErrBoardAssemblyFailed, err)
	}
	if len(board.Ships()) != 1 {
		t.Fatalf("expected ships: %d\t got: %d", 1, len(board.Ships()))
	}
}

func TestBuildInvalidSide(t *testing.T) {
	builder := NewFleetBuilder(&constSource{})
	if _, err := builder.Build(BoardConfig{SideLength: 0}); !errors.Is(err, cerr.ErrInvalidOperation) {
		t.Fatalf("expected error: %v\t got: %v", cerr.ErrInvalidOperation, err)
	}
}

func TestFleetOptionsIgnoreNonPositive(t *testing.T) {
	builder := NewFleetBuilder(&constSource{}, WithMaxShipAttempts(0), WithMaxBuildAttempts(-2))
	if builder.maxShipAttempts != DefaultMaxShipAttempts {
		t.Fatalf("expected max ship attempts: %d\t got: %d", DefaultMaxShipAttempts, builder.maxShipAttempts)
	}
	if builder.maxBuildAttempts != DefaultMaxBuildAttempts {
		t.Fatalf("expected max build attempts: %d\t got: %d", DefaultMaxBuildAttempts, builder.maxBuildAttempts)
	}
}

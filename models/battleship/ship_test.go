package battleship

import (
	"errors"
	"testing"

	cerr "github.com/saeidalz13/battleship-offline/internal/error"
)

func TestNewShipInvalidLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		ship, err := NewShip(NewCoordinates(0, 0), length, Horizontal)
		if !errors.Is(err, cerr.ErrInvalidOperation) {
			t.Fatalf("expected error: %v\t got: %v", cerr.ErrInvalidOperation, err)
		}
		if ship != nil {
			t.Fatal("expected no ship for an invalid length")
		}
	}
}

func TestShipDamage(t *testing.T) {
	ship := mustShip(t, 0, 0, 2, Vertical)
	if ship.IsPlaced() {
		t.Fatal("ship must not be placed before a board accepts it")
	}

	ship.Damage()
	if ship.IsSunk() || ship.HitPoints() != 1 {
		t.Fatalf("expected hit points: %d\t got: %d", 1, ship.HitPoints())
	}

	ship.Damage()
	ship.Damage()
	if !ship.IsSunk() || ship.HitPoints() != 0 {
		t.Fatalf("expected hit points: %d\t got: %d", 0, ship.HitPoints())
	}
}

func TestShipEqual(t *testing.T) {
	base := mustShip(t, 1, 2, 3, Horizontal)

	tests := []struct {
		name     string
		other    *Ship
		expected bool
	}{
		{"same placement", mustShip(t, 1, 2, 3, Horizontal), true},
		{"other orientation", mustShip(t, 1, 2, 3, Vertical), false},
		{"other length", mustShip(t, 1, 2, 2, Horizontal), false},
		{"other bow", mustShip(t, 2, 1, 3, Horizontal), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if base.Equal(test.other) != test.expected {
				t.Fatalf("expected equal: %t\t got: %t", test.expected, !test.expected)
			}
		})
	}
}

func TestShipCellsAreCopies(t *testing.T) {
	board := defaultBoard(t)
	ship := mustShip(t, 3, 3, 2, Horizontal)
	if err := board.AddShip(ship); err != nil {
		t.Fatal(err)
	}

	cells := ship.Cells()
	cells[0] = NewCoordinates(0, 0)
	if ship.Cells()[0] != NewCoordinates(3, 3) {
		t.Fatal("changing the returned cells must not move the ship")
	}
}

package battleship

import "testing"

func TestCellMark(t *testing.T) {
	tests := []struct {
		name     string
		cell     Cell
		expected CellMark
	}{
		{"untouched", Cell{}, MarkEmpty},
		{"hidden ship", Cell{occupied: true}, MarkEmpty},
		{"displayed ship", Cell{occupied: true, displayed: true}, MarkShip},
		{"hit ship", Cell{occupied: true, displayed: true, shot: true, hit: true}, MarkHit},
		{"hit hidden ship", Cell{occupied: true, shot: true, hit: true}, MarkHit},
		{"miss", Cell{shot: true}, MarkMiss},
		{"missed boundary", Cell{shot: true, boundary: true}, MarkMiss},
		{"boundary", Cell{boundary: true}, MarkBoundary},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.cell.Mark(); got != test.expected {
				t.Fatalf("expected mark: %d\t got: %d", test.expected, got)
			}
		})
	}
}

func TestCellIsMissed(t *testing.T) {
	if (Cell{shot: true, hit: true}).IsMissed() {
		t.Fatal("a hit cell is not missed")
	}
	if !(Cell{shot: true}).IsMissed() {
		t.Fatal("a shot cell without a hit is missed")
	}
	if (Cell{}).IsMissed() {
		t.Fatal("an unshot cell is not missed")
	}
}

func TestChebyshev(t *testing.T) {
	tests := []struct {
		a, b     Coordinates
		expected int
	}{
		{NewCoordinates(0, 0), NewCoordinates(0, 0), 0},
		{NewCoordinates(0, 0), NewCoordinates(1, 1), 1},
		{NewCoordinates(2, 5), NewCoordinates(4, 4), 2},
		{NewCoordinates(-1, 3), NewCoordinates(2, 3), 3},
	}

	for _, test := range tests {
		if got := test.a.Chebyshev(test.b); got != test.expected {
			t.Fatalf("%v to %v expected: %d\t got: %d", test.a, test.b, test.expected, got)
		}
	}
}

package battleship

import (
	cerr "github.com/saeidalz13/battleship-offline/internal/error"
)

type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

type Ship struct {
	bow         Coordinates
	length      int
	orientation Orientation
	hitPoints   int

	// Handles into the owning board's cell arena, assigned once
	// when the board accepts the ship.
	cells         []Coordinates
	boundaryCells []Coordinates
}

func NewShip(bow Coordinates, length int, orientation Orientation) (*Ship, error) {
	if length < 1 {
		return nil, cerr.ErrInvalidShipLength(length)
	}

	return &Ship{
		bow:         bow,
		length:      length,
		orientation: orientation,
		hitPoints:   length,
	}, nil
}

func (sh *Ship) Bow() Coordinates {
	return sh.bow
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

func (sh *Ship) HitPoints() int {
	return sh.hitPoints
}

func (sh *Ship) IsPlaced() bool {
	return sh.cells != nil
}

func (sh *Ship) Cells() []Coordinates {
	return append([]Coordinates(nil), sh.cells...)
}

func (sh *Ship) BoundaryCells() []Coordinates {
	return append([]Coordinates(nil), sh.boundaryCells...)
}

// Equal reports whether both ships share bow, length and orientation.
func (sh *Ship) Equal(other *Ship) bool {
	return sh.bow == other.bow && sh.length == other.length && sh.orientation == other.orientation
}

// Damage takes one hit point. A sunken ship stays at zero.
func (sh *Ship) Damage() {
	if sh.hitPoints > 0 {
		sh.hitPoints--
	}
}

func (sh *Ship) IsSunk() bool {
	return sh.hitPoints == 0
}

// candidateCells walks length cells from the bow along the ship's
// axis and drops the ones that fall off a side x side grid.
func (sh *Ship) candidateCells(side int) []Coordinates {
	cells := make([]Coordinates, 0, sh.length)

	for i := 0; i < sh.length; i++ {
		c := sh.bow
		if sh.orientation == Horizontal {
			c.Y += i
		} else {
			c.X += i
		}

		if c.X < 0 || c.X >= side || c.Y < 0 || c.Y >= side {
			continue
		}
		cells = append(cells, c)
	}
	return cells
}

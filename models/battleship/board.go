package battleship

import (
	cerr "github.com/saeidalz13/battleship-offline/internal/error"
)

const DefaultSideLength int = 6

const noShip = -1

type ShotOutcome uint8

const (
	ShotMiss ShotOutcome = iota
	ShotHit
	ShotSunk
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotHit:
		return "hit"
	case ShotSunk:
		return "sunk"
	default:
		return "miss"
	}
}

type BoardConfig struct {
	SideLength   int
	DisplayShips bool
	ShowBoundary bool
}

// Board owns a side x side arena of cells. owners maps every cell
// index to the index of the ship occupying it, or noShip.
type Board struct {
	side         int
	displayShips bool
	showBoundary bool
	cells        []Cell
	owners       []int
	ships        []*Ship
	shotCount    int
}

func NewBoard(cfg BoardConfig) (*Board, error) {
	if cfg.SideLength < 1 {
		return nil, cerr.ErrInvalidSideLength(cfg.SideLength)
	}

	side := cfg.SideLength
	b := &Board{
		side:         side,
		displayShips: cfg.DisplayShips,
		showBoundary: cfg.ShowBoundary,
		cells:        make([]Cell, side*side),
		owners:       make([]int, side*side),
		ships:        make([]*Ship, 0, 8),
	}

	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			b.cells[b.index(x, y)] = newCell(x, y)
			b.owners[b.index(x, y)] = noShip
		}
	}
	return b, nil
}

func (b *Board) index(x, y int) int {
	return x*b.side + y
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.side && y >= 0 && y < b.side
}

func (b *Board) SideLength() int {
	return b.side
}

// Bounds returns the inclusive one-based range accepted by ProcessShot.
func (b *Board) Bounds() (int, int) {
	return 1, b.side
}

// AddShip places ship on the board. The checks run in a fixed order
// and the first failing one decides the error: duplicate ship, not
// enough in-bounds cells, then a clash with an already placed ship.
// A ship belongs to the first board that accepts it.
func (b *Board) AddShip(ship *Ship) error {
	if ship.IsPlaced() {
		return cerr.ErrShipAlreadyPlaced(ship.bow.X, ship.bow.Y, ship.length)
	}

	for _, placed := range b.ships {
		if placed.Equal(ship) {
			return cerr.ErrShipExists(ship.bow.X, ship.bow.Y, ship.length)
		}
	}

	shipCells := ship.candidateCells(b.side)
	if len(shipCells) < ship.length {
		return cerr.ErrCellsAllocation(ship.length, len(shipCells))
	}

	boundaryCells := b.boundaryOf(shipCells)

	for _, area := range [][]Coordinates{shipCells, boundaryCells} {
		for _, c := range area {
			if b.cells[b.index(c.X, c.Y)].occupied {
				return cerr.ErrShipDislocationArea(c.X, c.Y)
			}
		}
	}

	shipIdx := len(b.ships)
	for _, c := range shipCells {
		idx := b.index(c.X, c.Y)
		b.cells[idx].occupied = true
		if b.displayShips {
			b.cells[idx].displayed = true
		}
		b.owners[idx] = shipIdx
	}

	if b.showBoundary {
		for _, c := range boundaryCells {
			b.cells[b.index(c.X, c.Y)].boundary = true
		}
	}

	ship.cells = shipCells
	ship.boundaryCells = boundaryCells
	b.ships = append(b.ships, ship)
	return nil
}

// boundaryOf collects the ring of cells around shipCells, diagonals
// included, clipped at the grid edges and without duplicates.
func (b *Board) boundaryOf(shipCells []Coordinates) []Coordinates {
	seen := make(map[Coordinates]bool, len(shipCells)*3+6)
	for _, c := range shipCells {
		seen[c] = true
	}

	boundary := make([]Coordinates, 0, len(shipCells)*2+6)
	for _, c := range shipCells {
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				n := NewCoordinates(c.X+dx, c.Y+dy)
				if !b.inBounds(n.X, n.Y) || seen[n] {
					continue
				}
				seen[n] = true
				boundary = append(boundary, n)
			}
		}
	}
	return boundary
}

// ProcessShot fires at the one-based coordinates (x, y).
func (b *Board) ProcessShot(x, y int) (ShotOutcome, error) {
	min, max := b.Bounds()
	if x < min || x > max || y < min || y > max {
		return ShotMiss, cerr.ErrXorYOutOfGridBound(x, y, min, max)
	}

	idx := b.index(x-1, y-1)
	cell := &b.cells[idx]
	if cell.shot {
		return ShotMiss, cerr.ErrCellAlreadyShot(x, y)
	}

	cell.shot = true
	b.shotCount++

	shipIdx := b.owners[idx]
	if shipIdx == noShip {
		return ShotMiss, nil
	}

	cell.hit = true
	ship := b.ships[shipIdx]
	ship.Damage()
	if ship.IsSunk() {
		return ShotSunk, nil
	}
	return ShotHit, nil
}

// AllShipsSunk is vacuously true for a board with no ships.
func (b *Board) AllShipsSunk() bool {
	for _, ship := range b.ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

func (b *Board) AllCellsShot() bool {
	return b.shotCount == len(b.cells)
}

func (b *Board) SunkenShips() int {
	sunken := 0
	for _, ship := range b.ships {
		if ship.IsSunk() {
			sunken++
		}
	}
	return sunken
}

// Ships returns copies of the placed ships, in placement order.
func (b *Board) Ships() []Ship {
	ships := make([]Ship, len(b.ships))
	for i, ship := range b.ships {
		ships[i] = *ship
		ships[i].cells = ship.Cells()
		ships[i].boundaryCells = ship.BoundaryCells()
	}
	return ships
}

// Cell returns a copy of the cell at zero-based coordinates.
func (b *Board) Cell(c Coordinates) (Cell, bool) {
	if !b.inBounds(c.X, c.Y) {
		return Cell{}, false
	}
	return b.cells[b.index(c.X, c.Y)], true
}

// Rows returns a snapshot of the grid, row by row.
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, b.side)
	for x := 0; x < b.side; x++ {
		rows[x] = make([]Cell, b.side)
		copy(rows[x], b.cells[b.index(x, 0):b.index(x, 0)+b.side])
	}
	return rows
}

// BoardView is a read-only snapshot handed to renderers.
type BoardView struct {
	SideLength int
	Rows       [][]Cell
}

func (b *Board) View() BoardView {
	return BoardView{SideLength: b.side, Rows: b.Rows()}
}

package battleship

// CellMark is what a renderer should draw for a cell.
type CellMark uint8

const (
	MarkEmpty CellMark = iota
	MarkShip
	MarkHit
	MarkMiss
	MarkBoundary
)

// Cell is a single grid position. Flags are only ever set by the
// Board that owns the cell and never reset.
type Cell struct {
	coords    Coordinates
	shot      bool
	hit       bool
	occupied  bool
	boundary  bool
	displayed bool
}

func newCell(x, y int) Cell {
	return Cell{coords: NewCoordinates(x, y)}
}

func (c Cell) Coordinates() Coordinates {
	return c.coords
}

// Equal compares cells by coordinates only.
func (c Cell) Equal(other Cell) bool {
	return c.coords == other.coords
}

func (c Cell) IsShot() bool {
	return c.shot
}

func (c Cell) IsOccupied() bool {
	return c.occupied
}

func (c Cell) IsBoundary() bool {
	return c.boundary
}

func (c Cell) IsDisplayed() bool {
	return c.displayed
}

// IsMissed reports a shot that did not land on a ship.
func (c Cell) IsMissed() bool {
	return c.shot && !c.hit
}

// Mark resolves the flags into a single render mark. The first
// matching rule wins.
func (c Cell) Mark() CellMark {
	switch {
	case c.displayed && c.occupied && !c.shot:
		return MarkShip
	case c.occupied && c.shot && c.hit:
		return MarkHit
	case !c.occupied && c.shot:
		return MarkMiss
	case c.boundary:
		return MarkBoundary
	default:
		return MarkEmpty
	}
}

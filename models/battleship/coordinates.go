package battleship

// Coordinates locate a cell on a board. X is the row and Y is
// the column. Ship bows, ship cells and Board.Cell use zero-based
// values. Shot targets are one-based: Board.ProcessShot input,
// TargetSource.NextTarget, Shooter.Shoot and ShotEvent.Target.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

// Chebyshev returns the king-move distance between two coordinates.
func (c Coordinates) Chebyshev(other Coordinates) int {
	return max(abs(c.X-other.X), abs(c.Y-other.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

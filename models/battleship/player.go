package battleship

type Side uint8

const (
	SideHuman Side = iota
	SideOpponent
)

func (s Side) String() string {
	if s == SideOpponent {
		return "opponent"
	}
	return "human"
}

const (
	PlayerMatchStatusLost      = -1
	PlayerMatchStatusUndefined = 0
	PlayerMatchStatusWon       = 1
)

// Player is one side of a match: the board it defends and the
// tally of shots it has fired at the other side.
type Player struct {
	side        Side
	board       *Board
	matchStatus int
	shotsFired  int
	hits        int
	sunkShips   int
}

func newPlayer(side Side, board *Board) *Player {
	return &Player{
		side:        side,
		board:       board,
		matchStatus: PlayerMatchStatusUndefined,
	}
}

func (p Player) Side() Side {
	return p.side
}

func (p Player) MatchStatus() int {
	return p.matchStatus
}

func (p Player) ShotsFired() int {
	return p.shotsFired
}

func (p Player) Hits() int {
	return p.hits
}

func (p Player) SunkShips() int {
	return p.sunkShips
}

func (p *Player) recordShot(outcome ShotOutcome) {
	p.shotsFired++

	switch outcome {
	case ShotHit:
		p.hits++
	case ShotSunk:
		p.hits++
		p.sunkShips++
	}
}

func (p Player) IsLoser() bool {
	return p.board != nil && p.board.AllShipsSunk()
}

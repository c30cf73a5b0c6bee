package battleship

import (
	"context"
	"errors"
	"log"

	cerr "github.com/saeidalz13/battleship-offline/internal/error"
	"github.com/saeidalz13/battleship-offline/internal/random"
)

type MatchState uint8

const (
	MatchStateSetup MatchState = iota
	MatchStateHumanTurn
	MatchStateOpponentTurn
	MatchStateHumanWon
	MatchStateOpponentWon
	MatchStateDraw
)

func (s MatchState) String() string {
	switch s {
	case MatchStateSetup:
		return "setup"
	case MatchStateHumanTurn:
		return "human turn"
	case MatchStateOpponentTurn:
		return "opponent turn"
	case MatchStateHumanWon:
		return "human won"
	case MatchStateOpponentWon:
		return "opponent won"
	case MatchStateDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the match is over. Terminal states have
// no outgoing transitions.
func (s MatchState) IsTerminal() bool {
	switch s {
	case MatchStateHumanWon, MatchStateOpponentWon, MatchStateDraw:
		return true
	default:
		return false
	}
}

// TargetSource supplies the human side's next target in one-based
// coordinates. Returning cerr.ErrInputClosed ends the match loop.
type TargetSource interface {
	NextTarget() (Coordinates, error)
}

// ShotEvent describes one shot attempt. Err is set for human shots
// the board rejected; those do not consume the turn.
type ShotEvent struct {
	Side    Side
	Target  Coordinates
	Outcome ShotOutcome
	Err     error
}

type Match struct {
	uuid         string
	state        MatchState
	rules        Rules
	showBoundary bool

	rng       RandomSource
	fleetOpts []FleetOption
	target    TargetSource
	shooter   Shooter
	onShot    func(ShotEvent)

	human    *Player
	opponent *Player
}

type MatchOption func(*Match) error

func WithRandomSource(rng RandomSource) MatchOption {
	return func(m *Match) error {
		m.rng = rng
		return nil
	}
}

func WithFleetOptions(opts ...FleetOption) MatchOption {
	return func(m *Match) error {
		m.fleetOpts = append(m.fleetOpts, opts...)
		return nil
	}
}

func WithShowBoundary(show bool) MatchOption {
	return func(m *Match) error {
		m.showBoundary = show
		return nil
	}
}

func WithTargetSource(target TargetSource) MatchOption {
	return func(m *Match) error {
		m.target = target
		return nil
	}
}

// WithShooter replaces the random opponent strategy.
func WithShooter(shooter Shooter) MatchOption {
	return func(m *Match) error {
		m.shooter = shooter
		return nil
	}
}

func WithShotHook(hook func(ShotEvent)) MatchOption {
	return func(m *Match) error {
		m.onShot = hook
		return nil
	}
}

// WithBoards skips fleet building in setup and plays on the given,
// already populated boards.
func WithBoards(human, opponent *Board) MatchOption {
	return func(m *Match) error {
		for _, b := range []*Board{human, opponent} {
			if b == nil {
				return cerr.ErrMatchNotSetUp()
			}
			if b.SideLength() != m.rules.SideLength {
				return cerr.ErrBoardSizeMismatch(m.rules.SideLength, b.SideLength())
			}
		}
		m.human = newPlayer(SideHuman, human)
		m.opponent = newPlayer(SideOpponent, opponent)
		return nil
	}
}

func NewMatch(uuid string, rules Rules, opts ...MatchOption) (*Match, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	m := &Match{
		uuid:  uuid,
		state: MatchStateSetup,
		rules: rules,
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	if m.target == nil {
		return nil, cerr.ErrTargetSourceMissing()
	}

	if m.rng == nil {
		rng, _, err := random.NewSource(0)
		if err != nil {
			return nil, err
		}
		m.rng = rng
	}
	return m, nil
}

func (m *Match) Uuid() string {
	return m.uuid
}

func (m *Match) State() MatchState {
	return m.state
}

func (m *Match) Rules() Rules {
	return m.rules
}

// Player returns a copy of one side's tally. It is the zero Player
// before setup.
func (m *Match) Player(side Side) Player {
	p := m.human
	if side == SideOpponent {
		p = m.opponent
	}
	if p == nil {
		return Player{side: side}
	}

	snapshot := *p
	snapshot.board = nil
	return snapshot
}

// View returns the render snapshot of the board defended by side.
func (m *Match) View(side Side) (BoardView, error) {
	p := m.human
	if side == SideOpponent {
		p = m.opponent
	}
	if p == nil {
		return BoardView{}, cerr.ErrMatchNotSetUp()
	}
	return p.board.View(), nil
}

// Run steps the match until it reaches a terminal state. It stops
// early, without touching the boards, when ctx is done or the target
// source is closed.
func (m *Match) Run(ctx context.Context) (MatchState, error) {
	for !m.state.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return m.state, err
		}
		if err := m.Step(); err != nil {
			return m.state, err
		}
	}
	return m.state, nil
}

// Step performs a single transition. It is a no-op in terminal states.
func (m *Match) Step() error {
	switch m.state {
	case MatchStateSetup:
		return m.setup()

	case MatchStateHumanTurn, MatchStateOpponentTurn:
		if m.isDraw() {
			m.finish(MatchStateDraw)
			return nil
		}
		if m.state == MatchStateHumanTurn {
			return m.humanTurn()
		}
		return m.opponentTurn()

	default:
		return nil
	}
}

func (m *Match) setup() error {
	if m.human == nil || m.opponent == nil {
		opts := append([]FleetOption{WithFleet(m.rules.Fleet)}, m.fleetOpts...)
		builder := NewFleetBuilder(m.rng, opts...)

		humanBoard, err := builder.Build(BoardConfig{
			SideLength:   m.rules.SideLength,
			DisplayShips: true,
			ShowBoundary: m.showBoundary,
		})
		if err != nil {
			return err
		}

		opponentBoard, err := builder.Build(BoardConfig{
			SideLength:   m.rules.SideLength,
			DisplayShips: false,
		})
		if err != nil {
			return err
		}

		m.human = newPlayer(SideHuman, humanBoard)
		m.opponent = newPlayer(SideOpponent, opponentBoard)
	}

	if m.shooter == nil {
		minCoord, maxCoord := m.human.board.Bounds()
		m.shooter = NewRandomOpponent(minCoord, maxCoord, m.rng)
	}

	m.state = MatchStateHumanTurn
	log.Printf("match %s set up\tside: %d\tships: %d\n", m.uuid, m.rules.SideLength, m.rules.Fleet.ShipCount())
	return nil
}

func (m *Match) isDraw() bool {
	humanBoard, opponentBoard := m.human.board, m.opponent.board
	if humanBoard.AllShipsSunk() || opponentBoard.AllShipsSunk() {
		return false
	}
	return humanBoard.AllCellsShot() || opponentBoard.AllCellsShot()
}

func (m *Match) humanTurn() error {
	target, err := m.target.NextTarget()
	if err != nil {
		return err
	}

	outcome, err := m.opponent.board.ProcessShot(target.X, target.Y)
	m.emit(ShotEvent{Side: SideHuman, Target: target, Outcome: outcome, Err: err})
	if err != nil {
		if errors.Is(err, cerr.ErrOutOfRange) || errors.Is(err, cerr.ErrAlreadyShot) {
			return nil
		}
		return err
	}

	m.human.recordShot(outcome)
	if m.opponent.IsLoser() {
		m.finish(MatchStateHumanWon)
		return nil
	}
	m.state = MatchStateOpponentTurn
	return nil
}

func (m *Match) opponentTurn() error {
	target, err := m.shooter.Shoot()
	if err != nil {
		return err
	}

	outcome, err := m.human.board.ProcessShot(target.X, target.Y)
	if err != nil {
		return err
	}
	m.emit(ShotEvent{Side: SideOpponent, Target: target, Outcome: outcome})

	m.opponent.recordShot(outcome)
	if m.human.IsLoser() {
		m.finish(MatchStateOpponentWon)
		return nil
	}
	m.state = MatchStateHumanTurn
	return nil
}

func (m *Match) finish(state MatchState) {
	m.state = state

	switch state {
	case MatchStateHumanWon:
		m.human.matchStatus = PlayerMatchStatusWon
		m.opponent.matchStatus = PlayerMatchStatusLost
	case MatchStateOpponentWon:
		m.human.matchStatus = PlayerMatchStatusLost
		m.opponent.matchStatus = PlayerMatchStatusWon
	}
	log.Printf("match %s finished: %s\n", m.uuid, state)
}

func (m *Match) emit(event ShotEvent) {
	if m.onShot != nil {
		m.onShot(event)
	}
}

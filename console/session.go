package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-offline/internal/error"
	mb "github.com/saeidalz13/battleship-offline/models/battleship"
)

// Session is the human side of a match played in a terminal. It reads
// targets line by line and writes everything the player sees.
type Session struct {
	scanner *bufio.Scanner
	out     io.Writer
}

var _ mb.TargetSource = (*Session)(nil)

func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (s *Session) readLine() (string, error) {
	if s.scanner.Scan() {
		return strings.TrimSpace(s.scanner.Text()), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", cerr.ErrInputClosed
}

// NextTarget keeps prompting until the player types two integers.
// Whether they are on the board is up to the board to decide.
func (s *Session) NextTarget() (mb.Coordinates, error) {
	for {
		fmt.Fprint(s.out, "Enter shot coordinates (x y): ")

		line, err := s.readLine()
		if err != nil {
			fmt.Fprintln(s.out)
			return mb.Coordinates{}, err
		}

		coords, err := ParseCoordinates(line)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		return coords, nil
	}
}

func ParseCoordinates(line string) (mb.Coordinates, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return mb.Coordinates{}, cerr.ErrInvalidCoordinatesInput(line)
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return mb.Coordinates{}, cerr.ErrInvalidCoordinatesInput(line)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return mb.Coordinates{}, cerr.ErrInvalidCoordinatesInput(line)
	}

	return mb.NewCoordinates(x, y), nil
}

// OnShot reports a shot to the player. It is meant to be installed
// with mb.WithShotHook.
func (s *Session) OnShot(event mb.ShotEvent) {
	if event.Err != nil {
		fmt.Fprintln(s.out, event.Err)
		return
	}

	shooter := "You shoot"
	if event.Side == mb.SideOpponent {
		shooter = "Opponent shoots"
	}

	var result string
	switch event.Outcome {
	case mb.ShotSunk:
		result = "Sunk!"
	case mb.ShotHit:
		result = "Hit!"
	default:
		result = "Miss!"
	}

	fmt.Fprintf(s.out, "%s at (%d, %d): %s\n", shooter, event.Target.X, event.Target.Y, result)
}

func (s *Session) Greet(rules mb.Rules) {
	fmt.Fprintln(s.out, strings.Repeat("-", 60))
	fmt.Fprintln(s.out, "Welcome to Battleship!")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Rules:")
	fmt.Fprintf(s.out, "1. Both fleets hide on a %dx%d board; ships never touch, not even at the corners.\n", rules.SideLength, rules.SideLength)
	fmt.Fprintf(s.out, "2. Your ships are drawn as %s on your own board.\n", glyphs[mb.MarkShip])
	fmt.Fprintln(s.out, "3. To shoot, type the row and column as two numbers, e.g. 1 2.")
	fmt.Fprintf(s.out, "4. A miss is marked %s, a hit %s.\n", glyphs[mb.MarkMiss], glyphs[mb.MarkHit])
	fmt.Fprintln(s.out, "5. Whoever sinks the other fleet first wins.")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Good luck!")
}

func (s *Session) PrintBoards(human, opponent mb.BoardView) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Your board:")
	RenderBoard(s.out, human)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Opponent board:")
	RenderBoard(s.out, opponent)
	fmt.Fprintln(s.out)
}

func (s *Session) Announce(state mb.MatchState, human mb.Player) {
	switch state {
	case mb.MatchStateHumanWon:
		fmt.Fprintln(s.out, "You won!")
	case mb.MatchStateOpponentWon:
		fmt.Fprintln(s.out, "Opponent won. Better luck next time.")
	case mb.MatchStateDraw:
		fmt.Fprintln(s.out, "Draw.")
	default:
		return
	}
	fmt.Fprintf(s.out, "Shots: %d\thits: %d\tships sunk: %d\n", human.ShotsFired(), human.Hits(), human.SunkShips())
}

// AskRematch returns false on anything but a yes, including closed input.
func (s *Session) AskRematch() bool {
	fmt.Fprint(s.out, "Play again? (y/n): ")

	line, err := s.readLine()
	if err != nil {
		fmt.Fprintln(s.out)
		return false
	}

	switch strings.ToLower(line) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

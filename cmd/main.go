package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/saeidalz13/battleship-offline/console"
	"github.com/saeidalz13/battleship-offline/internal/config"
	cerr "github.com/saeidalz13/battleship-offline/internal/error"
	"github.com/saeidalz13/battleship-offline/internal/random"
	mb "github.com/saeidalz13/battleship-offline/models/battleship"
)

func main() {
	if os.Getenv("STAGE") != config.StageProd {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}

	rules, err := cfg.Rules()
	if err != nil {
		log.Fatalln(err)
	}

	rng, seed, err := random.NewSource(cfg.Seed)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("stage: %s\tdifficulty: %d\tseed: %d\n", cfg.Stage, cfg.Difficulty, seed)

	ctx := context.Background()

	gameManager := mb.NewBattleshipGameManager()
	session := console.NewSession(os.Stdin, os.Stdout)
	session.Greet(rules)

	for {
		match, err := gameManager.CreateGame(
			rules,
			mb.WithRandomSource(rng),
			mb.WithFleetOptions(cfg.FleetOptions()...),
			mb.WithShowBoundary(cfg.ShowBoundary),
			mb.WithTargetSource(session),
			mb.WithShotHook(session.OnShot),
		)
		if err != nil {
			log.Fatalln(err)
		}

		state, err := play(ctx, match, session)
		gameManager.TerminateGame(match.Uuid())

		if err != nil {
			if errors.Is(err, cerr.ErrInputClosed) || errors.Is(err, context.Canceled) {
				log.Println("game interrupted:", err)
				return
			}
			// Board assembly exhaustion and invalid operations end the run.
			log.Fatalln(err)
		}

		session.Announce(state, match.Player(mb.SideHuman))
		if !session.AskRematch() {
			return
		}
	}
}

// play drives the match one step at a time so the boards can be
// printed whenever it is the player's turn again.
func play(ctx context.Context, match *mb.Match, session *console.Session) (mb.MatchState, error) {
	for !match.State().IsTerminal() {
		if err := ctx.Err(); err != nil {
			return match.State(), err
		}

		before := match.State()
		if err := match.Step(); err != nil {
			return match.State(), err
		}

		after := match.State()
		if after != before && (after == mb.MatchStateHumanTurn || after.IsTerminal()) {
			human, err := match.View(mb.SideHuman)
			if err != nil {
				return match.State(), err
			}
			opponent, err := match.View(mb.SideOpponent)
			if err != nil {
				return match.State(), err
			}
			session.PrintBoards(human, opponent)
		}
	}
	return match.State(), nil
}

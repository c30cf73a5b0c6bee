package battleship

import (
	"log"
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-offline/internal/error"
)

type GameManager interface {
	CreateGame(rules Rules, opts ...MatchOption) (*Match, error)
	GetGame(gameUuid string) (*Match, error)
	TerminateGame(gameUuid string)
	Count() int
}

type BattleshipGameManager struct {
	games map[string]*Match
	mu    sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return &BattleshipGameManager{
		games: make(map[string]*Match, 4),
	}
}

func (bgm *BattleshipGameManager) CreateGame(rules Rules, opts ...MatchOption) (*Match, error) {
	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	gameUuid := uuid.NewString()[:6]
	for _, prs := bgm.games[gameUuid]; prs; _, prs = bgm.games[gameUuid] {
		gameUuid = uuid.NewString()[:6]
	}

	match, err := NewMatch(gameUuid, rules, opts...)
	if err != nil {
		return nil, err
	}

	bgm.games[gameUuid] = match
	log.Printf("game created: %s\n", gameUuid)
	return match, nil
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Match, error) {
	bgm.mu.RLock()
	match, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotFound(gameUuid)
	}

	return match, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	if _, prs := bgm.games[gameUuid]; !prs {
		return
	}
	delete(bgm.games, gameUuid)
	log.Printf("game terminated: %s\n", gameUuid)
}

func (bgm *BattleshipGameManager) Count() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()

	return len(bgm.games)
}

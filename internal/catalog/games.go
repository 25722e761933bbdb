package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownGame is returned when a game id is not part of the hub.
var ErrUnknownGame = errors.New("unknown game")

type GameID string

const (
	GameCyberPong     GameID = "cyber-pong"
	GameSystemDefense GameID = "system-defense"
	GameNeonSnake     GameID = "neon-snake"
	GameCyberBreaker  GameID = "cyber-breaker"
	GameVoidRunner    GameID = "void-runner"

	// GameNone marks a profile with no favorite yet. It is not a playable game.
	GameNone GameID = "none"
)

// GameCount is the number of games in the hub.
const GameCount = 5

// games is the table-declaration order. Favorite-game tie breaks depend on it.
var games = [GameCount]GameID{
	GameCyberPong,
	GameSystemDefense,
	GameNeonSnake,
	GameCyberBreaker,
	GameVoidRunner,
}

// Games returns every game id in table order.
func Games() []GameID {
	out := make([]GameID, GameCount)
	copy(out, games[:])
	return out
}

// Index returns the table position of g, or -1 if g is not a known game.
func (g GameID) Index() int {
	for i, id := range games {
		if id == g {
			return i
		}
	}
	return -1
}

func (g GameID) IsValid() bool {
	return g.Index() >= 0
}

// DisplayName is the upper-cased, space separated form shown in panels ("CYBER PONG").
func (g GameID) DisplayName() string {
	return strings.ToUpper(strings.ReplaceAll(string(g), "-", " "))
}

// GameAt returns the game at table position i.
func GameAt(i int) GameID {
	return games[i]
}

// ParseGameID accepts a game id or its display form, case-insensitively.
func ParseGameID(s string) (GameID, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, " ", "-")
	norm = strings.ReplaceAll(norm, "_", "-")
	g := GameID(norm)
	if !g.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownGame, s)
	}
	return g, nil
}

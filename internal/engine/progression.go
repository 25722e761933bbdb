package engine

import (
	"fmt"
	"math"

	"arcadenexus/internal/catalog"
	"arcadenexus/internal/storage"
)

// ReportOutcome describes what a single game report changed.
type ReportOutcome struct {
	Game       catalog.GameID
	RawScore   float64
	Score      int
	XPGain     int
	NewBest    bool
	RankBefore int
	RankAfter  int
	Unlocked   []catalog.Achievement
}

func (o ReportOutcome) RankUp() bool {
	return o.RankAfter > o.RankBefore
}

// ApplyReport folds one completed game into p and returns the new profile.
// p is not modified. Invalid input returns p unchanged with ErrInvalidGameID or ErrInvalidScore.
func ApplyReport(p storage.Profile, game catalog.GameID, raw float64) (storage.Profile, ReportOutcome, error) {
	if !game.IsValid() {
		return p, ReportOutcome{}, fmt.Errorf("%w: %q", ErrInvalidGameID, game)
	}
	if err := validateScore(raw); err != nil {
		return p, ReportOutcome{}, err
	}

	next := p.Clone()
	score := FloorScore(raw)
	out := ReportOutcome{
		Game:       game,
		RawScore:   raw,
		Score:      score,
		RankBefore: catalog.RankIndexForXP(p.XP),
	}

	next.GamesPlayed = addCapped(next.GamesPlayed, 1)
	next.TotalScore = addCapped(next.TotalScore, score)

	// Best-of, not latest.
	prevPlays := next.PlayCounts.Get(game)
	best := next.Scores.Get(game)
	if score > best {
		next.Scores.Set(game, score)
	}
	out.NewBest = score > best || (prevPlays == 0 && score >= best)
	next.PlayCounts.Set(game, addCapped(prevPlays, 1))
	next.FavoriteGame = FavoriteGame(next.PlayCounts, next.FavoriteGame)

	out.XPGain = XPForScore(game, raw)
	next.XP = addCapped(next.XP, out.XPGain)

	out.Unlocked = evaluateUnlocks(unlockInput{profile: next, game: game, raw: raw})
	for _, a := range out.Unlocked {
		next.Achievements = append(next.Achievements, a.ID)
	}

	next.RankIndex = catalog.RankIndexForXP(next.XP)
	out.RankAfter = next.RankIndex
	return next, out, nil
}

// FavoriteGame scans games in table order and keeps the first one reaching the
// highest play count; later equal counts do not take over. current is kept when
// nothing has been played.
func FavoriteGame(counts storage.GameTable, current catalog.GameID) catalog.GameID {
	fav := current
	maxPlays := 0
	for i, n := range counts {
		if n > maxPlays {
			maxPlays = n
			fav = catalog.GameAt(i)
		}
	}
	return fav
}

// addCapped adds a non-negative delta, stopping at math.MaxInt.
func addCapped(v, delta int) int {
	if delta > math.MaxInt-v {
		return math.MaxInt
	}
	return v + delta
}

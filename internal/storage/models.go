package storage

import (
	"bytes"
	"strconv"
	"time"

	"arcadenexus/internal/catalog"
)

// SchemaVersion is stamped on every saved profile blob.
const SchemaVersion = 1

// GameTable holds one integer per game, indexed by table position.
// It serializes as a JSON object keyed by game id, in table order.
type GameTable [catalog.GameCount]int

func (t GameTable) Get(g catalog.GameID) int {
	i := g.Index()
	if i < 0 {
		return 0
	}
	return t[i]
}

// Set ignores unknown games.
func (t *GameTable) Set(g catalog.GameID, v int) {
	if i := g.Index(); i >= 0 {
		t[i] = v
	}
}

func (t GameTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(string(catalog.GameAt(i))))
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(v))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Profile is the persisted progression aggregate for the local player.
type Profile struct {
	XP           int                     `json:"xp"`
	RankIndex    int                     `json:"rankIndex"`
	GamesPlayed  int                     `json:"gamesPlayed"`
	TotalScore   int                     `json:"totalScore"`
	FavoriteGame catalog.GameID          `json:"favoriteGame"`
	Scores       GameTable               `json:"scores"`
	PlayCounts   GameTable               `json:"playCounts"`
	Achievements []catalog.AchievementID `json:"achievements"`
}

// DefaultProfile is the state of a player who has never reported a game.
func DefaultProfile() Profile {
	return Profile{
		FavoriteGame: catalog.GameNone,
		Achievements: []catalog.AchievementID{},
	}
}

// Clone returns a copy that shares no memory with p.
func (p Profile) Clone() Profile {
	out := p
	out.Achievements = make([]catalog.AchievementID, len(p.Achievements))
	copy(out.Achievements, p.Achievements)
	return out
}

func (p Profile) HasAchievement(id catalog.AchievementID) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// Report is one journaled game completion.
type Report struct {
	ID         int64
	GameID     string
	RawScore   float64
	Score      int
	XPAwarded  int
	ReportedAt time.Time
}

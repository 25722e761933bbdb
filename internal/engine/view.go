package engine

import (
	"fmt"
	"math"

	"arcadenexus/internal/catalog"
	"arcadenexus/internal/storage"
)

// ProfileView is the read-only snapshot handed to a Display.
type ProfileView struct {
	RankName         string
	RankColor        string
	XP               int
	TotalScore       int
	GamesPlayed      int
	AchievementCount int
	AchievementTotal int
	FavoriteGame     string
	SkillRating      int

	NextRankName string // empty at the top rank
	XPToNextRank int
}

func NewProfileView(p storage.Profile) ProfileView {
	rank := catalog.RankForXP(p.XP)
	v := ProfileView{
		RankName:         rank.Name,
		RankColor:        rank.Color,
		XP:               p.XP,
		TotalScore:       p.TotalScore,
		GamesPlayed:      p.GamesPlayed,
		AchievementCount: len(p.Achievements),
		AchievementTotal: catalog.AchievementTotal(),
		FavoriteGame:     favoriteLabel(p.FavoriteGame),
		SkillRating:      SkillRating(p),
	}
	if next, ok := catalog.NextRank(p.XP); ok {
		v.NextRankName = next.Name
		v.XPToNextRank = next.XPThreshold - p.XP
	}
	return v
}

func favoriteLabel(g catalog.GameID) string {
	if !g.IsValid() {
		return "None"
	}
	return g.DisplayName()
}

// SkillRating is the average floored score per game divided by ten, capped at 100.
func SkillRating(p storage.Profile) int {
	if p.GamesPlayed == 0 {
		return 0
	}
	avg := float64(p.TotalScore) / float64(p.GamesPlayed)
	return int(math.Floor(math.Min(100, avg/10)))
}

func FormatSkillRating(rating int) string {
	return fmt.Sprintf("%d%%", rating)
}

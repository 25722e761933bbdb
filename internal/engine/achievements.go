package engine

import (
	"arcadenexus/internal/catalog"
	"arcadenexus/internal/storage"
)

// unlockInput is the post-update state a report is judged against.
type unlockInput struct {
	profile storage.Profile
	game    catalog.GameID
	raw     float64
}

type unlockRule struct {
	id  catalog.AchievementID
	met func(in unlockInput) bool
}

// unlockRules run in this order on every report; newly met ids are appended in it.
var unlockRules = []unlockRule{
	{id: catalog.AchievementFirstBlood, met: func(unlockInput) bool { return true }},
	{id: catalog.AchievementHighRoller, met: func(in unlockInput) bool {
		return in.raw >= catalog.HighRollerScore
	}},
	{id: catalog.AchievementAddict, met: func(in unlockInput) bool {
		return in.profile.GamesPlayed >= catalog.AddictGamesPlayed
	}},
	{id: catalog.AchievementVoidMaster, met: func(in unlockInput) bool {
		return in.game == catalog.VoidMasterGame && in.raw >= catalog.VoidMasterDistance
	}},
	{id: catalog.AchievementJackOfAll, met: func(in unlockInput) bool {
		for _, n := range in.profile.PlayCounts {
			if n < catalog.JackOfAllMinPlays {
				return false
			}
		}
		return true
	}},
}

// evaluateUnlocks returns the achievements met by in that the profile does not hold yet.
func evaluateUnlocks(in unlockInput) []catalog.Achievement {
	var out []catalog.Achievement
	for _, rule := range unlockRules {
		if in.profile.HasAchievement(rule.id) || !rule.met(in) {
			continue
		}
		a, ok := catalog.AchievementByID(rule.id)
		if !ok {
			continue
		}
		out = append(out, a)
	}
	return out
}

// AchievementStatus pairs a catalog entry with whether the profile has unlocked it.
type AchievementStatus struct {
	catalog.Achievement
	Earned bool
	// Order is the 1-based unlock position, 0 when locked.
	Order int
}

// AchievementStatuses lists the whole catalog in display order.
func AchievementStatuses(p storage.Profile) []AchievementStatus {
	order := make(map[catalog.AchievementID]int, len(p.Achievements))
	for i, id := range p.Achievements {
		order[id] = i + 1
	}
	all := catalog.Achievements()
	out := make([]AchievementStatus, 0, len(all))
	for _, a := range all {
		n := order[a.ID]
		out = append(out, AchievementStatus{Achievement: a, Earned: n > 0, Order: n})
	}
	return out
}

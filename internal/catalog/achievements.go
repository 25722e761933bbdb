package catalog

type AchievementID string

const (
	AchievementFirstBlood AchievementID = "first_blood"
	AchievementHighRoller AchievementID = "high_roller"
	AchievementJackOfAll  AchievementID = "jack_of_all"
	AchievementAddict     AchievementID = "addict"
	AchievementVoidMaster AchievementID = "void_master"
)

// Unlock thresholds.
const (
	HighRollerScore    = 1000
	AddictGamesPlayed  = 50
	VoidMasterDistance = 5000
	VoidMasterGame     = GameVoidRunner
	JackOfAllMinPlays  = 1
)

type Achievement struct {
	ID          AchievementID
	Name        string
	Description string
	Icon        string
}

// achievements is the display order.
var achievements = []Achievement{
	{ID: AchievementFirstBlood, Name: "First Byte", Description: "Play your first game.", Icon: "🕹️"},
	{ID: AchievementHighRoller, Name: "High Roller", Description: "Score 1000+ points in any game.", Icon: "💰"},
	{ID: AchievementJackOfAll, Name: "Jack of All Trades", Description: "Play all 5 games at least once.", Icon: "🃏"},
	{ID: AchievementAddict, Name: "System Addict", Description: "Play 50 total games.", Icon: "🔋"},
	{ID: AchievementVoidMaster, Name: "Void Master", Description: "Reach 5000m in Void Runner.", Icon: "🌌"},
}

// Achievements returns the catalog in display order.
func Achievements() []Achievement {
	out := make([]Achievement, len(achievements))
	copy(out, achievements)
	return out
}

// AchievementTotal is the number of unlockable achievements.
func AchievementTotal() int {
	return len(achievements)
}

func AchievementByID(id AchievementID) (Achievement, bool) {
	for _, a := range achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"arcadenexus/internal/catalog"
	"arcadenexus/internal/engine"
)

// Terminal is a Display that writes panels and toasts to a stream.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) Render(v engine.ProfileView) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, ProfilePanel(v))
}

func (t *Terminal) Notify(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, Toast(message))
}

// Toast renders a transient notification line.
func Toast(message string) string {
	icon := IconSave
	if strings.HasPrefix(message, "ACHIEVEMENT:") {
		icon = IconTrophy
	}
	return ToastBox.Render(icon + " " + message)
}

// ProfilePanel renders the pilot statistics card.
func ProfilePanel(v engine.ProfileView) string {
	rank := RankStyle(v.RankColor).Render(strings.ToUpper(v.RankName))

	next := Muted.Render("top rank reached")
	if v.NextRankName != "" {
		threshold := v.XP + v.XPToNextRank
		prev := catalog.RankForXP(v.XP).XPThreshold
		next = fmt.Sprintf("%s %s", ProgressBar(v.XP-prev, threshold-prev, 20),
			Muted.Render(fmt.Sprintf("%s XP to %s", Thousands(v.XPToNextRank), v.NextRankName)))
	}

	lines := []string{
		PanelTitle.Render("PILOT STATISTICS"),
		"",
		rank,
		LabelValue("XP", Thousands(v.XP)),
		next,
		"",
		LabelValue("Total Score", Thousands(v.TotalScore)),
		LabelValue("Games Played", v.GamesPlayed),
		LabelValue("Achievements", fmt.Sprintf("%d/%d", v.AchievementCount, v.AchievementTotal)),
		LabelValue("Favorite", v.FavoriteGame),
		LabelValue("Skill Rating", engine.FormatSkillRating(v.SkillRating)),
	}
	return Panel.Render(strings.Join(lines, "\n"))
}

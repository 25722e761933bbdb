package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Arcade Nexus theme (CLI + panel).

const (
	IconJoystick = "🕹️"
	IconSparkle  = "✨"
	IconTrophy   = "🏆"
	IconBolt     = "⚡"
	IconSave     = "💾"
	IconLock     = "🔒"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconStar     = "⭐"
)

var (
	cNeonBlue  = lipgloss.Color("#00f0ff")
	cNeonGreen = lipgloss.Color("#44f580")
	cNeonRed   = lipgloss.Color("#ff003c")
	cGold      = lipgloss.Color("#ffd700")
	cMuted     = lipgloss.Color("244")
	cWarn      = lipgloss.Color("214")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cNeonBlue)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cNeonGreen)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cNeonBlue)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cNeonGreen)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cNeonRed)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cNeonBlue).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cNeonBlue)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000")).Background(cNeonBlue)
	ToastBox    = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(cNeonGreen).Foreground(cNeonGreen).Padding(0, 2)

	BadgeRankUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("RANK UP")
	BadgeBest   = lipgloss.NewStyle().Bold(true).Foreground(cNeonGreen).Render("NEW BEST")
)

// RankStyle colors text with a rank's color tag.
func RankStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Thousands formats n with comma separators.
func Thousands(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func ProgressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(float64(value) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

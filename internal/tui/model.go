package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"arcadenexus/internal/catalog"
	"arcadenexus/internal/engine"
	"arcadenexus/internal/storage"
	"arcadenexus/internal/ui"
)

const maxScoreInput = 13

type toast struct {
	id   int
	text string
}

type panelModel struct {
	ctx    context.Context
	svc    *engine.Service
	events <-chan tea.Msg

	toastTTL time.Duration
	toasts   []toast
	nextID   int

	width  int
	height int

	profile storage.Profile
	view    engine.ProfileView

	selected int
	input    string

	lastLog string
	loading bool
}

type loadedMsg struct {
	profile storage.Profile
}

type reportedMsg struct {
	game catalog.GameID
	res  *engine.ReportResult
	err  error
}

type toastMsg struct {
	text string
}

type toastExpiredMsg struct {
	id int
}

type viewMsg struct {
	view engine.ProfileView
}

func newPanelModel(ctx context.Context, svc *engine.Service, events <-chan tea.Msg, toastTTL time.Duration) panelModel {
	if toastTTL <= 0 {
		toastTTL = 3 * time.Second
	}
	return panelModel{
		ctx:      ctx,
		svc:      svc,
		events:   events,
		toastTTL: toastTTL,
		loading:  true,
		lastLog:  "Loading profile…",
	}
}

func (m panelModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.waitForEvent())
}

// loadCmd re-reads the store so the panel always opens on persisted state.
func (m panelModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{profile: m.svc.Reload(m.ctx)}
	}
}

func (m panelModel) reportCmd(game catalog.GameID, score float64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ReportGame(m.ctx, string(game), score)
		return reportedMsg{game: game, res: res, err: err}
	}
}

func (m panelModel) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case msg := <-m.events:
			return msg
		case <-m.ctx.Done():
			return nil
		}
	}
}

func (m panelModel) expireCmd(id int) tea.Cmd {
	return tea.Tick(m.toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.profile = msg.profile
		m.view = engine.NewProfileView(msg.profile)
		m.lastLog = fmt.Sprintf("Profile loaded at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case reportedMsg:
		if msg.res == nil {
			m.lastLog = "Report failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.res.Profile
		m.view = engine.NewProfileView(msg.res.Profile)
		m.lastLog = fmt.Sprintf("%s: score %s, +%d XP", msg.game.DisplayName(), ui.Thousands(msg.res.Score), msg.res.XPGain)
		if msg.res.RankUp() {
			m.lastLog += " " + ui.BadgeRankUp
		}
		if msg.err != nil {
			m.lastLog += " (" + msg.err.Error() + ")"
		}
		return m, nil
	case toastMsg:
		m.nextID++
		m.toasts = append(m.toasts, toast{id: m.nextID, text: msg.text})
		return m, tea.Batch(m.expireCmd(m.nextID), m.waitForEvent())
	case viewMsg:
		m.view = msg.view
		return m, m.waitForEvent()
	case toastExpiredMsg:
		for i, t := range m.toasts {
			if t.id == msg.id {
				m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
				break
			}
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m panelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < catalog.GameCount-1 {
			m.selected++
		}
		return m, nil
	case "r":
		m.loading = true
		m.lastLog = "Reloading…"
		return m, m.loadCmd()
	case "backspace":
		if n := len(m.input); n > 0 {
			m.input = m.input[:n-1]
		}
		return m, nil
	case "enter":
		if m.input == "" {
			m.lastLog = "Type a score, then press enter."
			return m, nil
		}
		score, err := strconv.ParseFloat(m.input, 64)
		if err != nil {
			m.lastLog = fmt.Sprintf("Invalid score %q.", m.input)
			m.input = ""
			return m, nil
		}
		game := catalog.GameAt(m.selected)
		m.input = ""
		m.lastLog = fmt.Sprintf("Reporting %s…", game.DisplayName())
		return m, m.reportCmd(game, score)
	}
	if isScoreKey(key) && len(m.input) < maxScoreInput {
		if key == "." && strings.Contains(m.input, ".") {
			return m, nil
		}
		m.input += key
	}
	return m, nil
}

func isScoreKey(key string) bool {
	if key == "." {
		return true
	}
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}

func (m panelModel) View() string {
	if m.loading && m.view.RankName == "" {
		return "Arcade Nexus: loading…\n"
	}

	left := ui.ProfilePanel(m.view)
	right := m.renderGames() + "\n\n" + m.renderAchievements()

	linesLeft := strings.Split(left, "\n")
	linesRight := strings.Split(right, "\n")
	leftW := 0
	for _, l := range linesLeft {
		if w := lipgloss.Width(l); w > leftW {
			leftW = w
		}
	}
	rows := len(linesLeft)
	if len(linesRight) > rows {
		rows = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < rows; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(l)
		body.WriteString(strings.Repeat(" ", leftW-lipgloss.Width(l)))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return m.renderHeader() + "\n\n" + body.String() + m.renderToasts() + m.renderFooter()
}

func (m panelModel) renderHeader() string {
	return ui.Heading(ui.IconJoystick, "ARCADE NEXUS") + " " + ui.Muted.Render("pilot profile")
}

func (m panelModel) renderGames() string {
	out := []string{ui.H2.Render("Games")}
	for i, g := range catalog.Games() {
		line := fmt.Sprintf("%-15s best %-9s plays %d", g.DisplayName(), ui.Thousands(m.profile.Scores.Get(g)), m.profile.PlayCounts.Get(g))
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		out = append(out, line)
	}
	input := m.input
	if input == "" {
		input = ui.Muted.Render("(type digits)")
	}
	out = append(out, "", ui.LabelValue("Score", input))
	return strings.Join(out, "\n")
}

func (m panelModel) renderAchievements() string {
	out := []string{ui.H2.Render("Achievements")}
	for _, s := range engine.AchievementStatuses(m.profile) {
		if s.Earned {
			out = append(out, fmt.Sprintf("%s %s %s", ui.IconTrophy, ui.Gold.Render(s.Name), ui.Muted.Render(s.Description)))
			continue
		}
		out = append(out, fmt.Sprintf("%s %s %s", ui.IconLock, ui.Muted.Render(s.Name), ui.Muted.Render(s.Description)))
	}
	return strings.Join(out, "\n")
}

func (m panelModel) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range m.toasts {
		b.WriteString(ui.Toast(t.text))
		b.WriteString("\n")
	}
	return b.String()
}

func (m panelModel) renderFooter() string {
	keys := ui.Muted.Render("↑/↓ select game · digits type score · enter report · r reload · q quit")
	return "\n" + m.lastLog + "\n" + keys + "\n"
}

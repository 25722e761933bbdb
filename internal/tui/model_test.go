package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap/zaptest"

	"arcadenexus/internal/catalog"
	"arcadenexus/internal/engine"
	"arcadenexus/internal/storage"
)

func newTestPanel(t *testing.T) (panelModel, *channelDisplay) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	log := zaptest.NewLogger(t)
	display := newChannelDisplay(eventBuffer)
	svc := engine.NewService(storage.NewProfileStore(db, "", log), storage.NewReportRepo(db), display, log)

	m := newPanelModel(ctx, svc, display.events, time.Second)
	next, _ := m.Update(m.loadCmd()())
	return next.(panelModel), display
}

func press(t *testing.T, m panelModel, keys ...tea.KeyMsg) (panelModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(panelModel)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPanelReportsTypedScore(t *testing.T) {
	m, display := newTestPanel(t)

	m, _ = press(t, m, runes("2"), runes("0"))
	if m.input != "20" {
		t.Fatalf("input=%q, want 20", m.input)
	}
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected report command")
	}
	next, _ := m.Update(cmd())
	m = next.(panelModel)

	if m.profile.XP != 1000 || m.view.RankName != "Pixel Scout" {
		t.Fatalf("xp=%d rank=%q, want 1000 Pixel Scout", m.profile.XP, m.view.RankName)
	}
	if got := m.profile.Scores.Get(catalog.GameCyberPong); got != 20 {
		t.Fatalf("scores[cyber-pong]=%d, want 20", got)
	}
	if m.input != "" {
		t.Fatalf("input not cleared: %q", m.input)
	}

	var toasts []string
	for len(display.events) > 0 {
		if tm, ok := (<-display.events).(toastMsg); ok {
			toasts = append(toasts, tm.text)
		}
	}
	if len(toasts) != 2 || toasts[0] != "ACHIEVEMENT: First Byte" || toasts[1] != "+1000 XP SAVED" {
		t.Fatalf("toasts=%v", toasts)
	}
}

func TestPanelSelectsGames(t *testing.T) {
	m, _ := newTestPanel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyUp}, runes("j"), runes("j"), runes("j"), runes("j"))
	if m.selected != catalog.GameCount-1 {
		t.Fatalf("selected=%d, want %d", m.selected, catalog.GameCount-1)
	}
	m, _ = press(t, m, runes("5"), runes("0"), runes("0"), runes("0"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.lastLog != "Reporting VOID RUNNER…" {
		t.Fatalf("lastLog=%q", m.lastLog)
	}
}

func TestPanelScoreInputEditing(t *testing.T) {
	m, _ := newTestPanel(t)

	m, _ = press(t, m, runes("1"), runes("."), runes("."), runes("5"), runes("x"), tea.KeyMsg{Type: tea.KeyBackspace})
	if m.input != "1." {
		t.Fatalf("input=%q, want 1.", m.input)
	}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("enter on empty input must not report")
	}
	if !strings.Contains(m.lastLog, "Type a score") {
		t.Fatalf("lastLog=%q", m.lastLog)
	}
}

func TestPanelToastsExpire(t *testing.T) {
	m, _ := newTestPanel(t)

	next, _ := m.Update(toastMsg{text: "+10 XP SAVED"})
	m = next.(panelModel)
	next, _ = m.Update(toastMsg{text: "ACHIEVEMENT: First Byte"})
	m = next.(panelModel)
	if len(m.toasts) != 2 || !strings.Contains(m.View(), "+10 XP SAVED") {
		t.Fatalf("toasts=%v", m.toasts)
	}

	next, _ = m.Update(toastExpiredMsg{id: m.toasts[0].id})
	m = next.(panelModel)
	if len(m.toasts) != 1 || m.toasts[0].text != "ACHIEVEMENT: First Byte" {
		t.Fatalf("toasts=%v", m.toasts)
	}
}

func TestChannelDisplayNeverBlocks(t *testing.T) {
	d := newChannelDisplay(1)
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.Notify("toast")
		}
		d.Render(engine.ProfileView{})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("notify blocked on a full buffer")
	}
	if len(d.events) != 1 {
		t.Fatalf("buffered=%d, want 1", len(d.events))
	}
}

func TestPanelQuits(t *testing.T) {
	m, _ := newTestPanel(t)
	_, cmd := press(t, m, runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestEventWaitEndsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tea.Msg)
	m := newPanelModel(ctx, nil, events, time.Second)

	done := make(chan tea.Msg, 1)
	go func() { done <- m.waitForEvent()() }()
	cancel()

	select {
	case msg := <-done:
		if msg != nil {
			t.Fatalf("msg=%v, want nil", msg)
		}
	case <-time.After(time.Second):
		t.Fatalf("event wait still blocked after cancel")
	}
}

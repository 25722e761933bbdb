package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"arcadenexus/internal/engine"
)

const eventBuffer = 32

// channelDisplay forwards engine notifications to the running program.
// Sends never block; events are dropped when the buffer is full.
type channelDisplay struct {
	events chan tea.Msg
}

func newChannelDisplay(size int) *channelDisplay {
	return &channelDisplay{events: make(chan tea.Msg, size)}
}

func (d *channelDisplay) Render(v engine.ProfileView) {
	d.send(viewMsg{view: v})
}

func (d *channelDisplay) Notify(message string) {
	d.send(toastMsg{text: message})
}

func (d *channelDisplay) send(msg tea.Msg) {
	select {
	case d.events <- msg:
	default:
	}
}

// RunPanel opens the interactive profile panel. The service's display is
// redirected to the panel until it closes.
func RunPanel(ctx context.Context, svc *engine.Service, out io.Writer, toastTTL time.Duration) error {
	// Cancelled on return so a pending event wait does not outlive the program.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	display := newChannelDisplay(eventBuffer)
	svc.SetDisplay(display)
	defer svc.SetDisplay(nil)

	m := newPanelModel(ctx, svc, display.events, toastTTL)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/lvtrace/playback"
)

// visibleSteps is how many steps the player lists around the cursor.
const visibleSteps = 15

// tickMsg is delivered when a scheduled playback tick is due. It carries the
// controller ticket it was scheduled under so stale ticks are dropped.
type tickMsg struct {
	ticket playback.Ticket
}

// tickCmd sleeps for interval and then reports a tick for ticket.
func tickCmd(interval time.Duration, ticket playback.Ticket) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(interval)
		return tickMsg{ticket: ticket}
	}
}

// playerModel is the bubbletea model of the terminal player. The controller
// is only touched from Update, which bubbletea runs on a single goroutine.
type playerModel struct {
	title string
	view  view
	ctrl  *playback.Controller
	log   *slog.Logger
	width int
}

func newPlayerModel(title string, v view, ctrl *playback.Controller, log *slog.Logger) playerModel {
	return playerModel{title: title, view: v, ctrl: ctrl, log: log}
}

// Init implements tea.Model.
func (m playerModel) Init() tea.Cmd {
	return m.schedule()
}

// Update implements tea.Model.
func (m playerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		if !m.ctrl.Tick(msg.ticket) {
			m.log.Debug("stale tick dropped", "ticket", msg.ticket)
			return m, nil
		}
		return m, m.schedule()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m playerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ", "space", "p":
		if m.ctrl.Running() {
			m.ctrl.Pause()
			return m, nil
		}
		if m.ctrl.Play() {
			return m, m.schedule()
		}
	case "right", "l":
		m.ctrl.StepForward()
	case "left", "h":
		m.ctrl.StepBackward()
	case "home", "g":
		m.ctrl.Seek(0)
	case "end", "G":
		m.ctrl.Seek(m.ctrl.Len() - 1)
	case "r":
		m.ctrl.Reset()
	case "+", "=":
		m.ctrl.SetSpeed(m.ctrl.Speed() * 2)
	case "-":
		m.ctrl.SetSpeed(m.ctrl.Speed() / 2)
	}

	return m, nil
}

// schedule returns the next tick command while playback is running.
func (m playerModel) schedule() tea.Cmd {
	if !m.ctrl.Running() {
		return nil
	}

	return tickCmd(m.ctrl.Interval(), m.ctrl.Ticket())
}

// View implements tea.Model.
func (m playerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", m.title, m.view.Family())))
	b.WriteString("\n\n")

	idx := m.ctrl.Index()
	lo := max(0, idx-visibleSteps/2)
	hi := min(m.view.Len(), lo+visibleSteps)
	lo = max(0, hi-visibleSteps)
	for i := lo; i < hi; i++ {
		l := m.view.Line(i)
		text := fmt.Sprintf("%4d  %*s%s %s", i, 2*l.Depth, "", styleForKind(l.Kind).Render(fmt.Sprintf("%-8s", l.Kind)), l.Label)
		if i == idx {
			text = cursorStyle.Render(text)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(snapshotStyle.Render(m.view.Line(idx).Snapshot))
	b.WriteString("\n")

	state := "paused"
	if m.ctrl.Running() {
		state = "playing"
	}
	status := fmt.Sprintf("step %d/%d  %s  x%g  space play/pause  ←/→ step  r reset  q quit",
		idx+1, m.ctrl.Len(), state, m.ctrl.Speed())
	bar := statusBarStyle
	if m.width > 0 {
		bar = bar.Width(m.width)
	}
	b.WriteString(bar.Render(status))

	return b.String()
}

// runPlayer runs the interactive player until the user quits or ctx ends.
func runPlayer(ctx context.Context, cfg config, v view, logger *slog.Logger) error {
	ctrl := playback.New(v, playback.WithInterval(cfg.interval))
	ctrl.SetSpeed(cfg.speed)

	m := newPlayerModel(cfg.problem, v, ctrl, logger)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	return nil
}

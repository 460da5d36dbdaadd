// Package tui animates a growth trace in the terminal, replaying the
// integration from the initial crack size to its termination point.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/cracklab/internal/assess"
	"github.com/san-kum/cracklab/internal/fatigue"
)

const (
	graphHeight  = 12
	frameDelay   = 50 * time.Millisecond
	replayFrames = 200
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	doneStyles = map[assess.Status]lipgloss.Style{
		assess.StatusAcceptable:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		assess.StatusMarginal:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		assess.StatusUnacceptable: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
)

type TickMsg time.Time

// Model replays a precomputed growth history; the integration itself
// is deterministic and already done, so the TUI never mutates results.
type Model struct {
	name       string
	history    []fatigue.GrowthSample
	assessment *assess.SafetyAssessment

	idx     int
	stride  int
	playing bool
}

func New(name string, history []fatigue.GrowthSample, assessment *assess.SafetyAssessment) Model {
	stride := len(history) / replayFrames
	if stride < 1 {
		stride = 1
	}
	return Model{
		name:       name,
		history:    history,
		assessment: assessment,
		idx:        1,
		stride:     stride,
		playing:    true,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameDelay, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
			if m.playing && m.idx < len(m.history) {
				return m, tick()
			}
		case "r":
			m.idx = 1
			m.playing = true
			return m, tick()
		}
	case TickMsg:
		if !m.playing {
			return m, nil
		}
		m.idx += m.stride
		if m.idx >= len(m.history) {
			m.idx = len(m.history)
			m.playing = false
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("crack growth — " + m.name))
	b.WriteString("\n")

	if len(m.history) < 2 {
		b.WriteString(valueStyle.Render("no growth trace for this run"))
		b.WriteString(helpStyle.Render("\nq quit"))
		return b.String()
	}

	series := make([]float64, 0, m.idx)
	for i := 0; i < m.idx; i++ {
		series = append(series, m.history[i].A)
	}
	graph := asciigraph.Plot(series, asciigraph.Height(graphHeight), asciigraph.Width(70))
	b.WriteString(graphStyle.Render(graph))
	b.WriteString("\n")

	current := m.history[m.idx-1]
	rows := []struct{ label, value string }{
		{"cycles", fmt.Sprintf("%.0f", current.Cycles)},
		{"crack size", fmt.Sprintf("%.4f mm", current.A)},
		{"ΔK", fmt.Sprintf("%.2f MPa·√m", current.K)},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}

	if m.idx >= len(m.history) {
		status := m.assessment.Status
		b.WriteString("\n")
		b.WriteString(doneStyles[status].Render(strings.ToUpper(string(status))))
		b.WriteString(" " + valueStyle.Render(m.assessment.Explanation))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause/resume · r replay · q quit"))
	return b.String()
}

// Run launches the replay and blocks until the user quits.
func Run(name string, history []fatigue.GrowthSample, assessment *assess.SafetyAssessment) error {
	_, err := tea.NewProgram(New(name, history, assessment)).Run()
	return err
}

package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcdev12/primus/go/internal/selection"
	"github.com/mcdev12/primus/go/internal/token"
)

const (
	maxContacts = 9
	barWidth    = 24
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
	winnerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

type tickMsg time.Time

type model struct {
	coordinator *selection.Coordinator
	interval    time.Duration
	down        map[token.ContactID]bool
	frame       selection.Frame
}

func newModel(c *selection.Coordinator, interval time.Duration) model {
	return model{
		coordinator: c,
		interval:    interval,
		down:        make(map[token.ContactID]bool),
		frame:       c.Snapshot(),
	}
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.coordinator.Tick(time.Time(msg))
		m.frame = m.coordinator.Snapshot()
		return m, m.tick()

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "x":
			for id := range m.down {
				m.coordinator.OnContactCancelled(id)
				delete(m.down, id)
			}
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '0'+maxContacts {
				m.toggle(token.ContactID(key[0] - '0'))
			}
		}
		m.frame = m.coordinator.Snapshot()
	}
	return m, nil
}

// toggle presses or lifts a contact. Contacts sit on a row so each has a
// stable position.
func (m model) toggle(id token.ContactID) {
	if m.down[id] {
		delete(m.down, id)
		m.coordinator.OnContactUp(id)
		return
	}
	m.down[id] = true
	m.coordinator.OnContactDown(id, token.Point{X: float64(id) * 120, Y: 300})
}

func (m model) View() string {
	var b strings.Builder

	text := m.frame.Text
	if text == "" && m.frame.SelectedID != nil {
		text = fmt.Sprintf("Contact %d wins", *m.frame.SelectedID)
	}
	b.WriteString(titleStyle.Render(text))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("prompt: %s  pool: %d free", m.frame.Prompt, m.frame.PoolAvailable)))
	b.WriteString("\n\n")

	for _, tv := range m.frame.Tokens {
		line := fmt.Sprintf("%d %-9s %-14s %s", tv.ID, tv.Color, tv.Stage, bar(tv.Eased))
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(tv.ColorHex))
		if m.frame.SelectedID != nil && *m.frame.SelectedID == tv.ID {
			style = style.Inherit(winnerStyle)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	if len(m.frame.Tokens) == 0 {
		b.WriteString(statusStyle.Render("no contacts"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("1-9 toggle contact  x lift all  q quit"))
	return b.String()
}

func bar(p float64) string {
	n := int(p * barWidth)
	if n < 0 {
		n = 0
	}
	if n > barWidth {
		n = barWidth
	}
	return "[" + strings.Repeat("#", n) + strings.Repeat(".", barWidth-n) + "]"
}

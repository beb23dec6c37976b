// Package tui renders the practice screens in a terminal with Bubble Tea.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"vocabdrill/internal/domain"
	"vocabdrill/internal/service"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	stylePrompt   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	styleCorrect  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleWrong    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1)
	styleSubtle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleInputOK  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("10"))
	styleInputBad = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9"))
	styleInput    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))
)

var directions = []domain.Direction{domain.Forward, domain.Reverse}

// Model implements tea.Model on top of a ScreenController
type Model struct {
	controller *service.ScreenController
	logger     *zap.Logger

	input  textinput.Model
	cursor int
}

// NewModel constructs the terminal UI model
func NewModel(controller *service.ScreenController, logger *zap.Logger) *Model {
	input := textinput.New()
	input.Placeholder = "překlad"
	input.CharLimit = 120
	input.Width = 40

	return &Model{
		controller: controller,
		logger:     logger,
		input:      input,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.controller.State() == domain.StatePractice {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.controller.State() {
	case domain.StateLevelSelect:
		return m.updateLevelSelect(key)
	case domain.StateDirectionSelect:
		return m.updateDirectionSelect(key)
	default:
		return m.updatePractice(key)
	}
}

func (m *Model) updateLevelSelect(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	levels := m.controller.View().Levels

	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "left", "up", "h", "k":
		m.moveCursor(-1, len(levels))
	case "right", "down", "l", "j", "tab":
		m.moveCursor(1, len(levels))
	case "enter", " ":
		if len(levels) == 0 {
			return m, nil
		}
		m.selectLevel(levels[m.cursor])
	default:
		// digits pick a level directly
		if r := key.Runes; len(r) == 1 && r[0] >= '1' && r[0] <= '9' {
			if i := int(r[0] - '1'); i < len(levels) {
				m.cursor = i
				m.selectLevel(levels[i])
			}
		}
	}
	return m, nil
}

func (m *Model) selectLevel(level domain.Level) {
	if err := m.controller.SelectLevel(level); err != nil {
		if !errors.Is(err, service.ErrNoWords) {
			m.logger.Error("Level selection failed", zap.Error(err))
		}
		return
	}
	m.cursor = 0
}

func (m *Model) updateDirectionSelect(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "backspace", "b":
		m.back()
	case "up", "down", "k", "j", "tab":
		m.cursor = (m.cursor + 1) % len(directions)
	case "1":
		return m, m.startPractice(domain.Forward)
	case "2":
		return m, m.startPractice(domain.Reverse)
	case "enter", " ":
		return m, m.startPractice(directions[m.cursor])
	}
	return m, nil
}

func (m *Model) startPractice(direction domain.Direction) tea.Cmd {
	if err := m.controller.ChooseDirection(direction); err != nil {
		m.logger.Error("Failed to start practice", zap.Error(err))
		return nil
	}
	m.input.Reset()
	return m.input.Focus()
}

func (m *Model) updatePractice(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.input.Blur()
		m.back()
		return m, nil
	case tea.KeyEnter:
		if _, err := m.controller.Submit(m.input.Value()); err != nil {
			m.logger.Warn("Answer rejected", zap.Error(err))
		}
		return m, nil
	case tea.KeyCtrlN, tea.KeyTab:
		m.next()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m *Model) next() {
	if err := m.controller.Next(); err != nil {
		m.logger.Error("Failed to advance", zap.Error(err))
		return
	}
	m.input.Reset()
}

func (m *Model) back() {
	if err := m.controller.Back(); err != nil {
		m.logger.Warn("Back rejected", zap.Error(err))
	}
	m.cursor = 0
	m.input.Reset()
}

func (m *Model) moveCursor(delta, n int) {
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

// View implements tea.Model.
func (m *Model) View() string {
	v := m.controller.View()

	var b strings.Builder
	switch v.State {
	case domain.StateLevelSelect:
		b.WriteString(styleTitle.Render("Vyber úroveň"))
		b.WriteString("\n\n")
		items := make([]string, len(v.Levels))
		for i, level := range v.Levels {
			label := fmt.Sprintf(" %s ", level)
			if i == m.cursor {
				label = styleCursor.Render("[" + string(level) + "]")
			}
			items[i] = label
		}
		b.WriteString(" " + strings.Join(items, " "))
		if v.Error != "" {
			b.WriteString("\n\n")
			b.WriteString(styleError.Render(v.Error))
		}
		b.WriteString("\n\n")
		b.WriteString(styleSubtle.Render(" ←/→ výběr • enter potvrdit • q konec"))

	case domain.StateDirectionSelect:
		b.WriteString(styleTitle.Render(fmt.Sprintf("Úroveň %s: jakým směrem chceš procvičovat?", v.Level)))
		b.WriteString("\n\n")
		for i, d := range directions {
			line := fmt.Sprintf("  %d. %s", i+1, d.Label())
			if i == m.cursor {
				line = styleCursor.Render(fmt.Sprintf("> %d. %s", i+1, d.Label()))
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
		b.WriteString(styleSubtle.Render(" enter potvrdit • esc zpět"))

	default:
		b.WriteString(styleTitle.Render(fmt.Sprintf("Úroveň %s", v.Level)))
		if v.Attempts > 0 {
			b.WriteString(styleSubtle.Render(fmt.Sprintf("  %d/%d", v.Correct, v.Attempts)))
		}
		b.WriteString("\n\n  ")
		b.WriteString(stylePrompt.Render(v.Prompt))
		b.WriteString("\n\n")
		b.WriteString(inputStyle(v.Marker).Render(m.input.View()))
		b.WriteString("\n")
		switch v.Marker {
		case domain.MarkerSuccess:
			b.WriteString(styleCorrect.Render(" " + v.Feedback))
		case domain.MarkerFailure:
			b.WriteString(styleWrong.Render(" " + v.Feedback))
		}
		b.WriteString("\n\n")
		b.WriteString(styleSubtle.Render(" enter ověřit • tab další • esc zpět na výběr úrovně"))
	}

	b.WriteString("\n")
	return b.String()
}

func inputStyle(marker domain.Marker) lipgloss.Style {
	switch marker {
	case domain.MarkerSuccess:
		return styleInputOK
	case domain.MarkerFailure:
		return styleInputBad
	default:
		return styleInput
	}
}

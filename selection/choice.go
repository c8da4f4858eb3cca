package selection

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"bikeshare/ui"
)

// choiceModel is a bubbletea model that lets the user pick exactly one of a
// fixed list of options. Free text is never accepted.
type choiceModel struct {
	title   string
	options []string
	cursor  int
	chosen  bool
	aborted bool
}

func newChoiceModel(title string, options []string) choiceModel {
	return choiceModel{
		title:   title,
		options: options,
	}
}

func (m choiceModel) Init() tea.Cmd {
	return nil
}

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	switch key {
	case KeyCtrlC, KeyQuit, KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case KeyUp, KeyK:
		if m.cursor > 0 {
			m.cursor--
		}
	case KeyDown, KeyJ:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case KeyHome:
		m.cursor = 0
	case KeyEnd:
		m.cursor = len(m.options) - 1
	case KeyEnter, KeySpace:
		m.chosen = true
		return m, tea.Quit
	default:
		// digits jump straight to an option, e.g: "2" selects the second one
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.options) {
			m.cursor = n - 1
			m.chosen = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m choiceModel) View() string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render(m.title))
	b.WriteString("\n")

	if m.chosen {
		b.WriteString(ui.SelectedStyle.Render("> " + m.options[m.cursor]))
		b.WriteString("\n")
		return b.String()
	}
	if m.aborted {
		b.WriteString(ui.DimStyle.Render("cancelled"))
		b.WriteString("\n")
		return b.String()
	}

	for i, option := range m.options {
		line := fmt.Sprintf("%d. %s", i+1, option)
		if i == m.cursor {
			b.WriteString(ui.SelectedStyle.Render("> " + line))
		} else {
			b.WriteString(ui.OptionStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString(ui.HelpStyle.Render("↑/↓ move • enter select • q quit"))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the index of the chosen option, false if the user quit
func (m choiceModel) Selected() (int, bool) {
	return m.cursor, m.chosen && !m.aborted
}

package picker

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevigo/spell-warden/internal/core"
)

type item struct {
	index  int
	choice core.Choice
}

func (i item) Title() string       { return i.choice.Label }
func (i item) Description() string { return i.choice.Description }
func (i item) FilterValue() string { return i.choice.Label }

type model struct {
	styles styles
	list   list.Model

	chosen int
	done   bool
}

func newModel(title string, choices []core.Choice, theme ThemeName) *model {
	s := getStyles(theme)

	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = item{index: i, choice: c}
	}

	l := list.New(items, newDelegate(s), 80, 20)
	l.Title = title
	l.Styles.Title = s.title
	l.SetShowStatusBar(len(choices) > 1)

	return &model{styles: s, list: l, chosen: -1}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := m.styles.app.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case tea.KeyMsg:
		// Keys belong to the filter input while the user is typing a filter.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			if it, ok := m.list.SelectedItem().(item); ok {
				m.chosen = it.index
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	if m.done {
		return ""
	}
	return m.styles.app.Render(m.list.View())
}

// selection returns the chosen index, or ok=false when the prompt was dismissed.
func (m *model) selection() (int, bool) {
	return m.chosen, m.chosen >= 0
}

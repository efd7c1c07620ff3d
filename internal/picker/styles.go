package picker

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

type ThemeName string

const (
	ThemeCyan    ThemeName = "cyan"
	ThemeMatrix  ThemeName = "matrix"
	ThemeAmber   ThemeName = "amber"
	ThemeDracula ThemeName = "dracula"
)

type palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
}

var palettes = map[ThemeName]palette{
	ThemeCyan:    {Primary: lipgloss.Color("51"), Secondary: lipgloss.Color("33"), Muted: lipgloss.Color("240")},
	ThemeMatrix:  {Primary: lipgloss.Color("82"), Secondary: lipgloss.Color("46"), Muted: lipgloss.Color("240")},
	ThemeAmber:   {Primary: lipgloss.Color("220"), Secondary: lipgloss.Color("208"), Muted: lipgloss.Color("240")},
	ThemeDracula: {Primary: lipgloss.Color("141"), Secondary: lipgloss.Color("117"), Muted: lipgloss.Color("240")},
}

// ListThemes returns the supported theme names.
func ListThemes() []ThemeName {
	return []ThemeName{ThemeCyan, ThemeMatrix, ThemeAmber, ThemeDracula}
}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	_, ok := palettes[ThemeName(name)]
	return ok
}

type styles struct {
	app      lipgloss.Style
	title    lipgloss.Style
	selected lipgloss.Style
	detail   lipgloss.Style
}

func getStyles(theme ThemeName) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[ThemeCyan]
	}
	return styles{
		app: lipgloss.NewStyle().Margin(1, 2),
		title: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
		selected: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Secondary).
			PaddingLeft(1),
		detail: lipgloss.NewStyle().Foreground(p.Muted).PaddingLeft(2),
	}
}

func newDelegate(s styles) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = s.selected
	d.Styles.SelectedDesc = s.selected.Bold(false)
	d.Styles.NormalDesc = s.detail
	return d
}

package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// WorkspaceKeyMap defines keybindings for the pane workspace.
type WorkspaceKeyMap struct {
	Close  key.Binding
	Reset  key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k WorkspaceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Close, k.Reset, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k WorkspaceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Close, k.Reset},
		{k.Cancel},
		{k.Help, k.Quit},
	}
}

// DefaultWorkspaceKeyMap returns the default workspace keybindings.
func DefaultWorkspaceKeyMap() WorkspaceKeyMap {
	return WorkspaceKeyMap{
		Close: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "close last pane"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}

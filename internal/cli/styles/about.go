package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/subdivide/internal/domain/build"
)

// Three panes: one full-height on the left, two stacked on the right.
const aboutLogo = `┌───┬───┐
│   │   │
│   ├───┤
│   │   │
└───┴───┘`

type AboutRenderer struct {
	theme *Theme
}

func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render puts the logo beside an aligned list of build fields.
func (r *AboutRenderer) Render(info build.Info) string {
	logo := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Bold(true).
		MarginTop(1).
		MarginLeft(2).
		Render(aboutLogo)
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", r.fields(info))
}

func (r *AboutRenderer) fields(info build.Info) string {
	rows := []struct{ icon, label, value string }{
		{IconVersion, "Version", info.Version},
		{IconGitBranch, "Commit", info.Commit},
		{IconCalendar, "Built", info.BuildDate},
		{IconGo, "Go", info.GoVersion},
	}

	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	label := r.theme.Subtle.Width(8)

	var b strings.Builder
	b.WriteString(r.theme.Title.Render("subdivide") + "\n")
	for _, row := range rows {
		b.WriteString(icon.Render(row.icon) + " " + label.Render(row.label) + r.theme.Highlight.Render(row.value) + "\n")
	}
	b.WriteString(icon.Render(IconGithub) + " " + r.theme.Subtle.Render(build.RepoURL()))
	return b.String()
}

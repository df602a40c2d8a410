package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/subdivide/internal/domain/entity"
)

// ConfigSchemaRenderer prints the settings reference for `config schema`.
type ConfigSchemaRenderer struct {
	theme *Theme
}

func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render prints one table per section, in the order sections first appear.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	var b strings.Builder
	accent := lipgloss.NewStyle().Foreground(r.theme.Accent)
	fmt.Fprintf(&b, "%s %s  %s\n\n",
		accent.Render(IconConfig),
		r.theme.Title.Render("subdivide configuration keys"),
		r.theme.Subtle.Render(fmt.Sprintf("(%d)", len(keys))),
	)

	for _, sec := range sectionsInOrder(keys) {
		fmt.Fprintf(&b, "%s\n%s\n\n", r.theme.Highlight.Render(sec.name), r.sectionTable(sec.keys))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderJSON is the machine-readable form of Render.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

type schemaSection struct {
	name string
	keys []entity.ConfigKeyInfo
}

func sectionsInOrder(keys []entity.ConfigKeyInfo) []schemaSection {
	var out []schemaSection
	index := make(map[string]int)
	for _, k := range keys {
		i, ok := index[k.Section]
		if !ok {
			i = len(out)
			index[k.Section] = i
			out = append(out, schemaSection{name: k.Section})
		}
		out[i].keys = append(out[i].keys, k)
	}
	return out
}

func (r *ConfigSchemaRenderer) sectionTable(keys []entity.ConfigKeyInfo) string {
	header := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true).Padding(0, 1)
	cell := r.theme.Normal.Padding(0, 1)
	keyCell := cell.Bold(true)
	defaultCell := lipgloss.NewStyle().Foreground(r.theme.Accent).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("KEY", "TYPE", "DEFAULT", "NOTES").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return keyCell
			case col == 2:
				return defaultCell
			default:
				return cell
			}
		})

	for _, k := range keys {
		t.Row(k.Key, k.Type, k.Default, keyNotes(k))
	}
	return t.Render()
}

// keyNotes joins the description with the accepted values or range, one per line.
func keyNotes(k entity.ConfigKeyInfo) string {
	notes := k.Description
	switch {
	case len(k.Values) > 0:
		notes += "\nValues: " + strings.Join(k.Values, ", ")
	case k.Range != "":
		notes += "\nRange: " + k.Range
	}
	return notes
}

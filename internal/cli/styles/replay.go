package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/subdivide/internal/application/usecase"
	"github.com/bnema/subdivide/internal/domain/partition"
)

// ReplayRenderer renders replay results.
type ReplayRenderer struct {
	theme *Theme
}

// NewReplayRenderer creates a new ReplayRenderer.
func NewReplayRenderer(theme *Theme) *ReplayRenderer {
	return &ReplayRenderer{theme: theme}
}

// Render renders the step log, the final layout table and the tree outline.
func (r *ReplayRenderer) Render(out *usecase.ReplayOutput) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var parts []string
	parts = append(parts, fmt.Sprintf("%s %s", iconStyle.Render(IconCursor), r.theme.Title.Render("Events")))
	for _, step := range out.Steps {
		parts = append(parts, r.renderStep(step))
	}

	parts = append(parts, "", fmt.Sprintf("%s %s", iconStyle.Render(IconLayout), r.theme.Title.Render("Layout")))
	rows := make([]table.Row, 0, len(out.Layout))
	for _, entry := range out.Layout {
		rows = append(rows, LayoutRow(entry))
	}
	t := NewStyledTable(r.theme, LayoutTableColumns(), rows, 64, len(rows)+1)
	parts = append(parts, t.View(), "",
		fmt.Sprintf("%s %s", iconStyle.Render(IconTree), r.theme.Title.Render("Tree")),
		r.theme.Subtle.Render(strings.TrimRight(out.TreeDump, "\n")))

	return strings.Join(parts, "\n") + "\n"
}

func (r *ReplayRenderer) renderStep(step usecase.ReplayStep) string {
	outcome := r.theme.Subtle.Render(step.Outcome)
	switch step.Outcome {
	case "split", "resized":
		outcome = r.theme.Highlight.Render(step.Outcome)
	case "discarded", "cancelled":
		outcome = r.theme.WarningStyle.Render(step.Outcome)
	}

	split := ""
	if step.Event.Split {
		split = r.theme.BadgeMuted.Render("split")
	}
	return fmt.Sprintf("  %3d  %-6s %8.6g %8.6g  %s %s",
		step.Index, step.Event.Type, step.Event.X, step.Event.Y, outcome, split)
}

type rectJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type entryJSON struct {
	Key    string    `json:"key"`
	Kind   string    `json:"kind"`
	Rect   rectJSON  `json:"rect"`
	Pane   uint64    `json:"pane,omitempty"`
	Split  uint64    `json:"split,omitempty"`
	Index  *int      `json:"index,omitempty"`
	Axis   string    `json:"axis,omitempty"`
	Bounds *rectJSON `json:"bounds,omitempty"`
}

type replayJSON struct {
	Steps  []usecase.ReplayStep `json:"steps"`
	Layout []entryJSON          `json:"layout"`
	Tree   string               `json:"tree"`
}

func toRectJSON(r partition.Rect) rectJSON {
	return rectJSON{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// RenderJSON renders the replay result as JSON.
func (*ReplayRenderer) RenderJSON(out *usecase.ReplayOutput) (string, error) {
	doc := replayJSON{
		Steps:  out.Steps,
		Layout: make([]entryJSON, 0, len(out.Layout)),
		Tree:   out.TreeDump,
	}
	for _, e := range out.Layout {
		entry := entryJSON{Key: e.Key(), Kind: e.Kind.String(), Rect: toRectJSON(e.Rect)}
		if e.Kind == partition.EntryPane {
			entry.Pane = uint64(e.Pane)
		} else {
			index := e.Index
			bounds := toRectJSON(e.Bounds)
			entry.Split = uint64(e.Split)
			entry.Index = &index
			entry.Axis = e.Axis.String()
			entry.Bounds = &bounds
		}
		doc.Layout = append(doc.Layout, entry)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal replay: %w", err)
	}
	return string(data), nil
}

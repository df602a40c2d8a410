package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/subdivide/internal/cli/styles"
	"github.com/bnema/subdivide/internal/domain/partition"
	"github.com/bnema/subdivide/internal/infrastructure/config"
	"github.com/bnema/subdivide/internal/ui/controller"
)

func newWorkspace(t *testing.T, cfg *config.Config) WorkspaceModel {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := NewWorkspaceModel(context.Background(), styles.NewTheme(cfg), cfg)
	// 100 columns and a 40 line canvas above the status bar and short help.
	return send(t, m, tea.WindowSizeMsg{Width: 100, Height: 42})
}

func send(t *testing.T, m WorkspaceModel, msg tea.Msg) WorkspaceModel {
	t.Helper()
	updated, _ := m.Update(msg)
	ws, ok := updated.(WorkspaceModel)
	require.True(t, ok)
	return ws
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// splitLeft drags from the left edge of the canvas to column x with alt held.
func splitLeft(t *testing.T, m WorkspaceModel, x int) WorkspaceModel {
	t.Helper()
	press := mouse(tea.MouseActionPress, 0, 20)
	press.Alt = true
	m = send(t, m, press)
	m = send(t, m, mouse(tea.MouseActionMotion, x, 20))
	return send(t, m, mouse(tea.MouseActionRelease, x, 20))
}

func TestWorkspace_CanvasExcludesFooter(t *testing.T) {
	m := newWorkspace(t, nil)

	assert.Equal(t, 40, m.canvasHeight())
	assert.Equal(t, controller.Bounds{W: 100, H: 40}, m.canvas())
}

func TestWorkspace_EdgeDragSplits(t *testing.T) {
	m := newWorkspace(t, nil)

	m = splitLeft(t, m, 30)

	require.Equal(t, 2, m.Tree().Len())
	rect, ok := m.Tree().PaneRect(2)
	require.True(t, ok)
	assert.InDelta(t, 30.5, rect.W, 1e-9)
	assert.Equal(t, controller.OutcomeSplit, m.lastOutcome)
	assert.Equal(t, 1, *m.changes)
}

func TestWorkspace_SplitNeedsModifier(t *testing.T) {
	tests := []struct {
		name     string
		modifier config.SplitModifier
		press    tea.MouseMsg
		wantLen  int
	}{
		{
			name:     "alt default",
			modifier: config.SplitModifierAlt,
			press:    tea.MouseMsg{X: 0, Y: 20, Alt: true, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			wantLen:  2,
		},
		{
			name:     "no modifier",
			modifier: config.SplitModifierAlt,
			press:    mouse(tea.MouseActionPress, 0, 20),
			wantLen:  1,
		},
		{
			name:     "ctrl configured",
			modifier: config.SplitModifierCtrl,
			press:    tea.MouseMsg{X: 0, Y: 20, Ctrl: true, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			wantLen:  2,
		},
		{
			name:     "alt ignored when shift configured",
			modifier: config.SplitModifierShift,
			press:    tea.MouseMsg{X: 0, Y: 20, Alt: true, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			wantLen:  1,
		},
		{
			name:     "right button",
			modifier: config.SplitModifierAlt,
			press:    tea.MouseMsg{X: 0, Y: 20, Alt: true, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			wantLen:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Interaction.SplitModifier = tt.modifier
			m := newWorkspace(t, cfg)

			m = send(t, m, tt.press)
			m = send(t, m, mouse(tea.MouseActionRelease, 30, 20))

			assert.Equal(t, tt.wantLen, m.Tree().Len())
		})
	}
}

func TestWorkspace_DividerDrag(t *testing.T) {
	m := newWorkspace(t, nil)
	m = splitLeft(t, m, 30)
	split, ok := m.Tree().SplitOf(2)
	require.True(t, ok)

	m = send(t, m, mouse(tea.MouseActionPress, 30, 10))
	_, _, dragging := m.ctrl.ActiveDivider()
	assert.True(t, dragging)
	m = send(t, m, mouse(tea.MouseActionMotion, 50, 10))
	m = send(t, m, mouse(tea.MouseActionRelease, 50, 10))

	fractions, ok := m.Tree().Fractions(split)
	require.True(t, ok)
	assert.InDelta(t, 0.505, fractions[0], 1e-9)
	assert.Equal(t, controller.StateIdle, m.ctrl.State())
}

func TestWorkspace_Keys(t *testing.T) {
	t.Run("close newest pane", func(t *testing.T) {
		m := newWorkspace(t, nil)
		m = splitLeft(t, m, 30)

		m = send(t, m, runes("x"))

		assert.Equal(t, []partition.PaneID{1}, m.Tree().Panes())
		assert.NoError(t, m.Err())
	})

	t.Run("close keeps last pane", func(t *testing.T) {
		m := newWorkspace(t, nil)

		m = send(t, m, runes("x"))

		assert.Equal(t, 1, m.Tree().Len())
	})

	t.Run("reset", func(t *testing.T) {
		m := newWorkspace(t, nil)
		m = splitLeft(t, m, 30)
		m = splitLeft(t, m, 10)

		m = send(t, m, runes("r"))

		assert.Equal(t, []partition.PaneID{1}, m.Tree().Panes())
	})

	t.Run("escape cancels pending split", func(t *testing.T) {
		m := newWorkspace(t, nil)
		press := mouse(tea.MouseActionPress, 0, 20)
		press.Alt = true
		m = send(t, m, press)
		require.Equal(t, controller.StatePendingSplit, m.ctrl.State())

		m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

		assert.Equal(t, controller.StateIdle, m.ctrl.State())
		assert.Equal(t, controller.OutcomeCancelled, m.lastOutcome)
		assert.Equal(t, 1, m.Tree().Len())
	})

	t.Run("help resizes canvas", func(t *testing.T) {
		m := newWorkspace(t, nil)

		m = send(t, m, runes("?"))

		assert.Less(t, m.canvasHeight(), 40)
		assert.Equal(t, float64(m.canvasHeight()), m.ctrl.Options().Canvas.H)
	})

	t.Run("quit", func(t *testing.T) {
		m := newWorkspace(t, nil)

		_, cmd := m.Update(runes("q"))

		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	})
}

func TestWorkspace_ConfigChanged(t *testing.T) {
	m := newWorkspace(t, nil)
	cfg := config.DefaultConfig()
	cfg.Layout.MinFraction = 0.1
	cfg.Interaction.DegenerateSplit = config.DegenerateSplitDiscard
	cfg.Interaction.SplitModifier = config.SplitModifierShift

	m = send(t, m, ConfigChangedMsg{Config: cfg})

	assert.Equal(t, 0.1, m.Tree().MinFraction())
	assert.Equal(t, controller.DegenerateDiscard, m.ctrl.Options().DegenerateSplit)
	assert.Equal(t, controller.Bounds{W: 100, H: 40}, m.ctrl.Options().Canvas)
	assert.Contains(t, m.View(), "shift+drag")
}

func TestWorkspace_View(t *testing.T) {
	m := newWorkspace(t, nil)
	m = splitLeft(t, m, 30)

	view := m.View()

	assert.Contains(t, view, "2 panes")
	assert.Contains(t, view, "split: pane 2")
	assert.Contains(t, view, "1 changes")
	assert.Contains(t, view, "│")
	assert.Contains(t, view, "close last pane")
}

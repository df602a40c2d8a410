// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/subdivide/internal/cli/styles"
	"github.com/bnema/subdivide/internal/domain/partition"
	"github.com/bnema/subdivide/internal/infrastructure/config"
	"github.com/bnema/subdivide/internal/logging"
	"github.com/bnema/subdivide/internal/ui/controller"
)

// ConfigChangedMsg carries a reloaded configuration into the workspace.
type ConfigChangedMsg struct {
	Config *config.Config
}

// WorkspaceModel is the Bubble Tea model for the interactive pane canvas.
type WorkspaceModel struct {
	// UI components
	help  help.Model
	keys  styles.WorkspaceKeyMap
	theme *styles.Theme

	// State
	tree        *partition.Tree
	ctrl        *controller.InteractionController
	unsubscribe func()
	changes     *int
	lastOutcome controller.Outcome
	width       int
	height      int
	err         error

	// Config
	cfg *config.Config

	ctx context.Context
}

// NewWorkspaceModel creates a workspace with a single pane.
func NewWorkspaceModel(ctx context.Context, theme *styles.Theme, cfg *config.Config) WorkspaceModel {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := WorkspaceModel{
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultWorkspaceKeyMap(),
		theme:   theme,
		changes: new(int),
		width:   80,
		height:  24,
		cfg:     cfg,
		ctx:     logging.WithComponent(ctx, "workspace"),
	}
	m.resetTree()
	return m
}

func (m *WorkspaceModel) resetTree() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.tree = partition.New(partition.WithMinFraction(m.cfg.Layout.MinFraction))
	changes := m.changes
	log := logging.FromContext(m.ctx)
	m.unsubscribe = m.tree.Subscribe(partition.ObserverFunc(func(layout partition.Layout) {
		*changes++
		log.Debug().
			Int("panes", len(layout.Panes())).
			Int("dividers", len(layout.Dividers())).
			Msg("layout changed")
	}))
	m.ctrl = controller.NewInteractionController(m.ctx, m.tree, controller.OptionsFromConfig(m.cfg.Interaction, m.canvas()))
	m.lastOutcome = controller.OutcomeIgnored
}

// Tree returns the partition tree driven by the workspace.
func (m WorkspaceModel) Tree() *partition.Tree {
	return m.tree
}

// Err returns the last error reported by a key action.
func (m WorkspaceModel) Err() error {
	return m.err
}

// canvas is the terminal area above the footer.
func (m WorkspaceModel) canvas() controller.Bounds {
	return controller.Bounds{W: float64(m.width), H: float64(m.canvasHeight())}
}

// canvasHeight leaves one line for the status bar and the rest for help.
func (m WorkspaceModel) canvasHeight() int {
	return max(0, m.height-1-lipgloss.Height(m.help.View(m.keys)))
}

// Init implements tea.Model.
func (m WorkspaceModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m WorkspaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ctrl.SetCanvas(m.canvas())

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ConfigChangedMsg:
		m.applyConfig(msg.Config)
	}

	return m, nil
}

// handleMouse feeds mouse events to the controller at cell centers.
func (m *WorkspaceModel) handleMouse(msg tea.MouseMsg) {
	x, y := float64(msg.X)+0.5, float64(msg.Y)+0.5

	var outcome controller.Outcome
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		outcome = m.ctrl.PointerDown(x, y, controller.Modifiers{Split: m.splitHeld(msg)})
	case tea.MouseActionMotion:
		outcome = m.ctrl.PointerMove(x, y)
	case tea.MouseActionRelease:
		outcome = m.ctrl.PointerUp(x, y)
	default:
		return
	}
	if outcome != controller.OutcomeIgnored {
		m.lastOutcome = outcome
	}
}

func (m WorkspaceModel) splitHeld(msg tea.MouseMsg) bool {
	switch m.cfg.Interaction.SplitModifier {
	case config.SplitModifierCtrl:
		return msg.Ctrl
	case config.SplitModifierShift:
		return msg.Shift
	default:
		return msg.Alt
	}
}

func (m WorkspaceModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unsubscribe()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		if outcome := m.ctrl.PointerCancel(); outcome != controller.OutcomeIgnored {
			m.lastOutcome = outcome
		}

	case key.Matches(msg, m.keys.Close):
		m.closeNewestPane()

	case key.Matches(msg, m.keys.Reset):
		if m.ctrl.State() == controller.StateIdle {
			m.resetTree()
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.ctrl.SetCanvas(m.canvas())
	}
	return m, nil
}

// closeNewestPane removes the pane with the highest id. The last pane
// cannot be removed.
func (m *WorkspaceModel) closeNewestPane() {
	if m.ctrl.State() != controller.StateIdle || m.tree.Len() < 2 {
		return
	}
	id := slices.Max(m.tree.Panes())
	if err := m.tree.RemovePane(id); err != nil {
		m.err = fmt.Errorf("close pane %d: %w", id, err)
		return
	}
	logging.FromContext(logging.WithPaneID(m.ctx, uint64(id))).Debug().Int("panes", m.tree.Len()).Msg("pane closed")
	m.err = nil
}

// applyConfig applies a reloaded configuration. The minimum fraction only
// affects later operations.
func (m *WorkspaceModel) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.cfg = cfg
	m.theme = styles.NewTheme(cfg)
	m.help = styles.NewStyledHelp(m.theme)
	m.help.Width = m.width
	m.tree.SetMinFraction(cfg.Layout.MinFraction)
	m.ctrl.ApplyOptions(controller.OptionsFromConfig(cfg.Interaction, m.canvas()))
	logging.FromContext(m.ctx).Info().Msg("configuration reloaded")
}

// View implements tea.Model.
func (m WorkspaceModel) View() string {
	var preview *partition.Rect
	if rect, ok := m.ctrl.SplitPreview(); ok {
		preview = &rect
	}
	var active activeDivider
	active.split, active.index, active.ok = m.ctrl.ActiveDivider()

	grid := rasterize(m.tree.ComputeAbsoluteLayout(), m.width, m.canvasHeight(), m.cfg.Appearance.ShowPaneIDs, preview, active)
	return lipgloss.JoinVertical(lipgloss.Left, grid.Render(m.theme), m.footer())
}

func (m WorkspaceModel) footer() string {
	status := []string{
		fmt.Sprintf("%s %d panes", styles.IconLayout, m.tree.Len()),
		m.ctrl.State().String(),
	}
	switch created, ok := m.ctrl.LastSplit(); {
	case m.lastOutcome == controller.OutcomeSplit && ok:
		status = append(status, fmt.Sprintf("%s: pane %d", m.lastOutcome, created))
	case m.lastOutcome != controller.OutcomeIgnored:
		status = append(status, m.lastOutcome.String())
	}
	status = append(status, fmt.Sprintf("%d changes", *m.changes))
	if m.err != nil {
		status = append(status, m.theme.ErrorStyle.Render(m.err.Error()))
	} else {
		status = append(status, m.theme.Subtle.Render(string(m.cfg.Interaction.SplitModifier)+"+drag from an edge to split"))
	}

	bar := m.theme.StatusBar.Width(max(0, m.width)).MaxHeight(1).Render(strings.Join(status, "  "))
	return lipgloss.JoinVertical(lipgloss.Left, bar, m.help.View(m.keys))
}

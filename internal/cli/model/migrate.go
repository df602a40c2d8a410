package model

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/subdivide/internal/application/usecase"
	"github.com/bnema/subdivide/internal/cli/styles"
)

type migrateState int

const (
	migrateStateConfirm migrateState = iota
	migrateStateRunning
	migrateStateDone
)

// migrateResultMsg is sent when the migration completes.
type migrateResultMsg struct {
	output *usecase.MigrateConfigOutput
	err    error
}

// MigrateModel asks for confirmation, then adds the missing defaults.
type MigrateModel struct {
	ctx      context.Context
	uc       *usecase.MigrateConfigUseCase
	renderer *styles.ConfigRenderer
	confirm  styles.ConfirmModel
	loading  styles.LoadingModel
	state    migrateState

	output *usecase.MigrateConfigOutput
	err    error
}

// NewMigrateModel creates the confirmation flow for a pending migration.
func NewMigrateModel(ctx context.Context, theme *styles.Theme, uc *usecase.MigrateConfigUseCase) MigrateModel {
	return MigrateModel{
		ctx:      ctx,
		uc:       uc,
		renderer: styles.NewConfigRenderer(theme),
		confirm:  styles.NewConfirm(theme, "Add these settings with default values?"),
		loading:  styles.NewLoading(theme, "Writing config..."),
	}
}

// Init implements tea.Model.
func (MigrateModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MigrateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.confirm.Canceled = true
			m.state = migrateStateDone
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if m.state != migrateStateRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.loading.Spinner, cmd = m.loading.Spinner.Update(msg)
		return m, cmd

	case migrateResultMsg:
		m.state = migrateStateDone
		m.output = msg.output
		m.err = msg.err
		return m, tea.Quit
	}

	if m.state != migrateStateConfirm {
		return m, nil
	}

	m.confirm, _ = m.confirm.Update(msg)
	if !m.confirm.Done() {
		return m, nil
	}
	if !m.confirm.Result() {
		m.state = migrateStateDone
		return m, tea.Quit
	}

	m.state = migrateStateRunning
	return m, tea.Batch(m.loading.Spinner.Tick, m.runMigration())
}

// View implements tea.Model.
func (m MigrateModel) View() string {
	switch m.state {
	case migrateStateRunning:
		return "\n  " + m.loading.View() + "\n"
	case migrateStateDone:
		switch {
		case m.err != nil:
			return m.renderer.RenderError(m.err)
		case m.output != nil && len(m.output.AddedKeys) > 0:
			return m.renderer.RenderMigrationSuccess(len(m.output.AddedKeys), m.output.ConfigFile)
		case m.output == nil:
			return m.renderer.RenderCanceled()
		}
		return ""
	default:
		return m.confirm.View()
	}
}

// Err returns the migration failure, if any.
func (m MigrateModel) Err() error {
	return m.err
}

func (m MigrateModel) runMigration() tea.Cmd {
	return func() tea.Msg {
		output, err := m.uc.Execute(m.ctx)
		return migrateResultMsg{output: output, err: err}
	}
}

package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/subdivide/internal/cli/model"
	"github.com/bnema/subdivide/internal/infrastructure/config"
	"github.com/bnema/subdivide/internal/logging"
)

var workspaceCmd = &cobra.Command{
	Use:     "workspace",
	Aliases: []string{"ws"},
	Short:   "Open the interactive pane canvas",
	Long: `Open a full-screen canvas that starts as a single pane.

Hold the split modifier (interaction.split_modifier, alt by default) and drag
from a pane edge to create a pane. Drag a divider to resize its neighbours.
Saving the config file applies the new settings without restarting.

Logs go to logging.file since the terminal is taken by the canvas.`,
	RunE: runWorkspace,
}

func init() {
	rootCmd.AddCommand(workspaceCmd)
}

func runWorkspace(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	cfg := app.Config
	if cfg.Logging.File != "" {
		logger, closer, err := logging.NewToFile(cfg.Logging.LoggerConfig(), cfg.Logging.File, cfg.Logging.Rotation())
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		app.SetContext(logging.WithContext(app.Ctx(), logger), func() { _ = closer.Close() })
	} else {
		app.SetContext(logging.WithContext(app.Ctx(), logging.Nop()), func() {})
	}
	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	m := model.NewWorkspaceModel(ctx, app.Theme, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	app.Manager.OnConfigChange(func(next *config.Config) {
		p.Send(model.ConfigChangedMsg{Config: next})
	})
	if err := app.Manager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config watcher unavailable")
	}

	log.Info().Str("config_file", app.Manager.ConfigFile()).Msg("workspace started")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("workspace failed: %w", err)
	}
	log.Info().Msg("workspace closed")
	return nil
}

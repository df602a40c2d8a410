package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/subdivide/internal/application/usecase"
	"github.com/bnema/subdivide/internal/cli/model"
	"github.com/bnema/subdivide/internal/cli/styles"
	"github.com/bnema/subdivide/internal/infrastructure/config"
	"github.com/bnema/subdivide/internal/logging"
)

var (
	configForce      bool
	configSchemaJSON bool
	configSchemaFile bool
	configSection    string
	configYes        bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View the configuration file status, write or migrate the defaults and list the available keys.`,
	RunE:  runConfigStatus,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write config.toml with every default value, and config.schema.json next to it
for editor completion.

An existing file is left untouched unless --force is given.`,
	RunE: runConfigInit,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing default settings to the config file",
	Long: `Add every default key the config file lacks, keeping the values already set.
The file is rewritten in canonical order; comments are not preserved.`,
	RunE: runConfigMigrate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults, the config file and SUBDIVIDE_* environment variables are merged.`,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List configuration keys with types and defaults",
	Long: `List every configuration key with its type, default value and constraints.

Examples:
  subdivide config schema                      # All keys
  subdivide config schema --section interaction
  subdivide config schema --json               # Key list as JSON
  subdivide config schema --json-schema        # JSON Schema document`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configMigrateCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)

	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configMigrateCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
	configSchemaCmd.Flags().BoolVar(&configSchemaJSON, "json", false, "output keys as JSON")
	configSchemaCmd.Flags().BoolVar(&configSchemaFile, "json-schema", false, "output the JSON Schema document")
	configSchemaCmd.Flags().StringVarP(&configSection, "section", "s", "", "only keys of this section")
}

// runConfigStatus shows the config file path, whether it exists and how many
// defaults it lacks.
func runConfigStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.Manager.ConfigFile()
	_, statErr := os.Stat(path)
	fmt.Println(renderer.RenderConfigFile(path, statErr == nil))
	if statErr != nil {
		return nil
	}

	uc := usecase.NewMigrateConfigUseCase(config.NewMigrator(path))
	result, err := uc.Check(app.Ctx())
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	if result.NeedsMigration {
		fmt.Println(renderer.RenderMissingCount(len(result.MissingKeys)))
	}
	return nil
}

// runConfigMigrate lists the missing keys and adds them after confirmation.
func runConfigMigrate(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.Manager.ConfigFile()
	if _, err := os.Stat(path); err != nil {
		fmt.Println(renderer.RenderConfigFile(path, false))
		return nil
	}

	uc := usecase.NewMigrateConfigUseCase(config.NewMigrator(path))
	ctx := app.Ctx()

	result, err := uc.Check(ctx)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	if !result.NeedsMigration {
		fmt.Println(renderer.RenderUpToDate(path))
		return nil
	}

	fmt.Println(renderer.RenderMissingKeys(result.MissingKeys))

	if configYes {
		out, err := uc.Execute(ctx)
		if err != nil {
			fmt.Println(renderer.RenderError(err))
			return err
		}
		fmt.Println(renderer.RenderMigrationSuccess(len(out.AddedKeys), out.ConfigFile))
		return nil
	}

	final, err := tea.NewProgram(model.NewMigrateModel(ctx, app.Theme, uc), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("migrate prompt: %w", err)
	}
	if m, ok := final.(model.MigrateModel); ok {
		return m.Err()
	}
	return nil
}

// runConfigInit runs without the app so a broken config file can be replaced.
// Logging comes from SUBDIVIDE_LOG_* only.
func runConfigInit(_ *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(styles.NewTheme(nil))
	log := logging.NewFromEnv()

	var (
		mgr *config.Manager
		err error
	)
	if configPath != "" {
		mgr, err = config.NewManagerWithFile(configPath)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}

	path, err := mgr.WriteDefault(configForce)
	switch {
	case errors.Is(err, config.ErrConfigExists):
		log.Debug().Str("path", path).Msg("config exists, not overwriting")
		fmt.Println(renderer.RenderExists(path))
		return nil
	case err != nil:
		log.Error().Err(err).Str("path", path).Msg("failed to write default config")
		fmt.Println(renderer.RenderError(err))
		return err
	}
	log.Debug().Str("path", path).Bool("force", configForce).Msg("default config written")

	fmt.Println(renderer.RenderCreated(path))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := config.EncodeTOML(app.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if configSchemaFile {
		data, err := config.GenerateSchema()
		if err != nil {
			return fmt.Errorf("generate schema: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	result, err := uc.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configSection})
	if err != nil {
		return fmt.Errorf("get config schema: %w", err)
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configSchemaJSON {
		output, err := renderer.RenderJSON(result.Keys)
		if err != nil {
			return err
		}
		fmt.Println(output)
		return nil
	}

	fmt.Println(renderer.Render(result.Keys))
	return nil
}

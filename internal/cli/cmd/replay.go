package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/subdivide/internal/application/usecase"
	"github.com/bnema/subdivide/internal/cli/styles"
	"github.com/bnema/subdivide/internal/infrastructure/script"
	"github.com/bnema/subdivide/internal/ui/controller"
)

var replayJSON bool

var replayCmd = &cobra.Command{
	Use:   "replay <script.toml>",
	Short: "Replay a recorded pointer script",
	Long: `Replay a pointer script against a fresh single-pane canvas and print the
resulting layout.

The script declares the canvas rectangle and a list of events:

  [canvas]
  width = 1000
  height = 1000

  [[events]]
  type = "down"   # down, move, up or cancel
  x = 5
  y = 100
  split = true    # split modifier held (down events only)

  [[events]]
  type = "up"
  x = 200
  y = 100

Hit testing uses the [interaction] settings and the tree uses
layout.min_fraction from the configuration.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "output as JSON")
}

func runReplay(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	// The canvas is overwritten per script by the session factory.
	opts := controller.OptionsFromConfig(app.Config.Interaction, controller.Bounds{})
	uc := usecase.NewReplayPointerScriptUseCase(script.NewTOMLLoader(), controller.NewSessionFactory(opts))

	result, err := uc.Execute(app.Ctx(), usecase.ReplayInput{
		Path:        args[0],
		MinFraction: app.Config.Layout.MinFraction,
	})
	if err != nil {
		return err
	}

	renderer := styles.NewReplayRenderer(app.Theme)
	if replayJSON {
		output, err := renderer.RenderJSON(result)
		if err != nil {
			return err
		}
		fmt.Println(output)
		return nil
	}

	fmt.Print(renderer.Render(result))
	return nil
}

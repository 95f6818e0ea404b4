package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/phanxgames/picsel"
)

type viewOptions struct {
	script   string
	exit     bool
	noReload bool
	file     string

	width, height int
	duration      float64
	order         int
	radius        float64
	seed          uint64
	colors        bool
	fps           bool
	debug         bool
}

// viewCommand creates the view command that opens the plot window.
func (c *CLI) viewCommand() *cobra.Command {
	var opts viewOptions

	cmd := &cobra.Command{
		Use:   "view [selection.json | folder...]",
		Short: "Open the interactive plot window",
		Long: `Open the interactive plot window.

With a single selection file, that file is the document and Ctrl+S saves it.
Otherwise every argument is added as a source of a new selection: folders are
scanned for images and .json files contribute their selected items. Use
--file to choose where a new selection is saved.

Controls: drag to pan, scroll to zoom, double click to show an image, 1/2 to
animate between layouts, Left/Right to browse, Space to toggle selection,
R to reload, S to toggle selection rings, V to toggle the viewer, F12 for a
screenshot. [ and ] change the curve order, - and = the point radius, , and .
the transition time, C toggles colors and N picks the next seed; the last two
apply on the next reload.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts.apply(cmd, &cfg)
			return c.runView(cmd.Context(), cfg, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.script, "script", "", "YAML input script to replay")
	cmd.Flags().BoolVar(&opts.exit, "exit", false, "quit when the input script finishes")
	cmd.Flags().BoolVar(&opts.noReload, "no-reload", false, "do not build the plot on startup")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "selection file to save a new selection to")
	cmd.Flags().IntVar(&opts.width, "width", 0, "window width")
	cmd.Flags().IntVar(&opts.height, "height", 0, "window height")
	cmd.Flags().Float64Var(&opts.duration, "duration", 0, "layout transition time in seconds")
	cmd.Flags().IntVar(&opts.order, "order", 0, "Hilbert curve order")
	cmd.Flags().Float64Var(&opts.radius, "radius", 0, "Hilbert point radius as a power of two exponent")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random layout seed")
	cmd.Flags().BoolVar(&opts.colors, "colors", false, "color Hilbert points by their center pixel")
	cmd.Flags().BoolVar(&opts.fps, "fps", false, "show FPS in the HUD")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log frame statistics")
	return cmd
}

// apply copies explicitly set flags over cfg.
func (o viewOptions) apply(cmd *cobra.Command, cfg *picsel.Config) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Window.Height = o.height
	}
	if flags.Changed("duration") {
		cfg.Animation.Duration = o.duration
	}
	if flags.Changed("order") {
		cfg.Hilbert.Order = o.order
	}
	if flags.Changed("radius") {
		cfg.Hilbert.RadiusExponent = o.radius
	}
	if flags.Changed("seed") {
		cfg.Random.Seed = o.seed
	}
	if flags.Changed("colors") {
		cfg.Hilbert.SampleColors = o.colors
	}
	if flags.Changed("fps") {
		cfg.Window.ShowFPS = o.fps
	}
	if flags.Changed("debug") {
		cfg.Debug = o.debug
	}
	cfg.Validate()
}

func (c *CLI) runView(ctx context.Context, cfg picsel.Config, args []string, opts viewOptions) error {
	logger := loggerFromContext(ctx)
	app, err := c.newViewApp(ctx, cfg, args, opts)
	if err != nil {
		return err
	}
	if !opts.noReload {
		if err := app.Reload(); err != nil {
			return err
		}
	}
	logger.Debug("Opening window", "width", cfg.Window.Width, "height", cfg.Window.Height)
	if err := picsel.Run(app); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if app.Changed() {
		logger.Warn("Discarded unsaved changes")
	}
	return nil
}

// newViewApp builds the App for view without opening a window.
func (c *CLI) newViewApp(ctx context.Context, cfg picsel.Config, args []string, opts viewOptions) (*picsel.App, error) {
	app := picsel.NewApp(ctx, cfg, loggerFromContext(ctx))
	sel, file, err := openSelection(args)
	if err != nil {
		return nil, err
	}
	if file == "" {
		file = opts.file
	}
	app.SetSelection(sel, file)

	if opts.script != "" {
		runner, err := picsel.LoadScript(opts.script)
		if err != nil {
			return nil, err
		}
		app.SetScript(runner, opts.exit)
	}
	return app, nil
}

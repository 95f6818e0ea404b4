// Package cli implements the picsel command-line interface.
//
// # Commands
//
//   - view: open the interactive plot window for a selection or folders
//   - layout: compute a layout headlessly and print every circle
//   - info: summarise the sources of a selection
//   - export: copy the selected images into a folder
//
// All commands support --verbose (-v) for debug-level logging and --config
// (-c) for a TOML configuration file. Loggers are passed through
// context.Context.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/picsel"
)

const appName = "picsel"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	configPath string
	out        io.Writer
}

// New creates a CLI logging to w at level. Command output goes to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), out: os.Stdout}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "picsel curates image selections on an animated point-cloud plot",
		Long:         `picsel lets you curate subsets of images from folders and saved selections and explore them as a 2D point cloud, laid out at random or along a Hilbert curve by capture time.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML configuration file")

	root.AddCommand(c.viewCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.exportCommand())
	return root
}

// loadConfig returns the configuration from --config, or the defaults.
func (c *CLI) loadConfig() (picsel.Config, error) {
	if c.configPath == "" {
		cfg := picsel.DefaultConfig()
		cfg.Validate()
		return cfg, nil
	}
	cfg, err := picsel.LoadConfig(c.configPath)
	if err != nil {
		return picsel.Config{}, err
	}
	c.Logger.Debug("Loaded config", "path", c.configPath)
	return cfg, nil
}

// openSelection builds the selection named by args. A single .json argument
// is opened as a selection file and becomes the document; otherwise every
// argument becomes a source of a new, unsaved selection: directories as
// folder sources and .json files as selection-file sources.
func openSelection(args []string) (sel *picsel.Selection, file string, err error) {
	if len(args) == 1 && isSelectionFile(args[0]) {
		sel, err := picsel.LoadSelection(args[0])
		if err != nil {
			return nil, "", err
		}
		return sel, args[0], nil
	}
	sel = picsel.NewSelection()
	for _, arg := range args {
		var src *picsel.Source
		if isSelectionFile(arg) {
			src, err = picsel.NewSelectionFileSource(arg)
		} else {
			src, err = picsel.NewFolderSource(arg)
		}
		if err != nil {
			return nil, "", err
		}
		sel.AddSource(src)
	}
	return sel, "", nil
}

func isSelectionFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

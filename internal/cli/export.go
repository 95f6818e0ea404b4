package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// exportCommand creates the export command that copies selected images.
func (c *CLI) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <selection.json> <folder>",
		Short: "Copy every selected image into a folder",
		Long: `Copy every selected image into a folder.

Files keep their base names and modification times. The folder is created if
it does not exist.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), args[0], args[1])
		},
	}
}

func (c *CLI) runExport(ctx context.Context, input, dir string) error {
	logger := loggerFromContext(ctx)
	sel, _, err := openSelection([]string{input})
	if err != nil {
		return err
	}
	total := sel.SelectedCount()
	prog := newProgress(logger)
	err = sel.Export(dir, func(done, total int) {
		logger.Debug("Exporting", "done", done, "total", total)
	})
	if err != nil {
		return fmt.Errorf("export to %s: %w", dir, err)
	}
	prog.done(fmt.Sprintf("Exported %d images", total))
	printSuccess(c.out, "Exported %d images", total)
	printFile(c.out, dir)
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/phanxgames/picsel"
)

// infoCommand creates the info command that summarises a selection.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [selection.json | folder...]",
		Short: "Show the sources of a selection with item and selection counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInfo(cmd.Context(), args)
		},
	}
}

func (c *CLI) runInfo(ctx context.Context, args []string) error {
	sel, file, err := openSelection(args)
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("Opened selection", "sources", sel.Len())

	if file != "" {
		printTitle(c.out, file)
	} else {
		printTitle(c.out, "new selection")
	}
	fmt.Fprintln(c.out, sourceTable(sel))
	printKeyValue(c.out, "sources", StyleNumber.Render(fmt.Sprint(sel.Len())))
	printKeyValue(c.out, "items", StyleNumber.Render(fmt.Sprint(sel.ItemCount())))
	printKeyValue(c.out, "selected", StyleNumber.Render(fmt.Sprint(sel.SelectedCount())))
	return nil
}

// sourceTable renders one row per source: name, kind, items, selected.
func sourceTable(sel *picsel.Selection) string {
	cols := []string{"source", "kind", "items", "selected"}
	rows := [][]string{cols}
	for i, src := range sel.Sources() {
		rows = append(rows, []string{
			src.Name(),
			src.Kind.String(),
			fmt.Sprint(src.Len()),
			fmt.Sprint(len(sel.Subset(i))),
		})
	}

	widths := make([]int, len(cols))
	for _, row := range rows {
		for j, cell := range row {
			widths[j] = max(widths[j], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			style := lipgloss.NewStyle().Width(widths[j] + 2)
			if j >= 2 {
				style = style.Align(lipgloss.Right).PaddingRight(2)
			}
			if i == 0 {
				style = style.Inherit(StyleDim)
			}
			cells[j] = style.Render(cell)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		if i < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

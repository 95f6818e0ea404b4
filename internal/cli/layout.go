package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/picsel"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// pointRecord is one plotted item in layout output.
type pointRecord struct {
	Source   string     `json:"source" yaml:"source"`
	Index    int        `json:"index" yaml:"index"`
	Path     string     `json:"path" yaml:"path"`
	X        float64    `json:"x" yaml:"x"`
	Y        float64    `json:"y" yaml:"y"`
	Radius   float64    `json:"radius" yaml:"radius"`
	Color    [4]float64 `json:"color" yaml:"color,flow"`
	Selected bool       `json:"selected" yaml:"selected"`
}

// layoutDoc is the document printed by the layout command.
type layoutDoc struct {
	Strategy string        `json:"strategy" yaml:"strategy"`
	Items    int           `json:"items" yaml:"items"`
	Skipped  int           `json:"skipped" yaml:"skipped"`
	Points   []pointRecord `json:"points" yaml:"points"`
}

// layoutCommand creates the layout command for computing layouts headlessly.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		strategy string
		format   string
		output   string
		order    int
		radius   float64
		seed     uint64
		colors   bool
	)

	cmd := &cobra.Command{
		Use:   "layout [selection.json | folder...]",
		Short: "Compute a layout and print every circle",
		Long: `Compute a layout and print every circle.

The layout command runs the same reload pass as the viewer without opening a
window and prints each item's world-space circle as JSON or YAML. Items whose
image cannot be decoded are skipped and counted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("order") {
				cfg.Hilbert.Order = order
			}
			if flags.Changed("radius") {
				cfg.Hilbert.RadiusExponent = radius
			}
			if flags.Changed("seed") {
				cfg.Random.Seed = seed
			}
			if flags.Changed("colors") {
				cfg.Hilbert.SampleColors = colors
			}
			cfg.Validate()
			return c.runLayout(cmd.Context(), cfg, args, strategy, format, output)
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "hilbert", "layout strategy: hilbert, random")
	cmd.Flags().StringVar(&format, "format", formatJSON, "output format: json, yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&order, "order", 0, "Hilbert curve order")
	cmd.Flags().Float64Var(&radius, "radius", 0, "Hilbert point radius as a power of two exponent")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random layout seed")
	cmd.Flags().BoolVar(&colors, "colors", false, "color Hilbert points by their center pixel")
	return cmd
}

func (c *CLI) runLayout(ctx context.Context, cfg picsel.Config, args []string, strategy, format, output string) error {
	if format != formatJSON && format != formatYAML {
		return fmt.Errorf("unknown format %q: want json or yaml", format)
	}
	sel, _, err := openSelection(args)
	if err != nil {
		return err
	}
	doc, err := computeLayout(ctx, sel, cfg, strategy)
	if err != nil {
		return err
	}

	w := c.out
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create %s: %w", output, err)
		}
		defer f.Close()
		w = f
	}
	if err := writeLayout(w, doc, format); err != nil {
		return err
	}
	if output != "" {
		loggerFromContext(ctx).Info("Wrote layout", "path", output, "points", len(doc.Points))
	}
	return nil
}

// computeLayout reloads sel into the named strategy and collects the circle
// of every decoded item.
func computeLayout(ctx context.Context, sel *picsel.Selection, cfg picsel.Config, name string) (layoutDoc, error) {
	s, ok := picsel.StrategyByName(picsel.NewStrategies(cfg), name)
	if !ok {
		return layoutDoc{}, fmt.Errorf("unknown strategy %q: want hilbert or random", name)
	}
	report, err := picsel.Reload(ctx, sel, []picsel.Strategy{s}, picsel.FileDecoder{}, picsel.ReloadOptions{
		Workers: cfg.Reload.Workers,
		Logger:  loggerFromContext(ctx),
	})
	if err != nil {
		return layoutDoc{}, err
	}

	doc := layoutDoc{Strategy: s.Name(), Items: report.Items, Skipped: report.Skipped, Points: []pointRecord{}}
	report.Coverage.EachItem(sel, func(pos int, ref picsel.ItemRef) {
		src := sel.Source(pos)
		circle := s.Circle(ref)
		doc.Points = append(doc.Points, pointRecord{
			Source:   src.Name(),
			Index:    ref.Index,
			Path:     src.Items[ref.Index],
			X:        circle.Center.X,
			Y:        circle.Center.Y,
			Radius:   circle.Radius,
			Color:    [4]float64{circle.Color.R, circle.Color.G, circle.Color.B, circle.Color.A},
			Selected: sel.Subset(pos).Has(ref.Index),
		})
	})
	return doc, nil
}

func writeLayout(w io.Writer, doc layoutDoc, format string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode layout: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode layout: %w", err)
		}
		return nil
	}
}

package cli

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/picsel"
)

// writePNG writes a 4×4 image of c to path, creating parent directories.
func writePNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.SetOutput(&out)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := map[string]bool{"view": false, "layout": false, "info": false, "export": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("--config flag missing")
	}
}

func TestOpenSelectionDocument(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "pics", "a.png"), color.NRGBA{A: 255})
	doc := filepath.Join(root, "picks.json")
	writeFile(t, doc, `{"sources": {"pics": {"type": "folder", "selection": ["a.png"]}}}`)

	sel, file, err := openSelection([]string{doc})
	if err != nil {
		t.Fatal(err)
	}
	if file != doc || sel.Len() != 1 || sel.SelectedCount() != 1 {
		t.Errorf("file=%q sources=%d selected=%d", file, sel.Len(), sel.SelectedCount())
	}
}

func TestOpenSelectionSources(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "one", "a.png"), color.NRGBA{A: 255})
	writePNG(t, filepath.Join(root, "two", "b.png"), color.NRGBA{A: 255})
	writePNG(t, filepath.Join(root, "two", "c.png"), color.NRGBA{A: 255})
	doc := filepath.Join(root, "picks.JSON")
	writeFile(t, doc, `{"sources": {"two": {"type": "folder", "selection": ["c.png"]}}}`)

	sel, file, err := openSelection([]string{filepath.Join(root, "one"), doc})
	if err != nil {
		t.Fatal(err)
	}
	if file != "" {
		t.Errorf("file = %q, want a new selection", file)
	}
	if sel.Len() != 2 || sel.Source(0).Kind != picsel.SourceFolder || sel.Source(1).Kind != picsel.SourceSelection {
		t.Fatalf("sources = %d", sel.Len())
	}
	if sel.Source(1).Len() != 1 || sel.SelectedCount() != 0 {
		t.Errorf("selection source items = %v, selected = %d", sel.Source(1).Items, sel.SelectedCount())
	}
}

func TestOpenSelectionMissing(t *testing.T) {
	_, _, err := openSelection([]string{filepath.Join(t.TempDir(), "nope")})
	if !picsel.IsCode(err, picsel.ErrCodeSourceNotFound) {
		t.Errorf("err = %v, want %s", err, picsel.ErrCodeSourceNotFound)
	}
}

func TestLoadConfigFlag(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cfg, err := c.loadConfig()
	if err != nil || cfg.Reload.Workers <= 0 {
		t.Fatalf("default config: %+v, %v", cfg.Reload, err)
	}

	path := filepath.Join(t.TempDir(), "picsel.toml")
	writeFile(t, path, "[hilbert]\norder = 5\n")
	c.configPath = path
	if cfg, err = c.loadConfig(); err != nil || cfg.Hilbert.Order != 5 {
		t.Errorf("order = %d, err = %v", cfg.Hilbert.Order, err)
	}

	writeFile(t, path, "[hilbert]\nbogus = 5\n")
	if _, err := c.loadConfig(); !picsel.IsCode(err, picsel.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want %s", err, picsel.ErrCodeInvalidConfig)
	}
}

func TestViewOptionsApply(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.viewCommand()
	if err := cmd.ParseFlags([]string{"--width", "640", "--order", "99", "--colors", "--seed", "7", "--radius=-2"}); err != nil {
		t.Fatal(err)
	}
	var opts viewOptions
	opts.width, _ = cmd.Flags().GetInt("width")
	opts.order, _ = cmd.Flags().GetInt("order")
	opts.colors, _ = cmd.Flags().GetBool("colors")
	opts.seed, _ = cmd.Flags().GetUint64("seed")
	opts.radius, _ = cmd.Flags().GetFloat64("radius")

	cfg := picsel.DefaultConfig()
	opts.apply(cmd, &cfg)
	if cfg.Window.Width != 640 || cfg.Window.Height != 800 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Hilbert.Order != picsel.MaxCurveOrder || !cfg.Hilbert.SampleColors || cfg.Random.Seed != 7 {
		t.Errorf("hilbert = %+v, seed = %d", cfg.Hilbert, cfg.Random.Seed)
	}
	if cfg.Hilbert.RadiusExponent != picsel.MaxRadiusExponent {
		t.Errorf("radius exponent = %v, want it clamped to %v", cfg.Hilbert.RadiusExponent, picsel.MaxRadiusExponent)
	}
	if cfg.Animation.Duration != 1 {
		t.Errorf("unset --duration changed the config: %v", cfg.Animation.Duration)
	}
}

func TestNewViewApp(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "pics", "a.png"), color.NRGBA{A: 255})
	script := filepath.Join(root, "run.yaml")
	writeFile(t, script, "steps:\n  - action: key\n    key: reload\n")

	c := New(io.Discard, LogInfo)
	cfg, _ := c.loadConfig()
	opts := viewOptions{script: script, exit: true, file: filepath.Join(root, "new.json")}
	app, err := c.newViewApp(context.Background(), cfg, []string{filepath.Join(root, "pics")}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if app.Title() != "picsel - "+opts.file {
		t.Errorf("Title = %q", app.Title())
	}
	if err := app.Save(); err != nil {
		t.Errorf("Save to --file: %v", err)
	}

	opts.script = filepath.Join(root, "missing.yaml")
	if _, err := c.newViewApp(context.Background(), cfg, []string{filepath.Join(root, "pics")}, opts); err == nil {
		t.Error("missing script accepted")
	}
}

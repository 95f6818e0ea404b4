package picsel

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// App is the picsel window: a point-cloud plot of the selection with a
// companion image viewer panel. It implements ebiten.Game. Frame logic lives
// in Step, which takes a FrameInput and never touches Ebitengine, so it can
// be driven from tests and scripts.
type App struct {
	cfg    Config
	ctx    context.Context
	logger *log.Logger

	sel     *Selection
	file    string
	changed bool

	plotter *Plotter
	viewer  *Viewer

	poller     InputPoller
	queue      InputQueue
	script     *ScriptRunner
	exitOnDone bool
	shots      screenshotter
	hud        *hud
	panel      viewerPanel

	width, height int
	closePending  bool
	stats         frameStats
}

// NewApp creates an App with an empty selection. ctx bounds reloads and is
// checked once per frame; when it is cancelled the game loop terminates.
func NewApp(ctx context.Context, cfg Config, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	cfg.Validate()
	viewer := &Viewer{}
	a := &App{
		cfg:     cfg,
		ctx:     ctx,
		logger:  logger,
		sel:     NewSelection(),
		plotter: NewPlotter(cfg, viewer, logger),
		viewer:  viewer,
		shots:   screenshotter{dir: cfg.ScreenshotDir, logger: logger},
		hud:     newHUD(cfg.Window.ShowFPS),
		panel:   viewerPanel{open: true},
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
	viewer.OnChange = a.panel.invalidate
	return a
}

// Plotter returns the app's plotter.
func (a *App) Plotter() *Plotter { return a.plotter }

// Viewer returns the companion viewer cursor.
func (a *App) Viewer() *Viewer { return a.viewer }

// Selection returns the current selection.
func (a *App) Selection() *Selection { return a.sel }

// Changed reports whether the selection has unsaved edits.
func (a *App) Changed() bool { return a.changed }

// Open loads a selection file and makes it the current document.
func (a *App) Open(path string) error {
	sel, err := LoadSelection(path)
	if err != nil {
		return err
	}
	a.SetSelection(sel, path)
	return nil
}

// SetSelection replaces the current document. file may be empty for a new,
// unsaved selection.
func (a *App) SetSelection(sel *Selection, file string) {
	a.sel = sel
	a.file = file
	a.setChanged(false)
	a.viewer.Ensure(sel)
	a.logger.Info("Opened selection", "file", a.fileLabel(), "sources", sel.Len(), "items", sel.ItemCount())
}

// Save writes the selection to its file.
func (a *App) Save() error {
	if a.file == "" {
		return newError(ErrCodeIO, "selection has no file; use the export or layout commands or open a file")
	}
	if err := a.sel.Save(a.file); err != nil {
		return err
	}
	a.setChanged(false)
	a.logger.Info("Saved selection", "file", a.file)
	return nil
}

// Reload rebuilds the plot from the current selection.
func (a *App) Reload() error {
	a.hud.notify("Reloading...")
	report, err := a.plotter.Reload(a.ctx, a.sel)
	if err != nil {
		a.hud.notify("Reload failed: " + err.Error())
		return err
	}
	a.viewer.Ensure(a.sel)
	if report.Skipped > 0 {
		a.hud.notify(fmt.Sprintf("Loaded %d items, skipped %d", report.Items-report.Skipped, report.Skipped))
	} else {
		a.hud.notify(fmt.Sprintf("Loaded %d items", report.Items))
	}
	return nil
}

// SetScript attaches an input script. When exitOnDone is set the game loop
// terminates once the script has run to completion.
func (a *App) SetScript(r *ScriptRunner, exitOnDone bool) {
	a.script = r
	a.exitOnDone = exitOnDone
}

// Title returns the window title: "picsel - <file>" with a trailing "*"
// when there are unsaved changes.
func (a *App) Title() string {
	title := a.cfg.Window.Title + " - " + a.fileLabel()
	if a.changed {
		title += "*"
	}
	return title
}

func (a *App) fileLabel() string {
	if a.file == "" {
		return "new file"
	}
	return a.file
}

// Step runs one frame of application logic for in.
func (a *App) Step(in FrameInput) {
	a.plotter.Camera.Viewport = a.plotViewport()
	in.UICaptured = in.UICaptured || a.panelCaptures(in.Cursor)

	a.handleActions(in.Actions)
	a.plotter.Update(a.sel, in)
	a.hud.update(in.Dt)
}

func (a *App) handleActions(act Action) {
	if act.Has(ActionSave) {
		if err := a.Save(); err != nil {
			a.logger.Error("Save failed", "err", err)
			a.hud.notify("Save failed: " + err.Error())
		} else {
			a.hud.notify("Saved " + filepath.Base(a.file))
		}
	}
	if act.Has(ActionReload) {
		if err := a.Reload(); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error("Reload failed", "err", err)
		}
	}
	if act.Has(ActionApplyFirst) {
		a.apply(0)
	}
	if act.Has(ActionApplySecond) {
		a.apply(1)
	}
	if act.Has(ActionToggleRings) {
		a.plotter.ShowSelection = !a.plotter.ShowSelection
	}
	if act.Has(ActionToggleViewer) {
		a.panel.open = !a.panel.open
	}
	if act.Has(ActionNext) || act.Has(ActionPrev) {
		if act.Has(ActionNext) {
			a.viewer.Next(a.sel)
		} else {
			a.viewer.Prev(a.sel)
		}
		if cur, ok := a.viewer.Current(); ok {
			a.plotter.FocusOn(cur)
		}
	}
	if act.Has(ActionToggleSelect) && a.viewer.ToggleSelected(a.sel) {
		a.setChanged(true)
	}
	for _, k := range controlKeys {
		if act.Has(k.action) {
			a.stepControl(k.control, k.delta)
		}
	}
	if act.Has(ActionScreenshot) {
		a.shots.Queue("screenshot")
	}
}

// stepControl adjusts a plotter control and reports the new value.
func (a *App) stepControl(name string, delta float64) {
	c, ok := a.plotter.Control(name)
	if !ok {
		return
	}
	c.Step(delta)
	msg := c.Name + ": " + c.Format()
	if !c.Immediate {
		msg += " (R to reload)"
	}
	a.logger.Debug("Control changed", "control", c.Name, "value", c.Value())
	a.hud.notify(msg)
}

// setChanged records whether there are unsaved edits. Any change of state
// re-arms the close confirmation.
func (a *App) setChanged(changed bool) {
	if changed != a.changed {
		a.closePending = false
	}
	a.changed = changed
}

func (a *App) apply(i int) {
	if i >= len(a.plotter.Strategies) {
		return
	}
	if !a.plotter.Initialised() {
		a.hud.notify("Reload (R) before applying a layout")
		return
	}
	a.plotter.Apply(a.plotter.Strategies[i])
}

// requestClose handles a window close request and reports whether the app
// should quit. With unsaved changes the first request only warns.
func (a *App) requestClose() bool {
	if !a.changed || a.closePending {
		return true
	}
	a.closePending = true
	a.logger.Warn("Unsaved changes", "file", a.fileLabel())
	a.hud.notify("Unsaved changes: Ctrl+S to save, close again to discard")
	return false
}

// plotViewport is the screen rectangle the camera renders into.
func (a *App) plotViewport() Rect {
	return Rect{Width: float64(a.width), Height: float64(a.height)}
}

func (a *App) panelCaptures(cursor Vec2) bool {
	if !a.panelVisible() {
		return false
	}
	return panelRect(a.width, a.height).Contains(cursor.X, cursor.Y)
}

func (a *App) panelVisible() bool {
	_, ok := a.viewer.Current()
	return a.panel.open && ok
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if err := a.ctx.Err(); err != nil {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() && a.requestClose() {
		return ebiten.Termination
	}
	if a.frame(1.0/float64(ebiten.TPS()), a.poller.Poll) {
		return ebiten.Termination
	}
	ebiten.SetWindowTitle(a.Title())
	return nil
}

// frame advances the attached script, then steps with the next injected
// input or, when none is queued, with poll's. It reports whether the script
// has finished and the app should exit.
func (a *App) frame(dt float64, poll func() FrameInput) bool {
	if a.script != nil {
		a.script.step(&a.queue, a.shots.Queue)
		if a.exitOnDone && a.script.Done() {
			return true
		}
	}
	in, injected := a.queue.next(dt)
	if !injected {
		in = poll()
	}
	a.Step(in)
	return false
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	start := time.Now()
	screen.Fill(backgroundColor.RGBA())
	drawn := drawPlot(screen, a.plotter, a.sel)
	if a.panelVisible() {
		a.panel.draw(screen, a.sel, a.viewer, panelRect(a.width, a.height), a.logger)
	}
	a.hud.draw(screen, a.hudStatus())
	a.shots.flush(screen)
	a.stats.record(drawn, time.Since(start))
	if a.cfg.Debug {
		a.stats.log(a.logger)
	}
}

// Layout implements ebiten.Game. The logical screen follows the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = max(outsideWidth, 1), max(outsideHeight, 1)
	return a.width, a.height
}

// backgroundColor is the plot's clear color.
var backgroundColor = Color{R: 0.1, G: 0.1, B: 0.12, A: 1}

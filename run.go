package picsel

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens the window and runs app until the window is closed, the app's
// context is cancelled or an attached script finishes with exitOnDone set.
// A normal termination returns nil.
func Run(app *App) error {
	ebiten.SetWindowTitle(app.Title())
	ebiten.SetWindowSize(app.cfg.Window.Width, app.cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

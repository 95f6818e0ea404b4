package picsel

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	hudFontSize       = 14
	hudLineHeight     = 18
	hudPadding        = 8
	hudMessageSeconds = 4.0
	hudSampleSeconds  = 0.5
)

var hudBackground = Color{A: 0.5}

// hud is the status overlay in the top-left corner: document, layout state,
// transient messages and optionally FPS/TPS.
type hud struct {
	showFPS bool

	face     *text.GoTextFace
	faceDone bool

	message    string
	messageAge float64

	fps, tps    float64
	sinceSample float64
}

func newHUD(showFPS bool) *hud {
	return &hud{showFPS: showFPS}
}

// notify shows msg for a few seconds.
func (h *hud) notify(msg string) {
	h.message = msg
	h.messageAge = 0
}

func (h *hud) update(dt float64) {
	h.messageAge += dt
	if h.message != "" && h.messageAge >= hudMessageSeconds {
		h.message = ""
	}
	if !h.showFPS {
		return
	}
	h.sinceSample += dt
	if h.sinceSample < hudSampleSeconds {
		return
	}
	h.sinceSample = 0
	h.fps = ebiten.ActualFPS()
	h.tps = ebiten.ActualTPS()
}

// lines appends the message and FPS lines to status.
func (h *hud) lines(status []string) []string {
	out := append([]string(nil), status...)
	if h.message != "" {
		out = append(out, h.message)
	}
	if h.showFPS {
		out = append(out, fmt.Sprintf("FPS: %.1f  TPS: %.1f", h.fps, h.tps))
	}
	return out
}

// loadFace builds the Go Regular face once. A nil face means the debug font
// is used instead.
func (h *hud) loadFace() *text.GoTextFace {
	if h.faceDone {
		return h.face
	}
	h.faceDone = true
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil
	}
	h.face = &text.GoTextFace{Source: src, Size: hudFontSize}
	return h.face
}

func (h *hud) draw(dst *ebiten.Image, status []string) {
	lines := h.lines(status)
	if len(lines) == 0 {
		return
	}
	width := 0.0
	face := h.loadFace()
	for _, l := range lines {
		if face != nil {
			w, _ := text.Measure(l, face, hudLineHeight)
			width = max(width, w)
		} else {
			width = max(width, float64(len(l)*6))
		}
	}
	vector.DrawFilledRect(dst, 0, 0,
		float32(width+2*hudPadding), float32(len(lines)*hudLineHeight+2*hudPadding),
		hudBackground.RGBA(), false)

	for i, l := range lines {
		y := float64(hudPadding + i*hudLineHeight)
		if face == nil {
			ebitenutil.DebugPrintAt(dst, l, hudPadding, int(y))
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(hudPadding, y)
		op.ColorScale.ScaleWithColor(ColorWhite.RGBA())
		text.Draw(dst, l, face, op)
	}
}

// layoutStatus describes the animation: the strategy shown, or the
// transition in progress with its elapsed percentage.
func layoutStatus(anim Animation) string {
	switch a := anim.(type) {
	case Constant:
		return "Layout: " + a.Strategy.Name()
	case Interpolation:
		return fmt.Sprintf("Layout: %s -> %s (%.0f%%)", a.From.Name(), a.To.Name(), 100*a.Progress())
	default:
		return "Layout: ?"
	}
}

// hudStatus returns the app-level status lines.
func (a *App) hudStatus() []string {
	lines := []string{fmt.Sprintf("%s%s | %d sources, %d items, %d selected",
		filepath.Base(a.fileLabel()), dirtyMark(a.changed), a.sel.Len(), a.sel.ItemCount(), a.sel.SelectedCount())}
	if !a.plotter.Initialised() {
		return append(lines, "Press R to load the plot")
	}
	lines = append(lines, layoutStatus(a.plotter.Animation), controlStatus(a.plotter.Controls()))
	if !a.plotter.ShowSelection {
		lines = append(lines, "Selection rings hidden (S)")
	}
	return lines
}

// controlStatus lists every control as "name value" separated by bars.
func controlStatus(cs []Control) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.Name + " " + c.Format()
	}
	return strings.Join(parts, " | ")
}

func dirtyMark(changed bool) string {
	if changed {
		return "*"
	}
	return ""
}

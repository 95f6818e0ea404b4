package picsel

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// panelFraction is the share of the window width taken by the viewer.
	panelFraction = 0.35
	panelMinSize  = 100
	outlineWidth  = 5
)

var (
	imageInsetTopLeft     = Vec2{15, 60}
	imageInsetBottomRight = Vec2{15, 15}

	panelBackground = Color{R: 0.06, G: 0.06, B: 0.08, A: 0.92}
	outlineSelected = Color{R: 0, G: 0.7, B: 0, A: 1}
	outlineRejected = Color{R: 0.7, G: 0, B: 0, A: 1}
)

// viewerPanel draws the companion viewer's current image on the right side
// of the window. The texture is loaded lazily and replaced when the viewer
// moves.
type viewerPanel struct {
	open    bool
	texture *ebiten.Image
	item    ItemRef
	loaded  bool
	failed  bool
}

// invalidate drops the cached texture on the next draw. It is the viewer's
// OnChange hook.
func (p *viewerPanel) invalidate(ItemRef) {
	p.loaded = false
}

// panelRect returns the viewer panel's screen rectangle for a w×h window.
func panelRect(w, h int) Rect {
	pw := float64(w) * panelFraction
	return Rect{X: float64(w) - pw, Y: 0, Width: pw, Height: float64(h)}
}

// fitImage returns where an imgW×imgH image is drawn inside panel: scaled
// uniformly to fit the inset area and anchored at its top-left corner.
func fitImage(panel Rect, imgW, imgH int) Rect {
	availW := max(panelMinSize, panel.Width-imageInsetTopLeft.X-imageInsetBottomRight.X)
	availH := max(panelMinSize, panel.Height-imageInsetTopLeft.Y-imageInsetBottomRight.Y)
	if imgW <= 0 || imgH <= 0 {
		return Rect{X: panel.X + imageInsetTopLeft.X, Y: panel.Y + imageInsetTopLeft.Y}
	}
	scale := min(availW/float64(imgW), availH/float64(imgH))
	return Rect{
		X:      panel.X + imageInsetTopLeft.X,
		Y:      panel.Y + imageInsetTopLeft.Y,
		Width:  scale * float64(imgW),
		Height: scale * float64(imgH),
	}
}

// caption describes the current item: source name, file name, position in
// the source and pixel size.
func caption(src *Source, index, w, h int) string {
	return fmt.Sprintf("%s - %s (%d/%d) - %dx%d",
		src.Name(), filepath.Base(src.Items[index]), index+1, src.Len(), w, h)
}

func (p *viewerPanel) sync(sel *Selection, cur ItemRef, logger *log.Logger) {
	if p.loaded && p.item == cur {
		return
	}
	if p.texture != nil {
		p.texture.Deallocate()
		p.texture = nil
	}
	p.item, p.loaded, p.failed = cur, true, false
	pos := sel.IndexOf(cur.Source)
	if pos < 0 {
		p.failed = true
		return
	}
	path := sel.Source(pos).AbsPath(cur.Index)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		logger.Warn("Cannot show image", "path", path, "err", err)
		p.failed = true
		return
	}
	p.texture = img
}

func (p *viewerPanel) draw(dst *ebiten.Image, sel *Selection, viewer *Viewer, area Rect, logger *log.Logger) {
	cur, ok := viewer.Current()
	if !ok {
		return
	}
	vector.DrawFilledRect(dst, float32(area.X), float32(area.Y), float32(area.Width), float32(area.Height), panelBackground.RGBA(), false)

	p.sync(sel, cur, logger)
	textX, textY := int(area.X+imageInsetTopLeft.X), int(area.Y+imageInsetTopLeft.Y/2)
	pos := sel.IndexOf(cur.Source)
	if p.failed || p.texture == nil || pos < 0 {
		ebitenutil.DebugPrintAt(dst, "No image to show", textX, textY)
		return
	}

	b := p.texture.Bounds()
	ebitenutil.DebugPrintAt(dst, caption(sel.Source(pos), cur.Index, b.Dx(), b.Dy()), textX, textY)

	r := fitImage(area, b.Dx(), b.Dy())
	outline := outlineRejected
	if sel.Subset(pos).Has(cur.Index) {
		outline = outlineSelected
	}
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), outlineWidth, outline.RGBA(), false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(p.texture, op)
}

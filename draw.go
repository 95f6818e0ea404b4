package picsel

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// selectionThickness is how far (pixels) the selection ring extends
	// beyond a selected item's circle.
	selectionThickness = 2
	arrowWidth         = 10
	arrowHeight        = 10
)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

// drawPlot draws every visible item of sel, with selection rings when
// enabled and an arrow above the viewer's current item. It returns the
// number of circles drawn.
func drawPlot(dst *ebiten.Image, p *Plotter, sel *Selection) int {
	current, hasCurrent := ItemRef{}, false
	if p.Viewer != nil {
		current, hasCurrent = p.Viewer.Current()
	}

	drawn := 0
	var arrow *Circle
	p.EachVisible(sel, selectionThickness, func(v VisibleCircle) {
		if p.ShowSelection && v.Selected {
			fillCircle(dst, v.Circle.Center, v.Circle.Radius+selectionThickness, ColorSelection)
		}
		fillCircle(dst, v.Circle.Center, v.Circle.Radius, v.Circle.Color)
		drawn++
		if hasCurrent && v.Item == current {
			c := v.Circle
			arrow = &c
		}
	})
	if arrow != nil {
		drawArrow(dst, arrow.Center.Sub(Vec2{0, arrow.Radius + selectionThickness}), ColorMarker)
	}
	return drawn
}

func fillCircle(dst *ebiten.Image, center Vec2, radius float64, c Color) {
	// Sub-pixel circles still get one visible pixel.
	radius = max(radius, 0.5)
	vector.DrawFilledCircle(dst, float32(center.X), float32(center.Y), float32(radius), c.RGBA(), true)
}

// drawArrow fills a downward-pointing triangle whose tip is at tip.
func drawArrow(dst *ebiten.Image, tip Vec2, c Color) {
	pts := arrowVertices(tip)
	r, g, b, a := float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A)
	verts := make([]ebiten.Vertex, len(pts))
	for i, pt := range pts {
		verts[i] = ebiten.Vertex{
			DstX: float32(pt.X), DstY: float32(pt.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	dst.DrawTriangles(verts, []uint16{0, 1, 2}, ensureWhitePixel(), &op)
}

// arrowVertices returns the tip and the two upper corners of the marker.
func arrowVertices(tip Vec2) [3]Vec2 {
	return [3]Vec2{
		tip,
		tip.Add(Vec2{-arrowWidth / 2, -arrowHeight}),
		tip.Add(Vec2{arrowWidth / 2, -arrowHeight}),
	}
}

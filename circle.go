package picsel

import "math"

// Circle is what every layout strategy produces for an item and the only
// value the animation engine blends: a center, a radius and a fill color.
// Layout strategies emit circles in world space; Camera.CircleToScreen
// converts them for drawing and hit testing.
type Circle struct {
	Center Vec2
	Radius float64
	Color  Color
}

// LerpCircle interpolates center, radius and color component-wise.
// t = 0 yields a, t = 1 yields b.
func LerpCircle(a, b Circle, t float64) Circle {
	return Circle{
		Center: Vec2{lerp(a.Center.X, b.Center.X, t), lerp(a.Center.Y, b.Center.Y, t)},
		Radius: lerp(a.Radius, b.Radius, t),
		Color:  lerpColor(a.Color, b.Color, t),
	}
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c Circle) Contains(x, y float64) bool {
	return c.Distance(x, y) <= c.Radius
}

// Distance returns the Euclidean distance from (x, y) to the circle center.
func (c Circle) Distance(x, y float64) float64 {
	return math.Hypot(x-c.Center.X, y-c.Center.Y)
}

// Bounds returns the axis-aligned bounding rect of the circle grown by pad.
func (c Circle) Bounds(pad float64) Rect {
	r := c.Radius + pad
	return Rect{X: c.Center.X - r, Y: c.Center.Y - r, Width: 2 * r, Height: 2 * r}
}

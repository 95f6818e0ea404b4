package picsel

// Coverage records which items the last reload processed, per source. Items
// that failed to decode are absent: they are neither drawn nor hit-testable.
type Coverage map[SourceID][]bool

// Has reports whether item was processed.
func (c Coverage) Has(item ItemRef) bool {
	flags, ok := c[item.Source]
	return ok && item.Index >= 0 && item.Index < len(flags) && flags[item.Index]
}

// Count returns the number of processed items.
func (c Coverage) Count() int {
	n := 0
	for _, flags := range c {
		for _, ok := range flags {
			if ok {
				n++
			}
		}
	}
	return n
}

// EachItem calls fn for every covered item of sel in source order and then
// index order. pos is the source's position in sel. Sources added since the
// reload are skipped.
func (c Coverage) EachItem(sel *Selection, fn func(pos int, ref ItemRef)) {
	for pos, src := range sel.Sources() {
		flags, ok := c[src.ID]
		if !ok {
			continue
		}
		for i, covered := range flags {
			if covered && i < src.Len() {
				fn(pos, ItemRef{Source: src.ID, Index: i})
			}
		}
	}
}

// Hit is the result of a successful hit test.
type Hit struct {
	Item     ItemRef
	Circle   Circle // screen space
	Distance float64
}

// HitTest finds the item whose on-screen circle contains point and whose
// center is closest to it. Equal distances resolve to the item met first:
// lowest source position, then lowest index. ok is false when no circle
// contains point.
func HitTest(sel *Selection, cov Coverage, anim Animation, cam *Camera, point Vec2) (hit Hit, ok bool) {
	cov.EachItem(sel, func(_ int, ref ItemRef) {
		c := cam.CircleToScreen(anim.Circle(ref))
		d := c.Distance(point.X, point.Y)
		if d > c.Radius {
			return
		}
		if !ok || d < hit.Distance {
			hit = Hit{Item: ref, Circle: c, Distance: d}
			ok = true
		}
	})
	return hit, ok
}

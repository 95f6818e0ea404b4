package picsel

// Viewer is the companion single-image viewer's cursor: which item it shows.
// The hit tester and list UIs redirect it with SetImage; the arrow keys walk
// it through the selection.
type Viewer struct {
	current ItemRef
	valid   bool

	// OnChange, when set, is called after the current item changes.
	OnChange func(ref ItemRef)
}

// Current returns the item being shown. ok is false when there is none.
func (v *Viewer) Current() (ref ItemRef, ok bool) {
	return v.current, v.valid
}

// SetImage points the viewer at ref.
func (v *Viewer) SetImage(ref ItemRef) {
	v.current, v.valid = ref, true
	if v.OnChange != nil {
		v.OnChange(ref)
	}
}

// Clear leaves the viewer without an item.
func (v *Viewer) Clear() {
	v.current, v.valid = ItemRef{}, false
}

// Ensure keeps the viewer on an item of sel. If the current source was
// removed, the viewer moves to the first item of the first non-empty source,
// or clears when sel has no items.
func (v *Viewer) Ensure(sel *Selection) {
	if v.valid {
		if i := sel.IndexOf(v.current.Source); i >= 0 && v.current.Index < sel.Source(i).Len() {
			return
		}
	}
	for _, src := range sel.Sources() {
		if src.Len() > 0 {
			v.SetImage(ItemRef{Source: src.ID})
			return
		}
	}
	v.Clear()
}

// Next moves to the following item, continuing into the next non-empty
// source and wrapping around after the last one.
func (v *Viewer) Next(sel *Selection) {
	v.step(sel, 1)
}

// Prev moves to the preceding item, continuing into the previous non-empty
// source and wrapping around before the first one.
func (v *Viewer) Prev(sel *Selection) {
	v.step(sel, -1)
}

func (v *Viewer) step(sel *Selection, dir int) {
	if !v.valid {
		v.Ensure(sel)
		return
	}
	pos := sel.IndexOf(v.current.Source)
	if pos < 0 {
		v.Ensure(sel)
		return
	}
	idx := v.current.Index + dir
	if idx >= 0 && idx < sel.Source(pos).Len() {
		v.SetImage(ItemRef{Source: v.current.Source, Index: idx})
		return
	}
	n := sel.Len()
	for k := 1; k <= n; k++ {
		src := sel.Source(((pos+dir*k)%n + n) % n)
		if src.Len() == 0 {
			continue
		}
		if dir > 0 {
			v.SetImage(ItemRef{Source: src.ID})
		} else {
			v.SetImage(ItemRef{Source: src.ID, Index: src.Len() - 1})
		}
		return
	}
}

// ToggleSelected flips the selection state of the current item and reports
// whether anything changed.
func (v *Viewer) ToggleSelected(sel *Selection) bool {
	if !v.valid {
		return false
	}
	pos := sel.IndexOf(v.current.Source)
	if pos < 0 {
		return false
	}
	sel.Subset(pos).Toggle(v.current.Index)
	return true
}

package picsel

import "testing"

func TestControlSet(t *testing.T) {
	var (
		n int
		f float64
		b bool
	)
	ic := intControl("n", 1, 10, true, &n)
	fc := floatControl("f", -2, 2, true, &f)
	bc := boolControl("b", false, &b)

	tests := []struct {
		name string
		c    Control
		in   float64
		want float64
	}{
		{"int in range", ic, 4, 4},
		{"int rounds", ic, 4.6, 5},
		{"int clamps low", ic, -3, 1},
		{"int clamps high", ic, 30, 10},
		{"float in range", fc, 0.25, 0.25},
		{"float clamps", fc, 9, 2},
		{"bool true", bc, 0.3, 1},
		{"bool false", bc, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.c.Set(tt.in)
			if got := tt.c.Value(); got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
	if n != 10 || f != 2 || b {
		t.Errorf("backing values = %d, %v, %v", n, f, b)
	}
}

func TestControlStepAndFormat(t *testing.T) {
	var (
		n = 5
		f = -9.0
		b bool
	)
	ic := intControl("n", 1, 6, true, &n)
	fc := floatControl("f", -20, -4, true, &f)
	bc := boolControl("b", false, &b)

	ic.Step(1)
	ic.Step(1)
	if n != 6 || ic.Format() != "6" {
		t.Errorf("int after two steps = %d (%q), want 6", n, ic.Format())
	}
	fc.Step(-0.5)
	if f != -9.5 || fc.Format() != "-9.5" {
		t.Errorf("float after step = %v (%q), want -9.5", f, fc.Format())
	}
	bc.Step(0)
	if !b || bc.Format() != "on" {
		t.Errorf("bool after step = %v (%q), want on", b, bc.Format())
	}
	bc.Step(0)
	if b || bc.Format() != "off" {
		t.Errorf("bool after second step = %v (%q), want off", b, bc.Format())
	}
}

func TestPlotterControls(t *testing.T) {
	p := NewPlotter(DefaultConfig(), nil, quietLogger())
	var names []string
	for _, c := range p.Controls() {
		names = append(names, c.Name)
	}
	want := []string{ControlAnimationTime, ControlSeed, ControlCurveOrder, ControlPointRadius, ControlReadColors}
	if len(names) != len(want) {
		t.Fatalf("controls = %q, want %q", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("control %d = %q, want %q", i, names[i], want[i])
		}
	}

	c, ok := p.Control(ControlAnimationTime)
	if !ok || !c.Immediate {
		t.Fatalf("animation time control = %+v, %v", c, ok)
	}
	c.Set(250)
	if p.AnimationTime != MaxAnimationDuration {
		t.Errorf("AnimationTime = %v, want %v", p.AnimationTime, MaxAnimationDuration)
	}
	if _, ok := p.Control("missing"); ok {
		t.Error("found a control that does not exist")
	}
}

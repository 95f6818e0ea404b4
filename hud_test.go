package picsel

import (
	"context"
	"testing"
)

func TestHUDMessageExpires(t *testing.T) {
	h := newHUD(false)
	h.notify("Saved")
	h.update(hudMessageSeconds - 0.1)
	if got := h.lines([]string{"status"}); len(got) != 2 || got[1] != "Saved" {
		t.Errorf("lines = %q", got)
	}
	h.update(0.2)
	if got := h.lines([]string{"status"}); len(got) != 1 {
		t.Errorf("message outlived its timeout: %q", got)
	}

	h.notify("Again")
	if got := h.lines(nil); len(got) != 1 || got[0] != "Again" {
		t.Errorf("notify did not restart the timer: %q", got)
	}
}

func TestHUDLinesDoNotAliasStatus(t *testing.T) {
	h := newHUD(true)
	h.notify("msg")
	status := make([]string, 1, 8)
	status[0] = "status"
	lines := h.lines(status)
	if len(lines) != 3 || lines[2] != "FPS: 0.0  TPS: 0.0" {
		t.Errorf("lines = %q", lines)
	}
	if status[:2][1] != "" {
		t.Error("lines wrote into the caller's backing array")
	}
}

func TestLayoutStatus(t *testing.T) {
	_, a, b := twoLayouts()
	tests := []struct {
		anim Animation
		want string
	}{
		{Constant{Strategy: a}, "Layout: A"},
		{Interpolation{From: a, To: b, Duration: 2}, "Layout: A -> B (0%)"},
		{Interpolation{From: a, To: b, Duration: 2, Elapsed: 1.5}, "Layout: A -> B (75%)"},
	}
	for _, tt := range tests {
		if got := layoutStatus(tt.anim); got != tt.want {
			t.Errorf("layoutStatus = %q, want %q", got, tt.want)
		}
	}
}

func TestHUDStatus(t *testing.T) {
	a := NewApp(context.Background(), DefaultConfig(), quietLogger())
	a.plotter.Decoder = &fakeDecoder{}
	got := a.hudStatus()
	if len(got) != 2 || got[0] != "new file | 0 sources, 0 items, 0 selected" || got[1] != "Press R to load the plot" {
		t.Errorf("status = %q", got)
	}

	src := memSource("a", 4)
	sel := NewSelection()
	sel.AddSource(src)
	sel.Subset(0).Add(2)
	a.SetSelection(sel, "")
	a.Step(FrameInput{Dt: testDt, Actions: ActionNext | ActionToggleSelect})
	if err := a.Reload(); err != nil {
		t.Fatal(err)
	}
	a.Plotter().ShowSelection = false
	got = a.hudStatus()
	want := []string{
		"new file* | 1 sources, 4 items, 2 selected",
		"Layout: Random positions",
		"animation time 1 | seed 1 | curve iterations 20 | point radius -9 | read colors off",
		"Selection rings hidden (S)",
	}
	if len(got) != len(want) {
		t.Fatalf("status = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestControlStatus(t *testing.T) {
	var (
		n = 3
		f = 0.25
		b = true
	)
	got := controlStatus([]Control{
		intControl("n", 0, 10, true, &n),
		floatControl("f", 0, 1, true, &f),
		boolControl("b", false, &b),
	})
	if want := "n 3 | f 0.25 | b on"; got != want {
		t.Errorf("controlStatus = %q, want %q", got, want)
	}
	if got := controlStatus(nil); got != "" {
		t.Errorf("controlStatus(nil) = %q", got)
	}
}

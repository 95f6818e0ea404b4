package picsel

import "testing"

func TestActionHas(t *testing.T) {
	a := ActionReload | ActionNext
	if !a.Has(ActionReload) || !a.Has(ActionNext) || !a.Has(ActionReload|ActionNext) {
		t.Error("Has missed a set action")
	}
	if a.Has(ActionSave) || a.Has(ActionReload|ActionSave) {
		t.Error("Has matched an unset action")
	}
}

func TestDoubleClickDetection(t *testing.T) {
	tests := []struct {
		name   string
		gap    int
		offset Vec2
		want   bool
	}{
		{"quick in place", 10, Vec2{}, true},
		{"at the tick limit", doubleClickTicks, Vec2{}, true},
		{"too slow", doubleClickTicks + 1, Vec2{}, false},
		{"within slop", 5, Vec2{3, 0}, true},
		{"moved too far", 5, Vec2{4, 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p InputPoller
			p.tick = 100
			if p.registerClick(Vec2{50, 50}) {
				t.Fatal("first click reported a double click")
			}
			p.tick += tt.gap
			if got := p.registerClick(Vec2{50, 50}.Add(tt.offset)); got != tt.want {
				t.Errorf("second click = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTripleClickIsOneDoubleClick(t *testing.T) {
	var p InputPoller
	got := []bool{}
	for i := range 3 {
		p.tick = i * 5
		got = append(got, p.registerClick(Vec2{}))
	}
	if got[0] || !got[1] || got[2] {
		t.Errorf("clicks = %v, want [false true false]", got)
	}
}

package picsel

import (
	"context"
	"fmt"
	"io"
	"math"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func vecApprox(a, b Vec2, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps)
}

// quietLogger discards everything.
func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// memSource builds a folder source with n items that never touches disk.
func memSource(name string, n int) *Source {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("img%03d.jpg", i)
	}
	return newSource("/mem/"+name, SourceFolder, items)
}

// dated returns a sample with a DateTimeOriginal tag.
func dated(stamp string) StaticSample {
	return StaticSample{Center: Color{0, 0, 0, 1}, Tags: map[TagID]string{TagDateTimeOriginal: stamp}}
}

// fakeDecoder serves samples by path. Paths listed in fail return an error;
// unknown paths return an undated black sample.
type fakeDecoder struct {
	mu      sync.Mutex
	samples map[string]Sample
	fail    map[string]bool
	calls   int
	pixels  bool
}

func (d *fakeDecoder) Decode(path string, pixels bool) (Sample, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	d.pixels = d.pixels || pixels
	if d.fail[path] {
		return nil, newError(ErrCodeDecodeFailed, "decode %s", path)
	}
	if s, ok := d.samples[path]; ok {
		return s, nil
	}
	return StaticSample{Center: Color{0, 0, 0, 1}}, nil
}

// reloadFor runs a full reload pass with dec and fails the test on error.
func reloadFor(t *testing.T, sel *Selection, strategies []Strategy, dec Decoder) ReloadReport {
	t.Helper()
	report, err := Reload(context.Background(), sel, strategies, dec, ReloadOptions{Workers: 4, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	return report
}

// stubLayout is a Strategy with fixed circles, for animation and hit tests.
type stubLayout struct {
	name    string
	circles map[ItemRef]Circle
}

func (s *stubLayout) Name() string                 { return s.name }
func (s *stubLayout) Reset(*Selection)             {}
func (s *stubLayout) Process(*Source, int, Sample) {}
func (s *stubLayout) Controls() []Control          { return nil }
func (s *stubLayout) wantsPixels() bool            { return false }

func (s *stubLayout) Circle(item ItemRef) Circle {
	c, ok := s.circles[item]
	if !ok {
		missingItem(s.name, item)
	}
	return c
}

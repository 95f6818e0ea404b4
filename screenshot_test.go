package picsel

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hilbert", "hilbert"},
		{"after-apply", "after-apply"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"ünïcode", "_n_code"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{" padded ", "padded"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque red
		64, 32, 0, 128, // half-transparent orange
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		255, 0, 0, 255,
		127, 63, 0, 128,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}

func TestScreenshotterWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := screenshotter{
		dir:    dir,
		logger: quietLogger(),
		now:    func() time.Time { return time.Date(2024, 3, 9, 17, 4, 5, 0, time.UTC) },
	}
	s.Queue("first shot")
	s.Queue("second")
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.Pix[0], img.Pix[3] = 200, 255

	s.write(img)

	if len(s.queue) != 0 {
		t.Errorf("queue not emptied: %v", s.queue)
	}
	for _, name := range []string{"20240309_170405_first_shot.png", "20240309_170405_second.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing %s: %v", name, err)
			continue
		}
		got, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Errorf("decode %s: %v", name, err)
			continue
		}
		if b := got.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
			t.Errorf("%s bounds = %v", name, b)
		}
		if r, _, _, _ := got.At(0, 0).RGBA(); r>>8 != 200 {
			t.Errorf("%s pixel red = %d, want 200", name, r>>8)
		}
	}
}

func TestScreenshotterUnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	writeText(t, file, "x")
	s := screenshotter{dir: filepath.Join(file, "shots"), logger: quietLogger()}
	s.Queue("x")
	s.write(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	if len(s.queue) != 0 {
		t.Error("queue kept after a failed write")
	}
}

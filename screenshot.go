package picsel

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// screenshotter queues labeled screenshots and writes them as PNG files at
// the end of the frame's Draw call.
type screenshotter struct {
	dir    string
	queue  []string
	logger *log.Logger
	now    func() time.Time
}

// Queue requests a screenshot of the current frame. Safe to call from Update
// or Draw.
func (s *screenshotter) Queue(label string) {
	s.queue = append(s.queue, label)
}

// flush captures the rendered frame for every queued label.
func (s *screenshotter) flush(screen *ebiten.Image) {
	if len(s.queue) == 0 {
		return
	}
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	s.write(unpremultiply(pixels, w, h))
}

// write stores img once per queued label and empties the queue.
func (s *screenshotter) write(img *image.NRGBA) {
	defer func() { s.queue = s.queue[:0] }()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Error("Screenshot failed", "dir", s.dir, "err", err)
		return
	}
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	stamp := now().Format("20060102_150405")
	for _, label := range s.queue {
		path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			s.logger.Error("Screenshot failed", "err", err)
			continue
		}
		s.logger.Info("Saved screenshot", "path", path)
	}
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return wrapError(ErrCodeIO, err, "create %s", path)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return wrapError(ErrCodeIO, err, "encode %s", path)
	}
	return f.Close()
}

// sanitizeLabel maps a label to a file-name-safe string; every rune other
// than ASCII letters, digits, '-' and '.' becomes '_'.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}

package picsel

import (
	"time"

	"github.com/charmbracelet/log"
)

// debugLogFrames is how many frames are aggregated into one stats line.
const debugLogFrames = 60

// frameStats holds draw timing and circle counts over a window of frames.
type frameStats struct {
	frames   int
	circles  int
	drawTime time.Duration
	maxDraw  time.Duration
}

// record adds one frame.
func (s *frameStats) record(circles int, d time.Duration) {
	s.frames++
	s.circles += circles
	s.drawTime += d
	s.maxDraw = max(s.maxDraw, d)
	if s.frames > debugLogFrames {
		*s = frameStats{frames: 1, circles: circles, drawTime: d, maxDraw: d}
	}
}

// log writes the averages at debug level once a full window has been
// recorded, then starts a new window.
func (s *frameStats) log(logger *log.Logger) {
	if s.frames < debugLogFrames {
		return
	}
	n := time.Duration(s.frames)
	logger.Debug("Frame stats",
		"frames", s.frames,
		"circles", s.circles/s.frames,
		"draw", (s.drawTime / n).Round(time.Microsecond),
		"max", s.maxDraw.Round(time.Microsecond))
	*s = frameStats{}
}

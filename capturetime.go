package picsel

import (
	"strings"
	"time"
)

const exifTimeLayout = "2006:01:02 15:04:05"

// captureTagPairs are (timestamp, sub-second) tag pairs in lookup order:
// DateTimeOriginal, DateTimeDigitized, then DateTime.
var captureTagPairs = [...][2]TagID{
	{TagDateTimeOriginal, TagSubSecTimeOriginal},
	{TagDateTimeDigitized, TagSubSecTimeDigitized},
	{TagDateTime, TagSubSecTime},
}

// CaptureTime extracts the capture time of a sample. The first tag pair with
// a timestamp wins; its sub-second tag defaults to zero. Timestamps carry no
// zone and are interpreted as UTC. ok is false when no pair has a timestamp
// or the winning pair does not parse.
func CaptureTime(s Sample) (t time.Time, ok bool) {
	for _, pair := range captureTagPairs {
		stamp, found := s.Tag(pair[0])
		if !found {
			continue
		}
		sub, _ := s.Tag(pair[1])
		return parseCaptureTime(stamp, sub)
	}
	return time.Time{}, false
}

func parseCaptureTime(stamp, sub string) (time.Time, bool) {
	t, err := time.ParseInLocation(exifTimeLayout, strings.Trim(stamp, " \x00"), time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	ns, ok := parseSubSeconds(strings.Trim(sub, " \x00"))
	if !ok {
		return time.Time{}, false
	}
	return t.Add(time.Duration(ns)), true
}

// parseSubSeconds reads digits as a decimal fraction of a second, so "5" is
// half a second and "123" is 123ms. Digits past nanosecond precision are
// dropped.
func parseSubSeconds(sub string) (int64, bool) {
	if sub == "" {
		return 0, true
	}
	var ns int64
	scale := int64(100_000_000)
	for _, r := range sub {
		if r < '0' || r > '9' {
			return 0, false
		}
		ns += int64(r-'0') * scale
		scale /= 10
	}
	return ns, true
}

package picsel

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decoder turns an item path into a Sample. pixels reports whether any
// strategy needs CenterPixel; when false the decoder may skip pixel decoding.
type Decoder interface {
	Decode(path string, pixels bool) (Sample, error)
}

// exifFields maps the tags CaptureTime consults to goexif field names.
var exifFields = map[TagID]exif.FieldName{
	TagDateTime:            exif.DateTime,
	TagDateTimeOriginal:    exif.DateTimeOriginal,
	TagDateTimeDigitized:   exif.DateTimeDigitized,
	TagSubSecTime:          exif.SubSecTime,
	TagSubSecTimeOriginal:  exif.SubSecTimeOriginal,
	TagSubSecTimeDigitized: exif.SubSecTimeDigitized,
}

// FileDecoder reads samples from image files on disk. Files without EXIF
// data decode to samples without tags rather than failing; files whose image
// data cannot be parsed fail with ErrCodeDecodeFailed.
type FileDecoder struct{}

// Decode implements Decoder.
func (FileDecoder) Decode(path string, pixels bool) (Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapError(ErrCodeIO, err, "read %s", path)
	}
	s := StaticSample{Center: Color{0, 0, 0, 1}, Tags: readTags(data)}
	if !pixels {
		// The header still has to parse, so files that are not images are
		// skipped regardless of the strategies in use.
		if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
			return nil, wrapError(ErrCodeDecodeFailed, err, "decode %s", path)
		}
		return s, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, wrapError(ErrCodeDecodeFailed, err, "decode %s", path)
	}
	s.Center = centerPixel(img)
	return s, nil
}

func readTags(data []byte) map[TagID]string {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	tags := make(map[TagID]string, len(exifFields))
	for id, field := range exifFields {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		if s, err := tag.StringVal(); err == nil {
			tags[id] = strings.Trim(s, " \x00")
		} else if v, err := tag.Int(0); err == nil {
			tags[id] = strconv.Itoa(v)
		}
	}
	return tags
}

// centerPixel samples the pixel at (round(w/2), round(h/2)) with halves
// rounded to even, clamped to the image.
func centerPixel(img image.Image) Color {
	b := img.Bounds()
	if b.Empty() {
		return Color{0, 0, 0, 1}
	}
	x := b.Min.X + min(int(math.RoundToEven(float64(b.Dx())/2)), b.Dx()-1)
	y := b.Min.Y + min(int(math.RoundToEven(float64(b.Dy())/2)), b.Dy()-1)
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

package picsel

// TagID is a numeric EXIF tag identifier.
type TagID uint16

// EXIF tags consulted for an item's capture time.
const (
	TagDateTime            TagID = 306
	TagDateTimeOriginal    TagID = 36867
	TagDateTimeDigitized   TagID = 36868
	TagSubSecTime          TagID = 37520
	TagSubSecTimeOriginal  TagID = 37521
	TagSubSecTimeDigitized TagID = 37522
)

// Sample is the decoded view of one item that layout strategies consume: a
// representative pixel and metadata lookup by tag. Strategies never open
// files themselves.
type Sample interface {
	// CenterPixel returns the color of the pixel at the image center.
	CenterPixel() Color
	// Tag returns the value of an EXIF tag. Tuple-valued tags yield their
	// first element.
	Tag(id TagID) (string, bool)
}

// StaticSample is a Sample backed by plain values.
type StaticSample struct {
	Center Color
	Tags   map[TagID]string
}

// CenterPixel implements Sample.
func (s StaticSample) CenterPixel() Color {
	return s.Center
}

// Tag implements Sample.
func (s StaticSample) Tag(id TagID) (string, bool) {
	v, ok := s.Tags[id]
	return v, ok
}

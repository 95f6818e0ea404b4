package picsel

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SourceID identifies a Source for the lifetime of the process. Layout
// strategies key their state by SourceID so that a removed or rebuilt source
// can never be confused with its replacement.
type SourceID = uuid.UUID

// SourceKind distinguishes how a Source's item list was produced.
type SourceKind uint8

const (
	SourceFolder    SourceKind = iota // items scanned from a directory
	SourceSelection                   // items flattened from another selection file
)

// String returns the selection file "type" value for the kind.
func (k SourceKind) String() string {
	if k == SourceSelection {
		return "selection"
	}
	return "folder"
}

// imageExtensions lists the lower-case file extensions a folder scan accepts.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// IsImagePath reports whether path has a recognised image extension.
func IsImagePath(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// Source is a named, ordered list of image paths. The list is fixed at
// construction; to pick up changes on disk, build a new Source.
type Source struct {
	ID   SourceID
	Path string
	Kind SourceKind
	// Items are relative to Dir().
	Items []string
}

func newSource(path string, kind SourceKind, items []string) *Source {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Source{ID: uuid.New(), Path: path, Kind: kind, Items: items}
}

// NewFolderSource scans dir (non-recursively) for image files. Items are file
// names in directory order, which os.ReadDir sorts by name.
func NewFolderSource(dir string) (*Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, wrapError(ErrCodeSourceNotFound, err, "folder %s", dir)
		}
		return nil, wrapError(ErrCodeIO, err, "scan folder %s", dir)
	}
	items := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsImagePath(e.Name()) {
			continue
		}
		// Follow symlinks; anything that is not a regular file is skipped.
		if !e.Type().IsRegular() {
			fi, err := os.Stat(filepath.Join(dir, e.Name()))
			if err != nil || !fi.Mode().IsRegular() {
				continue
			}
		}
		items = append(items, e.Name())
	}
	return newSource(dir, SourceFolder, items), nil
}

// NewSelectionFileSource flattens the selected items of the selection file at
// path into a single source. Items are relative to the file's directory.
func NewSelectionFileSource(path string) (*Source, error) {
	f, err := readSelectionFile(path)
	if err != nil {
		return nil, err
	}
	var items []string
	for _, e := range f.Sources {
		prefix := filepath.FromSlash(e.Key)
		if e.Type == SourceSelection {
			prefix = filepath.Dir(prefix)
		}
		for _, item := range e.Selection {
			items = append(items, filepath.Join(prefix, filepath.FromSlash(item)))
		}
	}
	return newSource(path, SourceSelection, items), nil
}

// Name returns the base name of the folder or selection file.
func (s *Source) Name() string {
	return filepath.Base(s.Path)
}

// Dir returns the directory items are relative to: the folder itself, or the
// directory containing the selection file.
func (s *Source) Dir() string {
	if s.Kind == SourceFolder {
		return s.Path
	}
	return filepath.Dir(s.Path)
}

// AbsPath returns the absolute path of item i.
func (s *Source) AbsPath(i int) string {
	return filepath.Join(s.Dir(), s.Items[i])
}

// Len returns the number of items.
func (s *Source) Len() int {
	return len(s.Items)
}

package picsel

import (
	"io"
	"os"
	"path/filepath"
	"slices"
)

// Subset is a set of item indices within one Source.
type Subset map[int]struct{}

// Has reports whether i is selected.
func (s Subset) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Add selects i.
func (s Subset) Add(i int) { s[i] = struct{}{} }

// Remove deselects i.
func (s Subset) Remove(i int) { delete(s, i) }

// Toggle flips the selection state of i and returns the new state.
func (s Subset) Toggle(i int) bool {
	if s.Has(i) {
		delete(s, i)
		return false
	}
	s[i] = struct{}{}
	return true
}

// Sorted returns the selected indices in ascending order.
func (s Subset) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// Selection is the working set: an ordered list of sources and, for each, the
// subset of selected item indices. subsets[i] always belongs to sources[i].
type Selection struct {
	sources []*Source
	subsets []Subset
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// LoadSelection reads the selection file at path. Folder sources are
// rescanned and selection sources are flattened from their referenced files;
// selected items that no longer exist in a source are dropped. Any failure
// fails the whole load.
func LoadSelection(path string) (*Selection, error) {
	f, err := readSelectionFile(path)
	if err != nil {
		return nil, err
	}
	base := filepath.Dir(path)
	sel := NewSelection()
	for _, e := range f.Sources {
		full := filepath.Join(base, filepath.FromSlash(e.Key))
		var src *Source
		if e.Type == SourceFolder {
			src, err = NewFolderSource(full)
		} else {
			src, err = NewSelectionFileSource(full)
		}
		if err != nil {
			return nil, err
		}

		wanted := make(map[string]bool, len(e.Selection))
		for _, p := range e.Selection {
			wanted[filepath.FromSlash(p)] = true
		}
		subset := make(Subset, len(e.Selection))
		for i, item := range src.Items {
			if wanted[item] {
				subset.Add(i)
			}
		}
		sel.sources = append(sel.sources, src)
		sel.subsets = append(sel.subsets, subset)
	}
	return sel, nil
}

// Save writes the selection to path. Source keys are stored relative to the
// directory containing path and selected items relative to their source.
func (s *Selection) Save(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return wrapError(ErrCodeIO, err, "resolve %s", path)
	}
	base := filepath.Dir(abs)

	f := selectionFile{Sources: make([]selectionEntry, 0, len(s.sources))}
	for i, src := range s.sources {
		rel, err := filepath.Rel(base, src.Path)
		if err != nil {
			rel = src.Path
		}
		items := make([]string, 0, len(s.subsets[i]))
		for _, idx := range s.subsets[i].Sorted() {
			items = append(items, filepath.ToSlash(src.Items[idx]))
		}
		f.Sources = append(f.Sources, selectionEntry{
			Key:       filepath.ToSlash(rel),
			Type:      src.Kind,
			Selection: items,
		})
	}
	data, err := f.encode()
	if err != nil {
		return wrapError(ErrCodeIO, err, "encode selection")
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return wrapError(ErrCodeIO, err, "write %s", abs)
	}
	return nil
}

// AddSource appends src with an empty subset.
func (s *Selection) AddSource(src *Source) {
	s.sources = append(s.sources, src)
	s.subsets = append(s.subsets, Subset{})
}

// RemoveSource removes the source at position i together with its subset.
func (s *Selection) RemoveSource(i int) {
	s.sources = slices.Delete(s.sources, i, i+1)
	s.subsets = slices.Delete(s.subsets, i, i+1)
}

// Sources returns the ordered source list. The returned slice MUST NOT be mutated.
func (s *Selection) Sources() []*Source {
	return s.sources
}

// Source returns the source at position i.
func (s *Selection) Source(i int) *Source {
	return s.sources[i]
}

// Subset returns the selected indices of the source at position i. The
// returned set is live: edits change the selection.
func (s *Selection) Subset(i int) Subset {
	return s.subsets[i]
}

// Len returns the number of sources.
func (s *Selection) Len() int {
	return len(s.sources)
}

// ItemCount returns the total number of items over all sources.
func (s *Selection) ItemCount() int {
	n := 0
	for _, src := range s.sources {
		n += src.Len()
	}
	return n
}

// SelectedCount returns the number of selected items across all sources.
func (s *Selection) SelectedCount() int {
	n := 0
	for _, sub := range s.subsets {
		n += len(sub)
	}
	return n
}

// IndexOf returns the position of the source with the given id, or -1.
func (s *Selection) IndexOf(id SourceID) int {
	for i, src := range s.sources {
		if src.ID == id {
			return i
		}
	}
	return -1
}

// IsSelected reports whether ref is in its source's subset. Refs to sources
// not in the selection are never selected.
func (s *Selection) IsSelected(ref ItemRef) bool {
	i := s.IndexOf(ref.Source)
	return i >= 0 && s.subsets[i].Has(ref.Index)
}

// Export copies every selected item into dir, creating it if needed. progress, when non-nil, is
// called after each copied file with the running count and the total.
func (s *Selection) Export(dir string, progress func(done, total int)) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return wrapError(ErrCodeIO, err, "create %s", dir)
	}
	total := s.SelectedCount()
	done := 0
	for i, src := range s.sources {
		for _, idx := range s.subsets[i].Sorted() {
			from := src.AbsPath(idx)
			to := filepath.Join(dir, filepath.Base(src.Items[idx]))
			if err := copyFile(from, to); err != nil {
				return err
			}
			done++
			if progress != nil {
				progress(done, total)
			}
		}
	}
	return nil
}

// copyFile copies from to to and carries over the modification time.
func copyFile(from, to string) error {
	in, err := os.Open(from)
	if err != nil {
		return wrapError(ErrCodeIO, err, "open %s", from)
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return wrapError(ErrCodeIO, err, "stat %s", from)
	}
	out, err := os.Create(to)
	if err != nil {
		return wrapError(ErrCodeIO, err, "create %s", to)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return wrapError(ErrCodeIO, err, "copy %s", from)
	}
	if err := out.Close(); err != nil {
		return wrapError(ErrCodeIO, err, "close %s", to)
	}
	return os.Chtimes(to, fi.ModTime(), fi.ModTime())
}

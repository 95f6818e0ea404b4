package picsel

import (
	"encoding/json"
	"fmt"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// selectionEntry is one record of the "sources" mapping of a selection file.
type selectionEntry struct {
	Key       string
	Type      SourceKind
	Selection []string
}

// selectionFile is the parsed form of a selection file. Entries keep the key
// order of the document.
type selectionFile struct {
	Sources []selectionEntry
}

type selectionRecord struct {
	Type      string   `json:"type"`
	Selection []string `json:"selection"`
}

// selectionDocument is the on-disk shape. The ordered map keeps the
// "sources" keys in document order in both directions.
type selectionDocument struct {
	Sources *orderedmap.OrderedMap[string, selectionRecord] `json:"sources"`
}

func readSelectionFile(path string) (*selectionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, wrapError(ErrCodeSourceNotFound, err, "selection file %s", path)
		}
		return nil, wrapError(ErrCodeIO, err, "read selection file %s", path)
	}
	f, err := parseSelectionFile(data)
	if err != nil {
		return nil, wrapError(ErrCodeInvalidSelection, err, "parse %s", path)
	}
	return f, nil
}

func parseSelectionFile(data []byte) (*selectionFile, error) {
	var doc selectionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Sources == nil {
		return nil, fmt.Errorf(`missing "sources"`)
	}
	f := &selectionFile{Sources: make([]selectionEntry, 0, doc.Sources.Len())}
	for pair := doc.Sources.Oldest(); pair != nil; pair = pair.Next() {
		kind, err := parseSourceKind(pair.Value.Type)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", pair.Key, err)
		}
		f.Sources = append(f.Sources, selectionEntry{Key: pair.Key, Type: kind, Selection: pair.Value.Selection})
	}
	return f, nil
}

func parseSourceKind(s string) (SourceKind, error) {
	switch s {
	case "folder":
		return SourceFolder, nil
	case "selection":
		return SourceSelection, nil
	default:
		return 0, fmt.Errorf("unknown type %q", s)
	}
}

// encode writes the file as an indented JSON document with the entries in
// order.
func (f *selectionFile) encode() ([]byte, error) {
	doc := selectionDocument{Sources: orderedmap.New[string, selectionRecord](len(f.Sources))}
	for _, e := range f.Sources {
		sel := e.Selection
		if sel == nil {
			sel = []string{}
		}
		doc.Sources.Set(e.Key, selectionRecord{Type: e.Type.String(), Selection: sel})
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

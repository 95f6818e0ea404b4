package cli

import (
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/picsel"
)

func TestSourceTable(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "holiday", "a.png"), color.NRGBA{A: 255})
	writePNG(t, filepath.Join(root, "holiday", "b.png"), color.NRGBA{A: 255})
	src, err := picsel.NewFolderSource(filepath.Join(root, "holiday"))
	if err != nil {
		t.Fatal(err)
	}
	sel := picsel.NewSelection()
	sel.AddSource(src)
	sel.Subset(0).Add(1)

	lines := strings.Split(sourceTable(sel), "\n")
	if len(lines) != 2 {
		t.Fatalf("table = %q", lines)
	}
	header := strings.Fields(lines[0])
	if strings.Join(header, " ") != "source kind items selected" {
		t.Errorf("header = %q", header)
	}
	row := strings.Fields(lines[1])
	if strings.Join(row, " ") != "holiday folder 2 1" {
		t.Errorf("row = %q", row)
	}
	if lipgloss.Width(lines[0]) != lipgloss.Width(lines[1]) {
		t.Errorf("rows not aligned: %d vs %d", lipgloss.Width(lines[0]), lipgloss.Width(lines[1]))
	}
}

func TestInfoCommand(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "pics", "a.png"), color.NRGBA{A: 255})
	doc := filepath.Join(root, "picks.json")
	writeFile(t, doc, `{"sources": {"pics": {"type": "folder", "selection": ["a.png"]}}}`)

	out, err := execute(t, "info", doc)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{doc, "pics", "sources", "selected"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, err = execute(t, "info", filepath.Join(root, "pics"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "new selection") {
		t.Errorf("output = %s", out)
	}
}

package source

import (
	"os"
	"testing"
)

func TestPositionAdvanceTracksTabsAsFourColumns(t *testing.T) {
	tab := Position{Line: 1, Column: 1, Index: 0}
	tab.Advance("\t")
	if tab.Column != 5 {
		t.Fatalf("expected a tab to advance to col 5, got col %d", tab.Column)
	}

	pos := Position{Line: 1, Column: 1, Index: 0}
	pos.Advance("\tx = 1\n")

	if pos.Line != 2 || pos.Column != 1 {
		t.Fatalf("expected line 2 col 1, got line %d col %d", pos.Line, pos.Column)
	}
}

func TestLocationContains(t *testing.T) {
	name := "entity.aca"
	loc := NewLocation(&name,
		&Position{Line: 3, Column: 5},
		&Position{Line: 3, Column: 12},
	)

	if !loc.Contains(&Position{Line: 3, Column: 8}) {
		t.Fatal("expected position inside span to be contained")
	}
	if loc.Contains(&Position{Line: 3, Column: 13}) {
		t.Fatal("expected position past span end to be excluded")
	}
	if loc.Contains(&Position{Line: 4, Column: 1}) {
		t.Fatal("expected position on a different line to be excluded")
	}
}

func TestLocationGetTextSingleLine(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/snippet.aca"
	content := "x = 0XF2e + 0b11\ny = x\n"
	writeFile(t, path, content)

	loc := NewLocation(&path, &Position{Line: 1, Column: 1}, &Position{Line: 1, Column: 17})
	text := loc.GetText()
	if text != "x = 0XF2e + 0b11" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
}

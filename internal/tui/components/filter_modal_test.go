package components

import (
	"testing"

	"github.com/JimClermonts/amro-assignment/internal/domain"
)

var testGenres = []domain.Genre{
	{ID: 28, Name: "Action"},
	{ID: 12, Name: "Adventure"},
	{ID: 35, Name: "Comedy"},
	{ID: 99, Name: "Documentary"},
}

func TestFilterModal_CursorGenre(t *testing.T) {
	m := NewFilterModal()
	m.Show(testGenres, nil)

	g, ok := m.CursorGenre()
	if !ok || g.Name != "Action" {
		t.Fatalf("expected Action under initial cursor, got %+v (ok=%v)", g, ok)
	}

	m.MoveDown()
	m.MoveDown()
	g, _ = m.CursorGenre()
	if g.Name != "Comedy" {
		t.Fatalf("expected Comedy after two moves, got %q", g.Name)
	}
}

func TestFilterModal_QuickMatchNarrows(t *testing.T) {
	m := NewFilterModal()
	m.Show(testGenres, nil)

	for _, r := range "com" {
		m.TypeRune(r)
	}

	g, ok := m.CursorGenre()
	if !ok || g.Name != "Comedy" {
		t.Fatalf("expected Comedy as best match for 'com', got %+v (ok=%v)", g, ok)
	}

	// Backspacing back to empty restores the full list.
	for range "com" {
		m.Backspace()
	}
	g, _ = m.CursorGenre()
	if g.Name != "Action" {
		t.Fatalf("expected full list after backspace, got %q", g.Name)
	}
}

func TestFilterModal_NoMatches(t *testing.T) {
	m := NewFilterModal()
	m.Show(testGenres, nil)

	for _, r := range "zzz" {
		m.TypeRune(r)
	}

	if _, ok := m.CursorGenre(); ok {
		t.Fatal("expected no genre under cursor with no matches")
	}
}

func TestFilterModal_ShowResetsState(t *testing.T) {
	m := NewFilterModal()
	m.Show(testGenres, nil)
	m.MoveDown()
	m.TypeRune('x')

	m.Show(testGenres, map[int]bool{28: true})
	g, ok := m.CursorGenre()
	if !ok || g.Name != "Action" {
		t.Fatalf("show must reset cursor and match, got %+v (ok=%v)", g, ok)
	}
}

func TestSortModal_CursorStartsOnActive(t *testing.T) {
	m := NewSortModal()
	m.Show(m.options[2])

	if m.Selection() != m.options[2] {
		t.Fatalf("cursor must start on the active key, got %v", m.Selection())
	}

	m.MoveUp()
	if m.Selection() != m.options[1] {
		t.Fatalf("expected previous option, got %v", m.Selection())
	}

	// Cursor clamps at both ends.
	m.MoveUp()
	m.MoveUp()
	if m.Selection() != m.options[0] {
		t.Fatalf("cursor must clamp at the top, got %v", m.Selection())
	}
}

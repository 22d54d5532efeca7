package components

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/JimClermonts/amro-assignment/internal/domain"
	"github.com/JimClermonts/amro-assignment/internal/tui/styles"
)

// FilterModal is a popup for toggling genre filters. Typing narrows the
// genre list with fuzzy matching; space toggles the genre under the cursor.
type FilterModal struct {
	visible  bool
	genres   []domain.Genre
	selected map[int]bool
	cursor   int
	match    string
}

// NewFilterModal creates a new filter modal
func NewFilterModal() FilterModal {
	return FilterModal{selected: make(map[int]bool)}
}

// Show displays the modal with the given genres and current selection
func (m *FilterModal) Show(genres []domain.Genre, selected map[int]bool) {
	m.visible = true
	m.genres = genres
	m.selected = selected
	m.cursor = 0
	m.match = ""
}

// Hide closes the modal
func (m *FilterModal) Hide() {
	m.visible = false
}

// Visible reports whether the modal is shown
func (m FilterModal) Visible() bool {
	return m.visible
}

// SetSelected replaces the selection shown by the modal
func (m *FilterModal) SetSelected(selected map[int]bool) {
	m.selected = selected
}

// MoveUp moves the cursor up one genre
func (m *FilterModal) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveDown moves the cursor down one genre
func (m *FilterModal) MoveDown() {
	if m.cursor < len(m.visibleGenres())-1 {
		m.cursor++
	}
}

// TypeRune appends typed characters to the quick-match query
func (m *FilterModal) TypeRune(r rune) {
	m.match += string(r)
	m.cursor = 0
}

// Backspace removes the last quick-match character
func (m *FilterModal) Backspace() {
	if m.match != "" {
		m.match = m.match[:len(m.match)-1]
		m.cursor = 0
	}
}

// CursorGenre returns the genre under the cursor; ok is false when the
// narrowed list is empty.
func (m FilterModal) CursorGenre() (domain.Genre, bool) {
	visible := m.visibleGenres()
	if len(visible) == 0 || m.cursor >= len(visible) {
		return domain.Genre{}, false
	}
	return visible[m.cursor], true
}

// visibleGenres narrows the genre list by the quick-match query
func (m FilterModal) visibleGenres() []domain.Genre {
	if m.match == "" {
		return m.genres
	}

	names := make([]string, len(m.genres))
	for i, g := range m.genres {
		names[i] = g.Name
	}

	matches := fuzzy.Find(m.match, names)
	visible := make([]domain.Genre, len(matches))
	for i, match := range matches {
		visible[i] = m.genres[match.Index]
	}
	return visible
}

// View renders the modal
func (m FilterModal) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.ModalTitle.Render("Filter by genre"))
	b.WriteString("\n")
	if m.match != "" {
		b.WriteString(styles.AccentStyle.Render("match: " + m.match))
		b.WriteString("\n")
	}

	visible := m.visibleGenres()
	if len(visible) == 0 {
		b.WriteString(styles.DimStyle.Render("  no matching genres"))
		b.WriteString("\n")
	}
	for i, g := range visible {
		check := "[ ]"
		if m.selected[g.ID] {
			check = "[x]"
		}
		line := fmt.Sprintf("  %s %s", check, g.Name)
		if i == m.cursor {
			line = styles.SelectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(styles.DimStyle.Render("space toggle · c clear · esc close"))
	return styles.ModalBorder.Render(b.String())
}

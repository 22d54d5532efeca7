package components

import (
	"strings"

	"github.com/JimClermonts/amro-assignment/internal/query"
	"github.com/JimClermonts/amro-assignment/internal/tui/styles"
)

// SortModal is a small popup for choosing the list ordering
type SortModal struct {
	visible bool
	options []query.SortKey
	cursor  int
	active  query.SortKey
}

// NewSortModal creates a new sort modal
func NewSortModal() SortModal {
	return SortModal{options: query.SortKeys()}
}

// Show displays the modal with the cursor on the active sort key
func (m *SortModal) Show(active query.SortKey) {
	m.visible = true
	m.active = active
	m.cursor = 0
	for i, opt := range m.options {
		if opt == active {
			m.cursor = i
			break
		}
	}
}

// Hide closes the modal
func (m *SortModal) Hide() {
	m.visible = false
}

// Visible reports whether the modal is shown
func (m SortModal) Visible() bool {
	return m.visible
}

// MoveUp moves the cursor up one option
func (m *SortModal) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveDown moves the cursor down one option
func (m *SortModal) MoveDown() {
	if m.cursor < len(m.options)-1 {
		m.cursor++
	}
}

// Selection returns the sort key under the cursor
func (m SortModal) Selection() query.SortKey {
	return m.options[m.cursor]
}

// View renders the modal
func (m SortModal) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.ModalTitle.Render("Sort by"))
	b.WriteString("\n")

	for i, opt := range m.options {
		line := "  " + opt.String()
		if opt == m.active {
			line += " •"
		}
		if i == m.cursor {
			line = styles.SelectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(styles.DimStyle.Render("enter select · esc close"))
	return styles.ModalBorder.Render(b.String())
}

package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	TealAccent = lipgloss.Color("#01B4E4")
	GreenSoft  = lipgloss.Color("#90CEA1")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Red        = lipgloss.Color("#EF4444")
	Yellow     = lipgloss.Color("#F59E0B")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(TealAccent)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	StaleStyle = lipgloss.NewStyle().
			Foreground(Yellow)

	FreshStyle = lipgloss.NewStyle().
			Foreground(GreenSoft)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(TealAccent).
			Padding(0, 1)
)

// Modal styles
var (
	ModalBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(TealAccent).
			Padding(0, 1)

	ModalTitle = lipgloss.NewStyle().
			Foreground(TealAccent).
			Bold(true)
)

// HeaderBar renders the top bar
var HeaderBar = lipgloss.NewStyle().
	Foreground(White).
	Background(lipgloss.Color("#1F2937")).
	Bold(true).
	Padding(0, 1)

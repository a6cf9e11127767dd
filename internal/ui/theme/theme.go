package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary = lipgloss.Color("#4F46E5") // Indigo
	Success = lipgloss.Color("#16A34A") // Green
	Warning = lipgloss.Color("#CA8A04") // Amber
	Error   = lipgloss.Color("#DC2626") // Red
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Palette is the set of styles used to print recommendations. The zero
// value renders plain text.
type Palette struct {
	Title      lipgloss.Style
	Heading    lipgloss.Style
	Dim        lipgloss.Style
	Eligible   lipgloss.Style
	CheckReqs  lipgloss.Style
	Score      lipgloss.Style
	Missing    lipgloss.Style
	Card       lipgloss.Style
	Boxed      bool
	ReasonMark string
}

// Plain returns an unstyled palette for pipes and tests.
func Plain() Palette {
	return Palette{
		Title:      lipgloss.NewStyle(),
		Heading:    lipgloss.NewStyle(),
		Dim:        lipgloss.NewStyle(),
		Eligible:   lipgloss.NewStyle(),
		CheckReqs:  lipgloss.NewStyle(),
		Score:      lipgloss.NewStyle(),
		Missing:    lipgloss.NewStyle(),
		ReasonMark: "*",
	}
}

// Color returns the terminal palette.
func Color() Palette {
	return Palette{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary),

		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(Text),

		Dim: lipgloss.NewStyle().
			Foreground(TextDim),

		Eligible: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		CheckReqs: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Score: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true),

		Missing: lipgloss.NewStyle().
			Foreground(Error),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1),
		Boxed: true,

		ReasonMark: "✓",
	}
}

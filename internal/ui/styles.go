package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dark palette colors
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for very dim text
	ColorBorder    = "238" // Unselected card borders
)

// Light palette colors
const (
	ColorLightAccent    = "25"  // Blue
	ColorLightHighlight = "92"  // Purple
	ColorLightMuted     = "245" // Gray
	ColorLightText      = "235" // Near black
	ColorLightDim       = "242"
	ColorLightBorder    = "250"
)

// Difficulty badge colors, shared by both palettes.
const (
	ColorBeginner     = "35"  // Emerald
	ColorIntermediate = "178" // Amber
	ColorAdvanced     = "168" // Rose
	ColorOnBadge      = "232"
)

type palette struct {
	accent, highlight, muted, text, dim, border string
}

var (
	darkPalette = palette{
		accent: ColorAccent, highlight: ColorHighlight, muted: ColorMuted,
		text: ColorText, dim: ColorDim, border: ColorBorder,
	}
	lightPalette = palette{
		accent: ColorLightAccent, highlight: ColorLightHighlight, muted: ColorLightMuted,
		text: ColorLightText, dim: ColorLightDim, border: ColorLightBorder,
	}
)

// Theme contains the style definitions used across views for one of the
// light or dark presentations. Switching themes never touches data.
type Theme struct {
	Dark bool

	// Title styles
	Brand    lipgloss.Style // App name in the header
	Title    lipgloss.Style // Bold accent color - for view titles
	Heading  lipgloss.Style // Section headings inside a view
	Subtitle lipgloss.Style // Lead paragraph under a title

	// Box styles
	Card         lipgloss.Style // Rounded border, unselected
	CardSelected lipgloss.Style // Rounded border, cursor on it
	Box          lipgloss.Style // Panels such as the search bar

	// Text styles
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Hint     lipgloss.Style
	Selected lipgloss.Style
	Empty    lipgloss.Style // Empty state text (muted, italic)
	Status   lipgloss.Style
	Danger   lipgloss.Style
	Check    lipgloss.Style // Milestone and plan feature ticks

	// Controls
	Button        lipgloss.Style // Secondary action
	ButtonPrimary lipgloss.Style // Primary action, cursor on it
	ButtonLocked  lipgloss.Style
	Chip          lipgloss.Style // Skill tags
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style

	// Transcript
	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style

	// Keybind help
	Key     lipgloss.Style
	KeyDesc lipgloss.Style
	KeyBox  lipgloss.Style
}

// NewTheme builds the light or dark theme.
func NewTheme(dark bool) Theme {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	c := func(s string) lipgloss.Color { return lipgloss.Color(s) }
	return Theme{
		Dark: dark,

		Brand: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(p.highlight)),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(p.accent)),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(p.text)),
		Subtitle: lipgloss.NewStyle().
			Foreground(c(p.dim)),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(p.border)).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(p.highlight)).
			Padding(0, 1),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(p.accent)).
			Padding(0, 1),

		Normal: lipgloss.NewStyle().
			Foreground(c(p.text)),
		Muted: lipgloss.NewStyle().
			Foreground(c(p.muted)),
		Hint: lipgloss.NewStyle().
			Foreground(c(p.muted)),
		Selected: lipgloss.NewStyle().
			Foreground(c(p.highlight)).
			Bold(true),
		Empty: lipgloss.NewStyle().
			Foreground(c(p.muted)).
			Italic(true),
		Status: lipgloss.NewStyle().
			Foreground(c(p.accent)),
		Danger: lipgloss.NewStyle().
			Foreground(c(ColorDanger)),
		Check: lipgloss.NewStyle().
			Foreground(c(ColorBeginner)),

		Button: lipgloss.NewStyle().
			Foreground(c(p.text)).
			Underline(true).
			Padding(0, 1),
		ButtonPrimary: lipgloss.NewStyle().
			Foreground(c("255")).
			Background(c(p.accent)).
			Bold(true).
			Padding(0, 1),
		ButtonLocked: lipgloss.NewStyle().
			Foreground(c(p.muted)).
			Padding(0, 1),
		Chip: lipgloss.NewStyle().
			Foreground(c(p.accent)),
		TabActive: lipgloss.NewStyle().
			Foreground(c(p.highlight)).
			Bold(true).
			Underline(true),
		TabInactive: lipgloss.NewStyle().
			Foreground(c(p.muted)),

		UserBubble: lipgloss.NewStyle().
			Foreground(c("255")).
			Background(c(p.accent)).
			Padding(0, 1),
		AssistantBubble: lipgloss.NewStyle().
			Foreground(c(p.text)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(p.border)).
			Padding(0, 1),

		Key: lipgloss.NewStyle().
			Foreground(c(p.highlight)).
			Bold(true),
		KeyDesc: lipgloss.NewStyle().
			Foreground(c(p.muted)),
		KeyBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(p.accent)).
			Padding(0, 1).
			MarginTop(1),
	}
}

// Badge renders a difficulty label. Free-text path difficulties such as
// "Beginner to Advanced" take the color of the first level they mention.
func (t Theme) Badge(difficulty string) string {
	color := ColorAdvanced
	switch {
	case strings.Contains(difficulty, "Beginner"):
		color = ColorBeginner
	case strings.Contains(difficulty, "Intermediate"):
		color = ColorIntermediate
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorOnBadge)).
		Background(lipgloss.Color(color)).
		Padding(0, 1).
		Render(difficulty)
}

// CardStyle picks the card border for the cursor state.
func (t Theme) CardStyle(selected bool) lipgloss.Style {
	if selected {
		return t.CardSelected
	}
	return t.Card
}

package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Teal      = lipgloss.Color("#14B8A6")
	SlateDark = lipgloss.Color("#1F2937")
	DimGray   = lipgloss.Color("#6B7280")
	LightGray = lipgloss.Color("#9CA3AF")
	White     = lipgloss.Color("#F9FAFB")
	Green     = lipgloss.Color("#10B981")
	Red       = lipgloss.Color("#EF4444")
	Amber     = lipgloss.Color("#F59E0B")
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
			Foreground(Teal)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	PendingStyle = lipgloss.NewStyle().
			Foreground(Amber)

	CursorStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Teal).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// Kind tab styles
var (
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(SlateDark).
			Bold(true).
			Padding(0, 2)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(DimGray).
				Padding(0, 2)
)

// Selection and pending markers
const (
	SelectedChar   = "●"
	UnselectedChar = "○"
)

// Pre-rendered markers
var (
	SelectedDot   = AccentStyle.Render(SelectedChar)
	UnselectedDot = DimStyle.Render(UnselectedChar)
)

// Search/filter input styles
var (
	FilterPromptStyle = lipgloss.NewStyle().Foreground(Teal)
	FilterStyle       = lipgloss.NewStyle().Foreground(White)
)

// Footer styles
var (
	StatusStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	HelpStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// SpinnerFrames is the shared spinner animation
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

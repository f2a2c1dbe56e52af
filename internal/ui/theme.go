package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI. Paper is the light default; Ink is the
// dark companion.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text   string
	Muted  string
	Faint  string
	Accent string

	Success string
	Warning string
	Danger  string

	SelectionBg   string
	SelectionText string
	Border        string
}

// Styles contains pre-built lipgloss styles for the theme.
type Styles struct {
	Text      lipgloss.Style
	MutedText lipgloss.Style
	FaintText lipgloss.Style
	Accent    lipgloss.Style

	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Title    lipgloss.Style
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Selected lipgloss.Style
	Banner   lipgloss.Style

	AvailableChip   lipgloss.Style
	UnavailableChip lipgloss.Style
	ActiveChip      lipgloss.Style
	ReturnedChip    lipgloss.Style

	Modal lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Banner: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Danger)).
			Foreground(lipgloss.Color(t.Background)).
			Padding(0, 1).
			Bold(true),

		AvailableChip: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Success)).
			Padding(0, 1),

		UnavailableChip: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		ActiveChip: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Accent)).
			Padding(0, 1),

		ReturnedChip: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Faint)).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 2),
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Paper": paperTheme(),
	"Ink":   inkTheme(),
}

var themeOrder = []string{"Paper", "Ink"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return paperTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func paperTheme() Theme {
	return Theme{
		Name: "Paper",

		Background: "#f9fafb",
		Surface:    "#e5e7eb",

		Text:   "#111827",
		Muted:  "#6b7280",
		Faint:  "#9ca3af",
		Accent: "#1d4ed8",

		Success: "#047857",
		Warning: "#b45309",
		Danger:  "#b91c1c",

		SelectionBg:   "#111827",
		SelectionText: "#f9fafb",
		Border:        "#d1d5db",
	}
}

func inkTheme() Theme {
	return Theme{
		Name: "Ink",

		Background: "#111827",
		Surface:    "#1f2937",

		Text:   "#f3f4f6",
		Muted:  "#9ca3af",
		Faint:  "#6b7280",
		Accent: "#60a5fa",

		Success: "#34d399",
		Warning: "#fbbf24",
		Danger:  "#f87171",

		SelectionBg:   "#374151",
		SelectionText: "#f9fafb",
		Border:        "#374151",
	}
}

package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme of the viewer and of SVG exports.
type Theme struct {
	Name       string
	Icon       lipgloss.Color
	Hub        lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Warning    lipgloss.Color
}

var (
	ThemeSky = Theme{
		Name:       "sky",
		Icon:       lipgloss.Color("#e0f2fe"),
		Hub:        lipgloss.Color("#0ea5e9"), // hub mesh color of the site
		Accent:     lipgloss.Color("#38bdf8"),
		Background: lipgloss.Color("#0f172a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#64748b"),
		Warning:    lipgloss.Color("#f59e0b"),
	}

	ThemeMint = Theme{
		Name:       "mint",
		Icon:       lipgloss.Color("#d1fae5"),
		Hub:        lipgloss.Color("#2ee8bb"),
		Accent:     lipgloss.Color("#34d399"),
		Background: lipgloss.Color("#022c22"),
		Text:       lipgloss.Color("#ecfdf5"),
		Muted:      lipgloss.Color("#4b7f6f"),
		Warning:    lipgloss.Color("#fbbf24"),
	}

	ThemeSlate = Theme{
		Name:       "slate",
		Icon:       lipgloss.Color("#f1f5f9"),
		Hub:        lipgloss.Color("#94a3b8"),
		Accent:     lipgloss.Color("#cbd5e1"),
		Background: lipgloss.Color("#1e293b"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#475569"),
		Warning:    lipgloss.Color("#ff6b6b"),
	}

	ThemeMono = Theme{
		Name:       "mono",
		Icon:       lipgloss.Color("#ffffff"),
		Hub:        lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#ffffff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Warning:    lipgloss.Color("#ffaa00"),
	}

	Themes = []Theme{ThemeSky, ThemeMint, ThemeSlate, ThemeMono}
)

// GetTheme returns a theme by name, falling back to sky.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSky
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

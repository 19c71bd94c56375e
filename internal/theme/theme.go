package theme

import "github.com/charmbracelet/lipgloss"

// Theme is a reader palette.
type Theme struct {
	Key  string
	Name string

	Title       lipgloss.Color
	VerseNumber lipgloss.Color
	Text        lipgloss.Color
	Border      lipgloss.Color
	Muted       lipgloss.Color
	Error       lipgloss.Color

	// Book menu
	MenuBackground lipgloss.Color
	MenuText       lipgloss.Color
	Prefix         lipgloss.Color
	Input          lipgloss.Color
}

var (
	CatppuccinMocha = Theme{
		Key:            "catppuccin-mocha",
		Name:           "Catppuccin Mocha",
		Title:          lipgloss.Color("#89b4fa"),
		VerseNumber:    lipgloss.Color("#f9e2af"),
		Text:           lipgloss.Color("#cdd6f4"),
		Border:         lipgloss.Color("#f5c2e7"),
		Muted:          lipgloss.Color("#6c7086"),
		Error:          lipgloss.Color("#f38ba8"),
		MenuBackground: lipgloss.Color("#313244"),
		MenuText:       lipgloss.Color("#a6adc8"),
		Prefix:         lipgloss.Color("#f9e2af"),
		Input:          lipgloss.Color("#94e2d5"),
	}

	CatppuccinLatte = Theme{
		Key:            "catppuccin-latte",
		Name:           "Catppuccin Latte",
		Title:          lipgloss.Color("#1e66f5"),
		VerseNumber:    lipgloss.Color("#df8e1d"),
		Text:           lipgloss.Color("#4c4f69"),
		Border:         lipgloss.Color("#ea76cb"),
		Muted:          lipgloss.Color("#9ca0b0"),
		Error:          lipgloss.Color("#d20f39"),
		MenuBackground: lipgloss.Color("#e6e9ef"),
		MenuText:       lipgloss.Color("#5c5f77"),
		Prefix:         lipgloss.Color("#df8e1d"),
		Input:          lipgloss.Color("#179299"),
	}

	Dracula = Theme{
		Key:            "dracula",
		Name:           "Dracula",
		Title:          lipgloss.Color("#bd93f9"),
		VerseNumber:    lipgloss.Color("#f1fa8c"),
		Text:           lipgloss.Color("#f8f8f2"),
		Border:         lipgloss.Color("#ff79c6"),
		Muted:          lipgloss.Color("#6272a4"),
		Error:          lipgloss.Color("#ff5555"),
		MenuBackground: lipgloss.Color("#44475a"),
		MenuText:       lipgloss.Color("#f8f8f2"),
		Prefix:         lipgloss.Color("#f1fa8c"),
		Input:          lipgloss.Color("#8be9fd"),
	}

	RosePineMoon = Theme{
		Key:            "rosepine-moon",
		Name:           "Rosé Pine Moon",
		Title:          lipgloss.Color("#c4a7e7"),
		VerseNumber:    lipgloss.Color("#f6c177"),
		Text:           lipgloss.Color("#e0def4"),
		Border:         lipgloss.Color("#ebbcba"),
		Muted:          lipgloss.Color("#6e6a86"),
		Error:          lipgloss.Color("#eb6f92"),
		MenuBackground: lipgloss.Color("#393552"),
		MenuText:       lipgloss.Color("#908caa"),
		Prefix:         lipgloss.Color("#f6c177"),
		Input:          lipgloss.Color("#9ccfd8"),
	}

	SolarizedDark = Theme{
		Key:            "solarized-dark",
		Name:           "Solarized Dark",
		Title:          lipgloss.Color("#268bd2"),
		VerseNumber:    lipgloss.Color("#b58900"),
		Text:           lipgloss.Color("#839496"),
		Border:         lipgloss.Color("#d33682"),
		Muted:          lipgloss.Color("#586e75"),
		Error:          lipgloss.Color("#dc322f"),
		MenuBackground: lipgloss.Color("#073642"),
		MenuText:       lipgloss.Color("#93a1a1"),
		Prefix:         lipgloss.Color("#b58900"),
		Input:          lipgloss.Color("#2aa198"),
	}

	SolarizedLight = Theme{
		Key:            "solarized-light",
		Name:           "Solarized Light",
		Title:          lipgloss.Color("#268bd2"),
		VerseNumber:    lipgloss.Color("#b58900"),
		Text:           lipgloss.Color("#657b83"),
		Border:         lipgloss.Color("#d33682"),
		Muted:          lipgloss.Color("#93a1a1"),
		Error:          lipgloss.Color("#dc322f"),
		MenuBackground: lipgloss.Color("#eee8d5"),
		MenuText:       lipgloss.Color("#586e75"),
		Prefix:         lipgloss.Color("#b58900"),
		Input:          lipgloss.Color("#2aa198"),
	}
)

// All returns every theme.
func All() []Theme {
	return []Theme{
		CatppuccinMocha,
		CatppuccinLatte,
		Dracula,
		RosePineMoon,
		SolarizedDark,
		SolarizedLight,
	}
}

// Get returns a theme by key, defaulting to Catppuccin Mocha if not found.
func Get(key string) Theme {
	for _, t := range All() {
		if t.Key == key {
			return t
		}
	}
	return CatppuccinMocha
}

// Styles are the lipgloss styles the reader draws with.
type Styles struct {
	Frame       lipgloss.Style
	Title       lipgloss.Style
	VerseNumber lipgloss.Style
	Text        lipgloss.Style
	Help        lipgloss.Style
	Error       lipgloss.Style
	Menu        lipgloss.Style
	MenuTitle   lipgloss.Style
	MenuText    lipgloss.Style
	Prefix      lipgloss.Style
	Input       lipgloss.Style
}

func (t Theme) Styles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Title),
		VerseNumber: lipgloss.NewStyle().
			Foreground(t.VerseNumber),
		Text: lipgloss.NewStyle().
			Foreground(t.Text),
		Help: lipgloss.NewStyle().
			Foreground(t.Muted),
		Error: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),
		Menu: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(t.Title).
			Background(t.MenuBackground).
			Padding(0, 1),
		MenuTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Title).
			Background(t.MenuBackground),
		MenuText: lipgloss.NewStyle().
			Foreground(t.MenuText).
			Background(t.MenuBackground),
		Prefix: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Prefix).
			Background(t.MenuBackground),
		Input: lipgloss.NewStyle().
			Foreground(t.Input).
			Background(t.MenuBackground),
	}
}

package colors

// Dark returns the dark color scheme (green accent on near-black)
func Dark() *ColorScheme {
	return &ColorScheme{
		Preset: "dark",

		// Primary
		Accent:      "#2FA572",
		AccentLight: "#A0D9C1",

		// Semantic
		Success: "#27AE60",
		Warning: "#F39C12",
		Error:   "#E74C3C",

		// UI elements
		Background:     "#1A1A1A",
		Frame:          "#2D2D2D",
		Border:         "#404040",
		SelectedBorder: "#A0D9C1",
		SelectedBg:     "#2D2D2D",

		// Text
		Title:  "#2FA572",
		Subtle: "#808080",
		Normal: "#E0E0E0",

		// Status bar
		StatusBarBg:   "#2FA572", // Matches accent
		StatusBarText: "#1A1A1A",

		// Notifications
		InfoFg:    "#A0D9C1",
		InfoBg:    "#2D2D2D",
		WarningFg: "#F39C12",
		WarningBg: "#2D2D2D",
		ErrorFg:   "#E74C3C",
		ErrorBg:   "#2D2D2D",
	}
}

package colors

// Light returns the light color scheme (green accent on off-white)
func Light() *ColorScheme {
	return &ColorScheme{
		Preset: "light",

		// Primary
		Accent:      "#2FA572",
		AccentLight: "#A0D9C1",

		// Semantic
		Success: "#27AE60",
		Warning: "#F39C12",
		Error:   "#E74C3C",

		// UI elements
		Background:     "#F4F6F9",
		Frame:          "#FFFFFF",
		Border:         "#E0E0E0",
		SelectedBorder: "#2FA572",
		SelectedBg:     "#A0D9C1",

		// Text
		Title:  "#2FA572",
		Subtle: "#9E9E9E",
		Normal: "#333333",

		// Status bar
		StatusBarBg:   "#2FA572", // Matches accent
		StatusBarText: "#FFFFFF",

		// Notifications
		InfoFg:    "#2FA572",
		InfoBg:    "#FFFFFF",
		WarningFg: "#F39C12",
		WarningBg: "#FFFFFF",
		ErrorFg:   "#E74C3C",
		ErrorBg:   "#FFFFFF",
	}
}

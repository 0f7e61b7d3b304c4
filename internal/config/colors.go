package config

import "github.com/vergashev/hafta/internal/config/colors"

// DefaultColorScheme returns the default color scheme (dark)
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Dark()
}

// LightColorScheme returns the light color scheme
func LightColorScheme() colors.ColorScheme {
	return *colors.Light()
}

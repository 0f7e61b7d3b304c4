package theme

import "github.com/vergashev/hafta/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	AccentLight    string
	Success        string
	Warning        string
	Error          string
	Background     string
	Frame          string
	Border         string
	SelectedBorder string
	SelectedBg     string
	Title          string
	Subtle         string
	Normal         string
	StatusBarBg    string
	StatusBarText  string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Accent = scheme.Accent
	AccentLight = scheme.AccentLight
	Success = scheme.Success
	Warning = scheme.Warning
	Error = scheme.Error
	Background = scheme.Background
	Frame = scheme.Frame
	Border = scheme.Border
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	Title = scheme.Title
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	StatusBarBg = scheme.StatusBarBg
	StatusBarText = scheme.StatusBarText
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
}

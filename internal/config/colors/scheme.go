package colors

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("dark" or "light")
	Preset string `yaml:"preset"`

	// Primary accent pair (titles, selections, filled progress)
	Accent      string `yaml:"accent"`
	AccentLight string `yaml:"accent_light"`

	// Semantic colors
	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`

	// UI element colors
	Background     string `yaml:"background"`
	Frame          string `yaml:"frame"`
	Border         string `yaml:"border"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Status bar colors
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "light":
		return Light()
	case "dark", "":
		return Dark()
	default:
		return Dark()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	// Get the base preset
	preset := GetPreset(c.Preset)

	// Override with custom values (only if not empty)
	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.AccentLight == "" {
		c.AccentLight = preset.AccentLight
	}
	if c.Success == "" {
		c.Success = preset.Success
	}
	if c.Warning == "" {
		c.Warning = preset.Warning
	}
	if c.Error == "" {
		c.Error = preset.Error
	}
	if c.Background == "" {
		c.Background = preset.Background
	}
	if c.Frame == "" {
		c.Frame = preset.Frame
	}
	if c.Border == "" {
		c.Border = preset.Border
	}
	if c.SelectedBorder == "" {
		c.SelectedBorder = preset.SelectedBorder
	}
	if c.SelectedBg == "" {
		c.SelectedBg = preset.SelectedBg
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
	if c.StatusBarBg == "" {
		c.StatusBarBg = preset.StatusBarBg
	}
	if c.StatusBarText == "" {
		c.StatusBarText = preset.StatusBarText
	}
	if c.InfoFg == "" {
		c.InfoFg = preset.InfoFg
	}
	if c.InfoBg == "" {
		c.InfoBg = preset.InfoBg
	}
	if c.WarningFg == "" {
		c.WarningFg = preset.WarningFg
	}
	if c.WarningBg == "" {
		c.WarningBg = preset.WarningBg
	}
	if c.ErrorFg == "" {
		c.ErrorFg = preset.ErrorFg
	}
	if c.ErrorBg == "" {
		c.ErrorBg = preset.ErrorBg
	}
}

// MergeFrom overrides this scheme with every non-empty value from other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Accent != "" {
		c.Accent = other.Accent
	}
	if other.AccentLight != "" {
		c.AccentLight = other.AccentLight
	}
	if other.Success != "" {
		c.Success = other.Success
	}
	if other.Warning != "" {
		c.Warning = other.Warning
	}
	if other.Error != "" {
		c.Error = other.Error
	}
	if other.Background != "" {
		c.Background = other.Background
	}
	if other.Frame != "" {
		c.Frame = other.Frame
	}
	if other.Border != "" {
		c.Border = other.Border
	}
	if other.SelectedBorder != "" {
		c.SelectedBorder = other.SelectedBorder
	}
	if other.SelectedBg != "" {
		c.SelectedBg = other.SelectedBg
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Normal != "" {
		c.Normal = other.Normal
	}
	if other.StatusBarBg != "" {
		c.StatusBarBg = other.StatusBarBg
	}
	if other.StatusBarText != "" {
		c.StatusBarText = other.StatusBarText
	}
	if other.InfoFg != "" {
		c.InfoFg = other.InfoFg
	}
	if other.InfoBg != "" {
		c.InfoBg = other.InfoBg
	}
	if other.WarningFg != "" {
		c.WarningFg = other.WarningFg
	}
	if other.WarningBg != "" {
		c.WarningBg = other.WarningBg
	}
	if other.ErrorFg != "" {
		c.ErrorFg = other.ErrorFg
	}
	if other.ErrorBg != "" {
		c.ErrorBg = other.ErrorBg
	}
}

// Validate checks the preset name and that every color is a #RRGGBB hex
// value. Call it after ApplyDefaults so no field is left empty.
func (c ColorScheme) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Preset, validation.In("dark", "light")),
		validation.Field(&c.Accent, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.AccentLight, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.Success, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.Warning, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.Error, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.Background, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.Frame, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.Border, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.SelectedBorder, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.SelectedBg, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.Title, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.Subtle, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.Normal, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.StatusBarBg, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.StatusBarText, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.InfoFg, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.InfoBg, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.WarningFg, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.WarningBg, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.ErrorFg, validation.Required, validation.Match(hexColorRegex)),
		validation.Field(&c.ErrorBg, validation.Required, validation.Match(hexColorRegex)),
	)
}

package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Items
	AddItem    string `yaml:"add_item"`
	RenameItem string `yaml:"rename_item"`
	DeleteItem string `yaml:"delete_item"`
	ToggleMark string `yaml:"toggle_mark"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevItem   string `yaml:"prev_item"`
	NextItem   string `yaml:"next_item"`
	PrevDay    string `yaml:"prev_day"`
	NextDay    string `yaml:"next_day"`
	Today      string `yaml:"today"`
	SwitchKind string `yaml:"switch_kind"`

	// Other
	Export      string `yaml:"export"`
	ToggleTheme string `yaml:"toggle_theme"`
	ShowHelp    string `yaml:"show_help"`
	Quit        string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Items
		AddItem:    "a",
		RenameItem: "r",
		DeleteItem: "d",
		ToggleMark: " ",
		SaveForm:   "ctrl+s",

		// Navigation
		PrevItem:   "k",
		NextItem:   "j",
		PrevDay:    "h",
		NextDay:    "l",
		Today:      "t",
		SwitchKind: "tab",

		// Other
		Export:      "x",
		ToggleTheme: "T",
		ShowHelp:    "?",
		Quit:        "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddItem == "" {
		k.AddItem = defaults.AddItem
	}
	if k.RenameItem == "" {
		k.RenameItem = defaults.RenameItem
	}
	if k.DeleteItem == "" {
		k.DeleteItem = defaults.DeleteItem
	}
	if k.ToggleMark == "" {
		k.ToggleMark = defaults.ToggleMark
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.PrevItem == "" {
		k.PrevItem = defaults.PrevItem
	}
	if k.NextItem == "" {
		k.NextItem = defaults.NextItem
	}
	if k.PrevDay == "" {
		k.PrevDay = defaults.PrevDay
	}
	if k.NextDay == "" {
		k.NextDay = defaults.NextDay
	}
	if k.Today == "" {
		k.Today = defaults.Today
	}
	if k.SwitchKind == "" {
		k.SwitchKind = defaults.SwitchKind
	}
	if k.Export == "" {
		k.Export = defaults.Export
	}
	if k.ToggleTheme == "" {
		k.ToggleTheme = defaults.ToggleTheme
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}

package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset" env:"SHSENROLL_THEME"`

	// Primary accent color (used for titles, labels, table headers)
	Accent string `yaml:"accent"`
	Border string `yaml:"border"`

	// Registration status badges
	Enrolled   string `yaml:"enrolled"`
	Unenrolled string `yaml:"unenrolled"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// Presets lists the preset names accepted by GetPreset
func Presets() []string {
	return []string{"default", "monochrome", "wave"}
}

// GetPreset returns a preset color scheme by name, falling back to default
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base.
// Custom values already set are kept.
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	pairs := []struct {
		value    *string
		fallback string
	}{
		{&c.Accent, preset.Accent},
		{&c.Border, preset.Border},
		{&c.Enrolled, preset.Enrolled},
		{&c.Unenrolled, preset.Unenrolled},
		{&c.Title, preset.Title},
		{&c.Subtle, preset.Subtle},
		{&c.Normal, preset.Normal},
		{&c.InfoFg, preset.InfoFg},
		{&c.InfoBg, preset.InfoBg},
		{&c.WarningFg, preset.WarningFg},
		{&c.WarningBg, preset.WarningBg},
		{&c.ErrorFg, preset.ErrorFg},
		{&c.ErrorBg, preset.ErrorBg},
	}
	for _, p := range pairs {
		if *p.value == "" {
			*p.value = p.fallback
		}
	}
}

// MergeFrom copies every non-empty value of other over c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	pairs := []struct {
		dst *string
		src string
	}{
		{&c.Preset, other.Preset},
		{&c.Accent, other.Accent},
		{&c.Border, other.Border},
		{&c.Enrolled, other.Enrolled},
		{&c.Unenrolled, other.Unenrolled},
		{&c.Title, other.Title},
		{&c.Subtle, other.Subtle},
		{&c.Normal, other.Normal},
		{&c.InfoFg, other.InfoFg},
		{&c.InfoBg, other.InfoBg},
		{&c.WarningFg, other.WarningFg},
		{&c.WarningBg, other.WarningBg},
		{&c.ErrorFg, other.ErrorFg},
		{&c.ErrorBg, other.ErrorBg},
	}
	for _, p := range pairs {
		if p.src != "" {
			*p.dst = p.src
		}
	}
}

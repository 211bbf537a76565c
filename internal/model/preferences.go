package model

// Theme is the color scheme of the app
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// String returns the string representation of Theme
func (t Theme) String() string {
	return string(t)
}

// IsValid returns true for the known themes
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggled returns the opposite theme
func (t Theme) Toggled() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Language is a UI language code
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageRussian    Language = "ru"
	LanguagePortuguese Language = "pt"
)

// Languages lists the supported language codes in display order
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageRussian, LanguagePortuguese}
}

// String returns the string representation of Language
func (l Language) String() string {
	return string(l)
}

// IsValid returns true if the code belongs to the supported set
func (l Language) IsValid() bool {
	for _, known := range Languages() {
		if l == known {
			return true
		}
	}
	return false
}

// DeviceView selects the layout profile
type DeviceView string

const (
	DeviceViewDesktop    DeviceView = "desktop"
	DeviceViewSmartphone DeviceView = "smartphone"
)

// String returns the string representation of DeviceView
func (d DeviceView) String() string {
	return string(d)
}

// IsValid returns true for the known device views
func (d DeviceView) IsValid() bool {
	return d == DeviceViewDesktop || d == DeviceViewSmartphone
}

// Default values
const (
	DefaultTheme           = ThemeDark
	DefaultLanguage        = LanguageEnglish
	DefaultAutoplayEnabled = true
	DefaultDeviceView      = DeviceViewDesktop
)

// Preferences are the durable per-user settings
type Preferences struct {
	Theme           Theme      `json:"theme"`
	Language        Language   `json:"language"`
	AutoplayEnabled bool       `json:"isAutoplayEnabled"`
	DeviceView      DeviceView `json:"deviceView"`
}

// DefaultPreferences returns the preferences of a first run
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:           DefaultTheme,
		Language:        DefaultLanguage,
		AutoplayEnabled: DefaultAutoplayEnabled,
		DeviceView:      DefaultDeviceView,
	}
}

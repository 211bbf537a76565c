package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/catalog-browser/internal/localization"
	"github.com/ytget/catalog-browser/internal/model"
	"github.com/ytget/catalog-browser/internal/session"
)

// PreferencesDialog edits theme, language, autoplay and device view. Each
// control applies its change right away through the session.
type PreferencesDialog struct {
	session *session.Session
	window  fyne.Window
	dialog  dialog.Dialog

	// UI components
	themeRadio     *widget.RadioGroup
	languageSelect *widget.Select
	autoplayCheck  *widget.Check
	deviceRadio    *widget.RadioGroup

	// display name <-> value
	themeNames    map[string]model.Theme
	languageNames map[string]model.Language
	deviceNames   map[string]model.DeviceView

	loading bool
}

// NewPreferencesDialog creates a new preferences dialog
func NewPreferencesDialog(sess *session.Session, window fyne.Window) *PreferencesDialog {
	pd := &PreferencesDialog{
		session: sess,
		window:  window,
	}

	pd.createUI()
	return pd
}

// Show displays the dialog with the current preferences
func (pd *PreferencesDialog) Show() {
	pd.loadCurrentPreferences()
	pd.dialog.Show()
}

// Hide closes the dialog
func (pd *PreferencesDialog) Hide() {
	pd.dialog.Hide()
}

// createUI creates the dialog UI
func (pd *PreferencesDialog) createUI() {
	tr := pd.session.Translate

	pd.themeNames = map[string]model.Theme{
		tr(localization.KeySettingsThemeLight): model.ThemeLight,
		tr(localization.KeySettingsThemeDark):  model.ThemeDark,
	}
	pd.themeRadio = widget.NewRadioGroup([]string{
		tr(localization.KeySettingsThemeLight),
		tr(localization.KeySettingsThemeDark),
	}, pd.onThemeChanged)
	pd.themeRadio.Horizontal = true

	languages := pd.session.Languages()
	pd.languageNames = make(map[string]model.Language, len(languages))
	languageOptions := make([]string, 0, len(languages))
	for _, lang := range model.Languages() {
		name, ok := languages[lang]
		if !ok {
			continue
		}
		pd.languageNames[name] = lang
		languageOptions = append(languageOptions, name)
	}
	pd.languageSelect = widget.NewSelect(languageOptions, pd.onLanguageChanged)

	pd.autoplayCheck = widget.NewCheck(tr(localization.KeySettingsAutoplay), pd.onAutoplayChanged)

	pd.deviceNames = map[string]model.DeviceView{
		tr(localization.KeySettingsDesktop):    model.DeviceViewDesktop,
		tr(localization.KeySettingsSmartphone): model.DeviceViewSmartphone,
	}
	pd.deviceRadio = widget.NewRadioGroup([]string{
		tr(localization.KeySettingsDesktop),
		tr(localization.KeySettingsSmartphone),
	}, pd.onDeviceChanged)
	pd.deviceRadio.Horizontal = true

	form := container.NewVBox(
		widget.NewLabel(tr(localization.KeySettingsTheme)),
		pd.themeRadio,
		widget.NewSeparator(),

		widget.NewLabel(tr(localization.KeySettingsLanguage)),
		pd.languageSelect,
		widget.NewSeparator(),

		pd.autoplayCheck,
		widget.NewSeparator(),

		widget.NewLabel(tr(localization.KeySettingsDevice)),
		pd.deviceRadio,
	)

	pd.dialog = dialog.NewCustom(
		tr(localization.KeySettingsTitle),
		tr(localization.KeyModalCancel),
		form,
		pd.window,
	)
	pd.dialog.Resize(fyne.NewSize(PrefsDialogWidth, PrefsDialogHeight))
}

// loadCurrentPreferences loads session preferences into the controls
// without echoing them back as changes
func (pd *PreferencesDialog) loadCurrentPreferences() {
	prefs := pd.session.Preferences()

	pd.loading = true
	defer func() { pd.loading = false }()

	pd.themeRadio.SetSelected(nameOf(pd.themeNames, prefs.Theme))
	pd.languageSelect.SetSelected(nameOf(pd.languageNames, prefs.Language))
	pd.autoplayCheck.SetChecked(prefs.AutoplayEnabled)
	pd.deviceRadio.SetSelected(nameOf(pd.deviceNames, prefs.DeviceView))
}

func (pd *PreferencesDialog) onThemeChanged(name string) {
	theme, ok := pd.themeNames[name]
	if pd.loading || !ok || pd.session.Preferences().Theme == theme {
		return
	}
	pd.session.ToggleTheme()
}

func (pd *PreferencesDialog) onLanguageChanged(name string) {
	if lang, ok := pd.languageNames[name]; ok && !pd.loading {
		pd.session.SetLanguage(lang)
	}
}

func (pd *PreferencesDialog) onAutoplayChanged(enabled bool) {
	if pd.loading || pd.session.Preferences().AutoplayEnabled == enabled {
		return
	}
	pd.session.ToggleAutoplay()
}

func (pd *PreferencesDialog) onDeviceChanged(name string) {
	if view, ok := pd.deviceNames[name]; ok && !pd.loading {
		pd.session.SetDeviceView(view)
	}
}

func nameOf[T comparable](names map[string]T, value T) string {
	for name, v := range names {
		if v == value {
			return name
		}
	}
	return ""
}

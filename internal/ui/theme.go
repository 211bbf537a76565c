package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/catalog-browser/internal/model"
)

// CatalogTheme applies the persisted theme and device view on top of the
// default Fyne theme. The light/dark choice comes from preferences, not the
// OS variant.
type CatalogTheme struct {
	prefs model.Preferences
}

// NewCatalogTheme creates a theme for prefs
func NewCatalogTheme(prefs model.Preferences) fyne.Theme {
	return &CatalogTheme{prefs: prefs}
}

// Variant returns the Fyne variant selected by the preferences
func (t *CatalogTheme) Variant() fyne.ThemeVariant {
	if t.prefs.Theme == model.ThemeLight {
		return theme.VariantLight
	}
	return theme.VariantDark
}

// Color returns theme colors
func (t *CatalogTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	variant := t.Variant()

	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 229, G: 57, B: 53, A: 255} // accent red
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CatalogTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CatalogTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns compact sizes on desktop and touch-friendly sizes on the
// smartphone view
func (t *CatalogTheme) Size(name fyne.ThemeSizeName) float32 {
	if t.prefs.DeviceView == model.DeviceViewSmartphone {
		switch name {
		case theme.SizeNamePadding:
			return 6
		case theme.SizeNameInnerPadding:
			return 12
		case theme.SizeNameText:
			return 16
		case theme.SizeNameHeadingText:
			return 20
		case theme.SizeNameScrollBar:
			return 8
		}
		return theme.DefaultTheme().Size(name)
	}

	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}

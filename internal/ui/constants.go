package ui

import "fyne.io/fyne/v2"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconMenu     = "☰"
	IconBack     = "←"
	IconPlay     = "▶"
	IconAdd      = "+"
	IconRemove   = "−"
	IconUser     = "👤"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	PriceFormat        = "$%.2f"
	DetailPriceFormat  = "%s: %s"
)

// Window sizing per device view
var (
	DesktopWindowSize    = fyne.NewSize(1024, 700)
	SmartphoneWindowSize = fyne.NewSize(390, 780)
)

// Layout sizing
const (
	SidebarWidth      float32 = 200
	RowMinHeight      float32 = 64
	AuthDialogWidth   float32 = 360
	PrefsDialogWidth  float32 = 380
	PrefsDialogHeight float32 = 340
)

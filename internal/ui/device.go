package ui

import "fyne.io/fyne/v2"

// isMobileDevice reports whether the app runs on a phone or tablet, where
// windows always fill the screen
func isMobileDevice() bool {
	device := fyne.CurrentDevice()
	return device != nil && device.IsMobile()
}

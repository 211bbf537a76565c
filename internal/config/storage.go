package config

import (
	"fyne.io/fyne/v2"
)

// Storage is the durable key/value store preferences are kept in
type Storage interface {
	GetItem(key string) (string, bool)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// PreferencesStorage keeps items in the fyne app preferences file
type PreferencesStorage struct {
	prefs fyne.Preferences
}

// NewPreferencesStorage wraps the preferences of a fyne app
func NewPreferencesStorage(prefs fyne.Preferences) *PreferencesStorage {
	return &PreferencesStorage{prefs: prefs}
}

// GetItem returns the stored string. Fyne preferences do not tell an empty
// string from a missing key, so both read as absent.
func (s *PreferencesStorage) GetItem(key string) (string, bool) {
	value := s.prefs.String(key)
	if value == "" {
		return "", false
	}
	return value, true
}

// SetItem stores value under key
func (s *PreferencesStorage) SetItem(key, value string) error {
	s.prefs.SetString(key, value)
	return nil
}

// RemoveItem deletes key
func (s *PreferencesStorage) RemoveItem(key string) error {
	s.prefs.RemoveValue(key)
	return nil
}

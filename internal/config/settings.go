package config

import (
	"encoding/json"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/ytget/catalog-browser/internal/logger"
	"github.com/ytget/catalog-browser/internal/model"
)

// Storage keys
const (
	KeyTheme      = "theme"
	KeyLanguage   = "language"
	KeyLoggedIn   = "isLoggedIn"
	KeyUser       = "user"
	KeyAutoplay   = "isAutoplayEnabled"
	KeyDeviceView = "deviceView"
	KeyPlaylist   = "playlist"
)

// Settings reads and writes persisted user state. Every field is read on its
// own and falls back to its default when missing or unreadable; writes never
// fail the caller, storage errors are logged.
type Settings struct {
	storage Storage
	log     logrus.FieldLogger
}

// NewSettings creates a new settings manager
func NewSettings(storage Storage, log logrus.FieldLogger) *Settings {
	return &Settings{storage: storage, log: logger.OrDefault(log)}
}

// Load reads all preference fields
func (s *Settings) Load() model.Preferences {
	return model.Preferences{
		Theme:           s.GetTheme(),
		Language:        s.GetLanguage(),
		AutoplayEnabled: s.GetAutoplayEnabled(),
		DeviceView:      s.GetDeviceView(),
	}
}

// GetTheme returns the stored theme
func (s *Settings) GetTheme() model.Theme {
	value, ok := s.storage.GetItem(KeyTheme)
	if theme := model.Theme(value); ok && theme.IsValid() {
		return theme
	}
	return model.DefaultTheme
}

// SetTheme stores the theme
func (s *Settings) SetTheme(theme model.Theme) {
	s.set(KeyTheme, theme.String())
}

// GetLanguage returns the stored language
func (s *Settings) GetLanguage() model.Language {
	value, ok := s.storage.GetItem(KeyLanguage)
	if lang := model.Language(value); ok && lang.IsValid() {
		return lang
	}
	return model.DefaultLanguage
}

// SetLanguage stores the language
func (s *Settings) SetLanguage(lang model.Language) {
	s.set(KeyLanguage, lang.String())
}

// GetAutoplayEnabled returns whether autoplay is on
func (s *Settings) GetAutoplayEnabled() bool {
	return s.getBool(KeyAutoplay, model.DefaultAutoplayEnabled)
}

// SetAutoplayEnabled stores the autoplay flag
func (s *Settings) SetAutoplayEnabled(enabled bool) {
	s.set(KeyAutoplay, strconv.FormatBool(enabled))
}

// GetDeviceView returns the stored device view
func (s *Settings) GetDeviceView() model.DeviceView {
	value, ok := s.storage.GetItem(KeyDeviceView)
	if view := model.DeviceView(value); ok && view.IsValid() {
		return view
	}
	return model.DefaultDeviceView
}

// SetDeviceView stores the device view
func (s *Settings) SetDeviceView(view model.DeviceView) {
	s.set(KeyDeviceView, view.String())
}

// GetPlaylist returns the stored playlist, or an empty one when the stored
// value is missing or malformed
func (s *Settings) GetPlaylist() model.Playlist {
	value, ok := s.storage.GetItem(KeyPlaylist)
	if !ok {
		return model.NewPlaylist()
	}

	var playlist model.Playlist
	if err := json.Unmarshal([]byte(value), &playlist); err != nil {
		s.log.WithError(err).WithField("key", KeyPlaylist).Warn("Discarding malformed stored playlist")
		return model.NewPlaylist()
	}
	return playlist
}

// SetPlaylist stores the playlist
func (s *Settings) SetPlaylist(playlist model.Playlist) {
	data, err := json.Marshal(playlist)
	if err != nil {
		s.log.WithError(err).WithField("key", KeyPlaylist).Error("Failed to encode playlist")
		return
	}
	s.set(KeyPlaylist, string(data))
}

// GetUser returns the stored profile when the login flag is set and the
// profile can be decoded. Any other combination reads as logged out.
func (s *Settings) GetUser() *model.UserProfile {
	if !s.getBool(KeyLoggedIn, false) {
		return nil
	}

	value, ok := s.storage.GetItem(KeyUser)
	if !ok {
		s.log.WithField("key", KeyUser).Warn("Login flag set without a stored user, treating as logged out")
		return nil
	}

	var user model.UserProfile
	if err := json.Unmarshal([]byte(value), &user); err != nil {
		s.log.WithError(err).WithField("key", KeyUser).Warn("Discarding malformed stored user")
		return nil
	}
	if user.IsEmpty() {
		s.log.WithField("key", KeyUser).Warn("Discarding empty stored user")
		return nil
	}
	return &user
}

// SetUser stores the login flag and profile. A nil user stores a logged out
// session and removes the profile.
func (s *Settings) SetUser(user *model.UserProfile) {
	if user == nil {
		s.set(KeyLoggedIn, strconv.FormatBool(false))
		if err := s.storage.RemoveItem(KeyUser); err != nil {
			s.log.WithError(err).WithField("key", KeyUser).Error("Failed to remove stored value")
		}
		return
	}

	data, err := json.Marshal(user)
	if err != nil {
		s.log.WithError(err).WithField("key", KeyUser).Error("Failed to encode user")
		return
	}
	s.set(KeyUser, string(data))
	s.set(KeyLoggedIn, strconv.FormatBool(true))
}

func (s *Settings) getBool(key string, fallback bool) bool {
	value, ok := s.storage.GetItem(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Debug("Ignoring unreadable stored flag")
		return fallback
	}
	return parsed
}

func (s *Settings) set(key, value string) {
	if err := s.storage.SetItem(key, value); err != nil {
		s.log.WithError(err).WithField("key", key).Error("Failed to store value")
	}
}

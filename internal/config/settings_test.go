package config

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/catalog-browser/internal/model"
)

func newTestSettings(t *testing.T) (*Settings, Storage, *logtest.Hook) {
	t.Helper()
	app := test.NewApp()

	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	storage := NewPreferencesStorage(app.Preferences())
	return NewSettings(storage, log), storage, hook
}

func TestSettings_LoadDefaults(t *testing.T) {
	settings, _, _ := newTestSettings(t)

	assert.Equal(t, model.DefaultPreferences(), settings.Load())
	assert.Equal(t, 0, settings.GetPlaylist().Len())
	assert.Nil(t, settings.GetUser())
}

func TestSettings_RoundTrip(t *testing.T) {
	settings, _, _ := newTestSettings(t)

	settings.SetTheme(model.ThemeLight)
	settings.SetLanguage(model.LanguagePortuguese)
	settings.SetAutoplayEnabled(false)
	settings.SetDeviceView(model.DeviceViewSmartphone)

	expected := model.Preferences{
		Theme:           model.ThemeLight,
		Language:        model.LanguagePortuguese,
		AutoplayEnabled: false,
		DeviceView:      model.DeviceViewSmartphone,
	}
	assert.Equal(t, expected, settings.Load())
}

func TestSettings_InvalidValuesFallBackPerField(t *testing.T) {
	settings, storage, _ := newTestSettings(t)

	require.NoError(t, storage.SetItem(KeyTheme, "sepia"))
	require.NoError(t, storage.SetItem(KeyLanguage, "xx"))
	require.NoError(t, storage.SetItem(KeyAutoplay, "maybe"))
	require.NoError(t, storage.SetItem(KeyDeviceView, model.DeviceViewSmartphone.String()))

	prefs := settings.Load()
	assert.Equal(t, model.DefaultTheme, prefs.Theme)
	assert.Equal(t, model.DefaultLanguage, prefs.Language)
	assert.Equal(t, model.DefaultAutoplayEnabled, prefs.AutoplayEnabled)
	assert.Equal(t, model.DeviceViewSmartphone, prefs.DeviceView, "valid fields are kept")
}

func TestSettings_Playlist(t *testing.T) {
	t.Run("round trip keeps order", func(t *testing.T) {
		settings, _, _ := newTestSettings(t)
		playlist := model.NewPlaylist(
			model.Video{ID: 2, Title: "Finals", Category: "sports"},
			model.Video{ID: 1, Title: "Jazz Night", Category: "music"},
		)

		settings.SetPlaylist(playlist)

		assert.True(t, playlist.Equal(settings.GetPlaylist()))
	})

	t.Run("malformed value loads as empty and is logged", func(t *testing.T) {
		settings, storage, hook := newTestSettings(t)
		require.NoError(t, storage.SetItem(KeyPlaylist, "{not json"))

		playlist := settings.GetPlaylist()

		assert.Equal(t, 0, playlist.Len())
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	})
}

func TestSettings_User(t *testing.T) {
	user := &model.UserProfile{ID: "u-1", Name: "Ada", Email: "ada@example.com"}

	t.Run("login then logout", func(t *testing.T) {
		settings, storage, _ := newTestSettings(t)

		settings.SetUser(user)
		assert.Equal(t, user, settings.GetUser())

		settings.SetUser(nil)
		assert.Nil(t, settings.GetUser())
		_, ok := storage.GetItem(KeyUser)
		assert.False(t, ok, "logout removes the stored profile")
	})

	t.Run("flag without user reads as logged out", func(t *testing.T) {
		settings, storage, _ := newTestSettings(t)
		require.NoError(t, storage.SetItem(KeyLoggedIn, "true"))

		assert.Nil(t, settings.GetUser())
	})

	t.Run("malformed user reads as logged out", func(t *testing.T) {
		settings, storage, hook := newTestSettings(t)
		require.NoError(t, storage.SetItem(KeyLoggedIn, "true"))
		require.NoError(t, storage.SetItem(KeyUser, "[1,2"))

		assert.Nil(t, settings.GetUser())
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	})

	t.Run("user without flag reads as logged out", func(t *testing.T) {
		settings, storage, _ := newTestSettings(t)
		require.NoError(t, storage.SetItem(KeyUser, `{"id":"u-1","name":"Ada"}`))

		assert.Nil(t, settings.GetUser())
	})
}

type failingStorage struct{}

func (failingStorage) GetItem(string) (string, bool) { return "", false }
func (failingStorage) SetItem(string, string) error  { return errors.New("disk full") }
func (failingStorage) RemoveItem(string) error       { return errors.New("disk full") }

func TestSettings_WriteFailuresAreLogged(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	settings := NewSettings(failingStorage{}, log)

	assert.NotPanics(t, func() {
		settings.SetTheme(model.ThemeLight)
		settings.SetUser(nil)
	})
	assert.Len(t, hook.AllEntries(), 3)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

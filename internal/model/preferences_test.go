package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()

	assert.Equal(t, ThemeDark, prefs.Theme)
	assert.Equal(t, LanguageEnglish, prefs.Language)
	assert.True(t, prefs.AutoplayEnabled)
	assert.Equal(t, DeviceViewDesktop, prefs.DeviceView)
}

func TestTheme_Toggled(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggled())
	assert.Equal(t, ThemeLight, ThemeDark.Toggled())
}

func TestLanguage_IsValid(t *testing.T) {
	tests := []struct {
		lang     Language
		expected bool
	}{
		{LanguageEnglish, true},
		{LanguageRussian, true},
		{LanguagePortuguese, true},
		{"xx", false},
		{"", false},
		{"EN", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.lang.IsValid(), "Language(%q).IsValid()", test.lang)
	}
}

func TestEnums_IsValid(t *testing.T) {
	assert.True(t, ThemeLight.IsValid())
	assert.False(t, Theme("sepia").IsValid())
	assert.True(t, DeviceViewSmartphone.IsValid())
	assert.False(t, DeviceView("tablet").IsValid())
}

func TestCategory(t *testing.T) {
	tests := []struct {
		name       string
		category   Category
		all        bool
		myPlaylist bool
		label      string
	}{
		{"all", AllCategories(), true, false, "all"},
		{"tag", TagCategory("music"), false, false, "music"},
		{"playlist", MyPlaylistCategory(), false, true, MyPlaylistLabel},
		{"tag spelled like the playlist", TagCategory(MyPlaylistLabel), false, false, MyPlaylistLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.all, tt.category.IsAll())
			assert.Equal(t, tt.myPlaylist, tt.category.IsMyPlaylist())
			assert.Equal(t, tt.label, tt.category.String())
		})
	}
}

func TestVideo_Matches(t *testing.T) {
	v := Video{Title: "Jazz Night", Description: "Live from the Blue Room"}

	tests := []struct {
		query    string
		expected bool
	}{
		{"", true},
		{"jazz", true},
		{"JAZZ", true},
		{"blue room", true},
		{"night live", false},
		{"rock", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, v.Matches(test.query), "Matches(%q)", test.query)
	}
}

func TestViewState(t *testing.T) {
	var v ViewState
	assert.False(t, v.IsDetail())
	assert.False(t, v.HasModal())
	assert.Equal(t, "none", v.ActiveModal.String())

	v.SelectedVideo = &Video{ID: 1}
	v.ActiveModal = ModalSignUp
	assert.True(t, v.IsDetail())
	assert.True(t, v.HasModal())
}

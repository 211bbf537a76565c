package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/catalog-browser/internal/catalog"
	"github.com/ytget/catalog-browser/internal/config"
	"github.com/ytget/catalog-browser/internal/filter/filtertest"
	"github.com/ytget/catalog-browser/internal/localization"
	"github.com/ytget/catalog-browser/internal/model"
	"github.com/ytget/catalog-browser/internal/session"
)

func newTestRootUI(t *testing.T) (*RootUI, *session.Session, *filtertest.Scheduler) {
	t.Helper()
	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	cat, err := catalog.Default()
	require.NoError(t, err)
	translator, err := localization.NewTranslator()
	require.NoError(t, err)
	log, _ := logtest.NewNullLogger()
	sched := &filtertest.Scheduler{}

	sess, err := session.New(session.Options{
		Catalog:    cat,
		Settings:   config.NewSettings(config.NewPreferencesStorage(app.Preferences()), log),
		Translator: translator,
		Scheduler:  sched,
		Logger:     log,
	})
	require.NoError(t, err)
	t.Cleanup(sess.Close)

	return NewRootUI(window, app, sess, log), sess, sched
}

func TestRootUI_InitialState(t *testing.T) {
	ui, sess, _ := newTestRootUI(t)

	assert.Len(t, ui.visible, 8)
	assert.Equal(t, "Video Catalog", ui.window.Title())
	assert.Equal(t, "Search videos...", ui.searchEntry.PlaceHolder)
	assert.True(t, ui.loginBtn.Visible())
	assert.False(t, ui.logoutBtn.Visible())
	assert.Len(t, ui.categories, len(sess.Categories())+1, "all plus tags, no playlist when logged out")
}

func TestRootUI_SearchUpdatesList(t *testing.T) {
	ui, sess, sched := newTestRootUI(t)

	test.Type(ui.searchEntry, "jazz")
	assert.Equal(t, "jazz", sess.Criteria().Query)

	sched.FireActive()
	ui.apply(session.EventVisible)

	require.Len(t, ui.visible, 1)
	assert.Equal(t, "Jazz Night", ui.visible[0].Title)
	assert.False(t, ui.emptyLabel.Visible())

	test.Type(ui.searchEntry, "zzz")
	sess.Flush()
	ui.apply(session.EventVisible)
	assert.Empty(t, ui.visible)
	assert.True(t, ui.emptyLabel.Visible())
}

func TestRootUI_LoginThroughDialog(t *testing.T) {
	ui, sess, _ := newTestRootUI(t)

	sess.OpenModal(model.ModalSignIn)
	ui.apply(session.EventView)
	require.NotNil(t, ui.authDialog)
	assert.Equal(t, model.ModalSignIn, ui.authDialog.Kind())

	sess.SwitchModal(model.ModalSignUp)
	ui.apply(session.EventView)
	require.NotNil(t, ui.authDialog)
	assert.Equal(t, model.ModalSignUp, ui.authDialog.Kind())
	assert.Equal(t, model.ModalSignUp, sess.View().ActiveModal, "hiding the old form keeps the new one open")

	ui.authDialog.emailEntry.SetText("dana@example.com")
	ui.authDialog.onClose(true)
	ui.apply(session.EventView)

	assert.Nil(t, ui.authDialog)
	assert.True(t, sess.View().LoggedIn)
	assert.Equal(t, "dana", sess.View().User.Name)
	assert.True(t, ui.logoutBtn.Visible())
	assert.True(t, ui.categories[len(ui.categories)-1].IsMyPlaylist())
}

func TestRootUI_DetailView(t *testing.T) {
	ui, sess, _ := newTestRootUI(t)

	sess.SelectVideo(ui.visible[0])
	ui.apply(session.EventView)
	assert.True(t, ui.detail.Container().Visible())
	assert.False(t, ui.gridView.Visible())

	sess.GoBack()
	ui.apply(session.EventView)
	assert.False(t, ui.detail.Container().Visible())
	assert.True(t, ui.gridView.Visible())
}

func TestRootUI_LanguageRefreshesTexts(t *testing.T) {
	ui, sess, _ := newTestRootUI(t)

	sess.SetLanguage(model.LanguagePortuguese)
	ui.apply(session.EventPreferences)

	assert.Equal(t, sess.Translate(localization.KeyHeaderSearch), ui.searchEntry.PlaceHolder)
	assert.NotEqual(t, "Search videos...", ui.searchEntry.PlaceHolder)
}

func TestRootUI_Gestures(t *testing.T) {
	ui, sess, _ := newTestRootUI(t)

	ui.onGridGesture(GestureSwipeLeft)
	assert.True(t, sess.View().SidebarCollapsed)
	ui.onGridGesture(GestureSwipeLeft)
	assert.True(t, sess.View().SidebarCollapsed, "already collapsed")
	ui.onGridGesture(GestureSwipeRight)
	assert.False(t, sess.View().SidebarCollapsed)

	sess.SelectVideo(ui.visible[0])
	ui.onDetailGesture(GestureTap)
	assert.True(t, sess.View().IsDetail())
	ui.onDetailGesture(GestureSwipeRight)
	assert.False(t, sess.View().IsDetail())
}

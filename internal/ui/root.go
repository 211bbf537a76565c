package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/catalog-browser/internal/localization"
	"github.com/ytget/catalog-browser/internal/logger"
	"github.com/ytget/catalog-browser/internal/model"
	"github.com/ytget/catalog-browser/internal/session"
)

// RootUI represents the main UI structure
type RootUI struct {
	window  fyne.Window
	app     fyne.App
	session *session.Session
	log     logrus.FieldLogger

	// Header
	searchEntry *widget.Entry
	menuBtn     *widget.Button
	settingsBtn *widget.Button
	loginBtn    *widget.Button
	signUpBtn   *widget.Button
	logoutBtn   *widget.Button
	userLabel   *widget.Label

	// Sidebar
	sidebar         *fyne.Container
	categoriesLabel *widget.Label
	categoryList    *widget.List
	categories      []model.Category

	// Main area
	videoList  *widget.List
	emptyLabel *widget.Label
	gridView   *fyne.Container
	detail     *VideoDetail

	visible    []model.Video
	authDialog *AuthDialog
	deviceView model.DeviceView
}

// NewRootUI creates the main UI and subscribes it to session updates
func NewRootUI(window fyne.Window, app fyne.App, sess *session.Session, log logrus.FieldLogger) *RootUI {
	ui := &RootUI{
		window:  window,
		app:     app,
		session: sess,
		log:     logger.OrDefault(log),
	}

	ui.setupUI()
	ui.refreshAll()

	sess.SetUpdateCallback(ui.onSessionUpdate)

	ui.log.Debug("UI setup completed")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Header
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.OnChanged = ui.session.SetSearchQuery
	// Enter skips the quiet period
	ui.searchEntry.OnSubmitted = func(string) { ui.session.Flush() }

	ui.menuBtn = widget.NewButton(IconMenu, ui.session.ToggleSidebarCollapsed)
	ui.menuBtn.Importance = widget.LowImportance
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowPreferences)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.loginBtn = widget.NewButton("", func() { ui.session.OpenModal(model.ModalSignIn) })
	ui.signUpBtn = widget.NewButton("", func() { ui.session.OpenModal(model.ModalSignUp) })
	ui.signUpBtn.Importance = widget.HighImportance
	ui.logoutBtn = widget.NewButton("", ui.session.Logout)
	ui.userLabel = widget.NewLabel("")

	account := container.NewHBox(ui.userLabel, ui.loginBtn, ui.signUpBtn, ui.logoutBtn, ui.settingsBtn)
	header := container.NewBorder(nil, nil, ui.menuBtn, account, ui.searchEntry)

	// Sidebar
	ui.categoriesLabel = widget.NewLabel("")
	ui.categoriesLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.categoryList = widget.NewList(
		func() int { return len(ui.categories) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(ui.categories) {
				obj.(*widget.Label).SetText(ui.categoryLabel(ui.categories[id]))
			}
		},
	)
	ui.categoryList.OnSelected = func(id widget.ListItemID) {
		if id < len(ui.categories) {
			ui.session.SetCategory(ui.categories[id])
		}
	}
	sidebarSpacer := canvasSpacer(SidebarWidth)
	ui.sidebar = container.NewBorder(
		container.NewVBox(ui.categoriesLabel, sidebarSpacer),
		nil, nil, nil,
		ui.categoryList,
	)

	// Video list
	ui.videoList = widget.NewList(
		func() int { return len(ui.visible) },
		func() fyne.CanvasObject { return NewVideoRow(ui.session.TogglePlaylist) },
		ui.updateVideoRow,
	)
	ui.videoList.OnSelected = func(id widget.ListItemID) {
		if id < len(ui.visible) {
			ui.session.SelectVideo(ui.visible[id])
		}
		ui.videoList.Unselect(id)
	}
	ui.emptyLabel = widget.NewLabel("")
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyLabel.Hide()
	ui.gridView = container.NewStack(ui.videoList, container.NewCenter(ui.emptyLabel))

	ui.detail = NewVideoDetail(ui.session.GoBack, ui.session.TogglePlaylist)
	ui.detail.Container().Hide()

	mainArea := container.NewStack(
		NewSwipeArea(ui.gridView, ui.onGridGesture),
		NewSwipeArea(ui.detail.Container(), ui.onDetailGesture),
	)
	content := container.NewBorder(
		header,     // top
		nil,        // bottom
		ui.sidebar, // left
		nil,        // right
		mainArea,   // center
	)

	ui.window.SetContent(content)
}

// canvasSpacer reserves horizontal room for the sidebar
func canvasSpacer(width float32) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(width, 0))
	return spacer
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	tr := ui.session.Translate

	settingsItem := fyne.NewMenuItem(tr(localization.KeySettingsTitle), ui.onShowPreferences)

	languageMenu := fyne.NewMenu(tr(localization.KeySettingsLanguage))
	current := ui.session.Preferences().Language
	names := ui.session.Languages()
	for _, lang := range model.Languages() {
		name, ok := names[lang]
		if !ok {
			continue
		}
		code := lang
		item := fyne.NewMenuItem(name, func() { ui.session.SetLanguage(code) })
		item.Checked = code == current
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(tr(localization.KeyAppTitle), settingsItem),
		languageMenu,
	))
}

// onSessionUpdate moves session notifications onto the UI goroutine
func (ui *RootUI) onSessionUpdate(event session.Event) {
	fyne.Do(func() {
		ui.apply(event)
	})
}

// apply renders the part of the state named by event
func (ui *RootUI) apply(event session.Event) {
	ui.log.WithField("event", event).Trace("Applying session update")

	switch event {
	case session.EventPreferences:
		ui.applyPreferences()
		ui.refreshTexts()
		ui.applyView()
	case session.EventView:
		ui.applyView()
	case session.EventCriteria:
		ui.applyCriteria()
	case session.EventPlaylist:
		ui.videoList.Refresh()
		ui.applyView()
	case session.EventVisible:
		ui.applyVisible()
	}
}

func (ui *RootUI) refreshAll() {
	ui.applyPreferences()
	ui.refreshTexts()
	ui.applyView()
	ui.applyCriteria()
	ui.applyVisible()
}

// applyPreferences installs the theme and sizes the window for the device
// view
func (ui *RootUI) applyPreferences() {
	prefs := ui.session.Preferences()
	ui.app.Settings().SetTheme(NewCatalogTheme(prefs))

	if prefs.DeviceView == ui.deviceView {
		return
	}
	ui.deviceView = prefs.DeviceView
	if isMobileDevice() {
		return
	}
	if prefs.DeviceView == model.DeviceViewSmartphone {
		ui.window.Resize(SmartphoneWindowSize)
	} else {
		ui.window.Resize(DesktopWindowSize)
	}
}

// refreshTexts updates all UI texts with the current language
func (ui *RootUI) refreshTexts() {
	tr := ui.session.Translate

	ui.window.SetTitle(tr(localization.KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(tr(localization.KeyHeaderSearch))
	ui.loginBtn.SetText(tr(localization.KeyHeaderLogin))
	ui.signUpBtn.SetText(tr(localization.KeyHeaderSignUp))
	ui.logoutBtn.SetText(tr(localization.KeyHeaderLogout))
	ui.categoriesLabel.SetText(tr(localization.KeySidebarCategories))
	ui.emptyLabel.SetText(tr(localization.KeyCatalogEmpty))

	ui.createMenu()
	ui.categoryList.Refresh()
	ui.videoList.Refresh()
}

// applyView renders identity, navigation, sidebar and modal state
func (ui *RootUI) applyView() {
	view := ui.session.View()

	if view.LoggedIn && view.User != nil {
		ui.userLabel.SetText(IconUser + " " + view.User.Name)
		ui.userLabel.Show()
		ui.logoutBtn.Show()
		ui.loginBtn.Hide()
		ui.signUpBtn.Hide()
	} else {
		ui.userLabel.Hide()
		ui.logoutBtn.Hide()
		ui.loginBtn.Show()
		ui.signUpBtn.Show()
	}

	if view.SidebarCollapsed {
		ui.sidebar.Hide()
	} else {
		ui.sidebar.Show()
	}
	ui.rebuildCategories(view.LoggedIn)

	if view.SelectedVideo != nil {
		video := *view.SelectedVideo
		ui.detail.Update(video, ui.session.InPlaylist(video.ID), ui.session.Preferences().AutoplayEnabled, ui.session.Translate)
		ui.gridView.Hide()
		ui.detail.Container().Show()
	} else {
		ui.detail.Container().Hide()
		ui.gridView.Show()
	}

	ui.applyModal(view.ActiveModal)
}

// applyModal shows the dialog for kind, replacing any other one
func (ui *RootUI) applyModal(kind model.ModalKind) {
	if ui.authDialog != nil && ui.authDialog.Kind() == kind {
		return
	}
	if ui.authDialog != nil {
		d := ui.authDialog
		ui.authDialog = nil
		d.Hide()
	}
	if kind == model.ModalNone {
		return
	}

	ui.authDialog = NewAuthDialog(ui.session, ui.window, kind)
	ui.authDialog.Show()
}

// rebuildCategories lists all, the catalog tags and, when logged in, the
// playlist
func (ui *RootUI) rebuildCategories(loggedIn bool) {
	categories := []model.Category{model.AllCategories()}
	for _, tag := range ui.session.Categories() {
		categories = append(categories, model.TagCategory(tag))
	}
	if loggedIn {
		categories = append(categories, model.MyPlaylistCategory())
	}
	ui.categories = categories
	ui.categoryList.Refresh()
	ui.selectCurrentCategory()
}

func (ui *RootUI) selectCurrentCategory() {
	current := ui.session.Criteria().Category
	for i, c := range ui.categories {
		if c == current {
			ui.categoryList.Select(i)
			return
		}
	}
	ui.categoryList.UnselectAll()
}

// applyCriteria syncs the search field and sidebar with the session
func (ui *RootUI) applyCriteria() {
	query := ui.session.Criteria().Query
	if ui.searchEntry.Text != query {
		ui.searchEntry.SetText(query)
	}
	ui.selectCurrentCategory()
}

// applyVisible renders the latest visible videos
func (ui *RootUI) applyVisible() {
	ui.visible = ui.session.VisibleVideos()
	ui.videoList.Refresh()

	if len(ui.visible) == 0 {
		ui.emptyLabel.Show()
	} else {
		ui.emptyLabel.Hide()
	}
}

// updateVideoRow fills a list row with current data
func (ui *RootUI) updateVideoRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(ui.visible) {
		return
	}
	row, ok := obj.(*VideoRow)
	if !ok {
		ui.log.Warnf("Expected VideoRow but got %T", obj)
		return
	}
	video := ui.visible[id]
	row.Update(video, ui.session.InPlaylist(video.ID))
}

// categoryLabel returns the sidebar text for c
func (ui *RootUI) categoryLabel(c model.Category) string {
	switch {
	case c.IsAll():
		return ui.session.Translate(localization.KeySidebarAll)
	case c.IsMyPlaylist():
		return ui.session.Translate(localization.KeySidebarMyPlaylist)
	default:
		return c.Tag
	}
}

// onShowPreferences shows the preferences dialog in the current language
func (ui *RootUI) onShowPreferences() {
	NewPreferencesDialog(ui.session, ui.window).Show()
}

// onGridGesture opens the sidebar on swipe right and closes it on swipe left
func (ui *RootUI) onGridGesture(gesture GestureType) {
	collapsed := ui.session.View().SidebarCollapsed
	if (gesture == GestureSwipeRight && collapsed) || (gesture == GestureSwipeLeft && !collapsed) {
		ui.session.ToggleSidebarCollapsed()
	}
}

// onDetailGesture goes back to the list on swipe right
func (ui *RootUI) onDetailGesture(gesture GestureType) {
	if gesture == GestureSwipeRight {
		ui.session.GoBack()
	}
}

package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ytget/catalog-browser/internal/catalog"
	"github.com/ytget/catalog-browser/internal/config"
	"github.com/ytget/catalog-browser/internal/filter"
	"github.com/ytget/catalog-browser/internal/localization"
	"github.com/ytget/catalog-browser/internal/logger"
	"github.com/ytget/catalog-browser/internal/model"
)

// Profile defaults for logins that carry no name
const (
	GuestName        = "Guest"
	DefaultAvatarURL = "https://www.gravatar.com/avatar/?d=identicon"
)

var (
	ErrNoCatalog    = errors.New("session needs a catalog")
	ErrNoSettings   = errors.New("session needs settings")
	ErrNoTranslator = errors.New("session needs a translator")
)

// Event tells observers which part of the state changed
type Event int

const (
	EventPreferences Event = iota
	EventView
	EventCriteria
	EventPlaylist
	EventVisible
)

// String returns the event name
func (e Event) String() string {
	switch e {
	case EventPreferences:
		return "preferences"
	case EventView:
		return "view"
	case EventCriteria:
		return "criteria"
	case EventPlaylist:
		return "playlist"
	case EventVisible:
		return "visible"
	default:
		return "unknown"
	}
}

// Options configure a Session
type Options struct {
	Catalog    *catalog.Catalog
	Settings   *config.Settings
	Translator *localization.Translator

	// QuietPeriod defaults to filter.DefaultQuietPeriod
	QuietPeriod time.Duration
	// Scheduler defaults to runtime timers
	Scheduler filter.Scheduler
	Logger    logrus.FieldLogger
	// NewID generates profile IDs, uuid v4 by default
	NewID func() string
}

// Session owns all client state: persisted preferences and playlist, the
// view and identity state, the filter criteria and the visible videos
// derived from them. Intent methods mutate it; accessors return copies.
type Session struct {
	mu sync.Mutex

	catalog    *catalog.Catalog
	settings   *config.Settings
	translator *localization.Translator
	log        logrus.FieldLogger
	newID      func() string

	prefs    model.Preferences
	playlist model.Playlist
	view     model.ViewState
	criteria filter.Criteria
	visible  []model.Video

	debouncer *filter.Debouncer
	onUpdate  func(Event)
	closed    bool
}

// New loads persisted state and computes the first visible set
func New(opts Options) (*Session, error) {
	if opts.Catalog == nil {
		return nil, ErrNoCatalog
	}
	if opts.Settings == nil {
		return nil, ErrNoSettings
	}
	if opts.Translator == nil {
		return nil, ErrNoTranslator
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	s := &Session{
		catalog:    opts.Catalog,
		settings:   opts.Settings,
		translator: opts.Translator,
		log:        logger.OrDefault(opts.Logger),
		newID:      opts.NewID,
		prefs:      opts.Settings.Load(),
		playlist:   opts.Settings.GetPlaylist(),
		criteria:   filter.Criteria{Category: model.AllCategories()},
	}

	if user := opts.Settings.GetUser(); user != nil {
		s.view.LoggedIn = true
		s.view.User = user
	}

	s.visible = filter.Apply(s.catalog.Videos(), s.criteria, s.playlist)
	s.debouncer = filter.NewDebouncer(opts.QuietPeriod, opts.Scheduler, s.recompute)

	s.log.WithFields(logrus.Fields{
		"videos":    s.catalog.Len(),
		"playlist":  s.playlist.Len(),
		"logged_in": s.view.LoggedIn,
		"language":  s.prefs.Language,
	}).Info("Session started")

	return s, nil
}

// SetUpdateCallback sets the function called after each state change.
// It runs outside the session lock and may call back into the session.
func (s *Session) SetUpdateCallback(callback func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Close stops the pending recomputation. The session ignores intents after
// Close.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.debouncer.Close()
}

// Flush applies a pending recomputation now instead of after the quiet period
func (s *Session) Flush() {
	s.debouncer.Flush()
}

// RecomputePending reports whether the visible set is waiting on the
// debounce timer
func (s *Session) RecomputePending() bool {
	return s.debouncer.Pending()
}

// recompute reads the criteria and playlist current at fire time
func (s *Session) recompute(token uint64) {
	s.mu.Lock()
	if s.closed || !s.debouncer.Valid(token) {
		s.mu.Unlock()
		return
	}
	s.visible = filter.Apply(s.catalog.Videos(), s.criteria, s.playlist)
	count := len(s.visible)
	callback := s.onUpdate
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"token": token, "visible": count}).Debug("Visible videos recomputed")
	if callback != nil {
		callback(EventVisible)
	}
}

// update runs fn under the lock and then notifies observers of the events
// it returns
func (s *Session) update(fn func() []Event) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	events := fn()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback == nil {
		return
	}
	for _, e := range events {
		callback(e)
	}
}

// Read accessors

// VisibleVideos returns the videos the grid should show
func (s *Session) VisibleVideos() []model.Video {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Video, len(s.visible))
	copy(out, s.visible)
	return out
}

// Preferences returns the current preferences
func (s *Session) Preferences() model.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// View returns a copy of the view state
func (s *Session) View() model.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := s.view
	if view.SelectedVideo != nil {
		selected := *view.SelectedVideo
		view.SelectedVideo = &selected
	}
	if view.User != nil {
		user := *view.User
		view.User = &user
	}
	return view
}

// Playlist returns the playlist
func (s *Session) Playlist() model.Playlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playlist
}

// InPlaylist reports whether the video with id is in the playlist
func (s *Session) InPlaylist(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playlist.Contains(id)
}

// Criteria returns the current search query and category
func (s *Session) Criteria() filter.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// Categories returns the catalog category tags for the sidebar
func (s *Session) Categories() []string {
	return s.catalog.Categories()
}

// Translate resolves key in the current language
func (s *Session) Translate(key string) string {
	s.mu.Lock()
	lang := s.prefs.Language
	s.mu.Unlock()

	return s.translator.Resolve(key, lang)
}

// Languages returns the selectable languages with display names
func (s *Session) Languages() map[model.Language]string {
	return s.translator.Languages()
}

// Navigation intents

// SelectVideo opens video in detail view
func (s *Session) SelectVideo(video model.Video) {
	s.update(func() []Event {
		selected := video
		s.view.SelectedVideo = &selected
		s.log.WithField("video_id", video.ID).Debug("Video selected")
		return []Event{EventView}
	})
}

// GoBack returns from detail view to the grid
func (s *Session) GoBack() {
	s.update(func() []Event {
		if s.view.SelectedVideo == nil {
			return nil
		}
		s.view.SelectedVideo = nil
		return []Event{EventView}
	})
}

// OpenModal shows the sign-in or sign-up dialog
func (s *Session) OpenModal(kind model.ModalKind) {
	s.setModal(kind)
}

// SwitchModal swaps the open dialog for kind without closing in between
func (s *Session) SwitchModal(kind model.ModalKind) {
	s.setModal(kind)
}

// CloseModal hides any dialog
func (s *Session) CloseModal() {
	s.setModal(model.ModalNone)
}

func (s *Session) setModal(kind model.ModalKind) {
	s.update(func() []Event {
		if s.view.ActiveModal == kind {
			return nil
		}
		s.view.ActiveModal = kind
		return []Event{EventView}
	})
}

// ToggleSidebarCollapsed collapses or expands the sidebar
func (s *Session) ToggleSidebarCollapsed() {
	s.update(func() []Event {
		s.view.SidebarCollapsed = !s.view.SidebarCollapsed
		return []Event{EventView}
	})
}

// Identity intents

// Login marks the session logged in with a profile built from creds and
// closes any dialog. Credentials are not verified; any input logs in.
func (s *Session) Login(creds model.Credentials) model.UserProfile {
	var profile model.UserProfile
	s.update(func() []Event {
		profile = s.profileFrom(creds)
		s.view.LoggedIn = true
		s.view.User = &profile
		s.view.ActiveModal = model.ModalNone
		s.settings.SetUser(&profile)

		s.log.WithField("user_id", profile.ID).Info("User logged in")
		return []Event{EventView}
	})
	return profile
}

// Logout clears the profile. A session filtered to the playlist goes back
// to all categories.
func (s *Session) Logout() {
	s.update(func() []Event {
		s.view.LoggedIn = false
		s.view.User = nil
		s.settings.SetUser(nil)
		s.log.Info("User logged out")

		events := []Event{EventView}
		if s.criteria.Category.IsMyPlaylist() {
			s.criteria.Category = model.AllCategories()
			s.debouncer.Trigger()
			events = append(events, EventCriteria)
		}
		return events
	})
}

func (s *Session) profileFrom(creds model.Credentials) model.UserProfile {
	name := strings.TrimSpace(creds.Name)
	email := strings.TrimSpace(creds.Email)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	if name == "" {
		name = GuestName
	}

	return model.UserProfile{
		ID:        s.newID(),
		Name:      name,
		Email:     email,
		AvatarURL: DefaultAvatarURL,
	}
}

// Preference intents

// ToggleTheme switches between light and dark
func (s *Session) ToggleTheme() {
	s.update(func() []Event {
		s.prefs.Theme = s.prefs.Theme.Toggled()
		s.settings.SetTheme(s.prefs.Theme)
		return []Event{EventPreferences}
	})
}

// ToggleAutoplay flips the autoplay flag
func (s *Session) ToggleAutoplay() {
	s.update(func() []Event {
		s.prefs.AutoplayEnabled = !s.prefs.AutoplayEnabled
		s.settings.SetAutoplayEnabled(s.prefs.AutoplayEnabled)
		return []Event{EventPreferences}
	})
}

// SetLanguage switches the UI language. Unsupported codes are ignored.
func (s *Session) SetLanguage(lang model.Language) {
	s.update(func() []Event {
		if !lang.IsValid() {
			s.log.WithField("language", lang).Warn("Ignoring unsupported language")
			return nil
		}
		if s.prefs.Language == lang {
			return nil
		}
		s.prefs.Language = lang
		s.settings.SetLanguage(lang)
		return []Event{EventPreferences}
	})
}

// SetDeviceView switches the layout profile. Unknown views are ignored.
func (s *Session) SetDeviceView(view model.DeviceView) {
	s.update(func() []Event {
		if !view.IsValid() {
			s.log.WithField("device_view", view).Warn("Ignoring unknown device view")
			return nil
		}
		if s.prefs.DeviceView == view {
			return nil
		}
		s.prefs.DeviceView = view
		s.settings.SetDeviceView(view)
		return []Event{EventPreferences}
	})
}

// Filter intents

// SetSearchQuery changes the query and schedules a recomputation
func (s *Session) SetSearchQuery(query string) {
	s.update(func() []Event {
		if s.criteria.Query == query {
			return nil
		}
		s.criteria.Query = query
		s.debouncer.Trigger()
		return []Event{EventCriteria}
	})
}

// SetCategory changes the category and schedules a recomputation
func (s *Session) SetCategory(category model.Category) {
	s.update(func() []Event {
		if s.criteria.Category == category {
			return nil
		}
		s.criteria.Category = category
		s.debouncer.Trigger()
		return []Event{EventCriteria}
	})
}

// TogglePlaylist adds video to the playlist or removes it, persists the
// result and schedules a recomputation
func (s *Session) TogglePlaylist(video model.Video) {
	s.update(func() []Event {
		s.playlist = s.playlist.Toggle(video)
		s.settings.SetPlaylist(s.playlist)
		s.debouncer.Trigger()

		s.log.WithFields(logrus.Fields{
			"video_id": video.ID,
			"added":    s.playlist.Contains(video.ID),
		}).Debug("Playlist toggled")
		return []Event{EventPlaylist}
	})
}

package localization

// Text keys for localization
const (
	KeyLanguageName = "language.name"
	KeyAppTitle     = "app.title"

	KeyHeaderSearch = "header.search"
	KeyHeaderLogin  = "header.login"
	KeyHeaderSignUp = "header.sign_up"
	KeyHeaderLogout = "header.logout"

	KeySidebarCategories  = "sidebar.categories"
	KeySidebarAll         = "sidebar.all"
	KeySidebarMyPlaylist  = "sidebar.my_playlist"
	KeySidebarCollapse    = "sidebar.collapse"
	KeySettingsTitle      = "sidebar.settings.title"
	KeySettingsTheme      = "sidebar.settings.theme"
	KeySettingsThemeLight = "sidebar.settings.theme_light"
	KeySettingsThemeDark  = "sidebar.settings.theme_dark"
	KeySettingsLanguage   = "sidebar.settings.language"
	KeySettingsAutoplay   = "sidebar.settings.autoplay"
	KeySettingsDevice     = "sidebar.settings.device_view"
	KeySettingsDesktop    = "sidebar.settings.desktop"
	KeySettingsSmartphone = "sidebar.settings.smartphone"

	KeyVideoBack           = "video.back"
	KeyVideoPrice          = "video.price"
	KeyVideoAddPlaylist    = "video.add_to_playlist"
	KeyVideoRemovePlaylist = "video.remove_from_playlist"
	KeyCatalogEmpty        = "catalog.empty"

	KeySignInTitle   = "modal.sign_in.title"
	KeySignInSubmit  = "modal.sign_in.submit"
	KeySignInSwitch  = "modal.sign_in.switch"
	KeySignUpTitle   = "modal.sign_up.title"
	KeySignUpSubmit  = "modal.sign_up.submit"
	KeySignUpSwitch  = "modal.sign_up.switch"
	KeyModalName     = "modal.fields.name"
	KeyModalEmail    = "modal.fields.email"
	KeyModalPassword = "modal.fields.password"
	KeyModalCancel   = "modal.cancel"
)

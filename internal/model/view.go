package model

// ModalKind identifies the dialog shown over the catalog
type ModalKind string

const (
	ModalNone   ModalKind = ""
	ModalSignIn ModalKind = "sign-in"
	ModalSignUp ModalKind = "sign-up"
)

// String returns the string representation of ModalKind
func (m ModalKind) String() string {
	if m == ModalNone {
		return "none"
	}
	return string(m)
}

// ViewState is the transient navigation and identity state.
// User is non-nil exactly when LoggedIn is true.
type ViewState struct {
	SelectedVideo    *Video
	ActiveModal      ModalKind
	LoggedIn         bool
	User             *UserProfile
	SidebarCollapsed bool
}

// IsDetail returns true when a video is open in detail view
func (v ViewState) IsDetail() bool {
	return v.SelectedVideo != nil
}

// HasModal returns true when a dialog is open
func (v ViewState) HasModal() bool {
	return v.ActiveModal != ModalNone
}

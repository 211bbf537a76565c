package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/catalog-browser/internal/localization"
	"github.com/ytget/catalog-browser/internal/model"
	"github.com/ytget/catalog-browser/internal/session"
)

// AuthDialog is the sign-in or sign-up form. Any submitted input logs in.
type AuthDialog struct {
	session *session.Session
	window  fyne.Window
	kind    model.ModalKind
	dialog  *dialog.FormDialog

	nameEntry     *widget.Entry
	emailEntry    *widget.Entry
	passwordEntry *widget.Entry
	switchBtn     *widget.Button
}

// NewAuthDialog creates the dialog for kind
func NewAuthDialog(sess *session.Session, window fyne.Window, kind model.ModalKind) *AuthDialog {
	ad := &AuthDialog{
		session: sess,
		window:  window,
		kind:    kind,
	}

	ad.createUI()
	return ad
}

// Kind returns which form the dialog shows
func (ad *AuthDialog) Kind() model.ModalKind {
	return ad.kind
}

// Show displays the dialog
func (ad *AuthDialog) Show() {
	ad.dialog.Show()
}

// Hide closes the dialog
func (ad *AuthDialog) Hide() {
	ad.dialog.Hide()
}

func (ad *AuthDialog) createUI() {
	tr := ad.session.Translate

	titleKey, submitKey, switchKey := localization.KeySignInTitle, localization.KeySignInSubmit, localization.KeySignInSwitch
	other := model.ModalSignUp
	if ad.kind == model.ModalSignUp {
		titleKey, submitKey, switchKey = localization.KeySignUpTitle, localization.KeySignUpSubmit, localization.KeySignUpSwitch
		other = model.ModalSignIn
	}

	ad.nameEntry = widget.NewEntry()
	ad.emailEntry = widget.NewEntry()
	ad.emailEntry.SetPlaceHolder("name@example.com")
	ad.passwordEntry = widget.NewPasswordEntry()

	ad.switchBtn = widget.NewButton(tr(switchKey), func() {
		ad.session.SwitchModal(other)
	})
	ad.switchBtn.Importance = widget.LowImportance

	var items []*widget.FormItem
	if ad.kind == model.ModalSignUp {
		items = append(items, widget.NewFormItem(tr(localization.KeyModalName), ad.nameEntry))
	}
	items = append(items,
		widget.NewFormItem(tr(localization.KeyModalEmail), ad.emailEntry),
		widget.NewFormItem(tr(localization.KeyModalPassword), ad.passwordEntry),
		widget.NewFormItem("", ad.switchBtn),
	)

	ad.dialog = dialog.NewForm(
		tr(titleKey),
		tr(submitKey),
		tr(localization.KeyModalCancel),
		items,
		ad.onClose,
		ad.window,
	)
	ad.dialog.Resize(fyne.NewSize(AuthDialogWidth, ad.dialog.MinSize().Height))
}

// onClose runs for submit, cancel and programmatic Hide alike. Only a
// dismissal of the form the session still shows closes the modal, so
// swapping forms does not close the new one.
func (ad *AuthDialog) onClose(submitted bool) {
	if submitted {
		ad.session.Login(ad.credentials())
		return
	}
	if ad.session.View().ActiveModal == ad.kind {
		ad.session.CloseModal()
	}
}

func (ad *AuthDialog) credentials() model.Credentials {
	return model.Credentials{
		Name:     ad.nameEntry.Text,
		Email:    ad.emailEntry.Text,
		Password: ad.passwordEntry.Text,
	}
}

package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/catalog-browser/internal/localization"
	"github.com/ytget/catalog-browser/internal/model"
)

// VideoDetail shows one video with back and playlist actions
type VideoDetail struct {
	container *fyne.Container

	backBtn          *widget.Button
	titleLabel       *widget.Label
	categoryLabel    *widget.Label
	priceLabel       *widget.Label
	descriptionLabel *widget.Label
	link             *widget.Hyperlink
	autoplayLabel    *widget.Label
	playlistBtn      *widget.Button

	video model.Video

	onBack           func()
	onTogglePlaylist func(model.Video)
}

// NewVideoDetail creates an empty detail view
func NewVideoDetail(onBack func(), onTogglePlaylist func(model.Video)) *VideoDetail {
	vd := &VideoDetail{
		onBack:           onBack,
		onTogglePlaylist: onTogglePlaylist,
	}
	vd.createUI()
	return vd
}

func (vd *VideoDetail) createUI() {
	vd.backBtn = widget.NewButton(IconBack, vd.onBack)
	vd.titleLabel = widget.NewLabel("")
	vd.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	vd.titleLabel.Wrapping = fyne.TextWrapWord
	vd.categoryLabel = widget.NewLabel("")
	vd.priceLabel = widget.NewLabel("")
	vd.descriptionLabel = widget.NewLabel("")
	vd.descriptionLabel.Wrapping = fyne.TextWrapWord
	vd.link = widget.NewHyperlink("", nil)
	vd.autoplayLabel = widget.NewLabel("")
	vd.playlistBtn = widget.NewButton("", func() {
		if vd.onTogglePlaylist != nil && vd.video.ID != 0 {
			vd.onTogglePlaylist(vd.video)
		}
	})

	vd.container = container.NewBorder(
		container.NewHBox(vd.backBtn),
		container.NewHBox(vd.playlistBtn),
		nil,
		nil,
		container.NewVScroll(container.NewVBox(
			vd.titleLabel,
			container.NewHBox(vd.categoryLabel, vd.priceLabel),
			vd.link,
			vd.autoplayLabel,
			vd.descriptionLabel,
		)),
	)
}

// Container returns the detail view
func (vd *VideoDetail) Container() *fyne.Container {
	return vd.container
}

// Update shows video with texts resolved by tr
func (vd *VideoDetail) Update(video model.Video, inPlaylist, autoplay bool, tr func(string) string) {
	vd.video = video

	vd.backBtn.SetText(IconBack + " " + tr(localization.KeyVideoBack))
	vd.titleLabel.SetText(video.Title)
	vd.categoryLabel.SetText(video.Category)
	vd.priceLabel.SetText(fmt.Sprintf(DetailPriceFormat, tr(localization.KeyVideoPrice), formatPrice(video.Price)))
	vd.descriptionLabel.SetText(video.Description)

	vd.link.SetText(video.URL)
	_ = vd.link.SetURLFromString(video.URL)

	if autoplay {
		vd.autoplayLabel.SetText(IconPlay + " " + tr(localization.KeySettingsAutoplay))
		vd.autoplayLabel.Show()
	} else {
		vd.autoplayLabel.Hide()
	}

	if inPlaylist {
		vd.playlistBtn.SetText(IconRemove + " " + tr(localization.KeyVideoRemovePlaylist))
	} else {
		vd.playlistBtn.SetText(IconAdd + " " + tr(localization.KeyVideoAddPlaylist))
	}
}

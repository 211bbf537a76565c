package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/catalog-browser/internal/model"
)

// formatPrice formats a video price for display
func formatPrice(price float64) string {
	return fmt.Sprintf(PriceFormat, price)
}

// VideoRow is a compact list row: title, category and price, and a playlist
// toggle
type VideoRow struct {
	widget.BaseWidget

	video      model.Video
	inPlaylist bool

	titleLabel *widget.Label
	metaLabel  *widget.Label
	toggleBtn  *widget.Button

	onTogglePlaylist func(model.Video)
}

// NewVideoRow creates an empty row; list templates fill it via Update
func NewVideoRow(onTogglePlaylist func(model.Video)) *VideoRow {
	vr := &VideoRow{onTogglePlaylist: onTogglePlaylist}
	vr.ExtendBaseWidget(vr)

	vr.titleLabel = widget.NewLabel("")
	vr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	vr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	vr.metaLabel = widget.NewLabel("")
	vr.toggleBtn = widget.NewButton(IconAdd, vr.onToggle)
	vr.toggleBtn.Importance = widget.LowImportance

	return vr
}

// Update shows video in the row
func (vr *VideoRow) Update(video model.Video, inPlaylist bool) {
	vr.video = video
	vr.inPlaylist = inPlaylist

	vr.titleLabel.SetText(video.Title)
	vr.metaLabel.SetText(video.Category + MiddleDotSeparator + formatPrice(video.Price))
	if inPlaylist {
		vr.toggleBtn.SetText(IconRemove)
	} else {
		vr.toggleBtn.SetText(IconAdd)
	}
}

// Video returns the video shown in the row
func (vr *VideoRow) Video() model.Video {
	return vr.video
}

func (vr *VideoRow) onToggle() {
	if vr.onTogglePlaylist != nil && vr.video.ID != 0 {
		vr.onTogglePlaylist(vr.video)
	}
}

// CreateRenderer lays the row out as text on the left and the toggle on the
// right
func (vr *VideoRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(vr.titleLabel, vr.metaLabel)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, nil, vr.toggleBtn, text))
}

// MinSize keeps rows tall enough to tap
func (vr *VideoRow) MinSize() fyne.Size {
	size := vr.BaseWidget.MinSize()
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}

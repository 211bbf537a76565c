package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// classifyGesture turns a touch movement into a gesture
func classifyGesture(dx, dy float32, duration time.Duration) GestureType {
	moved := dx*dx+dy*dy >= DefaultSwipeThreshold*DefaultSwipeThreshold
	if !moved {
		if duration >= DefaultLongPressDuration {
			return GestureLongPress
		}
		return GestureTap
	}

	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// GestureHandler tracks one touch and reports the gesture it made
type GestureHandler struct {
	onGesture func(GestureType)
	now       func() time.Time

	touchStartTime time.Time
	touchStartPos  fyne.Position
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{onGesture: onGesture, now: time.Now}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = gh.now()
	gh.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if gh.touchStartTime.IsZero() {
		return
	}
	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	gesture := classifyGesture(dx, dy, gh.now().Sub(gh.touchStartTime))
	gh.touchStartTime = time.Time{}

	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

// SwipeArea wraps content and reports swipes made over it
type SwipeArea struct {
	widget.BaseWidget
	content fyne.CanvasObject
	handler *GestureHandler
}

var _ mobile.Touchable = (*SwipeArea)(nil)

// NewSwipeArea creates a swipe-aware wrapper around content
func NewSwipeArea(content fyne.CanvasObject, onGesture func(GestureType)) *SwipeArea {
	sa := &SwipeArea{content: content, handler: NewGestureHandler(onGesture)}
	sa.ExtendBaseWidget(sa)
	return sa
}

// CreateRenderer renders the wrapped content
func (sa *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sa.content)
}

// TouchDown forwards to the gesture handler
func (sa *SwipeArea) TouchDown(event *mobile.TouchEvent) {
	sa.handler.TouchDown(event)
}

// TouchUp forwards to the gesture handler
func (sa *SwipeArea) TouchUp(event *mobile.TouchEvent) {
	sa.handler.TouchUp(event)
}

// TouchCancel forwards to the gesture handler
func (sa *SwipeArea) TouchCancel(event *mobile.TouchEvent) {
	sa.handler.TouchCancel(event)
}

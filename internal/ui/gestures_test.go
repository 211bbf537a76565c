package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"github.com/stretchr/testify/assert"
)

func TestClassifyGesture(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float32
		duration time.Duration
		expected GestureType
	}{
		{name: "tap", dx: 2, dy: -3, duration: 100 * time.Millisecond, expected: GestureTap},
		{name: "long press", dx: 1, dy: 1, duration: time.Second, expected: GestureLongPress},
		{name: "swipe right", dx: 120, dy: 10, duration: 200 * time.Millisecond, expected: GestureSwipeRight},
		{name: "swipe left", dx: -80, dy: 20, duration: 200 * time.Millisecond, expected: GestureSwipeLeft},
		{name: "swipe up", dx: 10, dy: -90, duration: 200 * time.Millisecond, expected: GestureSwipeUp},
		{name: "slow swipe is still a swipe", dx: 0, dy: 90, duration: time.Second, expected: GestureSwipeDown},
		{name: "short move is a tap", dx: 30, dy: 30, duration: 100 * time.Millisecond, expected: GestureTap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyGesture(tt.dx, tt.dy, tt.duration))
		})
	}
}

func TestGestureHandler_ReportsSwipe(t *testing.T) {
	var got []GestureType
	gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })
	start := time.Unix(0, 0)
	gh.now = func() time.Time { return start }

	gh.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 100)}})
	gh.now = func() time.Time { return start.Add(150 * time.Millisecond) }
	gh.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(200, 110)}})

	// A cancelled touch reports nothing.
	gh.TouchDown(&mobile.TouchEvent{})
	gh.TouchCancel(&mobile.TouchEvent{})
	gh.TouchUp(&mobile.TouchEvent{})

	assert.Equal(t, []GestureType{GestureSwipeRight}, got)
}

package ui

import (
	"sync"
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

// GestureHandler turns touch down/up pairs into gestures
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration

	now func() time.Time
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
		now:               time.Now,
	}
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
	duration := gh.now().Sub(gh.touchStartTime)
	gh.touchStartTime = time.Time{}

	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	distance := dx*dx + dy*dy
	threshold := gh.swipeThreshold * gh.swipeThreshold

	switch {
	case distance >= threshold:
		gh.detectSwipeDirection(dx, dy)
	case duration >= gh.longPressDuration:
		gh.triggerGesture(GestureLongPress)
	default:
		gh.triggerGesture(GestureTap)
	}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

// detectSwipeDirection determines the direction of a swipe gesture
func (gh *GestureHandler) detectSwipeDirection(dx, dy float32) {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			gh.triggerGesture(GestureSwipeRight)
		} else {
			gh.triggerGesture(GestureSwipeLeft)
		}
		return
	}
	if dy > 0 {
		gh.triggerGesture(GestureSwipeDown)
	} else {
		gh.triggerGesture(GestureSwipeUp)
	}
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// PullToRefresh wraps content and calls refreshFunc on a downward swipe.
// Further swipes within RefreshCooldown are ignored.
type PullToRefresh struct {
	widget.BaseWidget

	content        fyne.CanvasObject
	gestureHandler *GestureHandler
	refreshFunc    func()
	cooldown       time.Duration

	mu          sync.Mutex
	lastRefresh time.Time
}

var _ mobile.Touchable = (*PullToRefresh)(nil)

// NewPullToRefresh creates a new pull-to-refresh wrapper
func NewPullToRefresh(content fyne.CanvasObject, refreshFunc func()) *PullToRefresh {
	ptr := &PullToRefresh{
		content:     content,
		refreshFunc: refreshFunc,
		cooldown:    RefreshCooldown,
	}
	ptr.gestureHandler = NewGestureHandler(ptr.handleGesture)
	ptr.ExtendBaseWidget(ptr)

	return ptr
}

// CreateRenderer implements fyne.Widget
func (ptr *PullToRefresh) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ptr.content)
}

// handleGesture handles gestures for pull-to-refresh
func (ptr *PullToRefresh) handleGesture(gesture GestureType) {
	if gesture == GestureSwipeDown {
		ptr.triggerRefresh()
	}
}

// triggerRefresh runs the refresh action unless one ran within the cooldown
func (ptr *PullToRefresh) triggerRefresh() {
	if ptr.refreshFunc == nil {
		return
	}

	ptr.mu.Lock()
	now := ptr.gestureHandler.now()
	if !ptr.lastRefresh.IsZero() && now.Sub(ptr.lastRefresh) < ptr.cooldown {
		ptr.mu.Unlock()
		return
	}
	ptr.lastRefresh = now
	ptr.mu.Unlock()

	ptr.refreshFunc()
}

// TouchDown handles touch down events
func (ptr *PullToRefresh) TouchDown(event *mobile.TouchEvent) {
	ptr.gestureHandler.TouchDown(event)
}

// TouchUp handles touch up events
func (ptr *PullToRefresh) TouchUp(event *mobile.TouchEvent) {
	ptr.gestureHandler.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (ptr *PullToRefresh) TouchCancel(event *mobile.TouchEvent) {
	ptr.gestureHandler.TouchCancel(event)
}

package src

import (
	"errors"
	"time"
)

// Navigation is bounded to one week around wall-clock now, evaluated at the
// moment of the call.
const windowNavigationLimit = 7 * 24 * time.Hour

var errWindowOutOfRange = errors.New("window start outside the allowed time range")

// TimeWindow : The currently visible span of slots. One logical owner
// serializes navigation, the Guide aggregate guards access.
type TimeWindow struct {
	start        time.Time
	slotMinutes  int
	visibleSlots int
	initialized  bool

	now func() time.Time
}

// WindowSnapshot : Read-only view for the timeline renderer
type WindowSnapshot struct {
	Start        time.Time `json:"start"`
	SlotMinutes  int       `json:"slotMinutes"`
	VisibleSlots int       `json:"visibleSlots"`
}

func newTimeWindow(slotMinutes, visibleHours int) *TimeWindow {
	if slotMinutes <= 0 {
		slotMinutes = defaultSlotMinutes
	}
	if visibleHours <= 0 {
		visibleHours = defaultVisibleHours
	}

	return &TimeWindow{
		slotMinutes:  slotMinutes,
		visibleSlots: visibleHours * 60 / slotMinutes,
		now:          time.Now,
	}
}

// alignToSlot floors the wall-clock minute to the slot multiple and zeroes
// seconds and below. The location of the instant is preserved.
func (w *TimeWindow) alignToSlot(t time.Time) time.Time {
	return t.Add(-time.Duration(t.Minute()%w.slotMinutes)*time.Minute -
		time.Duration(t.Second())*time.Second -
		time.Duration(t.Nanosecond()))
}

// initialize sets the window to the slot floor of now. Idempotent, the first
// successful channel load triggers it.
func (w *TimeWindow) initialize() {
	if w.initialized {
		return
	}
	w.start = w.alignToSlot(w.now())
	w.initialized = true
}

// shift proposes a new window start. Out-of-range proposals leave the window
// unchanged, there is no partial shift.
func (w *TimeWindow) shift(deltaMinutes int) error {
	var newStart = w.start.Add(time.Duration(deltaMinutes) * time.Minute)
	var now = w.now()

	if newStart.Before(now.Add(-windowNavigationLimit)) || newStart.After(now.Add(windowNavigationLimit)) {
		return errWindowOutOfRange
	}

	w.start = newStart
	return nil
}

func (w *TimeWindow) snapshot() WindowSnapshot {
	return WindowSnapshot{
		Start:        w.start,
		SlotMinutes:  w.slotMinutes,
		VisibleSlots: w.visibleSlots,
	}
}

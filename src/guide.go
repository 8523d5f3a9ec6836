package src

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("tvguide")

// Guide : Owns the channel directory, the schedule index and the time window.
// Loads replace state wholesale under the lock, so concurrent readers never
// observe a partially rebuilt schedule. Navigation is expected to come from a
// single logical owner.
type Guide struct {
	mu       sync.RWMutex
	channels []ChannelStruct
	index    *ScheduleIndex
	window   *TimeWindow

	now func() time.Time
}

// NewGuide : Guide with an empty directory and schedule
func NewGuide(slotMinutes, visibleHours int) *Guide {
	return &Guide{
		index:  newScheduleIndex(),
		window: newTimeWindow(slotMinutes, visibleHours),
		now:    time.Now,
	}
}

// GuideFromSettings : Guide configured from the loaded settings
func GuideFromSettings() *Guide {
	return NewGuide(Settings.GuideSlotMinutes, Settings.GuideVisibleHours)
}

// LoadChannelList : Replaces the channel directory from playlist text. The
// first successful load initializes the time window to the slot floor of now.
func (g *Guide) LoadChannelList(content string) error {
	_, span := tracer.Start(context.Background(), "Channel List Load")
	defer span.End()

	channels, err := parseChannelList([]byte(content))
	if err != nil {
		span.RecordError(err)
		return err
	}

	g.mu.Lock()
	g.channels = channels
	g.window.initialize()
	g.mu.Unlock()

	showInfo(fmt.Sprintf("Channels:%d channels loaded", len(channels)))
	return nil
}

// LoadGuide : Rebuilds the schedule index from feed text and swaps it in.
// Never fails, an unreadable feed leaves an empty schedule behind.
func (g *Guide) LoadGuide(content string) {
	_, span := tracer.Start(context.Background(), "Guide Feed Load")
	defer span.End()

	var index = parseGuide([]byte(content))

	g.mu.Lock()
	g.index = index
	g.mu.Unlock()

	showInfo(fmt.Sprintf("EPG:%d programmes loaded", index.programmeCount()))
}

// Channels : Copy of the channel directory in playlist order
func (g *Guide) Channels() []ChannelStruct {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.channels)
}

// Groups : Unique playlist group titles
func (g *Guide) Groups() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return playlistGroups(g.channels)
}

// Window : Snapshot for the timeline renderer
func (g *Guide) Window() WindowSnapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.window.snapshot()
}

// Shift : Moves the window by an arbitrary number of minutes. A rejected
// shift leaves the window unchanged and queues a transient advisory.
func (g *Guide) Shift(deltaMinutes int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.window.shift(deltaMinutes); err != nil {
		addNotification(Notification{Type: "warning", Message: getErrMsg(3001)})
		showDebug(fmt.Sprintf("Guide:Shift by %d minutes rejected", deltaMinutes), 1)
		return err
	}
	return nil
}

// Grid : Renderable matrix for the current window
func (g *Guide) Grid() Grid {
	_, span := tracer.Start(context.Background(), "Guide Grid Build")
	defer span.End()

	g.mu.RLock()
	var channels = g.channels
	var index = g.index
	var window = g.window.snapshot()
	g.mu.RUnlock()

	return buildGuideGrid(channels, index, window)
}

// FindProgramme : Matcher surface for slot queries
func (g *Guide) FindProgramme(channel ChannelStruct, slotStart, slotEnd time.Time) *Programme {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.index.FindProgramme(channel, slotStart, slotEnd)
}

// HasEPG : Whether the schedule carries any entries for the channel
func (g *Guide) HasEPG(channel ChannelStruct) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.index.HasData(channel)
}

// NowPlaying : The programme airing on the channel right now, or nil
func (g *Guide) NowPlaying(channel ChannelStruct) *Programme {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var now = g.now()
	return g.index.FindProgramme(channel, now, now.Add(time.Nanosecond))
}

// Upcoming : The next count programmes on the channel that are airing or
// still ahead at the given instant, for the mini guide
func (g *Guide) Upcoming(channel ChannelStruct, from time.Time, count int) (list []*Programme) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, programme := range g.index.candidatesFor(channel) {
		if !programme.Stop.After(from) {
			continue
		}
		list = append(list, programme)
		if len(list) == count {
			break
		}
	}
	return
}

// Notifications : Hands queued advisories to the UI collaborator
func (g *Guide) Notifications() []Notification {
	return getNotifications()
}

// ProgrammeProgress : Elapsed fraction of a programme at the given instant,
// clamped to [0, 1]. The progress bar renderer consumes this.
func ProgrammeProgress(programme *Programme, now time.Time) float64 {
	if programme == nil || !programme.Stop.After(programme.Start) {
		return 0
	}

	var progress = float64(now.Sub(programme.Start)) / float64(programme.Stop.Sub(programme.Start))
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

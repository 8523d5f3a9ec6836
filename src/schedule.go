package src

import (
	"slices"
	"sort"
	"strings"
	"time"
)

// Programme : One guide entry. Start and Stop are absolute UTC instants,
// Start < Stop always holds for stored entries.
type Programme struct {
	Title      string    `json:"title"`
	SubTitle   string    `json:"subtitle,omitempty"`
	Desc       string    `json:"description,omitempty"`
	Rating     string    `json:"rating,omitempty"`
	Season     *int      `json:"season,omitempty"`
	Episode    *int      `json:"episode,omitempty"`
	Start      time.Time `json:"start"`
	Stop       time.Time `json:"stop"`
	Icon       string    `json:"icon,omitempty"`
	ChannelKey string    `json:"channelKey"`
}

// ScheduleIndex : Queryable schedule built from one guide feed. Both indices
// are rebuilt wholesale on every feed load and never mutated afterwards, so
// any number of readers can share one instance.
type ScheduleIndex struct {
	byChannelID   map[string][]*Programme
	byChannelName map[string][]*Programme

	// Feed channel id to display name and logo, last writer wins
	names map[string]string
	icons map[string]string
}

func newScheduleIndex() *ScheduleIndex {
	return &ScheduleIndex{
		byChannelID:   make(map[string][]*Programme),
		byChannelName: make(map[string][]*Programme),
		names:         make(map[string]string),
		icons:         make(map[string]string),
	}
}

// insert files the programme under the feed channel id and under the
// normalized display name of that channel.
func (s *ScheduleIndex) insert(programme *Programme) {
	s.byChannelID[programme.ChannelKey] = append(s.byChannelID[programme.ChannelKey], programme)

	var name = s.names[programme.ChannelKey]
	if len(name) == 0 {
		// No channel definition in the feed, the identifier serves as name
		name = programme.ChannelKey
	}
	var normalized = strings.ToLower(name)
	s.byChannelName[normalized] = append(s.byChannelName[normalized], programme)
}

// sortLists orders every list ascending by start time. Ties keep feed order.
func (s *ScheduleIndex) sortLists() {
	for _, list := range s.byChannelID {
		slices.SortStableFunc(list, func(a, b *Programme) int {
			return a.Start.Compare(b.Start)
		})
	}
	for _, list := range s.byChannelName {
		slices.SortStableFunc(list, func(a, b *Programme) int {
			return a.Start.Compare(b.Start)
		})
	}
}

func (s *ScheduleIndex) programmeCount() (count int) {
	for _, list := range s.byChannelID {
		count += len(list)
	}
	return
}

// candidatesFor picks the programme list for a playlist channel. The stable
// identifier wins over the display name, tiers are never merged.
func (s *ScheduleIndex) candidatesFor(channel ChannelStruct) []*Programme {
	if len(channel.TvgID) > 0 {
		if list, ok := s.byChannelID[channel.TvgID]; ok && len(list) > 0 {
			return list
		}
	}

	if list, ok := s.byChannelName[strings.ToLower(channel.Name)]; ok && len(list) > 0 {
		return list
	}

	// Fallback for names the lowercase mapping cannot represent
	if list, ok := s.byChannelName[channel.Name]; ok && len(list) > 0 {
		return list
	}
	return nil
}

// FindProgramme : Returns the first programme overlapping the half-open slot
// [slotStart, slotEnd), or nil. With overlapping feed entries the earliest
// start wins.
func (s *ScheduleIndex) FindProgramme(channel ChannelStruct, slotStart, slotEnd time.Time) *Programme {
	var list = s.candidatesFor(channel)
	if len(list) == 0 {
		return nil
	}

	// Everything from this index on starts at or after slotEnd and cannot overlap
	var limit = sort.Search(len(list), func(i int) bool {
		return !list[i].Start.Before(slotEnd)
	})

	for i := 0; i < limit; i++ {
		if list[i].Stop.After(slotStart) {
			return list[i]
		}
	}
	return nil
}

// HasData : Reports whether the feed carries any entries for the channel,
// distinguishing an empty slot from a channel without guide data.
func (s *ScheduleIndex) HasData(channel ChannelStruct) bool {
	return len(s.candidatesFor(channel)) > 0
}

// DisplayName : The feed's display name for a feed channel id
func (s *ScheduleIndex) DisplayName(channelKey string) string {
	if name, ok := s.names[channelKey]; ok {
		return name
	}
	return channelKey
}

// ChannelIcon : The feed's logo reference for a feed channel id, if any
func (s *ScheduleIndex) ChannelIcon(channelKey string) string {
	return s.icons[channelKey]
}

package src

import (
	"github.com/samber/lo"

	m3u "tvguide/src/internal/m3u-parser"
)

// ChannelStruct : One channel from the playlist. TvgID is the stable external
// identifier and may be empty, the display name is always present.
type ChannelStruct struct {
	TvgID      string `json:"tvg-id"`
	Name       string `json:"name"`
	GroupTitle string `json:"group-title"`
	TvgLogo    string `json:"tvg-logo"`
	URL        string `json:"url"`
}

// Parse Channel List
func parseChannelList(content []byte) (channels []ChannelStruct, err error) {
	streams, err := m3u.ParsePlaylist(content)
	if err != nil {
		ShowError(err, 1001)
		return
	}

	// Playlist order is kept, sorting for display is the renderer's concern
	channels = make([]ChannelStruct, 0, len(streams))

	for _, stream := range streams {
		var channel ChannelStruct
		channel.TvgID = stream["tvg-id"]
		channel.Name = stream["name"]
		channel.GroupTitle = stream["group-title"]
		channel.TvgLogo = stream["tvg-logo"]
		channel.URL = stream["url"]

		channels = append(channels, channel)
	}
	return
}

// playlistGroups : All group titles in playlist order, without duplicates
func playlistGroups(channels []ChannelStruct) (groups []string) {
	for _, channel := range channels {
		if len(channel.GroupTitle) > 0 {
			groups = append(groups, channel.GroupTitle)
		}
	}
	return lo.Uniq(groups)
}

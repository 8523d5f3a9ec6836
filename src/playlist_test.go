package src

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var testChannelList = "#EXTM3U\n" +
	"#EXTINF:-1 tvg-id=\"news.example\" tvg-logo=\"https://example/news.png\" group-title=\"News\",News Channel\n" +
	"http://example.com/stream/news\n" +
	"#EXTINF:-1 group-title=\"Sports\",Sports One\n" +
	"http://example.com/stream/sports1\n" +
	"#EXTINF:-1 group-title=\"Sports\",Sports Two\n" +
	"http://example.com/stream/sports2\n" +
	"#EXTINF:-1,Local Access\n" +
	"http://example.com/stream/local\n"

func TestParseChannelList(t *testing.T) {
	channels, err := parseChannelList([]byte(testChannelList))
	assert.NoError(t, err)

	expected := []ChannelStruct{
		{TvgID: "news.example", Name: "News Channel", GroupTitle: "News", TvgLogo: "https://example/news.png", URL: "http://example.com/stream/news"},
		{Name: "Sports One", GroupTitle: "Sports", URL: "http://example.com/stream/sports1"},
		{Name: "Sports Two", GroupTitle: "Sports", URL: "http://example.com/stream/sports2"},
		{Name: "Local Access", URL: "http://example.com/stream/local"},
	}

	if diff := cmp.Diff(expected, channels); diff != "" {
		t.Errorf("parseChannelList() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseChannelListInvalid(t *testing.T) {
	// Execute
	channels, err := parseChannelList([]byte("not a playlist"))

	// Assert
	assert.Error(t, err)
	assert.Empty(t, channels)
}

func TestPlaylistGroups(t *testing.T) {
	channels, err := parseChannelList([]byte(testChannelList))
	assert.NoError(t, err)

	// Duplicates collapse, playlist order is kept, the empty group is dropped
	assert.Equal(t, []string{"News", "Sports"}, playlistGroups(channels))
}

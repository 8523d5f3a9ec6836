package src

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testGuideFeed = `<?xml version="1.0" encoding="UTF-8"?>
<tv generator-info-name="test">
  <channel id="news.example">
    <display-name>News Channel</display-name>
    <icon src="https://example/news.png" />
  </channel>
  <channel id="sports.example">
    <display-name>Sports One</display-name>
  </channel>
  <channel id="bare.example"></channel>
  <programme channel="news.example" start="20240101180000 -0500" stop="20240101190000 -0500">
    <title lang="en">Evening News</title>
    <sub-title lang="en">Year in Review</sub-title>
    <desc lang="en">A look back.</desc>
    <icon src="https://example/evening-news.png" />
    <rating system="VCHIP">
      <value>TV-PG</value>
    </rating>
  </programme>
  <programme channel="news.example" start="20240101190000 -0500" stop="20240101200000 -0500">
    <title lang="en">Late News</title>
  </programme>
  <programme channel="sports.example" start="20240102080000" stop="20240102100000">
    <title lang="en">Morning Match</title>
    <episode-num system="onscreen">S2 E5</episode-num>
  </programme>
  <programme channel="sports.example" start="garbage" stop="20240102120000">
    <title lang="en">Broken Start</title>
  </programme>
  <programme channel="sports.example" start="20240102120000" stop="20240102120000">
    <title lang="en">Zero Length</title>
  </programme>
</tv>`

func TestParseGuide(t *testing.T) {
	index := parseGuide([]byte(testGuideFeed))

	// Entries with a broken timestamp or without a positive span are dropped
	assert.Equal(t, 3, index.programmeCount())

	assert.Equal(t, "News Channel", index.DisplayName("news.example"))
	assert.Equal(t, "https://example/news.png", index.ChannelIcon("news.example"))

	// A channel definition without a display name falls back to its id
	assert.Equal(t, "bare.example", index.DisplayName("bare.example"))

	news := index.byChannelID["news.example"]
	if assert.Len(t, news, 2) {
		first := news[0]
		assert.Equal(t, "Evening News", first.Title)
		assert.Equal(t, "Year in Review", first.SubTitle)
		assert.Equal(t, "A look back.", first.Desc)
		assert.Equal(t, "TV-PG", first.Rating)
		assert.Equal(t, "https://example/evening-news.png", first.Icon)

		// "-0500" timestamps resolve to absolute UTC instants
		assert.Equal(t, time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC), first.Start)
		assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), first.Stop)
	}

	sports := index.byChannelID["sports.example"]
	if assert.Len(t, sports, 1) {
		assert.Equal(t, "Morning Match", sports[0].Title)
		if assert.NotNil(t, sports[0].Season) && assert.NotNil(t, sports[0].Episode) {
			assert.Equal(t, 2, *sports[0].Season)
			assert.Equal(t, 5, *sports[0].Episode)
		}
	}
}

func TestParseGuideUnparseable(t *testing.T) {
	index := parseGuide([]byte("this is not xml <<<"))

	assert.NotNil(t, index)
	assert.Equal(t, 0, index.programmeCount())
	assert.False(t, index.HasData(ChannelStruct{TvgID: "news.example", Name: "News Channel"}))
}

func TestParseGuideEmptyFeed(t *testing.T) {
	index := parseGuide([]byte(""))

	assert.NotNil(t, index)
	assert.Equal(t, 0, index.programmeCount())
}

func TestParseGuideSortsByStart(t *testing.T) {
	feed := `<tv>
  <programme channel="c" start="20240101120000" stop="20240101130000"><title>B</title></programme>
  <programme channel="c" start="20240101100000" stop="20240101110000"><title>A</title></programme>
  <programme channel="c" start="20240101110000" stop="20240101120000"><title>AB</title></programme>
</tv>`

	index := parseGuide([]byte(feed))

	list := index.byChannelID["c"]
	if assert.Len(t, list, 3) {
		assert.Equal(t, "A", list[0].Title)
		assert.Equal(t, "AB", list[1].Title)
		assert.Equal(t, "B", list[2].Title)
	}
}

func TestParseProgrammeTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "with offset",
			value: "20240101180000 -0500",
			want:  time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC),
		},
		{
			name:  "without offset is UTC",
			value: "20240315063000",
			want:  time.Date(2024, 3, 15, 6, 30, 0, 0, time.UTC),
		},
		{
			name:  "positive offset",
			value: "20240101120000 +0200",
			want:  time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			value:   "tomorrow at noon",
			wantErr: true,
		},
		{
			name:    "invalid calendar date",
			value:   "20240240120000",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProgrammeTime(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseEpisodeToken(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name        string
		values      []string
		wantSeason  *int
		wantEpisode *int
	}{
		{
			name:        "onscreen S and E markers",
			values:      []string{"S2 E5"},
			wantSeason:  intPtr(2),
			wantEpisode: intPtr(5),
		},
		{
			name:        "lowercase compact",
			values:      []string{"s03e11"},
			wantSeason:  intPtr(3),
			wantEpisode: intPtr(11),
		},
		{
			name:        "dotted digit runs",
			values:      []string{"1.12.0/1"},
			wantSeason:  intPtr(1),
			wantEpisode: intPtr(12),
		},
		{
			name:        "separated plain numbers",
			values:      []string{"4/22"},
			wantSeason:  intPtr(4),
			wantEpisode: intPtr(22),
		},
		{
			name:   "single number is not enough",
			values: []string{"42"},
		},
		{
			name:   "no digits",
			values: []string{"season finale"},
		},
		{
			name:   "no tokens",
			values: nil,
		},
		{
			name:        "second token usable",
			values:      []string{"", "S1 E2"},
			wantSeason:  intPtr(1),
			wantEpisode: intPtr(2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokens []*EpisodeNum
			for _, v := range tt.values {
				tokens = append(tokens, &EpisodeNum{Value: v})
			}

			season, episode := parseEpisodeToken(tokens)

			if tt.wantSeason == nil {
				assert.Nil(t, season)
				assert.Nil(t, episode)
				return
			}

			if assert.NotNil(t, season) && assert.NotNil(t, episode) {
				assert.Equal(t, *tt.wantSeason, *season)
				assert.Equal(t, *tt.wantEpisode, *episode)
			}
		})
	}
}

package src

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Feed timestamps are "YYYYMMDDHHMMSS" with an optional signed zone offset.
// Without an offset the naive instant is taken as UTC.
var programmeTimeLayouts = []string{
	"20060102150405 -0700",
	"20060102150405",
}

var episodeTokenRx = regexp.MustCompile(`(?i)s?(\d+)[^\d]+?e?(\d+)`)
var digitRunRx = regexp.MustCompile(`\d+`)

// Parse Guide Feed
//
// Unparseable markup yields an empty index, missing guide data is a normal
// operating condition and never an error. Entries with invalid timestamps are
// skipped one by one.
func parseGuide(content []byte) (index *ScheduleIndex) {
	index = newScheduleIndex()

	var xmltv XMLTV
	if err := xml.Unmarshal(content, &xmltv); err != nil {
		showWarning(2301)
		return
	}

	// Channel definitions: identifier, display name with the identifier as
	// fallback, optional logo
	for _, c := range xmltv.Channel {
		var name = c.ID
		if len(c.DisplayName) > 0 && len(c.DisplayName[0].Value) > 0 {
			name = c.DisplayName[0].Value
		}
		index.names[c.ID] = name
		index.icons[c.ID] = c.Icon.Src
	}

	var skipped int

	for _, p := range xmltv.Program {
		start, err := parseProgrammeTime(p.Start)
		if err != nil {
			skipped++
			continue
		}

		stop, err := parseProgrammeTime(p.Stop)
		if err != nil {
			skipped++
			continue
		}

		if !start.Before(stop) {
			skipped++
			continue
		}

		var programme = &Programme{
			Start:      start,
			Stop:       stop,
			ChannelKey: p.Channel,
		}

		if len(p.Title) > 0 {
			programme.Title = p.Title[0].Value
		}

		if len(p.SubTitle) > 0 {
			programme.SubTitle = p.SubTitle[0].Value
		}

		if len(p.Desc) > 0 {
			programme.Desc = p.Desc[0].Value
		}

		// First nested rating value wins
		for _, rating := range p.Rating {
			if len(rating.Value) > 0 {
				programme.Rating = rating.Value
				break
			}
		}

		if len(p.Poster) > 0 {
			programme.Icon = p.Poster[0].Src
		}

		programme.Season, programme.Episode = parseEpisodeToken(p.EpisodeNum)

		index.insert(programme)
	}

	if skipped > 0 {
		showDebug(fmt.Sprintf("EPG:%d programme entries skipped (%s)", skipped, getErrMsg(2302)), 1)
	}

	index.sortLists()
	return
}

// parseProgrammeTime decodes a feed timestamp into an absolute UTC instant.
// An explicit offset is interpreted against UTC, calendar fields are
// validated by the parse.
func parseProgrammeTime(value string) (t time.Time, err error) {
	for _, layout := range programmeTimeLayouts {
		t, err = time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return
}

// parseEpisodeToken reads season and episode numbers from the first usable
// episode-num token. The loose pattern "optional S, digits, separator,
// optional E, digits" is tried first, then a split on non-digit runs taking
// the first two groups. Neither matching yields nil for both.
func parseEpisodeToken(tokens []*EpisodeNum) (season *int, episode *int) {
	for _, token := range tokens {
		if token == nil || len(token.Value) == 0 {
			continue
		}

		if match := episodeTokenRx.FindStringSubmatch(token.Value); len(match) == 3 {
			if s, errS := strconv.Atoi(match[1]); errS == nil {
				if e, errE := strconv.Atoi(match[2]); errE == nil {
					return &s, &e
				}
			}
		}

		if groups := digitRunRx.FindAllString(token.Value, 2); len(groups) == 2 {
			if s, errS := strconv.Atoi(groups[0]); errS == nil {
				if e, errE := strconv.Atoi(groups[1]); errE == nil {
					return &s, &e
				}
			}
		}
	}
	return nil, nil
}

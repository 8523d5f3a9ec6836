package m3u

import (
	"errors"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

var extGrpRx = regexp.MustCompile(`#EXTGRP: *(.*)`)

// parseAttributes extracts key="value" pairs and the channel name from an
// EXTINF line. Attribute values may contain commas, so the name separator is
// the first comma outside of quotes.
func parseAttributes(line string, stream map[string]string) (channelName string) {
	n := len(line)
	i := 0

	for i < n {
		eqIdx := strings.IndexByte(line[i:], '=')
		if eqIdx == -1 {
			break
		}
		eqIdx += i

		if eqIdx+1 < n && line[eqIdx+1] == '"' {
			// Found key="..., backtrack to the start of the key
			keyEnd := eqIdx
			keyStart := strings.LastIndexAny(line[i:keyEnd], " ,")
			if keyStart == -1 {
				keyStart = i
			} else {
				keyStart += i + 1
			}

			key := line[keyStart:keyEnd]

			quoteStart := eqIdx + 2
			quoteEnd := strings.IndexByte(line[quoteStart:], '"')
			if quoteEnd == -1 {
				// Malformed, stop parsing attributes
				break
			}
			quoteEnd += quoteStart

			// TVG keys are matched case-insensitively downstream
			if strings.Contains(strings.ToLower(key), "tvg") {
				stream[strings.ToLower(key)] = line[quoteStart:quoteEnd]
			} else {
				stream[key] = line[quoteStart:quoteEnd]
			}

			i = quoteEnd + 1
		} else {
			i = eqIdx + 1
		}
	}

	// The channel name follows the first comma outside of quotes
	commaPos := -1
	inQuote := false
	for idx, r := range line {
		if r == '"' {
			inQuote = !inQuote
		} else if r == ',' && !inQuote {
			commaPos = idx
			break
		}
	}

	if commaPos != -1 {
		channelName = strings.TrimSpace(line[commaPos+1:])
	}

	if len(channelName) == 0 {
		if v, ok := stream["tvg-name"]; ok {
			channelName = strings.TrimSpace(v)
		}
	}
	return
}

// ParsePlaylist converts an extended M3U playlist into one attribute map per
// channel, in playlist order. HLS media playlists are rejected.
func ParsePlaylist(byteStream []byte) (allChannels []map[string]string, err error) {
	var content = string(byteStream)

	var parseMetaData = func(channelBlock string) (stream map[string]string) {
		stream = make(map[string]string)
		var channelName string

		for _, rawLine := range strings.Split(channelBlock, "\n") {
			line := strings.TrimRight(rawLine, "\r")
			if len(line) == 0 || line[0] == '#' {
				continue
			}

			// Either the parameter line (the part after #EXTINF) or the URL line
			if _, errURL := url.ParseRequestURI(line); errURL == nil {
				stream["url"] = line
			} else {
				if cName := parseAttributes(line, stream); len(cName) > 0 {
					channelName = cName
				}
			}
		}

		if len(channelName) == 0 {
			// A channel without a name is unusable
			return nil
		}

		stream["name"] = channelName
		return stream
	}

	if strings.Contains(content, "#EXT-X-TARGETDURATION") || strings.Contains(content, "#EXT-X-MEDIA-SEQUENCE") {
		err = errors.New("Invalid M3U file, an extended M3U file is required.")
		return
	}

	if !strings.Contains(content, "#EXTM3U") {
		err = errors.New("Invalid M3U file, an extended M3U file is required.")
		return
	}

	var channelBlocks = strings.Split(content, "#EXTINF")
	channelBlocks = slices.Delete(channelBlocks, 0, 1)

	var lastExtGrp string

	for _, cb := range channelBlocks {
		stream := parseMetaData(cb)
		if stream == nil {
			continue
		}

		// #EXTGRP applies to all following channels until the next directive
		if extGrp := extGrpRx.FindStringSubmatch(cb); len(extGrp) > 1 {
			lastExtGrp = strings.TrimSpace(extGrp[1])
		}

		if stream["group-title"] == "" && lastExtGrp != "" {
			stream["group-title"] = lastExtGrp
		}

		allChannels = append(allChannels, stream)
	}
	return
}

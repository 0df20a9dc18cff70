package platform

import (
	"fmt"
	"regexp"
	"strconv"
)

// Patterns for yt-dlp's line-buffered progress output (--newline mode)
var (
	percentRegex      = regexp.MustCompile(`\[(download|ffmpeg)\]\s+(\d+(\.\d+)?)%`)
	etaRegex          = regexp.MustCompile(`ETA\s+([0-9:]+)`)
	playlistItemRegex = regexp.MustCompile(`\[download\] Downloading item (\d+) of (\d+)`)
)

// ParsePercent extracts a download/transcode percentage from a progress line,
// returned as a fraction in [0,1]. The second result is false when the line
// carries no percentage marker; that is not an error, the line is simply not a
// progress update.
func ParsePercent(line string) (float64, bool) {
	m := percentRegex.FindStringSubmatch(line)
	if len(m) < 3 {
		return 0, false
	}
	p, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, false
	}
	return p / 100.0, true
}

// ParsePlaylistItem extracts the "item N of M" counters yt-dlp prints between
// playlist entries. Returns ok=false for any other line.
func ParsePlaylistItem(line string) (item, total int, ok bool) {
	m := playlistItemRegex.FindStringSubmatch(line)
	if len(m) < 3 {
		return 0, 0, false
	}
	item, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	total, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return item, total, true
}

// CompactStatus condenses a progress line into a short status label like
// "Downloading 42.0% (ETA 00:05)", or "" when the line is not a progress line
func CompactStatus(line string) string {
	m := percentRegex.FindStringSubmatch(line)
	if len(m) < 3 {
		return ""
	}
	pct := m[2]
	if em := etaRegex.FindStringSubmatch(line); len(em) > 1 {
		return fmt.Sprintf("Downloading %s%% (ETA %s)", pct, em[1])
	}
	return fmt.Sprintf("Downloading %s%%", pct)
}

package platform

import (
	"regexp"
	"strings"
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// Recognized YouTube URL shapes
var supportedURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=`),
	regexp.MustCompile(`youtube\.com/playlist\?list=`),
	regexp.MustCompile(`youtu\.be/`),
	regexp.MustCompile(`youtube\.com/.*[?&]list=`),
	regexp.MustCompile(`m\.youtube\.com/`),
	regexp.MustCompile(`youtube\.com/shorts/`),
}

// IsSupportedURL reports whether the URL points at a YouTube video or playlist
func IsSupportedURL(url string) bool {
	lower := strings.ToLower(strings.TrimSpace(url))
	for _, pattern := range supportedURLPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}

// IsPlaylistURL reports whether the URL addresses a playlist rather than a
// single video
func IsPlaylistURL(url string) bool {
	lower := strings.ToLower(url)
	return strings.Contains(lower, "playlist") || strings.Contains(lower, PlaylistParam)
}

// ExtractPlaylistID extracts the playlist ID from various URL formats,
// returning "" when none is present
func ExtractPlaylistID(url string) string {
	if !strings.Contains(url, PlaylistParam) {
		return ""
	}
	parts := strings.SplitN(url, PlaylistParam, 2)
	if len(parts) < 2 {
		return ""
	}
	id := parts[1]
	if i := strings.Index(id, ParamSeparator); i >= 0 {
		id = id[:i]
	}
	return id
}

// SanitizeURL strips control characters that break single-line display
func SanitizeURL(url string) string {
	clean := strings.ReplaceAll(url, "\n", "")
	clean = strings.ReplaceAll(clean, "\r", "")
	clean = strings.ReplaceAll(clean, "\t", " ")
	return strings.TrimSpace(clean)
}

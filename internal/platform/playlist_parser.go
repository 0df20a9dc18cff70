package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultPreviewTimeout = 60 * time.Second
)

// Default values
const (
	DefaultPlaylistName = "Unknown Playlist"
)

// Playlist title heuristics
const (
	MinPrefixLength = 10
	PlaylistSuffix  = " Playlist"
)

// PlaylistEntry is one video inside a previewed playlist
type PlaylistEntry struct {
	VideoID string
	Title   string
}

// PlaylistPreview summarizes a playlist before the download job is launched
type PlaylistPreview struct {
	ID      string
	Title   string
	Entries []PlaylistEntry
}

// Count returns the number of entries in the playlist
func (p *PlaylistPreview) Count() int {
	return len(p.Entries)
}

// PlaylistPreviewService resolves playlist metadata ahead of a download so the
// UI can announce the title and item count
type PlaylistPreviewService struct {
	timeout time.Duration
}

// NewPlaylistPreviewService creates a new preview service
func NewPlaylistPreviewService() *PlaylistPreviewService {
	return &PlaylistPreviewService{timeout: DefaultPreviewTimeout}
}

// SetTimeout sets the timeout for preview operations
func (s *PlaylistPreviewService) SetTimeout(timeout time.Duration) {
	s.timeout = timeout
}

// Preview fetches the playlist entries for a playlist URL
func (s *PlaylistPreviewService) Preview(ctx context.Context, url string) (*PlaylistPreview, error) {
	playlistID := ExtractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", url)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	entries := make([]PlaylistEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, PlaylistEntry{VideoID: it.VideoID, Title: it.Title})
	}

	return &PlaylistPreview{
		ID:      playlistID,
		Title:   derivePlaylistTitle(entries),
		Entries: entries,
	}, nil
}

// derivePlaylistTitle generates a display title from the entry titles. Flat
// playlist enumeration does not carry the playlist's own name, so a shared
// title prefix is the best available stand-in.
func derivePlaylistTitle(entries []PlaylistEntry) string {
	if len(entries) == 0 {
		return DefaultPlaylistName
	}
	if len(entries) > 1 {
		prefix := commonPrefix(entries[0].Title, entries[1].Title)
		if len(prefix) > MinPrefixLength {
			return strings.TrimSpace(prefix) + PlaylistSuffix
		}
	}
	return entries[0].Title + PlaylistSuffix
}

// commonPrefix finds the common prefix between two strings
func commonPrefix(s1, s2 string) string {
	minLen := min(len(s1), len(s2))
	for i := 0; i < minLen; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:minLen]
}

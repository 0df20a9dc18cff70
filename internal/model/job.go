package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Format selects the output produced by the extraction engine
type Format string

const (
	// FormatVideo requests best video+audio merged into an MP4 container
	FormatVideo Format = "video"

	// FormatAudio requests audio-only extraction transcoded to MP3
	FormatAudio Format = "audio"
)

// Validation errors for JobRequest
var (
	ErrMissingURL       = errors.New("URL is required")
	ErrMissingOutputDir = errors.New("output directory is required")
	ErrUnknownFormat    = errors.New("unknown format")
)

// String returns the string representation of Format
func (f Format) String() string {
	return string(f)
}

// Extension returns the container/file extension the format produces
func (f Format) Extension() string {
	if f == FormatAudio {
		return "mp3"
	}
	return "mp4"
}

// JobRequest describes one user-initiated download. It is immutable once the
// job is launched.
type JobRequest struct {
	URL       string
	OutputDir string
	Format    Format
}

// Validate checks the request before any process is launched
func (r JobRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return ErrMissingURL
	}
	if strings.TrimSpace(r.OutputDir) == "" {
		return ErrMissingOutputDir
	}
	if r.Format != FormatVideo && r.Format != FormatAudio {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(r.Format))
	}
	return nil
}

// Job is the handle for a single launched download
type Job struct {
	ID            string
	Request       JobRequest
	Status        JobStatus
	Progress      float64 // 0.0 to 1.0
	Percent       int     // 0 to 100
	PlaylistItem  int     // current item for playlist jobs, 0 if unknown
	PlaylistCount int     // total items for playlist jobs, 0 if unknown
	LastError     string  // last error message if any
	StartedAt     time.Time
	FinishedAt    time.Time
}

// PlaylistProgressString returns "N/M" for playlist jobs, or "" when the
// counters are unknown
func (j *Job) PlaylistProgressString() string {
	if j.PlaylistCount <= 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", j.PlaylistItem, j.PlaylistCount)
}

// DurationString returns the elapsed wall time as mm:ss or hh:mm:ss, or "—"
// when the job has not finished
func (j *Job) DurationString() string {
	if j.StartedAt.IsZero() || j.FinishedAt.IsZero() {
		return "—"
	}
	total := int(j.FinishedAt.Sub(j.StartedAt).Seconds())
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

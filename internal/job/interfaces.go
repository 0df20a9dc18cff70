package job

import (
	"github.com/tubefetch/tubefetch/internal/model"
)

// Launcher defines the interface the UI uses to drive download jobs.
type Launcher interface {
	// Events returns the channel of worker events; it must be drained by a
	// single consumer goroutine.
	Events() <-chan Event

	// Start validates the request and launches exactly one external process.
	// It returns ErrJobActive while a job is running.
	Start(req model.JobRequest) (*model.Job, error)

	// Stop requests best-effort termination of the active job.
	Stop() error

	// SetFilenameTemplate updates the output template used by future launches.
	SetFilenameTemplate(template string)

	// ActiveJob returns a snapshot of the current job, or nil.
	ActiveJob() *model.Job

	// IsActive reports whether a job is currently running.
	IsActive() bool
}

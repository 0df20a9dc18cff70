package job

import "github.com/tubefetch/tubefetch/internal/model"

// EventKind discriminates events relayed from the background worker
type EventKind int

const (
	// EventLog carries one output line from the external process
	EventLog EventKind = iota

	// EventProgress carries an updated progress fraction and status label
	EventProgress

	// EventState announces a job lifecycle transition
	EventState
)

// Event is the single message type sent from the background worker to the UI
// goroutine. The worker is the only producer; the UI goroutine is the only
// consumer, so display state never needs locking.
type Event struct {
	Kind EventKind

	// EventLog
	Line string

	// EventProgress
	Fraction      float64
	StatusText    string
	PlaylistItem  int
	PlaylistCount int

	// EventState
	Status model.JobStatus
	Err    string
}

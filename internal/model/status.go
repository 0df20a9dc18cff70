package model

// JobStatus represents the lifecycle state of a download job
type JobStatus string

const (
	// JobStatusIdle means no process has been launched yet
	JobStatusIdle JobStatus = "Idle"

	// JobStatusRunning means the external process is active
	JobStatusRunning JobStatus = "Running"

	// JobStatusCompleted means the process exited with success
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusFailed means the process could not start or exited with an error
	JobStatusFailed JobStatus = "Failed"

	// JobStatusCancelled means the user stopped the job before it finished
	JobStatusCancelled JobStatus = "Cancelled"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true while the external process is running
func (js JobStatus) IsActive() bool {
	return js == JobStatusRunning
}

// IsFinished returns true if the job reached a terminal state
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusFailed || js == JobStatusCancelled
}

// CanTransitionTo reports whether moving from js to next is a legal transition.
// The lifecycle is Idle -> Running -> {Completed, Failed, Cancelled}; terminal
// states never transition again (a new launch creates a new Job).
func (js JobStatus) CanTransitionTo(next JobStatus) bool {
	switch js {
	case JobStatusIdle:
		return next == JobStatusRunning || next == JobStatusFailed
	case JobStatusRunning:
		return next == JobStatusCompleted || next == JobStatusFailed || next == JobStatusCancelled
	default:
		return false
	}
}

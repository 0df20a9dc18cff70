// Package job implements the orchestration around the external yt-dlp process:
// argument construction from a JobRequest, single-job launch off the UI thread,
// ordered line relay from the process output, progress extraction, and
// best-effort termination. All state transitions follow the
// Idle -> Running -> {Completed, Failed, Cancelled} lifecycle.
package job

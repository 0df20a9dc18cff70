package job

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tubefetch/tubefetch/internal/model"
	"github.com/tubefetch/tubefetch/internal/platform"
)

// Service errors
var (
	ErrJobActive   = errors.New("a download is already running")
	ErrNoActiveJob = errors.New("no active download")
)

// Worker/relay tuning
const (
	eventBufferSize  = 256
	maxOutputLineLen = 1024 * 1024
)

// Terminal log lines
const (
	MsgCompleted = "Download complete."
	MsgCancelled = "Download stopped by user."
	MsgFailedFmt = "Download failed: %s"
)

// Service launches one yt-dlp process per job and relays its output as events.
// At most one job is active at a time; Start rejects concurrent launches.
type Service struct {
	mu               sync.Mutex
	tools            platform.Tools
	filenameTemplate string
	current          *model.Job
	cancel           context.CancelFunc
	events           chan Event
	log              zerolog.Logger
}

// NewService creates a new job service
func NewService(tools platform.Tools, filenameTemplate string, log zerolog.Logger) *Service {
	return &Service{
		tools:            tools,
		filenameTemplate: filenameTemplate,
		events:           make(chan Event, eventBufferSize),
		log:              log.With().Str("component", "job").Logger(),
	}
}

// Events returns the worker event channel. It is never closed; the UI drains
// it for the lifetime of the window.
func (s *Service) Events() <-chan Event {
	return s.events
}

// SetFilenameTemplate updates the output template used for future launches
func (s *Service) SetFilenameTemplate(template string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filenameTemplate = template
}

// ActiveJob returns a snapshot of the current job, or nil when none was
// launched yet
func (s *Service) ActiveJob() *model.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	snapshot := *s.current
	return &snapshot
}

// IsActive reports whether a job is currently running
func (s *Service) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil && s.current.Status.IsActive()
}

// Start validates the request and launches the external process in a single
// background worker. The call itself never blocks on the download.
func (s *Service) Start(req model.JobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.current != nil && s.current.Status.IsActive() {
		s.mu.Unlock()
		return nil, ErrJobActive
	}

	j := &model.Job{
		ID:        "job-" + uuid.NewString(),
		Request:   req,
		Status:    model.JobStatusRunning,
		StartedAt: time.Now(),
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.current = j
	s.cancel = cancel
	template := s.filenameTemplate
	s.mu.Unlock()

	s.log.Info().Str("id", j.ID).Str("url", req.URL).Str("format", req.Format.String()).Msg("job started")
	s.emit(Event{Kind: EventState, Status: model.JobStatusRunning})

	go s.run(ctx, cancel, j, template)

	return s.ActiveJob(), nil
}

// Stop requests termination of the running process. Cancellation latency is
// bounded only by the external tool's response to the kill signal.
func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || !s.current.Status.IsActive() {
		return ErrNoActiveJob
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.log.Info().Str("id", s.current.ID).Msg("stop requested")
	return nil
}

// run is the single background worker for one job. It owns the external
// process and is the sole producer on the event channel while active.
func (s *Service) run(ctx context.Context, cancel context.CancelFunc, j *model.Job, template string) {
	defer cancel()

	if err := platform.CreateDirectoryIfNotExists(j.Request.OutputDir); err != nil {
		s.finish(j, model.JobStatusFailed, fmt.Sprintf("cannot create output directory: %v", err))
		return
	}

	args := BuildArgs(j.Request, s.tools.ConverterLocation(), template)
	s.emit(Event{Kind: EventLog, Line: "> " + FormatCommandLine(s.tools.ExtractorPath, args)})

	cmd := newCommand(ctx, s.tools.ExtractorPath, args)

	// Both streams go through one pipe so the relay preserves the process's
	// own interleaving and the worker stays the single producer.
	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		pr.Close()
		s.finish(j, model.JobStatusFailed, fmt.Sprintf("failed to start %s: %v", platform.ExtractorTool, err))
		return
	}

	waitErr := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		pw.Close()
		waitErr <- err
	}()

	var lastErrorLine string
	relayLines(pr, func(line string) {
		s.emit(Event{Kind: EventLog, Line: line})
		if strings.HasPrefix(line, "ERROR:") {
			lastErrorLine = line
		}
		s.trackProgress(j, line)
	})
	pr.Close()

	err := <-waitErr
	status, failText := classifyExit(err, ctx.Err(), lastErrorLine)
	if status == model.JobStatusCompleted {
		s.mu.Lock()
		j.Progress = 1.0
		j.Percent = 100
		s.mu.Unlock()
	}
	s.finish(j, status, failText)
}

// classifyExit maps the process exit and context state to a terminal status.
// A clean exit wins over a racing cancel: the download finished either way.
func classifyExit(waitErr, ctxErr error, lastErrorLine string) (model.JobStatus, string) {
	switch {
	case waitErr == nil:
		return model.JobStatusCompleted, ""
	case errors.Is(ctxErr, context.Canceled):
		return model.JobStatusCancelled, ""
	case lastErrorLine != "":
		return model.JobStatusFailed, lastErrorLine
	default:
		return model.JobStatusFailed, waitErr.Error()
	}
}

// relayLines splits r into lines and forwards each one, in arrival order, to
// emit. Empty lines are dropped; everything else passes through verbatim.
func relayLines(r io.Reader, emit func(string)) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxOutputLineLen)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		emit(line)
	}
}

// trackProgress updates the job from percentage and playlist-item markers.
// Lines without markers are ignored; that is not an error.
func (s *Service) trackProgress(j *model.Job, line string) {
	if fraction, ok := platform.ParsePercent(line); ok {
		s.mu.Lock()
		j.Progress = fraction
		j.Percent = int(math.Round(fraction * 100))
		item, total := j.PlaylistItem, j.PlaylistCount
		s.mu.Unlock()

		s.emit(Event{
			Kind:          EventProgress,
			Fraction:      fraction,
			StatusText:    platform.CompactStatus(line),
			PlaylistItem:  item,
			PlaylistCount: total,
		})
		return
	}

	if item, total, ok := platform.ParsePlaylistItem(line); ok {
		s.mu.Lock()
		j.PlaylistItem = item
		j.PlaylistCount = total
		fraction := j.Progress
		s.mu.Unlock()

		s.emit(Event{
			Kind:          EventProgress,
			Fraction:      fraction,
			StatusText:    fmt.Sprintf("Downloading item %d of %d", item, total),
			PlaylistItem:  item,
			PlaylistCount: total,
		})
	}
}

// finish records the terminal state and reports it as a final log line plus a
// state event, re-enabling the launch control on the UI side.
func (s *Service) finish(j *model.Job, status model.JobStatus, errText string) {
	s.mu.Lock()
	if j.Status.CanTransitionTo(status) {
		j.Status = status
	}
	j.LastError = errText
	j.FinishedAt = time.Now()
	s.cancel = nil
	s.mu.Unlock()

	switch status {
	case model.JobStatusCompleted:
		s.emit(Event{Kind: EventLog, Line: MsgCompleted})
	case model.JobStatusCancelled:
		s.emit(Event{Kind: EventLog, Line: MsgCancelled})
	case model.JobStatusFailed:
		s.emit(Event{Kind: EventLog, Line: fmt.Sprintf(MsgFailedFmt, errText)})
	}

	s.log.Info().Str("id", j.ID).Str("status", status.String()).Str("error", errText).Msg("job finished")
	s.emit(Event{Kind: EventState, Status: status, Err: errText})
}

// emit blocks until the UI consumer accepts the event; ordering is preserved
// and nothing is dropped.
func (s *Service) emit(ev Event) {
	s.events <- ev
}

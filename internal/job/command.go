package job

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tubefetch/tubefetch/internal/model"
	"github.com/tubefetch/tubefetch/internal/platform"
)

// DefaultFilenameTemplate is yt-dlp's output template used when settings carry
// no override
const DefaultFilenameTemplate = "%(title)s.%(ext)s"

// Format selectors handed to the extraction engine
const (
	VideoFormatSelector = "bestvideo+bestaudio/best"
	AudioFormatSelector = "bestaudio/best"
)

// BuildArgs translates a validated JobRequest into the yt-dlp argv. The
// converterLocation is the directory holding ffmpeg, passed through via
// --ffmpeg-location when non-empty; yt-dlp resolves ffmpeg from PATH otherwise.
func BuildArgs(req model.JobRequest, converterLocation, filenameTemplate string) []string {
	template := filenameTemplate
	if template == "" {
		template = DefaultFilenameTemplate
	}
	output := filepath.Join(req.OutputDir, template)

	// --newline forces line-buffered progress output for the relay
	args := []string{
		"--newline",
		"--no-warnings",
		"--force-overwrites",
		"--no-part",
		"-o", output,
	}

	if converterLocation != "" {
		args = append(args, "--ffmpeg-location", converterLocation)
	}

	if req.Format == model.FormatAudio {
		args = append(args,
			"-f", AudioFormatSelector,
			"-x", "--audio-format", "mp3",
		)
	} else {
		args = append(args,
			"-f", VideoFormatSelector,
			"--merge-output-format", "mp4",
		)
	}

	if platform.IsPlaylistURL(req.URL) {
		args = append(args, "--yes-playlist", "--ignore-errors")
	} else {
		args = append(args, "--no-playlist")
	}

	return append(args, req.URL)
}

// FormatCommandLine renders an invocation for display in the log
func FormatCommandLine(exe string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteArg(exe))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return `""`
	}
	if strings.ContainsAny(arg, " \t\n\"") {
		return strconv.Quote(arg)
	}
	return arg
}

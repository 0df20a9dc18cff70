package job

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/tubefetch/tubefetch/internal/model"
)

func hasArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}

func argValue(args []string, flag string) (string, bool) {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

func TestBuildArgsVideoFormat(t *testing.T) {
	req := model.JobRequest{
		URL:       "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		OutputDir: "/tmp/out",
		Format:    model.FormatVideo,
	}
	args := BuildArgs(req, "", "")

	if got, ok := argValue(args, "-f"); !ok || got != VideoFormatSelector {
		t.Errorf("expected -f %q, got %q", VideoFormatSelector, got)
	}
	if got, ok := argValue(args, "--merge-output-format"); !ok || got != "mp4" {
		t.Errorf("expected --merge-output-format mp4, got %q", got)
	}
	if hasArg(args, "-x") {
		t.Error("video request must not request audio extraction")
	}
	if hasArg(args, "--ffmpeg-location") {
		t.Error("empty converter location must not produce --ffmpeg-location")
	}
}

func TestBuildArgsAudioFormat(t *testing.T) {
	req := model.JobRequest{
		URL:       "https://youtu.be/dQw4w9WgXcQ",
		OutputDir: "/tmp/out",
		Format:    model.FormatAudio,
	}
	args := BuildArgs(req, "/opt/tools", "")

	if !hasArg(args, "-x") {
		t.Error("audio request must include -x")
	}
	if got, ok := argValue(args, "--audio-format"); !ok || got != "mp3" {
		t.Errorf("expected --audio-format mp3, got %q", got)
	}
	if got, ok := argValue(args, "-f"); !ok || got != AudioFormatSelector {
		t.Errorf("expected -f %q, got %q", AudioFormatSelector, got)
	}
	if hasArg(args, "--merge-output-format") {
		t.Error("audio request must not set a merge container")
	}
	if got, ok := argValue(args, "--ffmpeg-location"); !ok || got != "/opt/tools" {
		t.Errorf("expected --ffmpeg-location /opt/tools, got %q", got)
	}
}

func TestBuildArgsURLIsLast(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"video", "https://www.youtube.com/watch?v=abc123"},
		{"playlist", "https://www.youtube.com/playlist?list=PLx"},
		{"short link", "https://youtu.be/abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := model.JobRequest{URL: tt.url, OutputDir: "/tmp", Format: model.FormatVideo}
			args := BuildArgs(req, "", "")
			if len(args) == 0 || args[len(args)-1] != tt.url {
				t.Errorf("URL must be the last argument, got %v", args)
			}
		})
	}
}

func TestBuildArgsPlaylistHandling(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		wantPlaylist bool
	}{
		{"plain video", "https://www.youtube.com/watch?v=abc123", false},
		{"playlist page", "https://www.youtube.com/playlist?list=PLabc", true},
		{"video inside playlist", "https://www.youtube.com/watch?v=abc&list=PLabc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := model.JobRequest{URL: tt.url, OutputDir: "/tmp", Format: model.FormatVideo}
			args := BuildArgs(req, "", "")

			if tt.wantPlaylist {
				if !hasArg(args, "--yes-playlist") || !hasArg(args, "--ignore-errors") {
					t.Errorf("playlist URL must opt in to playlist mode, got %v", args)
				}
			} else if !hasArg(args, "--no-playlist") {
				t.Errorf("plain video URL must disable playlist expansion, got %v", args)
			}
		})
	}
}

func TestBuildArgsOutputTemplate(t *testing.T) {
	req := model.JobRequest{URL: "https://youtu.be/x", OutputDir: "/data/videos", Format: model.FormatVideo}

	args := BuildArgs(req, "", "")
	want := filepath.Join("/data/videos", DefaultFilenameTemplate)
	if got, ok := argValue(args, "-o"); !ok || got != want {
		t.Errorf("expected default template %q, got %q", want, got)
	}

	args = BuildArgs(req, "", "%(playlist_index)s - %(title)s.%(ext)s")
	want = filepath.Join("/data/videos", "%(playlist_index)s - %(title)s.%(ext)s")
	if got, ok := argValue(args, "-o"); !ok || got != want {
		t.Errorf("expected custom template %q, got %q", want, got)
	}
}

func TestBuildArgsLineBuffered(t *testing.T) {
	req := model.JobRequest{URL: "https://youtu.be/x", OutputDir: "/tmp", Format: model.FormatAudio}
	args := BuildArgs(req, "", "")
	if !hasArg(args, "--newline") {
		t.Error("argv must force line-buffered progress output")
	}
}

func TestFormatCommandLine(t *testing.T) {
	tests := []struct {
		name string
		exe  string
		args []string
		want string
	}{
		{
			name: "plain args",
			exe:  "yt-dlp",
			args: []string{"--newline", "-o", "/tmp/x"},
			want: "yt-dlp --newline -o /tmp/x",
		},
		{
			name: "arg with spaces quoted",
			exe:  "yt-dlp",
			args: []string{"-o", "/My Videos/%(title)s.%(ext)s"},
			want: `yt-dlp -o "/My Videos/%(title)s.%(ext)s"`,
		},
		{
			name: "empty arg",
			exe:  "yt-dlp",
			args: []string{""},
			want: `yt-dlp ""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCommandLine(tt.exe, tt.args); got != tt.want {
				t.Errorf("FormatCommandLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCommandLineRoundTripsAllBuildArgs(t *testing.T) {
	req := model.JobRequest{URL: "https://youtu.be/x", OutputDir: "/tmp", Format: model.FormatVideo}
	args := BuildArgs(req, "/opt/tools", "")
	line := FormatCommandLine("yt-dlp", args)
	if !strings.HasPrefix(line, "yt-dlp ") {
		t.Errorf("command line must start with the executable, got %q", line)
	}
	if !strings.HasSuffix(line, req.URL) {
		t.Errorf("command line must end with the URL, got %q", line)
	}
}

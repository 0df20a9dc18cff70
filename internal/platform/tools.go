package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// External tool names
const (
	ExtractorTool = "yt-dlp"
	ConverterTool = "ffmpeg"
)

// BundledToolsDirName is the directory next to the executable that is checked
// for bundled copies of the external tools before falling back to PATH.
const BundledToolsDirName = "tools"

// Tools holds resolved paths to the external collaborators
type Tools struct {
	ExtractorPath string // yt-dlp executable
	ConverterPath string // ffmpeg executable, "" when not found (yt-dlp falls back to PATH)
}

// toolFileName appends .exe on Windows
func toolFileName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}

// FindTool resolves a tool by preferring a bundled copy next to the running
// executable and falling back to the system PATH
func FindTool(name string) (string, error) {
	fileName := toolFileName(name)

	if exe, err := os.Executable(); err == nil {
		bundled := filepath.Join(filepath.Dir(exe), BundledToolsDirName, fileName)
		if info, err := os.Stat(bundled); err == nil && !info.IsDir() {
			return bundled, nil
		}
	}

	path, err := exec.LookPath(fileName)
	if err != nil {
		return "", fmt.Errorf("%s not found in bundled tools or PATH: %w", name, err)
	}
	return path, nil
}

// DiscoverTools resolves both external tools. The extractor is mandatory; a
// missing converter is tolerated because yt-dlp resolves ffmpeg from PATH on
// its own and only audio extraction strictly requires it.
func DiscoverTools(converterOverride string) (Tools, error) {
	extractor, err := FindTool(ExtractorTool)
	if err != nil {
		return Tools{}, err
	}

	converter := converterOverride
	if converter == "" {
		converter, _ = FindTool(ConverterTool)
	}

	return Tools{ExtractorPath: extractor, ConverterPath: converter}, nil
}

// ConverterLocation returns the directory yt-dlp should be pointed at via
// --ffmpeg-location, or "" when no converter was resolved
func (t Tools) ConverterLocation() string {
	if t.ConverterPath == "" {
		return ""
	}
	return filepath.Dir(t.ConverterPath)
}

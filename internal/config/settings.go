package config

import (
	"fyne.io/fyne/v2"

	"github.com/tubefetch/tubefetch/internal/model"
	"github.com/tubefetch/tubefetch/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir         = "output_directory"
	KeyDefaultFormat     = "default_format"
	KeyFilenameTemplate  = "filename_template"
	KeyConverterLocation = "converter_location"
	KeyLanguage          = "app_language"
	KeyOpenOnComplete    = "open_folder_on_complete"
)

// Default values
const (
	DefaultFilenameTemplate = "%(title)s.%(ext)s"
	DefaultLanguage         = "system"
	DefaultOpenOnComplete   = false
)

// Settings manages application configuration persisted through Fyne
// preferences.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the configured output directory, falling back to
// the system Downloads folder on first run.
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetDefaultFormat returns the format preselected in the input form
func (s *Settings) GetDefaultFormat() model.Format {
	value := s.app.Preferences().String(KeyDefaultFormat)
	if value != string(model.FormatAudio) && value != string(model.FormatVideo) {
		s.SetDefaultFormat(model.FormatVideo)
		return model.FormatVideo
	}
	return model.Format(value)
}

// SetDefaultFormat sets the format preselected in the input form
func (s *Settings) SetDefaultFormat(format model.Format) {
	s.app.Preferences().SetString(KeyDefaultFormat, string(format))
}

// GetFilenameTemplate returns the yt-dlp output template
func (s *Settings) GetFilenameTemplate() string {
	template := s.app.Preferences().String(KeyFilenameTemplate)
	if template == "" {
		s.SetFilenameTemplate(DefaultFilenameTemplate)
		return DefaultFilenameTemplate
	}
	return template
}

// SetFilenameTemplate sets the yt-dlp output template
func (s *Settings) SetFilenameTemplate(template string) {
	if template == "" {
		template = DefaultFilenameTemplate
	}
	s.app.Preferences().SetString(KeyFilenameTemplate, template)
}

// GetConverterLocation returns the user override for the ffmpeg path, empty
// when discovery should be automatic.
func (s *Settings) GetConverterLocation() string {
	return s.app.Preferences().String(KeyConverterLocation)
}

// SetConverterLocation sets the user override for the ffmpeg path
func (s *Settings) SetConverterLocation(path string) {
	s.app.Preferences().SetString(KeyConverterLocation, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetOpenOnComplete returns whether to open the output folder after a
// successful download
func (s *Settings) GetOpenOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyOpenOnComplete, DefaultOpenOnComplete)
}

// SetOpenOnComplete sets whether to open the output folder after a successful
// download
func (s *Settings) SetOpenOnComplete(open bool) {
	s.app.Preferences().SetBool(KeyOpenOnComplete, open)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}

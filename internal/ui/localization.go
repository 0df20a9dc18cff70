package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyDownload           = "download"
	KeyStop               = "stop"
	KeyClearLog           = "clear_log"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyOutputDirectory    = "output_directory"
	KeyFormatVideo        = "format_video"
	KeyFormatAudio        = "format_audio"
	KeyFilenameTemplate   = "filename_template"
	KeyConverterLocation  = "converter_location"
	KeyOpenOnComplete     = "open_on_complete"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeyEnterURL           = "enter_url"
	KeySettingsSaved      = "settings_saved"
	KeyDownloadStarted    = "download_started"
	KeyDownloadCompleted  = "download_completed"
	KeyDownloadFailed     = "download_failed"
	KeyDownloadCancelled  = "download_cancelled"
	KeyDownloadInProgress = "download_in_progress"
	KeyStoppingDownload   = "stopping_download"
	KeyInvalidURL         = "invalid_url"
	KeyPleaseEnterURL     = "please_enter_url"
	KeyPleaseSelectDir    = "please_select_dir"
	KeyStatusIdle         = "status_idle"
	KeyStatusRunning      = "status_running"
	KeyPlaylistDetected   = "playlist_detected"
	KeyPlaylistItemOf     = "playlist_item_of"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "TubeFetch",
		KeyDownload:           "Download",
		KeyStop:               "Stop",
		KeyClearLog:           "Clear Log",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyOutputDirectory:    "Output Directory",
		KeyFormatVideo:        "Video (MP4)",
		KeyFormatAudio:        "Audio (MP3)",
		KeyFilenameTemplate:   "Filename Template",
		KeyConverterLocation:  "FFmpeg Path (optional)",
		KeyOpenOnComplete:     "Open folder when finished",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeyEnterURL:           "Enter YouTube URL (https://youtube.com/watch?v=...)",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyDownloadStarted:    "Download started",
		KeyDownloadCompleted:  "Download completed",
		KeyDownloadFailed:     "Download failed",
		KeyDownloadCancelled:  "Download stopped",
		KeyDownloadInProgress: "A download is already running",
		KeyStoppingDownload:   "Stopping download...",
		KeyInvalidURL:         "Invalid URL",
		KeyPleaseEnterURL:     "Please enter a URL",
		KeyPleaseSelectDir:    "Please select an output directory",
		KeyStatusIdle:         "Ready",
		KeyStatusRunning:      "Downloading...",
		KeyPlaylistDetected:   "Playlist detected",
		KeyPlaylistItemOf:     "Item %d of %d",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "TubeFetch",
		KeyDownload:           "Скачать",
		KeyStop:               "Стоп",
		KeyClearLog:           "Очистить лог",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyOutputDirectory:    "Папка загрузки",
		KeyFormatVideo:        "Видео (MP4)",
		KeyFormatAudio:        "Аудио (MP3)",
		KeyFilenameTemplate:   "Шаблон имени файла",
		KeyConverterLocation:  "Путь к FFmpeg (необязательно)",
		KeyOpenOnComplete:     "Открыть папку по завершении",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeyEnterURL:           "Введите ссылку YouTube (https://youtube.com/watch?v=...)",
		KeySettingsSaved:      "Настройки сохранены!",
		KeyDownloadStarted:    "Загрузка началась",
		KeyDownloadCompleted:  "Загрузка завершена",
		KeyDownloadFailed:     "Ошибка загрузки",
		KeyDownloadCancelled:  "Загрузка остановлена",
		KeyDownloadInProgress: "Загрузка уже выполняется",
		KeyStoppingDownload:   "Остановка загрузки...",
		KeyInvalidURL:         "Неверная ссылка",
		KeyPleaseEnterURL:     "Введите ссылку",
		KeyPleaseSelectDir:    "Выберите папку загрузки",
		KeyStatusIdle:         "Готов",
		KeyStatusRunning:      "Загрузка...",
		KeyPlaylistDetected:   "Обнаружен плейлист",
		KeyPlaylistItemOf:     "Элемент %d из %d",
	}
}

package ui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/tubefetch/tubefetch/internal/config"
	"github.com/tubefetch/tubefetch/internal/job"
	"github.com/tubefetch/tubefetch/internal/model"
	"github.com/tubefetch/tubefetch/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	launcher     job.Launcher
	previewSvc   *platform.PlaylistPreviewService
	log          zerolog.Logger

	// Input form
	urlEntry    *widget.Entry
	dirEntry    *widget.Entry
	formatRadio *widget.RadioGroup

	// Controls
	downloadBtn *widget.Button
	stopBtn     *widget.Button
	clearBtn    *widget.Button

	// Display
	progressBar   *widget.ProgressBar
	statusLabel   *widget.Label
	playlistLabel *widget.Label
	logView       *widget.List
	logBuffer     *model.LogBuffer
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, launcher job.Launcher, logger zerolog.Logger) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		launcher:     launcher,
		previewSvc:   platform.NewPlaylistPreviewService(),
		log:          logger.With().Str("component", "ui").Logger(),
		logBuffer:    model.NewLogBuffer(model.DefaultLogCapacity),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Single consumer of job events for the lifetime of the window
	go ui.drainEvents()

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// URL entry
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	// Trigger download when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	// Output directory entry with browse button
	ui.dirEntry = widget.NewEntry()
	ui.dirEntry.SetText(ui.settings.GetOutputDirectory())
	browseBtn := widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseDirectory)
	dirRow := container.NewBorder(nil, nil, widget.NewLabel(IconFolder), browseBtn, ui.dirEntry)

	// Format selector
	ui.formatRadio = widget.NewRadioGroup(ui.formatOptions(), nil)
	ui.formatRadio.Horizontal = true
	ui.formatRadio.SetSelected(ui.formatLabel(ui.settings.GetDefaultFormat()))

	// Control buttons
	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.stopBtn = widget.NewButton(ui.localization.GetText(KeyStop), ui.onStopClick)
	ui.stopBtn.Disable()
	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClearLog), ui.onClearLog)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	controls := container.NewHBox(ui.downloadBtn, ui.stopBtn, ui.clearBtn, settingsBtn)

	// Progress and status
	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyStatusIdle))
	ui.playlistLabel = widget.NewLabel("")
	ui.playlistLabel.Hide()
	statusRow := container.NewBorder(nil, nil, nil, ui.playlistLabel, ui.statusLabel)

	topPanel := container.NewVBox(
		ui.urlEntry,
		dirRow,
		container.NewBorder(nil, nil, ui.formatRadio, controls),
		ui.progressBar,
		statusRow,
	)

	// Log view over the bounded line buffer
	ui.logView = widget.NewList(
		func() int {
			return ui.logBuffer.Len()
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.TextStyle = fyne.TextStyle{Monospace: true}
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if label, ok := obj.(*widget.Label); ok {
				label.SetText(ui.logBuffer.Line(id))
			}
		},
	)

	content := container.NewBorder(
		topPanel,   // top
		nil,        // bottom
		nil,        // left
		nil,        // right
		ui.logView, // center
	)

	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowMinWidth, WindowMinHeight))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.stopBtn.SetText(ui.localization.GetText(KeyStop))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClearLog))

	selected := ui.selectedFormat()
	ui.formatRadio.Options = ui.formatOptions()
	ui.formatRadio.SetSelected(ui.formatLabel(selected))
	ui.formatRadio.Refresh()

	if !ui.launcher.IsActive() {
		ui.statusLabel.SetText(ui.localization.GetText(KeyStatusIdle))
	}
}

// formatOptions returns the localized labels for the format selector
func (ui *RootUI) formatOptions() []string {
	return []string{
		ui.localization.GetText(KeyFormatVideo),
		ui.localization.GetText(KeyFormatAudio),
	}
}

// formatLabel maps a format to its localized radio label
func (ui *RootUI) formatLabel(f model.Format) string {
	if f == model.FormatAudio {
		return ui.localization.GetText(KeyFormatAudio)
	}
	return ui.localization.GetText(KeyFormatVideo)
}

// selectedFormat maps the radio selection back to a format
func (ui *RootUI) selectedFormat() model.Format {
	if ui.formatRadio.Selected == ui.localization.GetText(KeyFormatAudio) {
		return model.FormatAudio
	}
	return model.FormatVideo
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// onBrowseDirectory handles directory browsing for the output directory
func (ui *RootUI) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.dirEntry.SetText(uri.Path())
	}, ui.window)
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	urlText := platform.SanitizeURL(ui.urlEntry.Text)
	if urlText == "" {
		ui.showMessage(ui.localization.GetText(KeyPleaseEnterURL))
		return
	}

	if err := ui.validateURL(urlText); err != nil {
		ui.showMessage(ui.localization.GetText(KeyInvalidURL) + ": " + err.Error())
		return
	}

	if !platform.IsSupportedURL(urlText) {
		ui.showMessage(ui.localization.GetText(KeyInvalidURL))
		return
	}

	outputDir := strings.TrimSpace(ui.dirEntry.Text)
	if outputDir == "" {
		ui.showMessage(ui.localization.GetText(KeyPleaseSelectDir))
		return
	}

	req := model.JobRequest{
		URL:       urlText,
		OutputDir: outputDir,
		Format:    ui.selectedFormat(),
	}

	_, err := ui.launcher.Start(req)
	if err != nil {
		if errors.Is(err, job.ErrJobActive) {
			ui.showMessage(ui.localization.GetText(KeyDownloadInProgress))
		} else {
			ui.showMessage(err.Error())
		}
		return
	}

	// Remember last-used form values for the next session
	ui.settings.SetOutputDirectory(outputDir)
	ui.settings.SetDefaultFormat(req.Format)

	if platform.IsPlaylistURL(urlText) {
		ui.announcePlaylist(urlText)
	}

	ui.showMessage(ui.localization.GetText(KeyDownloadStarted))
}

// announcePlaylist resolves playlist metadata in the background and reports the
// title and item count in the log. The download does not wait for this.
func (ui *RootUI) announcePlaylist(playlistURL string) {
	go func() {
		preview, err := ui.previewSvc.Preview(context.Background(), playlistURL)
		if err != nil {
			ui.log.Warn().Err(err).Msg("playlist preview failed")
			return
		}
		fyne.Do(func() {
			ui.appendLogLine(fmt.Sprintf("%s: %s (%d)",
				ui.localization.GetText(KeyPlaylistDetected), preview.Title, preview.Count()))
		})
	}()
}

// onStopClick handles the stop button click
func (ui *RootUI) onStopClick() {
	if err := ui.launcher.Stop(); err != nil {
		ui.log.Warn().Err(err).Msg("stop request rejected")
		return
	}
	ui.stopBtn.Disable()
	ui.statusLabel.SetText(ui.localization.GetText(KeyStoppingDownload))
}

// onClearLog clears the retained log lines
func (ui *RootUI) onClearLog() {
	ui.logBuffer.Clear()
	ui.logView.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.dirEntry.SetText(ui.settings.GetOutputDirectory())
		ui.launcher.SetFilenameTemplate(ui.settings.GetFilenameTemplate())
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}).Show()
}

// showMessage shows a transient popup message
func (ui *RootUI) showMessage(message string) {
	widget.ShowPopUp(widget.NewLabel(message), ui.window.Canvas())
}

// appendLogLine adds one line to the log view and keeps the newest line visible.
// Must be called on the UI thread.
func (ui *RootUI) appendLogLine(line string) {
	ui.logBuffer.Append(line)
	ui.logView.Refresh()
	ui.logView.ScrollToBottom()
}

// drainEvents is the single consumer of the job event channel. Every mutation
// of display state happens on the UI thread via fyne.Do.
func (ui *RootUI) drainEvents() {
	for ev := range ui.launcher.Events() {
		event := ev
		switch event.Kind {
		case job.EventLog:
			fyne.Do(func() {
				ui.appendLogLine(event.Line)
			})
		case job.EventProgress:
			fyne.Do(func() {
				ui.progressBar.SetValue(event.Fraction)
				if event.StatusText != "" {
					ui.statusLabel.SetText(event.StatusText)
				}
				if event.PlaylistCount > 0 {
					ui.playlistLabel.SetText(fmt.Sprintf(
						ui.localization.GetText(KeyPlaylistItemOf),
						event.PlaylistItem, event.PlaylistCount))
					ui.playlistLabel.Show()
				}
			})
		case job.EventState:
			fyne.Do(func() {
				ui.applyState(event)
			})
		}
	}
}

// applyState reflects a job lifecycle transition in the controls
func (ui *RootUI) applyState(ev job.Event) {
	switch ev.Status {
	case model.JobStatusRunning:
		ui.downloadBtn.Disable()
		ui.stopBtn.Enable()
		ui.progressBar.SetValue(0)
		ui.playlistLabel.SetText("")
		ui.playlistLabel.Hide()
		ui.statusLabel.SetText(ui.localization.GetText(KeyStatusRunning))

	case model.JobStatusCompleted:
		ui.downloadBtn.Enable()
		ui.stopBtn.Disable()
		ui.progressBar.SetValue(1)
		ui.statusLabel.SetText(ui.localization.GetText(KeyDownloadCompleted))
		ui.notifyCompletion()

	case model.JobStatusCancelled:
		ui.downloadBtn.Enable()
		ui.stopBtn.Disable()
		ui.statusLabel.SetText(ui.localization.GetText(KeyDownloadCancelled))

	case model.JobStatusFailed:
		ui.downloadBtn.Enable()
		ui.stopBtn.Disable()
		status := ui.localization.GetText(KeyDownloadFailed)
		if ev.Err != "" {
			status += ": " + ev.Err
		}
		ui.statusLabel.SetText(status)
	}
}

// notifyCompletion sends a system notification and, when configured, opens the
// output folder.
func (ui *RootUI) notifyCompletion() {
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyAppTitle),
		Content: ui.localization.GetText(KeyDownloadCompleted),
	})

	if ui.settings.GetOpenOnComplete() {
		dir := strings.TrimSpace(ui.dirEntry.Text)
		if dir == "" {
			return
		}
		if err := platform.OpenDirectoryInManager(dir); err != nil {
			ui.log.Warn().Err(err).Str("dir", dir).Msg("could not open output folder")
		}
	}
}

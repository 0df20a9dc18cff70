package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/tubefetch/tubefetch/internal/config"
	"github.com/tubefetch/tubefetch/internal/job"
	"github.com/tubefetch/tubefetch/internal/logging"
	"github.com/tubefetch/tubefetch/internal/platform"
	"github.com/tubefetch/tubefetch/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.tubefetch.tubefetch"
	AppName = "TubeFetch"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	logger := logging.New(logging.Config{
		Level: os.Getenv("TUBEFETCH_LOG_LEVEL"),
		Dir:   diagnosticLogDir(myApp),
	})
	defer logger.Close()

	logger.Info().Str("version", version).Msg("starting")

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	outputDir := settings.GetOutputDirectory()
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		logger.Warn().Err(err).Str("dir", outputDir).Msg("failed to ensure output dir")
	}

	tools, err := platform.DiscoverTools(settings.GetConverterLocation())
	if err != nil {
		logger.Error().Err(err).Msg("tool discovery failed")
		ui.ShowFatalToolError(myWindow, err)
		myWindow.ShowAndRun()
		return
	}
	logger.Info().
		Str("extractor", tools.ExtractorPath).
		Str("converter", tools.ConverterPath).
		Msg("external tools resolved")

	jobSvc := job.NewService(tools, settings.GetFilenameTemplate(), logger.Logger)

	ui.NewRootUI(myWindow, myApp, jobSvc, logger.Logger)

	myWindow.ShowAndRun()
}

// diagnosticLogDir places the rotated diagnostic log under the Fyne app
// storage root, or disables the file sink when storage is unavailable.
func diagnosticLogDir(a fyne.App) string {
	root := a.Storage().RootURI().Path()
	if root == "" {
		return ""
	}
	return filepath.Join(root, "logs")
}

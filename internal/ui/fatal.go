package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ShowFatalToolError replaces the window content with an explanation when a
// required external tool could not be found. The app stays open so the user
// can read the message, but no download can be launched.
func ShowFatalToolError(window fyne.Window, err error) {
	title := widget.NewLabel("Required tool not found")
	title.TextStyle = fyne.TextStyle{Bold: true}

	detail := widget.NewLabel(fmt.Sprintf(
		"%v\n\nInstall yt-dlp (and optionally ffmpeg) or place them in a\n\"tools\" directory next to the application, then restart.", err))
	detail.Wrapping = fyne.TextWrapWord

	window.SetContent(container.NewVBox(title, detail))
}

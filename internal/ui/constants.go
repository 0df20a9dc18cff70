package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Window sizing
const (
	WindowMinWidth  float32 = 640
	WindowMinHeight float32 = 480
)

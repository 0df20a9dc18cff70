package platform

// Package platform contains OS/platform integration and external tooling glue:
// URL recognition, yt-dlp output parsing, tool discovery, filesystem helpers,
// and playlist preview via the ytdlp library.

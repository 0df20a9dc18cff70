package ui

import "testing"

func TestLocalizationDefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language 'en', got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyDownload); got != "Download" {
		t.Errorf("Expected 'Download', got %s", got)
	}
}

func TestLocalizationSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if got := l.GetText(KeyDownload); got != "Скачать" {
		t.Errorf("Expected Russian download label, got %s", got)
	}

	// Unknown language keeps the current one
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language must not change selection, got %s", l.GetCurrentLanguage())
	}

	// System maps to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected 'system' to map to 'en', got %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Missing key should fall back to the key itself, got %s", got)
	}
}

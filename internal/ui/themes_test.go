package ui

import (
	"os"
	"strings"
	"testing"
)

// Tests in this file mutate the global theme and therefore do not run in parallel.

func TestInitTheme_NoColorFlag(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())
	InitTheme(true)
	if ColorsEnabled() {
		t.Error("colors should be disabled by the flag")
	}
	if ColorRed() != "" || ColorReset() != "" {
		t.Error("color helpers should return empty strings without colors")
	}
}

func TestInitTheme_NoColorEnv(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())
	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("theme = %q, want none", GetCurrentTheme().Name)
	}
}

func TestInitTheme_Default(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())
	if _, set := os.LookupEnv("NO_COLOR"); set {
		t.Skip("NO_COLOR set in the environment")
	}
	InitTheme(false)
	if !ColorsEnabled() {
		t.Fatal("dark theme expected")
	}
	if !strings.HasPrefix(ColorGreen(), "\033[") {
		t.Errorf("ColorGreen() = %q, want an escape code", ColorGreen())
	}
}

func TestGetTableStyles_Plain(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())
	SetCurrentTheme(NoColorTheme)

	styles := GetTableStyles()
	if got := styles.Failure.Render("poisoned"); got != "poisoned" {
		t.Errorf("plain render = %q, want %q", got, "poisoned")
	}
	if got := styles.Header.Render("Strategy"); got != "Strategy" {
		t.Errorf("plain header = %q", got)
	}
}

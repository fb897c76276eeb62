// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
)

// ANSI colour codes for plain terminal output. Empty until
// InitializeColors runs, so output written before then stays uncoloured.
var (
	Green   string
	Info    string
	Warning string
	Error   string
	Reset   string
)

// ColorScheme holds the termui colours of the shape viewer
type ColorScheme struct {
	Primary     ui.Color
	OnPrimary   ui.Color
	Border      ui.Color
	BorderFocus ui.Color
	Text        ui.Color
	TextMuted   ui.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// detectTerminalMode guesses whether the terminal has a light or dark background
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(name))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     ui.Color(4), // dark blue
		OnPrimary:   ui.ColorWhite,
		Border:      ui.Color(8),
		BorderFocus: ui.Color(4),
		Text:        ui.ColorBlack,
		TextMuted:   ui.Color(240),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     ui.Color(6), // cyan
		OnPrimary:   ui.ColorBlack,
		Border:      ui.Color(240),
		BorderFocus: ui.Color(14),
		Text:        ui.ColorWhite,
		TextMuted:   ui.Color(245),
	}
}

// InitializeColors detects the terminal mode and sets both the termui
// scheme and the ANSI codes
func InitializeColors() {
	detectedMode = detectTerminalMode()

	switch detectedMode {
	case TerminalModeLight:
		currentColorScheme = createLightColorScheme()
	default:
		currentColorScheme = createDarkColorScheme()
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// GetANSIColors returns darker codes for light terminals and brighter
// ones for dark terminals
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}

func StyleBorder(focused bool) ui.Style {
	scheme := GetColorScheme()
	if focused {
		return ui.NewStyle(scheme.BorderFocus)
	}
	return ui.NewStyle(scheme.Border)
}

func StyleText() ui.Style {
	return ui.NewStyle(GetColorScheme().Text)
}

func StyleTextMuted() ui.Style {
	return ui.NewStyle(GetColorScheme().TextMuted)
}

func StylePrimary() ui.Style {
	scheme := GetColorScheme()
	return ui.NewStyle(scheme.OnPrimary, scheme.Primary)
}

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

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI color codes for plain terminal output (adaptive to mode)
var (
	Green = "\033[92m"
	Red   = "\033[91m"
	Reset = "\033[0m"
)

// Styles used by the check summary.
type Styles struct {
	Title lipgloss.Style
	Pass  lipgloss.Style
	Fail  lipgloss.Style
	Muted lipgloss.Style
	Box   lipgloss.Style
}

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
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

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(env)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode
	return TerminalModeDark
}

// newStyles returns summary styles tuned for the terminal mode.
func newStyles(mode TerminalMode) Styles {
	title, pass, fail, muted := lipgloss.Color("39"), lipgloss.Color("46"), lipgloss.Color("196"), lipgloss.Color("245")
	if mode == TerminalModeLight {
		title, pass, fail, muted = lipgloss.Color("4"), lipgloss.Color("2"), lipgloss.Color("1"), lipgloss.Color("240")
	}
	return Styles{
		Title: lipgloss.NewStyle().Foreground(title).Bold(true),
		Pass:  lipgloss.NewStyle().Foreground(pass).Bold(true),
		Fail:  lipgloss.NewStyle().Foreground(fail).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(muted),
		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
	}
}

// InitializeColors picks ANSI codes matching the detected terminal mode.
func InitializeColors() TerminalMode {
	mode := detectTerminalMode()
	if mode == TerminalModeLight {
		Green, Red = "\033[32m", "\033[31m"
	} else {
		Green, Red = "\033[92m", "\033[91m"
	}
	return mode
}

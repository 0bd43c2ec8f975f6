// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	// FaintStyle dims secondary text such as destinations in --list
	FaintStyle = lipgloss.NewStyle().Faint(true)

	// Green highlights document names
	Green = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#587539", // tokyonight-day green
		Dark:  "#9ece6a", // tokyonight green
	})

	blue = lipgloss.AdaptiveColor{
		Light: "#2e7de9", // tokyonight-day blue
		Dark:  "#7aa2f7", // tokyonight blue
	}
	cyan = lipgloss.AdaptiveColor{
		Light: "#007197", // tokyonight-day cyan
		Dark:  "#7dcfff", // tokyonight cyan
	}
	amber = lipgloss.AdaptiveColor{
		Light: "#8c6c3e", // tokyonight-day amber/yellow
		Dark:  "#e0af68", // tokyonight amber/yellow
	}
	red = lipgloss.AdaptiveColor{
		Light: "#f52a65", // tokyonight-day red
		Dark:  "#f7768e", // tokyonight red
	}
)

// DefaultStyles returns the default styles.
//
// Level colors follow https://github.com/charmbracelet/vhs/blob/main/themes.json,
// and the path/document/action values logged by docemit are picked out.
func DefaultStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = styles.Levels[log.DebugLevel].Foreground(blue)
	styles.Levels[log.InfoLevel] = styles.Levels[log.InfoLevel].Foreground(cyan)
	styles.Levels[log.WarnLevel] = styles.Levels[log.WarnLevel].Foreground(amber)
	styles.Levels[log.ErrorLevel] = styles.Levels[log.ErrorLevel].Foreground(red)

	styles.Values["path"] = lipgloss.NewStyle().Underline(true)
	styles.Values["document"] = Green
	styles.Values["action"] = lipgloss.NewStyle().Foreground(amber)

	return styles
}

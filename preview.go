// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package docemit

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWrapWidth is used when the output is not a terminal
const DefaultWrapWidth = 80

// Render renders markdown for display in a terminal
//
// Styling is dropped when NO_COLOR is set or the writer is not a terminal.
func Render(w io.Writer, payload string) error {
	styled, width := terminalInfo(w)

	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(width),
	}
	if styled {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return err
	}

	out, err := r.Render(payload)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}

func terminalInfo(w io.Writer) (bool, int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false, DefaultWrapWidth
	}

	width := DefaultWrapWidth
	if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
		width = cols
	}

	return !termenv.EnvNoColor(), width
}

// printPayload logs a payload line by line, highlighted as markdown when color is allowed
func printPayload(logger *log.Logger, payload string) {
	payload = strings.TrimSpace(payload)

	if termenv.EnvNoColor() {
		for line := range strings.SplitSeq(payload, "\n") {
			logger.Printf("  %s", line)
		}
		return
	}

	var buf strings.Builder
	style := "tokyonight-day"
	if lipgloss.HasDarkBackground() {
		style = "tokyonight-moon"
	}
	if err := quick.Highlight(&buf, payload, "markdown", "terminal256", style); err != nil {
		logger.Debugf("failed to highlight: %v", err)
		for line := range strings.SplitSeq(payload, "\n") {
			logger.Printf("  %s", line)
		}
		return
	}

	gray := lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{
		Light: "#c5c6bC",
		Dark:  "#3a3943",
	})
	prefix := gray.Render(" ")

	for line := range strings.SplitSeq(buf.String(), "\n") {
		logger.Printf("%s %s", prefix, line)
	}
}

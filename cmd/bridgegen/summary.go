package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/bridgegen"
	"github.com/wippyai/bridgegen/shim"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// summary lists the written files and the layout of every bridged element on
// 32- and 64-bit targets.
func summary(files *bridgegen.Files, dir string, styled bool) string {
	render := func(s lipgloss.Style, text string) string {
		if styled {
			return s.Render(text)
		}
		return text
	}

	var b strings.Builder
	b.WriteString(render(titleStyle, "bridgegen"))
	b.WriteString("\n\n")

	for _, f := range files.All() {
		fmt.Fprintf(&b, "  %s  %d bytes\n", render(fileStyle, filepath.Join(dir, f.Name)), len(f.Content))
	}

	elems := files.Elements
	if len(elems) > 0 {
		h32, h64 := shim.HandleLayout(4), shim.HandleLayout(8)
		fmt.Fprintf(&b, "\nhandle: %d/%d bytes, align %d/%d (32/64-bit)\n", h32.Size, h64.Size, h32.Align, h64.Align)
		for _, e := range elems {
			s32, s64 := shim.ElementLayout(e, 4), shim.ElementLayout(e, 8)
			fmt.Fprintf(&b, "  %s stride %d/%d\n", render(typeStyle, fmt.Sprintf("%-8s", e.Segment)), s32.Size, s64.Size)
		}
	}
	fmt.Fprintf(&b, "\n%d exported symbols\n", len(files.Symbols))
	return b.String()
}

func printSummary(w io.Writer, files *bridgegen.Files, dir string, styled bool) {
	fmt.Fprint(w, summary(files, dir, styled))
}

package banner

import (
	"fmt"
	"io"
	"log"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Announce writes the startup message. Terminals get a styled box, anything
// else (pipes, files, NO_COLOR) gets the plain log line.
func Announce(w io.Writer, version, addr string) {
	profile := termenv.NewOutput(w).EnvColorProfile()
	if profile == termenv.Ascii {
		log.Printf("Server is running on %s", addr)
		return
	}

	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(profile)
	_, _ = fmt.Fprintln(w, Render(renderer, version, addr))
}

func Render(renderer *lipgloss.Renderer, version, addr string) string {
	titleStyle := renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4"))

	addrStyle := renderer.NewStyle().
		Foreground(lipgloss.Color("#04B575"))

	versionStyle := renderer.NewStyle().
		Foreground(lipgloss.Color("#888888"))

	boxStyle := renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Padding(0, 2)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Echo Server"),
		"Server is running on "+addrStyle.Render(addr),
		versionStyle.Render(version),
	)
	return boxStyle.Render(content)
}

package output

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"progress-tracker/core/library"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"golang.org/x/term"
)

const defaultWidth = 80

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	tagStyles    = map[library.Tag]lipgloss.Style{
		library.TagMastered:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		library.TagCompleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		library.TagInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		library.TagBacklog:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		library.TagDropped:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// Success prints a success message
func Success(format string, args ...any) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("ERROR: "+fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...any) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an unstyled message
func Info(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

// Title renders a bold heading.
func Title(s string) string {
	return titleStyle.Render(s)
}

// Subtle renders dimmed text.
func Subtle(s string) string {
	return subtleStyle.Render(s)
}

// JSON prints v as indented JSON.
func JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// FormatTag renders a tag label in its color.
func FormatTag(t library.Tag) string {
	style, ok := tagStyles[t]
	if !ok {
		return string(t)
	}
	return style.Render(fmt.Sprintf("[%s]", t.Label()))
}

// FormatSummary renders a sync summary on one line.
func FormatSummary(s library.SyncSummary) string {
	if !s.Success {
		return errorStyle.Render("Sync failed: " + s.Error)
	}
	line := fmt.Sprintf("Synced %d of %d games", s.Synced, s.Total)
	if s.NewTags > 0 {
		line += fmt.Sprintf(", %d new tag(s)", s.NewTags)
	}
	if s.Errors > 0 {
		line += fmt.Sprintf(", %d error(s)", s.Errors)
	}
	return successStyle.Render(line)
}

// ProgressLine renders "[####....] current/total label" fitted to width.
func ProgressLine(current, total int, label string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	counter := fmt.Sprintf(" %d/%d ", current, total)
	barWidth := width / 3
	if barWidth < 10 {
		barWidth = 10
	}

	filled := 0
	if total > 0 {
		filled = current * barWidth / total
		if filled > barWidth {
			filled = barWidth
		}
	}
	bar := "[" + barStyle.Render(strings.Repeat("#", filled)) + strings.Repeat(".", barWidth-filled) + "]"

	room := width - lipgloss.Width(bar) - lipgloss.Width(counter)
	if room < 0 {
		room = 0
	}
	if lipgloss.Width(label) > room {
		label = truncate(label, room)
	}
	return bar + counter + label
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the current terminal width or a fallback when unavailable.
func TerminalWidth(fallback int) int {
	if fallback <= 0 {
		fallback = defaultWidth
	}

	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}

	if cols := os.Getenv("COLUMNS"); cols != "" {
		if parsed, err := strconv.Atoi(cols); err == nil && parsed > 0 {
			return parsed
		}
	}

	return fallback
}

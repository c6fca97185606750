package output

import (
	"strings"
	"testing"

	"progress-tracker/core/library"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFormatTag(t *testing.T) {
	assert.Contains(t, FormatTag(library.TagInProgress), "[In Progress]")
	assert.Equal(t, "custom", FormatTag(library.Tag("custom")))
}

func TestFormatSummary(t *testing.T) {
	got := FormatSummary(library.SyncSummary{Success: true, Total: 4, Synced: 3, NewTags: 2, Errors: 1})
	assert.Contains(t, got, "Synced 3 of 4 games")
	assert.Contains(t, got, "2 new tag(s)")
	assert.Contains(t, got, "1 error(s)")

	assert.Contains(t, FormatSummary(library.Failed(nil)), "Sync failed: Unknown error")
}

func TestProgressLine(t *testing.T) {
	line := ProgressLine(5, 10, strings.Repeat("x", 200), 60)
	assert.LessOrEqual(t, lipgloss.Width(line), 60)
	assert.Contains(t, line, " 5/10 ")
	assert.True(t, strings.HasSuffix(line, "..."))

	assert.Contains(t, ProgressLine(0, 0, "idle", 0), " 0/0 idle")
}

func TestTerminalWidth(t *testing.T) {
	t.Setenv("COLUMNS", "132")
	w := TerminalWidth(80)
	assert.True(t, w == 132 || w > 0)
}

// Package output provides styled terminal output helpers using lipgloss.
package output

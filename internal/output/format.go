// Package output provides formatters for task list output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexrayosb/CRUD-TodoList/internal/service"
)

const (
	// Heading is the title shown above the task list.
	Heading = "Task List"

	// Separator is the separator line around the heading.
	Separator = "------------"

	// NoDescription is shown when a task has no description.
	NoDescription = "No description"

	// StatusCompleted and StatusPending label the completion flag.
	StatusCompleted = "Completed"
	StatusPending   = "Pending"
)

// FormatHeading prints the heading between separator lines.
func FormatHeading(w io.Writer) {
	fmt.Fprintln(w, Separator)
	fmt.Fprintln(w, Heading)
	fmt.Fprintln(w, Separator)
}

// FormatTask formats one task row.
// Format: "{N:>4}  #{ID}  {TITLE} - {DESCRIPTION} - {STATUS}\n"
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  #%s  %s\n", num, task.ID, Row(task))
}

// Row renders the row text shared by every surface.
func Row(task service.Task) string {
	return fmt.Sprintf("%s - %s - %s", Title(task), Description(task), Status(task))
}

// Title returns the display title.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func Title(task service.Task) string {
	return normalize(task.Title, "(untitled)")
}

// Description returns the display description, or the placeholder.
func Description(task service.Task) string {
	return normalize(task.Description, NoDescription)
}

// Status returns the completion label.
func Status(task service.Task) string {
	if task.Completed {
		return StatusCompleted
	}
	return StatusPending
}

func normalize(s, placeholder string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")

	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

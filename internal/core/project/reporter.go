package project

import (
	"fmt"
	"io"
)

// ProgressReporter receives human-readable status for long-running steps.
type ProgressReporter interface {
	StepStart(name, message string)
	StepComplete(message string)
}

// NoOpReporter discards all status.
type NoOpReporter struct{}

// StepStart implements ProgressReporter.
func (*NoOpReporter) StepStart(string, string) {}

// StepComplete implements ProgressReporter.
func (*NoOpReporter) StepComplete(string) {}

// ConsoleReporter prints status lines to a writer.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporterTo creates a ConsoleReporter writing to w.
func NewConsoleReporterTo(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

// StepStart prints the step message, or the step name when message is empty.
func (r *ConsoleReporter) StepStart(name, message string) {
	if message == "" {
		message = name + "..."
	}
	_, _ = fmt.Fprintln(r.w, message)
}

// StepComplete prints the completion message, if any.
func (r *ConsoleReporter) StepComplete(message string) {
	if message == "" {
		return
	}
	_, _ = fmt.Fprintln(r.w, message)
}

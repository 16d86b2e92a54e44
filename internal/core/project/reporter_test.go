package project

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporterTo(&buf)

	r.StepStart("Install", "Installing dependencies...")
	r.StepComplete("")
	r.StepStart("Start", "")
	r.StepComplete("done")

	assert.Equal(t, "Installing dependencies...\nStart...\ndone\n", buf.String())
}

func TestNoOpReporter(t *testing.T) {
	var r ProgressReporter = &NoOpReporter{}
	r.StepStart("Install", "ignored")
	r.StepComplete("ignored")
}

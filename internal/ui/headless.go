package ui

import (
	"maps"
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether prompts may block on a terminal and
// holds the answers used instead when they may not.
type HeadlessManager struct {
	forced  *bool
	answers map[string]string
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{}
}

// IsHeadless reports whether prompts must not wait for keyboard input.
// A forced value overrides TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// ForceHeadless overrides TTY detection.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// SetAnswers stores the answers returned by headless prompts, keyed by
// question key (e.g. "project_name", "overwrite").
func (h *HeadlessManager) SetAnswers(answers map[string]string) {
	if len(answers) == 0 {
		h.answers = nil
		return
	}
	h.answers = make(map[string]string, len(answers))
	maps.Copy(h.answers, answers)
}

// Answer retrieves a stored answer by key.
func (h *HeadlessManager) Answer(key string) (string, bool) {
	if key == "" || h.answers == nil {
		return "", false
	}
	v, ok := h.answers[key]
	return v, ok
}

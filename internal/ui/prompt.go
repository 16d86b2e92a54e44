package ui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned when the user aborts a prompt (Ctrl-C / Esc).
var ErrCancelled = errors.New("prompt cancelled by user")

// Prompt asks the user free-text and yes/no questions.
type Prompt interface {
	// Input asks for a line of text and returns it untrimmed.
	Input(label string, opts ...Option) (string, error)

	// Confirm asks a yes/no question.
	Confirm(label string, defaultVal bool, opts ...Option) (bool, error)
}

// promptConfig collects per-question options.
type promptConfig struct {
	key         string
	placeholder string
	defaultVal  string
}

// Option configures a single question.
type Option func(*promptConfig)

// WithKey names the question so headless answers can be looked up.
func WithKey(key string) Option {
	return func(c *promptConfig) { c.key = key }
}

// WithPlaceholder sets the placeholder shown in an empty text input.
func WithPlaceholder(p string) Option {
	return func(c *promptConfig) { c.placeholder = p }
}

// WithDefault pre-fills a text input. In headless mode it is the answer
// when no stored answer exists for the key.
func WithDefault(v string) Option {
	return func(c *promptConfig) { c.defaultVal = v }
}

func applyOptions(opts []Option) promptConfig {
	var cfg promptConfig
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// promptImpl implements Prompt.
type promptImpl struct {
	theme    *Theme
	headless *HeadlessManager
	log      io.Writer // headless transcript; nil discards
}

// NewPrompt creates a Prompt backed by the given theme and headless manager.
// Headless answers are echoed to w so non-interactive runs leave a transcript.
func NewPrompt(theme *Theme, hm *HeadlessManager, w io.Writer) Prompt {
	return &promptImpl{theme: theme, headless: hm, log: w}
}

// Input asks for a line of text.
func (p *promptImpl) Input(label string, opts ...Option) (string, error) {
	cfg := applyOptions(opts)
	if p.headless.IsHeadless() {
		return p.inputHeadless(label, cfg), nil
	}
	return p.inputInteractive(label, cfg)
}

// Confirm asks a yes/no question.
func (p *promptImpl) Confirm(label string, defaultVal bool, opts ...Option) (bool, error) {
	cfg := applyOptions(opts)
	if p.headless.IsHeadless() {
		return p.confirmHeadless(label, defaultVal, cfg)
	}
	return p.confirmInteractive(label, defaultVal)
}

func (p *promptImpl) inputHeadless(label string, cfg promptConfig) string {
	v, ok := p.headless.Answer(cfg.key)
	if !ok {
		v = cfg.defaultVal
	}
	p.echo(label, v)
	return v
}

func (p *promptImpl) confirmHeadless(label string, defaultVal bool, cfg promptConfig) (bool, error) {
	v := defaultVal
	if raw, ok := p.headless.Answer(cfg.key); ok {
		parsed, err := parseYesNo(raw)
		if err != nil {
			return false, fmt.Errorf("headless answer for %q: %w", cfg.key, err)
		}
		v = parsed
	}
	p.echo(label, formatYesNo(v))
	return v, nil
}

func (p *promptImpl) echo(label, answer string) {
	if p.log == nil {
		return
	}
	_, _ = fmt.Fprintf(p.log, "? %s %s\n", label, answer)
}

func (p *promptImpl) inputInteractive(label string, cfg promptConfig) (string, error) {
	value := cfg.defaultVal

	inp := huh.NewInput().
		Title(label).
		Value(&value)
	if cfg.placeholder != "" {
		inp = inp.Placeholder(cfg.placeholder)
	}

	form := huh.NewForm(huh.NewGroup(inp)).
		WithTheme(p.theme.huhTheme()).
		WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("prompt: %w", err)
	}
	return value, nil
}

func (p *promptImpl) confirmInteractive(label string, defaultVal bool) (bool, error) {
	value := defaultVal

	cf := huh.NewConfirm().
		Title(label).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	form := huh.NewForm(huh.NewGroup(cf)).
		WithTheme(p.theme.huhTheme()).
		WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, fmt.Errorf("confirm: %w", err)
	}
	return value, nil
}

// parseYesNo accepts strconv booleans plus y/yes/n/no.
func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(s))
}

func formatYesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

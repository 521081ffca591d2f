package demo

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/sghaida/patterns/logger"
)

const defaultWidth = 72

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)

	summaryStyle = lipgloss.NewStyle().Faint(true)
)

// Runner executes registered demos and renders their lines to a writer.
type Runner struct {
	out   io.Writer
	plain bool
	width int
	log   *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithPlain disables styled banners; sections are rendered as plain text.
func WithPlain(plain bool) Option {
	return func(r *Runner) { r.plain = plain }
}

// WithWidth sets the banner width, typically the terminal width.
func WithWidth(width int) Option {
	return func(r *Runner) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithLogger overrides the logger used for run records.
func WithLogger(log *slog.Logger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRunner creates a runner writing to out.
func NewRunner(out io.Writer, opts ...Option) *Runner {
	r := &Runner{out: out, width: defaultWidth, log: logger.L()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the named demos in registry order semantics: an empty names
// list means all of them. Each run gets a time-ordered UUID for correlation
// with the log.
func (r *Runner) Run(script *Script, names ...string) error {
	if script == nil {
		script = DefaultScript()
	}
	if err := script.Validate(); err != nil {
		return err
	}

	demos := Registry()
	if len(names) > 0 {
		demos = demos[:0:0]
		for _, name := range names {
			d, ok := ByName(name)
			if !ok {
				return UnknownDemoError{Name: name}
			}
			demos = append(demos, d)
		}
	}

	for _, d := range demos {
		runID := uuid.Must(uuid.NewV7())
		r.log.Info("demo.started", "demo", d.Name, "run_id", runID.String())

		lines, err := d.Run(script)
		if err != nil {
			r.log.Error("demo.failed", "demo", d.Name, "run_id", runID.String(), "error", err)
			return fmt.Errorf("demo %s: %w", d.Name, err)
		}

		r.section(d)
		for _, line := range lines {
			fmt.Fprintln(r.out, line)
		}
		fmt.Fprintln(r.out)

		r.log.Info("demo.finished", "demo", d.Name, "run_id", runID.String(), "lines", len(lines))
	}
	return nil
}

func (r *Runner) section(d Demo) {
	if r.plain {
		fmt.Fprintf(r.out, "=== %s: %s ===\n", d.Name, d.Summary)
		return
	}
	title := bannerStyle.Width(r.width).Render(d.Name)
	summary := summaryStyle.Render(d.Summary)
	fmt.Fprintln(r.out, strings.TrimRight(title, "\n"))
	fmt.Fprintln(r.out, summary)
}

package logsink

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/cemlint/cemlint/internal/domain"
)

var (
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
	info    = lipgloss.Color("#8B949E")

	successStyle = lipgloss.NewStyle().Foreground(success)
)

// Sink implements domain.Sink on top of a charmbracelet logger. Outside
// debug mode only forced messages are written.
type Sink struct {
	logger *log.Logger
	debug  bool
}

// New creates a Sink writing to w.
func New(w io.Writer, debug bool) *Sink {
	logger := log.NewWithOptions(w, log.Options{
		Level: log.DebugLevel,
	})
	styles := log.DefaultStyles()
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().SetString("INFO").Bold(true).Foreground(info)
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARN").Bold(true).Foreground(warning)
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERROR").Bold(true).Foreground(danger)
	logger.SetStyles(styles)
	return &Sink{logger: logger, debug: debug}
}

// Factory returns a domain.SinkFactory writing to w.
func Factory(w io.Writer) domain.SinkFactory {
	return func(debug bool) domain.Sink { return New(w, debug) }
}

func (s *Sink) enabled(force bool) bool { return s.debug || force }

func (s *Sink) Info(msg string, force bool) {
	if s.enabled(force) {
		s.logger.Info(clean(msg))
	}
}

func (s *Sink) Success(msg string, force bool) {
	if s.enabled(force) {
		s.logger.Info(successStyle.Render(clean(msg)))
	}
}

func (s *Sink) Warn(msg string, force bool) {
	if s.enabled(force) {
		s.logger.Warn(clean(msg))
	}
}

func (s *Sink) Error(msg string, force bool) {
	if s.enabled(force) {
		s.logger.Error(clean(msg))
	}
}

func clean(msg string) string { return strings.TrimRight(msg, "\n") }

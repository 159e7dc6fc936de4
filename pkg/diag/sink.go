package diag

import (
	"fmt"
	"log/slog"
	"strings"
)

// Sink receives warnings as they are emitted. Implementations must not
// retain the Warning's Path slice beyond the call unless they copy it;
// operations reuse nothing, but callers composing sinks should follow
// the same rule.
type Sink interface {
	Warn(w Warning)
}

// Discard is a Sink that drops every warning.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) Warn(Warning) {}

// Collector is a Sink that records warnings in emission order.
// The zero value is ready to use. Collector is not safe for concurrent
// use, matching the engine's single-threaded model.
type Collector struct {
	warnings []Warning
}

// Warn records the warning.
func (c *Collector) Warn(w Warning) {
	c.warnings = append(c.warnings, w)
}

// Warnings returns the recorded warnings in emission order.
func (c *Collector) Warnings() []Warning {
	return c.warnings
}

// Len returns the number of recorded warnings.
func (c *Collector) Len() int {
	return len(c.warnings)
}

// Summary counts recorded warnings by code.
type Summary struct {
	DuplicatePaths   int
	LeafObstructions int
	Other            int
}

// Summary tallies the recorded warnings.
func (c *Collector) Summary() Summary {
	var s Summary
	for _, w := range c.warnings {
		switch w.Code {
		case DuplicatePath:
			s.DuplicatePaths++
		case LeafObstruction:
			s.LeafObstructions++
		default:
			s.Other++
		}
	}
	return s
}

// FormatText renders the recorded warnings as a human-readable report,
// one numbered line per warning.
func (c *Collector) FormatText() string {
	if len(c.warnings) == 0 {
		return "No warnings.\n"
	}

	var b strings.Builder
	s := c.Summary()
	b.WriteString(fmt.Sprintf("%d warning(s): %d duplicate path(s), %d obstructed insertion(s)\n",
		len(c.warnings), s.DuplicatePaths, s.LeafObstructions))
	for i, w := range c.warnings {
		b.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, w.Code, w.Message()))
	}
	return b.String()
}

// LogSink forwards warnings to a slog.Logger at Warn level with
// structured attributes.
type LogSink struct {
	l *slog.Logger
}

// NewLogSink wraps the logger. A nil logger falls back to slog.Default.
func NewLogSink(l *slog.Logger) *LogSink {
	if l == nil {
		l = slog.Default()
	}
	return &LogSink{l: l}
}

// Warn logs the warning.
func (s *LogSink) Warn(w Warning) {
	s.l.Warn(w.Message(),
		slog.String("code", w.Code.String()),
		slog.Any("path", w.Path),
		slog.Any("value", w.Value),
	)
}
